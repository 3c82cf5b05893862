// Package wordtree builds a prefix tree over the words of sentences.
//
// Each root key is the first word of at least one sentence; every deeper
// level holds the words that followed that prefix in some sentence. A tree
// is built once and is safe for concurrent readers afterwards.
package wordtree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrWordNotFound is returned when a requested root word is not in the tree.
var ErrWordNotFound = errors.New("word not found")

// Node maps a word to its child node, remembering first-insertion order.
type Node struct {
	children map[string]*Node
	order    []string
}

func newNode() *Node {
	return &Node{}
}

// child returns the child for word, creating it when absent.
func (n *Node) child(word string) *Node {
	if c, ok := n.children[word]; ok {
		return c
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	c := newNode()
	n.children[word] = c
	n.order = append(n.order, word)
	return c
}

// Child returns the child node for word.
func (n *Node) Child(word string) (*Node, bool) {
	c, ok := n.children[word]
	return c, ok
}

// Words returns the child words in insertion order.
func (n *Node) Words() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// IsLeaf reports whether the node ends a word sequence with nothing after it.
func (n *Node) IsLeaf() bool {
	return len(n.order) == 0
}

// Tree is a forest of word nodes keyed by each sentence's first word.
type Tree struct {
	root *Node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: newNode()}
}

// Tokenize splits text on whitespace. Case and punctuation are preserved.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Build tokenizes each sentence and inserts it. Empty sentences are skipped.
func Build(sentences []string) *Tree {
	t := New()
	for _, s := range sentences {
		t.insert(Tokenize(s))
	}
	return t
}

// BuildTokens builds a tree from already tokenized sentences.
func BuildTokens(sentences [][]string) *Tree {
	t := New()
	for _, words := range sentences {
		t.insert(words)
	}
	return t
}

func (t *Tree) insert(words []string) {
	n := t.root
	for _, w := range words {
		n = n.child(w)
	}
}

// Roots returns the first words of all sentences in insertion order.
func (t *Tree) Roots() []string {
	return t.root.Words()
}

// Lookup returns the node for a root word.
func (t *Tree) Lookup(word string) (*Node, bool) {
	return t.root.Child(word)
}

// Empty reports whether the tree has no root words.
func (t *Tree) Empty() bool {
	return t.root.IsLeaf()
}

// Contains reports whether words form a chain starting at a root.
func (t *Tree) Contains(words []string) bool {
	if len(words) == 0 {
		return false
	}
	n := t.root
	for _, w := range words {
		c, ok := n.Child(w)
		if !ok {
			return false
		}
		n = c
	}
	return true
}

// Size returns the total number of word nodes.
func (t *Tree) Size() int {
	return countNodes(t.root) - 1
}

func countNodes(n *Node) int {
	total := 1
	for _, w := range n.order {
		total += countNodes(n.children[w])
	}
	return total
}

// Depth returns the length of the longest word chain.
func (t *Tree) Depth() int {
	return depth(t.root)
}

func depth(n *Node) int {
	longest := 0
	for _, w := range n.order {
		if d := depth(n.children[w]) + 1; d > longest {
			longest = d
		}
	}
	return longest
}

// Paths returns every root-to-leaf word sequence under word, depth first.
func (t *Tree) Paths(word string) ([][]string, error) {
	n, ok := t.Lookup(word)
	if !ok {
		return nil, notFound(word)
	}
	var paths [][]string
	collectPaths(n, []string{word}, &paths)
	return paths, nil
}

func collectPaths(n *Node, prefix []string, paths *[][]string) {
	if n.IsLeaf() {
		p := make([]string, len(prefix))
		copy(p, prefix)
		*paths = append(*paths, p)
		return
	}
	for _, w := range n.order {
		collectPaths(n.children[w], append(prefix, w), paths)
	}
}

func notFound(word string) error {
	return fmt.Errorf("%w: %q", ErrWordNotFound, word)
}
