package wordtree

import (
	"bufio"
	"io"
	"strings"
)

// Render writes the subtree under a root word depth first, one word per
// line, indented by one space per level. Each word is written once.
// Nothing is written when the word is not a root.
func (t *Tree) Render(w io.Writer, word string) error {
	n, ok := t.Lookup(word)
	if !ok {
		return notFound(word)
	}
	bw := bufio.NewWriter(w)
	if err := renderNode(bw, n, word, 0); err != nil {
		return err
	}
	return bw.Flush()
}

// RenderAll renders every root word in insertion order.
func (t *Tree) RenderAll(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, word := range t.root.order {
		if err := renderNode(bw, t.root.children[word], word, 0); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func renderNode(w *bufio.Writer, n *Node, word string, depth int) error {
	if _, err := w.WriteString(strings.Repeat(" ", depth) + word + "\n"); err != nil {
		return err
	}
	for _, c := range n.order {
		if err := renderNode(w, n.children[c], c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
