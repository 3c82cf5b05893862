package parser

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/wordtree/internal/corpus"
	"github.com/dgallion1/wordtree/internal/sentence"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Ordered list items
// keep the number written in the source; other paragraphs are parsed line
// by line.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*corpus.Corpus, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src = bytes.TrimPrefix(src, []byte(sentence.BOM))

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	c := corpus.New(baseTitle(filename))
	titled := false

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 && !titled {
				if t := inlineText(node, src); t != "" {
					c.Title = t
					titled = true
				}
			}
			return ast.WalkSkipChildren, nil
		case *ast.List:
			if !node.IsOrdered() {
				return ast.WalkContinue, nil
			}
			num := node.Start
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				if n, ok := itemNumber(item, src); ok {
					num = n
				}
				c.AddNumbered(num, inlineText(item, src))
				num++
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.TextBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				c.AddLine(lineOf(src, seg.Start), string(seg.Value(src)))
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// inlineText collects the text of all inline descendants of n, joining
// soft line breaks with a space.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch t := c.(type) {
			case *ast.Text:
				buf.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					buf.WriteByte(' ')
				}
			case *ast.String:
				buf.Write(t.Value)
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}

// itemNumber reads the marker number ("3." or "3)") of an ordered list item
// from the source line holding its first block of content.
func itemNumber(item ast.Node, src []byte) (int, bool) {
	first := item.FirstChild()
	if first == nil || first.Lines().Len() == 0 {
		return 0, false
	}
	start := first.Lines().At(0).Start
	lineStart := bytes.LastIndexByte(src[:start], '\n') + 1
	fields := strings.Fields(string(src[lineStart:start]))
	if len(fields) == 0 {
		return 0, false
	}
	marker := strings.TrimRight(fields[len(fields)-1], ".)")
	n, err := strconv.Atoi(marker)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// lineOf returns the 1-based source line containing offset.
func lineOf(src []byte, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	return bytes.Count(src[:offset], []byte{'\n'}) + 1
}
