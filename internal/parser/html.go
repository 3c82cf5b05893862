package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/wordtree/internal/corpus"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. Items of <ol> lists are numbered from the
// list's start attribute; <p> and <ul> items are parsed per <br> line.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*corpus.Corpus, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	c := corpus.New(baseTitle(filename))
	if title := findTitle(doc); title != "" {
		c.Title = title
	}

	// html.Node carries no source positions, so skipped lines are numbered
	// by text block.
	block := 0
	addBlock := func(text string) {
		block++
		c.AddLine(block, text)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "footer", "header", "head":
				return
			case "ol":
				num := attrInt(n, "start", 1)
				for li := n.FirstChild; li != nil; li = li.NextSibling {
					if li.Type != html.ElementNode || li.Data != "li" {
						continue
					}
					num = attrInt(li, "value", num)
					c.AddNumbered(num, textContent(li))
					num++
				}
				return
			case "p", "li":
				for _, line := range strings.Split(textContent(n), "\n") {
					addBlock(line)
				}
				return
			}
		}

		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return c, nil
}

func attrInt(n *html.Node, key string, fallback int) int {
	for _, a := range n.Attr {
		if a.Key == key {
			if v, err := strconv.Atoi(strings.TrimSpace(a.Val)); err == nil {
				return v
			}
		}
	}
	return fallback
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(strings.ReplaceAll(n.Data, "\n", " "))
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			buf.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
