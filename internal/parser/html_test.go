package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHTMLParser_OrderedList(t *testing.T) {
	input := `<html><head><title>Openers</title></head><body>
<nav>1. skipped nav</nav>
<ol start="10">
  <li>Call me Ishmael.|Moby-Dick</li>
  <li>It was a
      pleasure to burn.</li>
  <li value="20">Lolita, light of my life</li>
</ol>
</body></html>`
	p := &HTMLParser{}
	c, err := p.Parse(strings.NewReader(input), "openers.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "Openers" {
		t.Errorf("expected title %q, got %q", "Openers", c.Title)
	}
	want := []string{"Call me Ishmael.", "It was a       pleasure to burn.", "Lolita, light of my life"}
	if diff := cmp.Diff(want, c.Texts()); diff != "" {
		t.Errorf("sentences mismatch (-want +got):\n%s", diff)
	}
	if _, ok := c.Sentences.ByNumber(11); !ok {
		t.Error("expected second item numbered 11")
	}
	if _, ok := c.Sentences.ByNumber(20); !ok {
		t.Error("expected value attribute to renumber item")
	}
}

func TestHTMLParser_Paragraphs(t *testing.T) {
	input := `<body><p>1. The cat sat|a<br>2. The cat ran</p><p>no number</p></body>`
	p := &HTMLParser{}
	c, err := p.Parse(strings.NewReader(input), "paras.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "paras" {
		t.Errorf("expected title %q, got %q", "paras", c.Title)
	}
	if diff := cmp.Diff([]string{"The cat sat", "The cat ran"}, c.Texts()); diff != "" {
		t.Errorf("sentences mismatch (-want +got):\n%s", diff)
	}
	if len(c.Skipped) != 1 {
		t.Errorf("expected 1 skipped block, got %d", len(c.Skipped))
	}
}
