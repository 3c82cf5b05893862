package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarkdownParser_OrderedList(t *testing.T) {
	input := `# Famous Openers

1. Call me Ishmael.|Moby-Dick
2. It was the best of times, it was the worst of times|A Tale of Two Cities
3. *Happy* families are all alike;
`
	p := &MarkdownParser{}
	c, err := p.Parse(strings.NewReader(input), "openers.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Title != "Famous Openers" {
		t.Errorf("expected title %q, got %q", "Famous Openers", c.Title)
	}
	want := []string{
		"Call me Ishmael.",
		"It was the best of times, it was the worst of times",
		"Happy families are all alike;",
	}
	if diff := cmp.Diff(want, c.Texts()); diff != "" {
		t.Errorf("sentences mismatch (-want +got):\n%s", diff)
	}
	if text, ok := c.Sentences.ByNumber(3); !ok || text != want[2] {
		t.Errorf("ByNumber(3): got %q, %v", text, ok)
	}
}

func TestMarkdownParser_ListStartNumber(t *testing.T) {
	input := "5. It was a bright cold day in April\n6. All children, except one, grow up.\n"
	p := &MarkdownParser{}
	c, err := p.Parse(strings.NewReader(input), "late.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Sentences.ByNumber(5); !ok {
		t.Error("expected sentence numbered 5")
	}
	if text, ok := c.Sentences.ByNumber(6); !ok || text != "All children, except one, grow up." {
		t.Errorf("ByNumber(6): got %q, %v", text, ok)
	}
}

func TestMarkdownParser_KeepsSourceNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"period", "1. The cat sat\n3. The dog barked\n"},
		{"paren", "1) The cat sat\n3) The dog barked\n"},
		{"quoted", "> 1. The cat sat\n> 3. The dog barked\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := (&MarkdownParser{}).Parse(strings.NewReader(tt.input), "gaps.md")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if text, ok := c.Sentences.ByNumber(3); !ok || text != "The dog barked" {
				t.Errorf("ByNumber(3): got %q, %v", text, ok)
			}
			if text, ok := c.Sentences.ByNumber(2); ok {
				t.Errorf("expected no sentence numbered 2, got %q", text)
			}
		})
	}
}

func TestMarkdownParser_ByteOrderMark(t *testing.T) {
	input := "\ufeff# Openers\n\n1. Call me Ishmael.\n"
	c, err := (&MarkdownParser{}).Parse(strings.NewReader(input), "bom.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "Openers" {
		t.Errorf("expected title %q, got %q", "Openers", c.Title)
	}
	if text, ok := c.Sentences.ByNumber(1); !ok || text != "Call me Ishmael." {
		t.Errorf("ByNumber(1): got %q, %v", text, ok)
	}
}

func TestMarkdownParser_ParagraphLines(t *testing.T) {
	// Without a space after the period goldmark does not see a list.
	input := "Intro line\n\n1.The cat sat|x\n"
	p := &MarkdownParser{}
	c, err := p.Parse(strings.NewReader(input), "para.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"The cat sat"}, c.Texts()); diff != "" {
		t.Errorf("sentences mismatch (-want +got):\n%s", diff)
	}
	if len(c.Skipped) != 1 || c.Skipped[0].Line != 1 {
		t.Errorf("expected intro line 1 skipped, got %+v", c.Skipped)
	}
}

func TestMarkdownParser_SkipsCodeAndBullets(t *testing.T) {
	input := "```\n1. not a sentence\n```\n\n- bullet\n"
	p := &MarkdownParser{}
	c, err := p.Parse(strings.NewReader(input), "code.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Sentences.Len() != 0 {
		t.Errorf("expected no sentences, got %v", c.Texts())
	}
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	p := &MarkdownParser{}
	c, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", c.Title)
	}
	if c.Sentences.Len() != 0 {
		t.Errorf("expected 0 sentences, got %d", c.Sentences.Len())
	}
}
