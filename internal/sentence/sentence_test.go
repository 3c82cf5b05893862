package sentence

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLine_WithAnnotation(t *testing.T) {
	rec, err := ParseLine("1. Call me Ishmael.|Moby-Dick, Herman Melville")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Number != 1 {
		t.Errorf("expected number 1, got %d", rec.Number)
	}
	// Only the first period separates the number.
	if rec.Text != "Call me Ishmael." {
		t.Errorf("expected %q, got %q", "Call me Ishmael.", rec.Text)
	}
}

func TestParseLine_NoAnnotation(t *testing.T) {
	rec, err := ParseLine("12.   It was a dark and stormy night  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Number != 12 || rec.Text != "It was a dark and stormy night" {
		t.Errorf("unexpected record %+v", rec)
	}
}

func TestParseLine_EmptyText(t *testing.T) {
	rec, err := ParseLine("3. |annotation only")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Text != "" {
		t.Errorf("expected empty text, got %q", rec.Text)
	}
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []string{
		"no delimiter here",
		"abc. not a number",
		"0. zero is not a sequence number",
		"-4. negative",
		". missing number",
	}
	for _, line := range tests {
		_, err := ParseLine(line)
		if !errors.Is(err, ErrMalformedLine) {
			t.Errorf("line %q: expected ErrMalformedLine, got %v", line, err)
		}
	}
}

func TestParseLines_SkipsMalformedAndBlank(t *testing.T) {
	input := "1. The cat sat|A\n\nnot a sentence\n2. The cat ran|B\n   \n3. The dog barked\n"
	set, skipped, err := ParseLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", set.Len())
	}
	if len(skipped) != 1 {
		t.Fatalf("expected 1 skipped line, got %d", len(skipped))
	}
	if skipped[0].Line != 3 {
		t.Errorf("expected skipped line 3, got %d", skipped[0].Line)
	}
	if !errors.Is(skipped[0], ErrMalformedLine) {
		t.Errorf("expected skipped error to wrap ErrMalformedLine, got %v", skipped[0].Err)
	}

	want := []string{"The cat sat", "The cat ran", "The dog barked"}
	got := set.Texts()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("text[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
	if text, ok := set.ByNumber(2); !ok || text != "The cat ran" {
		t.Errorf("ByNumber(2): got %q, %v", text, ok)
	}
}

func TestParseLines_EmptyInput(t *testing.T) {
	set, skipped, err := ParseLines(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != 0 || len(skipped) != 0 {
		t.Errorf("expected nothing parsed, got %d records and %d skipped", set.Len(), len(skipped))
	}
}

func TestParseLines_LeadingByteOrderMark(t *testing.T) {
	input := "\ufeff1. Call me Ishmael.|Moby\n2. It was|x\n"
	set, skipped, err := ParseLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(skipped) != 0 {
		t.Fatalf("expected nothing skipped, got %v", skipped)
	}
	if text, ok := set.ByNumber(1); !ok || text != "Call me Ishmael." {
		t.Errorf("ByNumber(1): got %q, %v", text, ok)
	}
	if set.Len() != 2 {
		t.Errorf("expected 2 records, got %d", set.Len())
	}
}

func TestParseLines_ByteOrderMarkOnlyOnFirstLine(t *testing.T) {
	input := "1. The cat sat\n\ufeff2. The cat ran\n"
	set, skipped, err := ParseLines(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.Len() != 1 || len(skipped) != 1 || skipped[0].Line != 2 {
		t.Errorf("expected line 2 skipped, got %d records and %+v", set.Len(), skipped)
	}
}

func TestSet_DuplicateNumbers(t *testing.T) {
	set := NewSet()
	set.Add(Record{Number: 1, Text: "first"})
	set.Add(Record{Number: 1, Text: "second"})

	if set.Len() != 2 {
		t.Errorf("expected both records kept, got %d", set.Len())
	}
	if text, _ := set.ByNumber(1); text != "second" {
		t.Errorf("expected later record to win lookup, got %q", text)
	}
	if len(set.Index()) != 1 {
		t.Errorf("expected 1 index entry, got %d", len(set.Index()))
	}
}
