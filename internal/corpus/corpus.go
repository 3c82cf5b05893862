package corpus

import (
	"strings"

	"github.com/dgallion1/wordtree/internal/sentence"
)

// Corpus is the set of sentences extracted from one document.
type Corpus struct {
	Title     string               // Document title (from metadata or filename)
	Sentences *sentence.Set        // Parsed records in document order
	Skipped   []sentence.LineError // Lines that could not be parsed
}

// New returns an empty corpus with the given title.
func New(title string) *Corpus {
	return &Corpus{
		Title:     title,
		Sentences: sentence.NewSet(),
	}
}

// AddLine parses a "<number>. <text>|<annotation>" line. Blank lines are
// ignored and malformed ones are recorded in Skipped.
func (c *Corpus) AddLine(lineNo int, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	rec, err := sentence.ParseLine(line)
	if err != nil {
		c.Skipped = append(c.Skipped, sentence.LineError{Line: lineNo, Text: line, Err: err})
		return
	}
	c.Sentences.Add(rec)
}

// AddNumbered adds a sentence whose number came from document structure,
// such as an ordered list item. The annotation is stripped from text.
func (c *Corpus) AddNumbered(number int, text string) {
	c.Sentences.Add(sentence.Record{Number: number, Text: sentence.StripAnnotation(text)})
}

// Texts returns sentence texts in document order.
func (c *Corpus) Texts() []string {
	return c.Sentences.Texts()
}
