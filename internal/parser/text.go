package parser

import (
	"io"

	"github.com/dgallion1/wordtree/internal/corpus"
	"github.com/dgallion1/wordtree/internal/sentence"
)

// TextParser handles plain "<number>. <text>|<annotation>" files.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*corpus.Corpus, error) {
	set, skipped, err := sentence.ParseLines(r)
	if err != nil {
		return nil, err
	}
	c := corpus.New(baseTitle(filename))
	c.Sentences = set
	c.Skipped = skipped
	return c, nil
}
