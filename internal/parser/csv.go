package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgallion1/wordtree/internal/corpus"
	"github.com/dgallion1/wordtree/internal/sentence"
)

// CSVParser handles CSV files with number,text[,annotation] columns.
// A first row whose number column is not numeric is treated as a header.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*corpus.Corpus, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	c := corpus.New(baseTitle(filename))
	for i, row := range records {
		lineNo := i + 1
		if i == 0 && len(row) > 0 {
			row[0] = strings.TrimPrefix(row[0], sentence.BOM)
		}
		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(row[0]), "."))
		if err != nil && i == 0 {
			continue
		}
		if err != nil || n <= 0 {
			c.Skipped = append(c.Skipped, sentence.LineError{
				Line: lineNo,
				Text: strings.Join(row, ","),
				Err:  fmt.Errorf("%w: invalid sequence number %q", sentence.ErrMalformedLine, row[0]),
			})
			continue
		}
		if len(row) < 2 {
			c.Skipped = append(c.Skipped, sentence.LineError{
				Line: lineNo,
				Text: strings.Join(row, ","),
				Err:  fmt.Errorf("%w: missing sentence column", sentence.ErrMalformedLine),
			})
			continue
		}
		c.AddNumbered(n, row[1])
	}
	return c, nil
}
