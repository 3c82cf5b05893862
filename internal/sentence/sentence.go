package sentence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine is returned for lines that do not have the
// "<number>. <text>|<annotation>" shape.
var ErrMalformedLine = errors.New("malformed sentence line")

// BOM is the UTF-8 byte order mark some editors write at the start of a file.
const BOM = "\ufeff"

// Record is one numbered sentence.
type Record struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// LineError describes a line that was skipped during parsing.
type LineError struct {
	Line int    `json:"line"`
	Text string `json:"text"`
	Err  error  `json:"-"`
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// ParseLine parses a single "<number>. <text>|<annotation>" line.
// Everything from the first pipe on is discarded.
func ParseLine(line string) (Record, error) {
	numPart, rest, ok := strings.Cut(line, ".")
	if !ok {
		return Record{}, fmt.Errorf("%w: no number delimiter", ErrMalformedLine)
	}
	n, err := strconv.Atoi(strings.TrimSpace(numPart))
	if err != nil || n <= 0 {
		return Record{}, fmt.Errorf("%w: invalid sequence number %q", ErrMalformedLine, strings.TrimSpace(numPart))
	}
	return Record{Number: n, Text: StripAnnotation(rest)}, nil
}

// StripAnnotation drops a trailing "|annotation" and trims whitespace.
func StripAnnotation(s string) string {
	text, _, _ := strings.Cut(s, "|")
	return strings.TrimSpace(text)
}

// ParseLines reads r line by line. A leading byte order mark is dropped,
// blank lines are ignored and malformed lines are skipped and returned as
// LineErrors.
func ParseLines(r io.Reader) (*Set, []LineError, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	set := NewSet()
	var skipped []LineError
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, BOM)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			skipped = append(skipped, LineError{Line: lineNo, Text: line, Err: err})
			continue
		}
		set.Add(rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return set, skipped, nil
}
