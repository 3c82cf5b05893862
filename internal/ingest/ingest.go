package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dgallion1/wordtree/internal/parser"
	"github.com/dgallion1/wordtree/internal/sentence"
	"github.com/dgallion1/wordtree/internal/stats"
	"github.com/dgallion1/wordtree/internal/wordtree"
)

// ErrOpenInput is returned when the input file cannot be opened.
var ErrOpenInput = errors.New("open input")

// Result is a built tree together with what went into it.
type Result struct {
	Title       string
	Filename    string
	ContentHash string
	Sentences   int
	Records     []sentence.Record
	Skipped     []sentence.LineError
	Tree        *wordtree.Tree
	Duration    time.Duration
}

// Builder turns documents into word trees.
type Builder struct {
	log   *slog.Logger
	stats *stats.Recorder
	opts  parser.Options
}

// NewBuilder returns a Builder. rec may be nil.
func NewBuilder(log *slog.Logger, rec *stats.Recorder, opts parser.Options) *Builder {
	return &Builder{log: log, stats: rec, opts: opts}
}

// FromFile builds a tree from the file at path.
func (b *Builder) FromFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}
	defer f.Close()
	return b.FromReader(ctx, f, filepath.Base(path))
}

// FromReader builds a tree from r, choosing the parser by filename.
func (b *Builder) FromReader(ctx context.Context, r io.Reader, filename string) (*Result, error) {
	log := b.log.With("filename", filename)
	start := time.Now()

	p, err := parser.ForFile(filename, b.opts)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	for _, s := range c.Skipped {
		log.Warn("skipping malformed line", "line", s.Line, "text", s.Text, "error", s.Err)
	}

	tree := wordtree.Build(c.Texts())
	elapsed := time.Since(start)
	if b.stats != nil {
		b.stats.Observe(elapsed)
	}

	res := &Result{
		Title:       c.Title,
		Filename:    filename,
		ContentHash: ContentHashHex(data),
		Sentences:   c.Sentences.Len(),
		Records:     c.Sentences.Records(),
		Skipped:     c.Skipped,
		Tree:        tree,
		Duration:    elapsed,
	}
	log.Debug("built tree",
		"sentences", res.Sentences,
		"skipped", len(res.Skipped),
		"roots", len(tree.Roots()),
		"nodes", tree.Size(),
		"duration", elapsed,
	)
	return res, nil
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
