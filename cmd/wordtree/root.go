package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dgallion1/wordtree/internal/config"
	"github.com/dgallion1/wordtree/internal/ingest"
	"github.com/dgallion1/wordtree/internal/parser"
	"github.com/dgallion1/wordtree/internal/wordtree"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

type options struct {
	verbose bool
	root    string
	format  string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "wordtree <file>",
		Short: "Build a word tree from numbered sentences",
		Long: `Reads numbered sentences ("<n>. <sentence>|<note>") from a text, markdown,
CSV, HTML, PDF or DOCX file and prints the tree of their leading words,
one word per line, indented one space per level.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVarP(&opts.root, "root", "r", "", "Render only the tree under this first word")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json or paths")
	return cmd
}

func run(cmd *cobra.Command, path string, opts *options, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	builder := ingest.NewBuilder(log, nil, parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext})
	res, err := builder.FromFile(cmd.Context(), path)
	if err != nil {
		return err
	}
	log.Info("loaded sentences", "title", res.Title, "sentences", res.Sentences, "skipped", len(res.Skipped))

	return write(stdout, res.Tree, opts)
}

func write(w io.Writer, tree *wordtree.Tree, opts *options) error {
	switch strings.ToLower(opts.format) {
	case "text", "":
		if opts.root != "" {
			return tree.Render(w, opts.root)
		}
		return tree.RenderAll(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if opts.root == "" {
			return enc.Encode(tree)
		}
		n, ok := tree.Lookup(opts.root)
		if !ok {
			return fmt.Errorf("%w: %q", wordtree.ErrWordNotFound, opts.root)
		}
		return enc.Encode(map[string]*wordtree.Node{opts.root: n})
	case "paths":
		roots := tree.Roots()
		if opts.root != "" {
			roots = []string{opts.root}
		}
		for _, root := range roots {
			paths, err := tree.Paths(root)
			if err != nil {
				return err
			}
			for _, p := range paths {
				if _, err := fmt.Fprintln(w, strings.Join(p, " ")); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}
