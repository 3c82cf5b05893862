package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/wordtree/internal/ingest"
	"github.com/dgallion1/wordtree/internal/wordtree"
)

const openers = `1. The cat sat|first
2. The cat ran|second
3. The dog barked|third
4. Call me Ishmael.|Moby-Dick
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("WORDTREE_CONFIG", "")
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeOpeners(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openers.txt")
	if err := os.WriteFile(path, []byte(openers), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRoot_RenderAll(t *testing.T) {
	out, _, err := execute(t, writeOpeners(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "The\n cat\n  sat\n  ran\n dog\n  barked\nCall\n me\n  Ishmael.\n"
	if out != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, out)
	}
}

func TestRoot_RenderOneRoot(t *testing.T) {
	out, _, err := execute(t, "--root", "Call", writeOpeners(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Call\n me\n  Ishmael.\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRoot_UnknownRoot(t *testing.T) {
	out, stderr, err := execute(t, "-r", "Nobody", writeOpeners(t))
	if !errors.Is(err, wordtree.ErrWordNotFound) {
		t.Fatalf("expected ErrWordNotFound, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
	if !strings.Contains(stderr, "word not found") {
		t.Errorf("expected error on stderr, got %q", stderr)
	}
}

func TestRoot_MissingFile(t *testing.T) {
	_, _, err := execute(t, filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ingest.ErrOpenInput) {
		t.Errorf("expected ErrOpenInput, got %v", err)
	}
}

func TestRoot_RequiresOneArg(t *testing.T) {
	if _, _, err := execute(t); err == nil {
		t.Error("expected error without file argument")
	}
}

func TestRoot_PathsFormat(t *testing.T) {
	out, _, err := execute(t, "--format", "paths", "-r", "The", writeOpeners(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "The cat sat\nThe cat ran\nThe dog barked\n"
	if out != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, out)
	}
}

func TestRoot_JSONFormat(t *testing.T) {
	out, _, err := execute(t, "-f", "json", "-r", "Call", writeOpeners(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"Ishmael."`) || strings.Contains(out, `"The"`) {
		t.Errorf("unexpected json output %s", out)
	}
}

func TestRoot_UnknownFormat(t *testing.T) {
	if _, _, err := execute(t, "-f", "xml", writeOpeners(t)); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRoot_Version(t *testing.T) {
	out, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, version) {
		t.Errorf("expected version in output, got %q", out)
	}
}

func TestRoot_VerboseLogsSkippedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	os.WriteFile(path, []byte("no number here\n1. The end\n"), 0o600)

	_, stderr, err := execute(t, "-v", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "skipping malformed line") {
		t.Errorf("expected skip warning on stderr, got %q", stderr)
	}
}
