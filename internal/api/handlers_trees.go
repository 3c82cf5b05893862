package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/wordtree/internal/parser"
	"github.com/dgallion1/wordtree/internal/sentence"
	"github.com/dgallion1/wordtree/internal/store"
	"github.com/dgallion1/wordtree/internal/wordtree"
	"github.com/go-chi/chi/v5"
)

type treeSummary struct {
	ID          string `json:"tree_id"`
	Title       string `json:"title"`
	Filename    string `json:"filename"`
	ContentHash string `json:"content_hash"`
	Sentences   int    `json:"sentences"`
	Skipped     int    `json:"skipped"`
	Roots       int    `json:"roots"`
	Nodes       int    `json:"nodes"`
	Depth       int    `json:"depth"`
	CreatedAt   string `json:"created_at"`
	RenderURL   string `json:"render_url"`
}

type skippedLine struct {
	Line  int    `json:"line"`
	Text  string `json:"text"`
	Error string `json:"error"`
}

func summarize(e *store.Entry) treeSummary {
	return treeSummary{
		ID:          e.ID,
		Title:       e.Title,
		Filename:    e.Filename,
		ContentHash: e.ContentHash,
		Sentences:   e.Sentences,
		Skipped:     len(e.Skipped),
		Roots:       len(e.Tree.Roots()),
		Nodes:       e.Tree.Size(),
		Depth:       e.Tree.Depth(),
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		RenderURL:   fmt.Sprintf("/api/trees/%s/render", e.ID),
	}
}

func (s *Server) handleCreateTree(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	res, err := s.builder.FromReader(r.Context(), bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	title := res.Title
	if t := r.FormValue("title"); t != "" {
		title = t
	}
	entry := &store.Entry{
		ID:          res.ContentHash[:16],
		Title:       title,
		Filename:    res.Filename,
		ContentHash: res.ContentHash,
		Sentences:   res.Sentences,
		Records:     res.Records,
		Skipped:     res.Skipped,
		Tree:        res.Tree,
	}
	s.trees.Put(entry)
	s.log.Info("tree built", "tree_id", entry.ID, "filename", filename, "sentences", res.Sentences, "skipped", len(res.Skipped))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(summarize(entry))
}

func (s *Server) handleListTrees(w http.ResponseWriter, r *http.Request) {
	trees := []treeSummary{}
	for _, e := range s.trees.List() {
		trees = append(trees, summarize(e))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"trees": trees})
}

func (s *Server) handleGetTree(w http.ResponseWriter, r *http.Request) {
	e := s.lookupTree(w, r)
	if e == nil {
		return
	}
	skipped := make([]skippedLine, 0, len(e.Skipped))
	for _, sl := range e.Skipped {
		skipped = append(skipped, toSkippedLine(sl))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"tree":          summarize(e),
		"roots":         e.Tree.Roots(),
		"sentences":     e.Records,
		"skipped_lines": skipped,
	})
}

func (s *Server) handleDeleteTree(w http.ResponseWriter, r *http.Request) {
	treeID := chi.URLParam(r, "treeID")
	if !s.trees.Delete(treeID) {
		jsonError(w, "tree not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": treeID})
}

// handleRenderTree writes the indented text rendering. Without a word query
// parameter every root is rendered.
func (s *Server) handleRenderTree(w http.ResponseWriter, r *http.Request) {
	e := s.lookupTree(w, r)
	if e == nil {
		return
	}
	var sb strings.Builder
	var err error
	if word := r.URL.Query().Get("word"); word != "" {
		err = e.Tree.Render(&sb, word)
	} else {
		err = e.Tree.RenderAll(&sb)
	}
	if err != nil {
		wordError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, sb.String())
}

func (s *Server) handleTreePaths(w http.ResponseWriter, r *http.Request) {
	e := s.lookupTree(w, r)
	if e == nil {
		return
	}
	word := r.URL.Query().Get("word")
	if word == "" {
		jsonError(w, "word query parameter is required", http.StatusBadRequest)
		return
	}
	paths, err := e.Tree.Paths(word)
	if err != nil {
		wordError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"word": word, "paths": paths})
}

func (s *Server) handleTreeJSON(w http.ResponseWriter, r *http.Request) {
	e := s.lookupTree(w, r)
	if e == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"tree_id": e.ID, "tree": e.Tree})
}

func (s *Server) lookupTree(w http.ResponseWriter, r *http.Request) *store.Entry {
	e := s.trees.Get(chi.URLParam(r, "treeID"))
	if e == nil {
		jsonError(w, "tree not found", http.StatusNotFound)
	}
	return e
}

func wordError(w http.ResponseWriter, err error) {
	if errors.Is(err, wordtree.ErrWordNotFound) {
		jsonError(w, err.Error(), http.StatusNotFound)
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}

func toSkippedLine(sl sentence.LineError) skippedLine {
	msg := ""
	if sl.Err != nil {
		msg = sl.Err.Error()
	}
	return skippedLine{Line: sl.Line, Text: sl.Text, Error: msg}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
