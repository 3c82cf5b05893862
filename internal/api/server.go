package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/wordtree/internal/config"
	"github.com/dgallion1/wordtree/internal/ingest"
	"github.com/dgallion1/wordtree/internal/stats"
	"github.com/dgallion1/wordtree/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for wordtree.
type Server struct {
	router  chi.Router
	builder *ingest.Builder
	trees   *store.Store
	stats   *stats.Recorder
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(builder *ingest.Builder, trees *store.Store, rec *stats.Recorder, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		builder: builder,
		trees:   trees,
		stats:   rec,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/trees", s.handleCreateTree)
		r.Get("/trees", s.handleListTrees)
		r.Route("/trees/{treeID}", func(r chi.Router) {
			r.Get("/", s.handleGetTree)
			r.Delete("/", s.handleDeleteTree)
			r.Get("/render", s.handleRenderTree)
			r.Get("/paths", s.handleTreePaths)
			r.Get("/json", s.handleTreeJSON)
		})
		r.Get("/stats/builds", s.handleBuildStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
