package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/wordtree/internal/api"
	"github.com/dgallion1/wordtree/internal/config"
	"github.com/dgallion1/wordtree/internal/ingest"
	"github.com/dgallion1/wordtree/internal/parser"
	"github.com/dgallion1/wordtree/internal/stats"
	"github.com/dgallion1/wordtree/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := stats.NewRecorder(cfg.StatsWindow)
	builder := ingest.NewBuilder(log, rec, parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext})

	trees := store.New(cfg.TreeTTL, cfg.MaxTrees)
	trees.StartJanitor(ctx, cfg.CleanupEvery)

	srv := api.NewServer(builder, trees, rec, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		trees.Stop()
	}()

	log.Info("starting wordtree server", "port", cfg.Port, "auth", cfg.APIKey != "")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
