// Command gemdown converts Gemtext to CommonMark Markdown.
//
// With no arguments it runs as a pipeline filter: Gemtext on stdin,
// Markdown on stdout. "gemdown serve" starts the HTTP conversion service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/gemdown/internal/api"
	"github.com/dgallion1/gemdown/internal/config"
	"github.com/dgallion1/gemdown/internal/docstore"
	"github.com/dgallion1/gemdown/internal/gemtext"
	"github.com/dgallion1/gemdown/internal/pipeline"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		runServe()
		return
	}
	runFilter()
}

// runFilter is the classic commandline mode: stdin to stdout, one rendered
// block at a time. Any malformed line or read failure prints a single
// diagnostic and exits non-zero.
func runFilter() {
	if err := gemtext.Convert(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "gemdown: %s\n", err)
		os.Exit(1)
	}
}

func runServe() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The document store is optional; without it conversions stay in memory
	// on their jobs.
	var store *docstore.Client
	if cfg.DocstoreURL != "" {
		store = docstore.NewClient(cfg.DocstoreURL, cfg.DocstoreAPIKey)
	}

	orch := pipeline.NewOrchestrator(cfg, store, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if store != nil {
			store.Close()
		}
	}()

	log.Info("starting gemdown", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
