// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/veldrin/notable2zim/internal/api"
	"github.com/veldrin/notable2zim/internal/apperr"
	"github.com/veldrin/notable2zim/internal/convert"
	"github.com/veldrin/notable2zim/internal/importer"
	"github.com/veldrin/notable2zim/internal/ledger"
	"github.com/veldrin/notable2zim/internal/localtime"
	"github.com/veldrin/notable2zim/internal/storage"
	"github.com/veldrin/notable2zim/internal/watch"
	"github.com/veldrin/notable2zim/internal/zim"
)

// Run starts the application with the given options. The returned error is
// non-nil only for configuration-level failures; a batch that completed
// with per-note failures exits cleanly.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("configuration loaded",
		slog.String("source", cfg.Source.Path),
		slog.String("notebook", cfg.Notebook.Path),
		slog.String("ledger", cfg.Ledger.Path),
		slog.Bool("dry_run", cfg.Import.DryRun),
		slog.Bool("watch", cfg.Import.Watch),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Startup validation: both directories must already exist.
	if err := requireDir(cfg.Source.Path, apperr.ErrSourceDirMissing); err != nil {
		return err
	}
	if err := requireDir(cfg.Notebook.Path, apperr.ErrNotebookDirMissing); err != nil {
		return err
	}

	// Converter availability is a configuration error, checked before any
	// note is touched.
	conv := app.converter
	if conv == nil {
		pandoc := convert.NewPandoc(cfg.Pandoc.Path)
		if err := pandoc.Available(ctx); err != nil {
			return fmt.Errorf("%w: %v", apperr.ErrConverterUnavailable, err)
		}
		conv = pandoc
	}

	store, err := storage.NewFS(cfg.Notebook.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// A dry run must not create the ledger file (or its WAL side files);
	// an in-memory DB still serves the allocator's ownership queries.
	dsn := cfg.Ledger.Path
	if cfg.Import.DryRun {
		dsn = ":memory:"
	}
	reg, err := ledger.Open(dsn)
	if err != nil {
		return fmt.Errorf("init ledger: %w", err)
	}
	defer reg.Close()

	norm := app.location
	if norm == nil {
		norm = localtime.New(nil)
	}

	journal := zim.NewJournal(store, cfg.Notebook.JournalDir, cfg.Notebook.JournalSection, norm)

	imp := importer.New(importer.Config{
		Logger:     logger,
		SourceDir:  cfg.Source.Path,
		Recursive:  cfg.Source.Recursive,
		NotesDir:   cfg.Notebook.NotesDir,
		Store:      store,
		Ledger:     reg,
		Converter:  conv,
		Normalizer: norm,
		Journal:    journal,
		DryRun:     cfg.Import.DryRun,
	})

	if !cfg.Import.Watch {
		_, err := imp.Run(ctx)
		return err
	}

	return runWatch(ctx, cfg, logger, imp)
}

// runWatch runs the importer continuously: one initial pass, then a pass
// after each debounced source change, with an optional status server.
func runWatch(ctx context.Context, cfg *Config, logger *slog.Logger, imp *importer.Importer) error {
	status := api.NewStatus()

	sync := func(ctx context.Context) {
		started := time.Now()
		sum, err := imp.Run(ctx)
		if err != nil {
			logger.Error("import pass failed", slog.String("error", err.Error()))
			return
		}
		status.Set(api.RunStatus{
			StartedAt:  started,
			FinishedAt: time.Now(),
			DryRun:     cfg.Import.DryRun,
			Summary:    sum,
		})
	}
	sync(ctx)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watch.Run(gCtx, cfg.Source.Path, cfg.Source.Recursive, logger, sync)
	})

	var httpServer *http.Server
	if cfg.App.HTTP.Enabled() {
		httpServer = &http.Server{
			Addr:    cfg.App.HTTP.Address(),
			Handler: api.NewRouter(status),
		}
		g.Go(func() error {
			logger.Info("status server starting", slog.String("address", cfg.App.HTTP.Address()))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("status server error: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
		}

		if httpServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("status server shutdown error", slog.String("error", err.Error()))
			}
		}
		return context.Canceled
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("stopped")
	return nil
}

// buildLogger constructs the text logger writing to stderr and, when
// configured, a log file. The returned closer releases the file handle on
// every exit path.
func buildLogger(cfg *Config) (*slog.Logger, func(), error) {
	var out io.Writer = os.Stderr
	closeLog := func() {}

	if cfg.App.LogFile != "" {
		f, err := os.OpenFile(cfg.App.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, f)
		closeLog = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger, closeLog, nil
}

// requireDir fails with the given sentinel when path is not an existing
// directory.
func requireDir(path string, sentinel error) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", sentinel, path)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: not a directory: %s", sentinel, path)
	}
	return nil
}
