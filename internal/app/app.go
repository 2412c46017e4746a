package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/config"
	"github.com/five82/storefront/internal/kv"
	"github.com/five82/storefront/internal/state"
	"github.com/five82/storefront/internal/ui"
)

// Options configure the storefront application.
type Options struct {
	ConfigPath string
	Catalog    string // overrides the config file when set
	StatePath  string // overrides the config file when set
}

// Run boots the storefront TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.Apply(config.Override{Catalog: opts.Catalog, StatePath: opts.StatePath})

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	storage, err := kv.Open(cfg.StatePath)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}

	src, err := catalog.NewSource(cfg.Catalog, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init catalog source: %w", err)
	}

	store := state.New(storage)
	logger.Info("storefront starting",
		slog.String("catalog", cfg.Catalog),
		slog.String("state", storage.Path()),
	)

	uiOpts := ui.Options{
		Context:  ctx,
		Store:    store,
		Storage:  storage,
		Logger:   logger,
		PageSize: cfg.PageSize,
		Currency: cfg.Currency,
		Reload: func(done func()) bool {
			return StartLoader(ctx, store, src, logger, done)
		},
	}
	return ui.Run(uiOpts)
}

// openLogger returns a text slog logger writing to cfg.LogPath. The
// terminal belongs to the UI, so nothing is logged to stdout or stderr.
func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if cfg.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return logger, closeFn, nil
}
