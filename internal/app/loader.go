package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/state"
)

// StartLoader launches a background catalog load into store. It returns
// false without starting anything when a load is already in flight. done,
// if non-nil, is called after the store has been updated.
func StartLoader(ctx context.Context, store *state.Store, src catalog.Source, logger *slog.Logger, done func()) bool {
	if !store.BeginLoad() {
		logger.Debug("catalog load already in flight")
		return false
	}
	go func() {
		load(ctx, store, src, logger)
		if done != nil {
			done()
		}
	}()
	return true
}

func load(ctx context.Context, store *state.Store, src catalog.Source, logger *slog.Logger) {
	started := time.Now()
	logger.Info("catalog load started")

	items, err := src.FetchCatalog(ctx)
	store.FinishLoad(items, err)
	if err != nil {
		logger.Error("catalog load failed", slog.Any("err", err), slog.Duration("elapsed", time.Since(started)))
		return
	}
	logger.Info("catalog loaded", slog.Int("products", len(items)), slog.Duration("elapsed", time.Since(started)))
}
