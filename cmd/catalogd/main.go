// Command catalogd serves a product catalog JSON file over HTTP for the
// storefront TUI.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/five82/storefront/internal/catalog"
)

const (
	addrFlag     = "addr"
	catalogFlag  = "catalog"
	logLevelFlag = "log-level"
)

func main() {
	os.Exit(run())
}

func run() int {
	addr := pflag.StringP(addrFlag, "a", "127.0.0.1:8080", "listen address")
	catalogPath := pflag.StringP(catalogFlag, "f", "products.json", "catalog JSON file to serve")
	levelName := pflag.String(logLevelFlag, "info", "log level (debug, info, warn, error)")
	pflag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*levelName)); err != nil {
		fmt.Fprintf(os.Stderr, "catalogd: --%s: %v\n", logLevelFlag, err)
		return 2
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if _, err := os.Stat(*catalogPath); err != nil {
		logger.Error("catalog file unavailable", slog.String("path", *catalogPath), slog.Any("err", err))
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{
		Addr:              *addr,
		Handler:           http.TimeoutHandler(catalog.NewHandler(*catalogPath, logger), 5*time.Second, "unavailable"),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("catalogd listening", slog.String("addr", *addr), slog.String("catalog", *catalogPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", slog.Any("err", err))
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	logger.Info("catalogd shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown gracefully", slog.Any("err", err))
		return 1
	}
	logger.Info("catalogd stopped")
	return 0
}
