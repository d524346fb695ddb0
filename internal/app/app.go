package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/cours-d-espagnol/castellano"
	"github.com/cours-d-espagnol/castellano/internal/config"
	"github.com/cours-d-espagnol/castellano/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, initializes the
// logger and the translator, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("lexicon_dir", cfg.Lexicon.DataDir),
	)

	return Serve(ctx, cfg, logger, nil)
}

// Serve builds the translator and HTTP server from cfg and blocks until
// ctx is cancelled or the server fails. When ready is non-nil it receives
// the bound address once the listener is open.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, ready chan<- string) error {
	translator, err := castellano.New(cfg.Lexicon.DataDir, castellano.WithLogger(logger))
	if err != nil {
		return err
	}

	router := rest.NewRouter(rest.RouterDeps{
		Translator: translator,
		Health:     rest.NewHealthHandler(translator, Version),
		CORS:       cfg.CORS,
		Defaults:   cfg.Defaults,
		MaxBody:    cfg.Server.MaxBodyBytes,
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}
	logger.Info("http server listening", slog.String("addr", ln.Addr().String()))
	if ready != nil {
		ready <- ln.Addr().String()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
