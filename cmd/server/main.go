// Command server exposes the English→Spanish pattern translator as a JSON
// REST API.
//
// Endpoints:
//
//	POST /api/translate   body: {"text":"...","dialect":"mx","mode":"translate","speaker_gender":"m","you_form":"tu"}
//	GET  /api/patterns
//	GET  /api/lexicon
//	GET  /health
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// see internal/config.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cours-d-espagnol/castellano/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}
