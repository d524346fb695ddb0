// Package rest exposes the translator as a JSON REST API.
//
// Endpoints:
//
//	POST /api/translate   body: {"text":"...","dialect":"mx","mode":"translate","speaker_gender":"m","you_form":"tu"}
//	GET  /api/patterns
//	GET  /api/lexicon
//	GET  /health
package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/cours-d-espagnol/castellano"
	"github.com/cours-d-espagnol/castellano/internal/config"
	"github.com/cours-d-espagnol/castellano/internal/transport/middleware"
)

// RouterDeps collects what NewRouter needs.
type RouterDeps struct {
	Translator *castellano.Translator
	Health     *HealthHandler
	CORS       config.CORSConfig
	Defaults   config.DefaultsConfig
	// MaxBody caps request bodies in bytes; zero means 16 KiB.
	MaxBody int64
	Logger  *slog.Logger
}

// NewRouter wires handlers and middleware into a chi router.
func NewRouter(deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxBody := deps.MaxBody
	if maxBody <= 0 {
		maxBody = 16 << 10
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   deps.CORS.Origins(),
		AllowedMethods:   deps.CORS.Methods(),
		AllowedHeaders:   deps.CORS.Headers(),
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: deps.CORS.AllowCredentials,
		MaxAge:           deps.CORS.MaxAge,
	})

	h := &TranslateHandler{
		translator: deps.Translator,
		defaults:   deps.Defaults,
		maxBody:    maxBody,
		logger:     logger,
	}
	catalog := &CatalogHandler{translator: deps.Translator}

	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(c.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/translate", h.Translate)
		r.Get("/patterns", catalog.Patterns)
		r.Get("/lexicon", catalog.Lexicon)
	})
	if deps.Health != nil {
		r.Get("/health", deps.Health.Health)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}
