package rest

import (
	"net/http"
	"time"

	"github.com/cours-d-espagnol/castellano"
)

// HealthHandler serves the health check endpoint.
type HealthHandler struct {
	translator *castellano.Translator
	version    string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(t *castellano.Translator, version string) *HealthHandler {
	return &HealthHandler{translator: t, version: version}
}

// HealthResponse is the JSON response for /health.
type HealthResponse struct {
	Status     string         `json:"status"`
	Version    string         `json:"version,omitempty"`
	Vocabulary map[string]int `json:"vocabulary,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Health reports liveness plus the size of the loaded vocabulary.
// The data is validated at startup, so a running server is always ready.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	lex := h.translator.Lexicon()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
		Vocabulary: map[string]int{
			"adjectives": len(lex.Adjectives()),
			"nouns":      len(lex.Nouns()),
			"verbs":      len(lex.ProgressiveVerbs()),
		},
		Timestamp: time.Now(),
	})
}
