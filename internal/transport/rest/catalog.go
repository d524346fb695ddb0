package rest

import (
	"net/http"

	"github.com/cours-d-espagnol/castellano"
)

// CatalogHandler lists what the translator understands.
type CatalogHandler struct {
	translator *castellano.Translator
}

type patternJSON struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

type patternsResponse struct {
	Patterns []patternJSON `json:"patterns"`
}

type lexiconResponse struct {
	Adjectives []castellano.Adjective       `json:"adjectives"`
	Nouns      []castellano.Noun            `json:"nouns"`
	Verbs      []castellano.ProgressiveVerb `json:"verbs"`
}

// Patterns returns the rules in the order they are tried.
func (h *CatalogHandler) Patterns(w http.ResponseWriter, _ *http.Request) {
	rules := h.translator.Rules()
	out := make([]patternJSON, 0, len(rules))
	for _, r := range rules {
		out = append(out, patternJSON{Name: r.Name, Description: r.Description, Examples: r.Examples})
	}
	writeJSON(w, http.StatusOK, patternsResponse{Patterns: out})
}

// Lexicon returns the whole vocabulary.
func (h *CatalogHandler) Lexicon(w http.ResponseWriter, _ *http.Request) {
	lex := h.translator.Lexicon()
	writeJSON(w, http.StatusOK, lexiconResponse{
		Adjectives: lex.Adjectives(),
		Nouns:      lex.Nouns(),
		Verbs:      lex.ProgressiveVerbs(),
	})
}
