package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cours-d-espagnol/castellano"
	"github.com/cours-d-espagnol/castellano/internal/config"
)

// TranslateHandler serves POST /api/translate.
type TranslateHandler struct {
	translator *castellano.Translator
	defaults   config.DefaultsConfig
	maxBody    int64
	logger     *slog.Logger
}

// translateRequest carries the five fields the learner fills in.
// Empty options fall back to the configured defaults.
type translateRequest struct {
	Text          string `json:"text"`
	Dialect       string `json:"dialect"`
	Mode          string `json:"mode"`
	SpeakerGender string `json:"speaker_gender"`
	YouForm       string `json:"you_form"`
}

// Translate decodes the request, validates every option into its
// enumeration and returns the translator's result. Unsupported sentences
// and unknown words are reported inside the result with status 200;
// only malformed requests get 4xx.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var body translateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		writeError(w, http.StatusBadRequest, "Type a sentence first.")
		return
	}

	req, err := castellano.NewRequest(
		body.Text,
		orDefault(body.Dialect, h.defaults.Dialect),
		orDefault(body.Mode, h.defaults.Mode),
		orDefault(body.SpeakerGender, h.defaults.SpeakerGender),
		orDefault(body.YouForm, h.defaults.YouForm),
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := h.translator.Translate(req)
	h.logger.DebugContext(r.Context(), "translated",
		slog.String("dialect", req.Dialect.String()),
		slog.String("mode", req.Mode.String()),
		slog.Bool("ok", res.OK()),
	)
	writeJSON(w, http.StatusOK, res)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
