package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-translator/internal/application/language"
	"github.com/go-translator/internal/application/translate"
	"github.com/go-translator/internal/domain"
	"github.com/go-translator/internal/transport/http/middleware"
)

const maxTranslateBody = 64 << 10

type TranslateHandler struct {
	svc   translate.Service
	langs language.Service
}

func NewTranslateHandler(svc translate.Service, langs language.Service) *TranslateHandler {
	return &TranslateHandler{svc: svc, langs: langs}
}

func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req domain.TranslateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTranslateBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := h.svc.Translate(r.Context(), middleware.OwnerFromContext(r.Context()), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	display := Display{Mode: DisplayTranslated}
	if item.ToText == "" {
		display.Mode = DisplayIdle
	}
	// The service already validated both codes.
	display.FromLanguage, _ = h.langs.Get(r.Context(), item.FromLanguage)
	display.ToLanguage, _ = h.langs.Get(r.Context(), item.ToLanguage)

	writeJSON(w, http.StatusOK, TranslateEnvelope{Translation: item, Display: display})
}
