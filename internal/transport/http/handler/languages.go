package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-translator/internal/application/language"
)

type LanguageHandler struct{ svc language.Service }

func NewLanguageHandler(svc language.Service) *LanguageHandler {
	return &LanguageHandler{svc: svc}
}

func (h *LanguageHandler) List(w http.ResponseWriter, r *http.Request) {
	langs, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LanguagesEnvelope{Data: langs})
}

func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	lang, err := h.svc.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lang)
}
