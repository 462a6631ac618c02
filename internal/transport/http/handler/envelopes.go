package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-translator/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// TranslateEnvelope wraps a translation result and what the client should render.
type TranslateEnvelope struct {
	Translation *domain.HistoryItem `json:"translation"`
	Display     Display             `json:"display"`
}

// Display mirrors the translation widget: the picked languages and whether a
// result is on screen yet.
type Display struct {
	Mode         string           `json:"mode"`
	FromLanguage *domain.Language `json:"from_language"`
	ToLanguage   *domain.Language `json:"to_language"`
}

const (
	DisplayIdle       = "idle"
	DisplayTranslated = "translated"
)

type LanguagesEnvelope struct {
	Data []domain.Language `json:"data"`
}

// PaginatedHistoryEnvelope wraps cursor-paginated history responses.
type PaginatedHistoryEnvelope struct {
	Data       []domain.HistoryItem `json:"data"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
