package handler

import (
	"errors"
	"net/http"

	"github.com/go-translator/internal/domain"
)

var translationStatus = map[domain.TranslationError]struct {
	status  int
	message string
}{
	domain.ErrServiceNotAvailable: {http.StatusServiceUnavailable, "Couldn't reach the server, please check your internet connection"},
	domain.ErrClientError:         {http.StatusBadRequest, "Couldn't process the text, please try again"},
	domain.ErrServerError:         {http.StatusBadGateway, "A server error occurred, please try again later"},
	domain.ErrUnknownError:        {http.StatusInternalServerError, "An unknown error occurred"},
}

// writeServiceError maps a service error onto a status code and envelope.
func writeServiceError(w http.ResponseWriter, err error) {
	if kind, ok := domain.AsTranslationError(err); ok {
		m := translationStatus[kind]
		writeJSON(w, m.status, MessageEnvelope{
			Error:     m.message,
			ErrorKind: kind.Label(),
			Detail:    kind.Error(),
		})
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
