package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-translator/internal/domain"
	"github.com/go-translator/internal/pkg/id"
	"github.com/go-translator/internal/pkg/validate"
	"github.com/rs/zerolog"
)

type Service interface {
	// Translate returns the stored history item. Backend failures come back as
	// a wrapped domain.TranslationError.
	Translate(ctx context.Context, ownerID string, req domain.TranslateRequest) (*domain.HistoryItem, error)
}

type translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

type historyStore interface {
	Put(ctx context.Context, h *domain.HistoryItem) error
}

type service struct {
	backend translator
	history historyStore
	log     zerolog.Logger
	now     func() time.Time
}

func NewService(backend translator, history historyStore, log zerolog.Logger) Service {
	return &service{backend: backend, history: history, log: log, now: time.Now}
}

func (s *service) Translate(ctx context.Context, ownerID string, req domain.TranslateRequest) (*domain.HistoryItem, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("field 'text' is blank: %w", domain.ErrValidation)
	}
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrValidation)
	}
	from, err := domain.LanguageByCode(req.From)
	if err != nil {
		return nil, fmt.Errorf("unsupported source language %q: %w", req.From, domain.ErrBadRequest)
	}
	to, err := domain.LanguageByCode(req.To)
	if err != nil {
		return nil, fmt.Errorf("unsupported target language %q: %w", req.To, domain.ErrBadRequest)
	}

	translated, err := s.backend.Translate(ctx, req.Text, from.Code, to.Code)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	item := &domain.HistoryItem{
		HistoryID:    id.NewAt(now),
		OwnerID:      ownerID,
		FromLanguage: from.Code,
		FromText:     strings.TrimSpace(req.Text),
		ToLanguage:   to.Code,
		ToText:       translated,
		CreatedAt:    now,
	}
	// A failed history write does not cost the user their translation.
	if err := s.history.Put(ctx, item); err != nil {
		s.log.Error().Err(err).Str("history_id", item.HistoryID).Msg("could not store translation history")
	}
	return item, nil
}
