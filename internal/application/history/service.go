package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-translator/internal/domain"
	"github.com/go-translator/internal/pkg/id"
	"github.com/rs/zerolog"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	exportPageSize  = 100
)

type Service interface {
	List(ctx context.Context, ownerID string, limit int, cursor string) ([]domain.HistoryItem, string, error)
	Get(ctx context.Context, ownerID, historyID string) (*domain.HistoryItem, error)
	Delete(ctx context.Context, ownerID, historyID string) error
	// Export uploads the owner's full history as JSON and returns a presigned link to it.
	Export(ctx context.Context, ownerID string) (*domain.HistoryExport, error)
}

type historyStore interface {
	Get(ctx context.Context, historyID string) (*domain.HistoryItem, error)
	ListByOwner(ctx context.Context, ownerID string, limit int32, cursor string) ([]domain.HistoryItem, string, error)
	Delete(ctx context.Context, historyID string) error
}

type objectStore interface {
	UploadJSON(ctx context.Context, key string, doc []byte) (string, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	repo      historyStore
	objects   objectStore
	exportTTL time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewService(repo historyStore, objects objectStore, exportTTL time.Duration, log zerolog.Logger) Service {
	return &service{repo: repo, objects: objects, exportTTL: exportTTL, log: log, now: time.Now}
}

func (s *service) List(ctx context.Context, ownerID string, limit int, cursor string) ([]domain.HistoryItem, string, error) {
	switch {
	case limit <= 0:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}
	return s.repo.ListByOwner(ctx, ownerID, int32(limit), cursor)
}

// Get hides items owned by someone else behind ErrNotFound.
func (s *service) Get(ctx context.Context, ownerID, historyID string) (*domain.HistoryItem, error) {
	item, err := s.repo.Get(ctx, historyID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, fmt.Errorf("history item not found: %w", domain.ErrNotFound)
	}
	return item, nil
}

func (s *service) Delete(ctx context.Context, ownerID, historyID string) error {
	if _, err := s.Get(ctx, ownerID, historyID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, historyID)
}

func (s *service) Export(ctx context.Context, ownerID string) (*domain.HistoryExport, error) {
	items := []domain.HistoryItem{}
	cursor := ""
	for {
		page, next, err := s.repo.ListByOwner(ctx, ownerID, exportPageSize, cursor)
		if err != nil {
			return nil, fmt.Errorf("read history: %w", err)
		}
		items = append(items, page...)
		if next == "" {
			break
		}
		cursor = next
	}

	doc, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode history export: %w", err)
	}
	now := s.now().UTC()
	key := fmt.Sprintf("exports/%s/%s.json", ownerID, id.NewAt(now))
	if _, err := s.objects.UploadJSON(ctx, key, doc); err != nil {
		return nil, err
	}
	url, err := s.objects.PresignedURL(ctx, key, s.exportTTL)
	if err != nil {
		if delErr := s.objects.Delete(ctx, key); delErr != nil {
			s.log.Warn().Err(delErr).Str("key", key).Msg("could not remove unsigned export")
		}
		return nil, err
	}
	s.log.Info().Str("owner_id", ownerID).Int("items", len(items)).Str("key", key).Msg("history exported")
	return &domain.HistoryExport{
		Key:       key,
		URL:       url,
		Items:     len(items),
		ExpiresAt: now.Add(s.exportTTL),
	}, nil
}
