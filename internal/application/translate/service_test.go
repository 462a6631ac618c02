package translate

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-translator/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockTranslator struct{ mock.Mock }

func (m *mockTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	args := m.Called(ctx, text, from, to)
	return args.String(0), args.Error(1)
}

type mockHistory struct{ mock.Mock }

func (m *mockHistory) Put(ctx context.Context, h *domain.HistoryItem) error {
	return m.Called(ctx, h).Error(0)
}

func newTestService(tr *mockTranslator, h *mockHistory) *service {
	s := NewService(tr, h, zerolog.Nop()).(*service)
	s.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }
	return s
}

// --- tests ---

func TestTranslate_HappyPath(t *testing.T) {
	tr := &mockTranslator{}
	tr.On("Translate", mock.Anything, "  hello ", "en", "de").Return("hallo", nil)
	h := &mockHistory{}
	h.On("Put", mock.Anything, mock.MatchedBy(func(item *domain.HistoryItem) bool {
		return item.OwnerID == "u1" && item.ToText == "hallo" && item.FromText == "hello"
	})).Return(nil)

	item, err := newTestService(tr, h).Translate(context.Background(), "u1", domain.TranslateRequest{Text: "  hello ", From: "EN", To: "de"})
	require.NoError(t, err)
	assert.Equal(t, "en", item.FromLanguage)
	assert.Equal(t, "de", item.ToLanguage)
	assert.NotEmpty(t, item.HistoryID)
	assert.Equal(t, time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC), item.CreatedAt)
	tr.AssertExpectations(t)
	h.AssertExpectations(t)
}

func TestTranslate_ValidationFailure(t *testing.T) {
	_, err := newTestService(&mockTranslator{}, &mockHistory{}).Translate(context.Background(), "u1", domain.TranslateRequest{From: "en", To: "de"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTranslate_UnsupportedLanguage(t *testing.T) {
	_, err := newTestService(&mockTranslator{}, &mockHistory{}).Translate(context.Background(), "u1", domain.TranslateRequest{Text: "x", From: "en", To: "xx"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.ErrorContains(t, err, "unsupported target language")
}

func TestTranslate_BackendFailurePropagatesKind(t *testing.T) {
	for _, kind := range domain.TranslationErrors() {
		tr := &mockTranslator{}
		tr.On("Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", fmt.Errorf("translate en->de: %w", kind))
		h := &mockHistory{}

		_, err := newTestService(tr, h).Translate(context.Background(), "u1", domain.TranslateRequest{Text: "x", From: "en", To: "de"})
		assert.ErrorIs(t, err, kind)
		h.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	}
}

func TestTranslate_HistoryFailureDoesNotFailTranslation(t *testing.T) {
	tr := &mockTranslator{}
	tr.On("Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("hola", nil)
	h := &mockHistory{}
	h.On("Put", mock.Anything, mock.Anything).Return(errors.New("dynamo down"))

	item, err := newTestService(tr, h).Translate(context.Background(), "u1", domain.TranslateRequest{Text: "hi", From: "en", To: "es"})
	require.NoError(t, err)
	assert.Equal(t, "hola", item.ToText)
}

func TestTranslate_BlankTextNeverReachesBackend(t *testing.T) {
	tr := &mockTranslator{}
	h := &mockHistory{}

	_, err := newTestService(tr, h).Translate(context.Background(), "u1", domain.TranslateRequest{Text: "   ", From: "en", To: "de"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	tr.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	h.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}
