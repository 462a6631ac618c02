package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationError_Messages(t *testing.T) {
	cases := []struct {
		err  TranslationError
		want string
	}{
		{ServiceNotAvailable{}, "An error occurred when translating: ServiceUnavailable"},
		{ClientError{}, "An error occurred when translating: ClientError"},
		{ServerError{}, "An error occurred when translating: ServerError"},
		{UnknownError{}, "An error occurred when translating: UnknownError"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.err.Error())
	}
}

func TestTranslationError_ServiceNotAvailableLabel(t *testing.T) {
	assert.Equal(t, "ServiceUnavailable", ServiceNotAvailable{}.Label())
}

func TestTranslationError_IsMatchesWrappedValue(t *testing.T) {
	err := fmt.Errorf("translate: %w", ServerError{})
	assert.ErrorIs(t, err, ErrServerError)
	assert.NotErrorIs(t, err, ErrClientError)
	assert.NotErrorIs(t, err, ErrUnknownError)
}

func TestAsTranslationError(t *testing.T) {
	te, ok := AsTranslationError(fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ClientError{})))
	require.True(t, ok)
	assert.Equal(t, ErrClientError, te)

	_, ok = AsTranslationError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = AsTranslationError(nil)
	assert.False(t, ok)
}

func TestTranslationErrors_TypeSwitchIsExhaustive(t *testing.T) {
	seen := map[string]bool{}
	for _, te := range TranslationErrors() {
		switch te.(type) {
		case ServiceNotAvailable, ClientError, ServerError, UnknownError:
			seen[te.Label()] = true
		default:
			t.Fatalf("unexpected variant %T", te)
		}
	}
	assert.Len(t, seen, 4)
}
