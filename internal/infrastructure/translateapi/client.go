package translateapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-translator/internal/config"
	"github.com/go-translator/internal/domain"
	"github.com/rs/zerolog"
)

type translateBody struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResult struct {
	TranslatedText *string `json:"translatedText"`
}

// Client talks to a LibreTranslate-compatible /translate endpoint and reports
// failures as domain.TranslationError values.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.TranslateAPIURL,
		apiKey:  cfg.TranslateAPIKey,
		http:    &http.Client{Timeout: cfg.TranslateTimeout},
		log:     log,
	}
}

// NewClientWithHTTP is used by tests to point the client at an httptest server.
func NewClientWithHTTP(baseURL string, hc *http.Client, log zerolog.Logger) *Client {
	return &Client{baseURL: baseURL, http: hc, log: log}
}

func (c *Client) Translate(ctx context.Context, text, from, to string) (string, error) {
	payload, err := json.Marshal(translateBody{Q: text, Source: from, Target: to, APIKey: c.apiKey})
	if err != nil {
		return "", c.fail(from, to, 0, domain.ErrUnknownError, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(payload))
	if err != nil {
		return "", c.fail(from, to, 0, domain.ErrUnknownError, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", c.fail(from, to, 0, domain.ErrServiceNotAvailable, err)
	}
	defer resp.Body.Close()

	if kind := classifyStatus(resp.StatusCode); kind != nil {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		return "", c.fail(from, to, resp.StatusCode, kind, fmt.Errorf("upstream: %s", bytes.TrimSpace(body)))
	}

	var result translateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", c.fail(from, to, resp.StatusCode, domain.ErrServerError, err)
	}
	if result.TranslatedText == nil {
		return "", c.fail(from, to, resp.StatusCode, domain.ErrServerError, errors.New("missing translatedText"))
	}

	c.log.Debug().
		Str("from", from).Str("to", to).
		Dur("took", time.Since(start)).
		Msg("translated")
	return *result.TranslatedText, nil
}

// classifyStatus returns nil for 200 and the failure kind for everything else.
func classifyStatus(status int) domain.TranslationError {
	switch {
	case status == http.StatusOK:
		return nil
	case status >= 400 && status <= 499:
		return domain.ErrClientError
	case status >= 500 && status <= 599:
		return domain.ErrServerError
	default:
		return domain.ErrUnknownError
	}
}

func (c *Client) fail(from, to string, status int, kind domain.TranslationError, cause error) error {
	ev := c.log.Warn().
		Str("from", from).Str("to", to).
		Str("kind", kind.Label()).
		AnErr("cause", cause)
	if status != 0 {
		ev = ev.Int("status", status)
	}
	ev.Msg("translation failed")
	return fmt.Errorf("translate %s->%s: %w", from, to, kind)
}
