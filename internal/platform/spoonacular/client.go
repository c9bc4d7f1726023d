// Package spoonacular builds recipe API queries and executes them.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/coolpotato/backend/internal/apperrors"
	"github.com/coolpotato/backend/internal/logger"
)

const (
	DefaultBaseURL = "https://api.spoonacular.com"
	DefaultTimeout = 8 * time.Second

	maxBodySnippet = 256
	maxBodyBytes   = 10 << 20
)

// Config holds the client settings. RequestsPerSecond of 0 disables the
// outbound limiter.
type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Client executes queries against the recipe API.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client. The API key is bound here and never leaves it.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
	}
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return c
}

// Do runs q and returns the response body verbatim. Every failure is an
// UpstreamRecipeAPI error whose message carries neither the key nor the URL.
func (c *Client) Do(ctx context.Context, q Query) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, apperrors.UpstreamRecipeAPI(fmt.Errorf("%s: throttled: %w", q.Path, err))
		}
	}

	params := cloneParams(q)
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+q.Path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperrors.UpstreamRecipeAPI(fmt.Errorf("%s: build request", q.Path))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error embeds the full URL, so only the path and the inner
		// cause are kept.
		return nil, apperrors.UpstreamRecipeAPI(fmt.Errorf("%s: %w", q.Path, unwrapURLError(err)))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.UpstreamRecipeAPI(fmt.Errorf("%s: read body: %w", q.Path, err))
	}

	logger.Debug("recipe api call",
		zap.String("path", q.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.UpstreamRecipeAPI(fmt.Errorf("%s: status %d", q.Path, resp.StatusCode)).
			WithContext("status", resp.StatusCode).
			WithContext("body", snippet(body, c.apiKey))
	}
	if !json.Valid(body) {
		return nil, apperrors.UpstreamRecipeAPI(fmt.Errorf("%s: invalid json body", q.Path)).
			WithContext("status", resp.StatusCode)
	}
	return json.RawMessage(body), nil
}

func cloneParams(q Query) url.Values {
	out := make(url.Values, len(q.Params)+1)
	for k, v := range q.Params {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func unwrapURLError(err error) error {
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		if inner := u.Unwrap(); inner != nil {
			return inner
		}
	}
	return err
}

func snippet(body []byte, secret string) string {
	s := string(body)
	if secret != "" {
		s = strings.ReplaceAll(s, secret, "***")
	}
	if len(s) > maxBodySnippet {
		s = s[:maxBodySnippet]
	}
	return s
}
