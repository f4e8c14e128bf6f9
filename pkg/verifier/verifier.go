// Package verifier wraps a paid third-party handle verification API and
// filters its answers down to the ones actually worth trusting.
package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/codeGROOVE-dev/handlecheck/pkg/handle"
)

// TrustedConfidence is assigned to every verdict that passes the
// reliability filter.
const TrustedConfidence = 95

const (
	defaultTimeout = 5 * time.Second
	retryBudget    = 2 * time.Second
)

// Verdict is one platform's answer from the provider. Untrusted verdicts
// must never be surfaced; the orchestrator discards them.
type Verdict struct {
	Platform   handle.Platform
	Available  bool
	Confidence int
	Trusted    bool
}

// HTTPError represents a non-2xx provider response.
type HTTPError struct {
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

// Client calls the verification provider.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	apiKey     string
	endpoint   string
}

// Option configures a Client.
type Option func(*config)

type config struct {
	client   *http.Client
	logger   *slog.Logger
	endpoint string
}

// WithEndpoint overrides the provider endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *config) { c.endpoint = endpoint }
}

// WithHTTPClient replaces the HTTP client, for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) { c.client = client }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// DefaultEndpoint is the provider's batch availability endpoint.
const DefaultEndpoint = "https://api.handleverify.io/v1/availability"

// New creates a provider client. The API key is required; an empty key means
// the operator has no paid access and this tier should not be constructed.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("verifier: %w", errMissingKey)
	}
	cfg := &config{logger: slog.Default(), endpoint: DefaultEndpoint}
	for _, opt := range opts {
		opt(cfg)
	}
	client := cfg.client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		httpClient: client,
		logger:     cfg.logger,
		apiKey:     apiKey,
		endpoint:   cfg.endpoint,
	}, nil
}

var errMissingKey = errors.New("missing API key")

type apiRequest struct {
	Handle    string   `json:"handle"`
	Platforms []string `json:"platforms"`
}

//nolint:govet // field alignment not critical for JSON parsing
type apiResult struct {
	Platform  string `json:"platform"`
	Available *bool  `json:"available"`
	Status    string `json:"status"`              // "ok", "rate_limited", "server_error"
	Detection string `json:"detection,omitempty"` // provider's own guesswork tag, e.g. "early_http_status"
}

type apiResponse struct {
	Results []apiResult `json:"results"`
}

// Verify asks the provider about one handle across the given platforms.
// The returned slice has one entry per platform the provider answered for;
// omitted platforms mean the provider has no answer. The caller owns the API
// budget; results are not cached here.
func (c *Client) Verify(ctx context.Context, h string, platforms []handle.Platform) ([]Verdict, error) {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = p.String()
	}
	payload, err := json.Marshal(apiRequest{Handle: h, Platforms: names})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	body, err := c.post(ctx, payload)
	if err != nil {
		return nil, err
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	verdicts := make([]Verdict, 0, len(resp.Results))
	for _, r := range resp.Results {
		p, ok := handle.Lookup(r.Platform)
		if !ok {
			continue
		}
		v := Verdict{Platform: p}
		if trustworthy(r) {
			v.Available = *r.Available
			v.Confidence = TrustedConfidence
			v.Trusted = true
		} else {
			c.logger.Debug("discarding untrusted provider verdict",
				"platform", r.Platform, "status", r.Status, "detection", r.Detection)
		}
		verdicts = append(verdicts, v)
	}
	return verdicts, nil
}

// trustworthy applies the reliability filter. A verdict is kept only when
// the provider gave a definite answer from genuine account data: no missing
// value, no rate-limited or errored backend, and no "early detection" tag of
// any kind, since any such tag means the provider itself was guessing from
// surface signals.
func trustworthy(r apiResult) bool {
	if r.Available == nil {
		return false
	}
	switch r.Status {
	case "rate_limited", "server_error":
		return false
	}
	return r.Detection == ""
}

func (c *Client) post(ctx context.Context, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, retryBudget)
	defer cancel()

	return retry.DoWithData(
		func() ([]byte, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
			if err != nil {
				return nil, err
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+c.apiKey)

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close() //nolint:errcheck // intentional

			if resp.StatusCode != http.StatusOK {
				return nil, &HTTPError{StatusCode: resp.StatusCode, URL: c.endpoint}
			}
			return io.ReadAll(resp.Body)
		},
		retry.Context(ctx),
		retry.Attempts(2),                     // single retry
		retry.Delay(200*time.Millisecond),     // delay before retry
		retry.MaxJitter(100*time.Millisecond), // small jitter
		retry.RetryIf(isRetryableError),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("retrying provider request", "attempt", n+1, "error", err)
		}),
	)
}

// isRetryableError returns true for transient errors worth one more attempt.
func isRetryableError(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false // other 4xx errors are permanent
		}
	}
	return true // network errors, timeouts
}
