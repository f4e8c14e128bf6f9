// Package probe issues minimal HTTP checks against platform profile URLs to
// refine uncertain heuristic verdicts. Probes are rate-limited, cached, and
// skipped entirely on platforms whose status codes cannot be trusted.
package probe

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/handlecheck/pkg/handle"
	"github.com/codeGROOVE-dev/handlecheck/pkg/probecache"
	"github.com/codeGROOVE-dev/handlecheck/pkg/ratelimit"
)

// UserAgent is the standard browser User-Agent string for all probes.
const UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:146.0) Gecko/20100101 Firefox/146.0"

const (
	defaultTimeout = 4 * time.Second

	// DecisiveConfidence is the heuristic confidence at and above which a
	// probe adds nothing worth the budget.
	DecisiveConfidence = 85

	// MaxBatch bounds fresh probes per evaluation pass, so one slow batch
	// costs at most a handful of probe timeouts.
	MaxBatch = 5
)

// Prober issues direct profile probes.
type Prober struct {
	client  *http.Client
	limiter *ratelimit.Window
	cache   *probecache.Cache
	logger  *slog.Logger
}

// Option configures a Prober.
type Option func(*config)

type config struct {
	client *http.Client
	logger *slog.Logger
}

// WithHTTPClient replaces the HTTP client, for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) { c.client = client }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New creates a Prober sharing the given limiter and cache.
func New(limiter *ratelimit.Window, cache *probecache.Cache, opts ...Option) *Prober {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	client := cfg.client
	if client == nil {
		client = &http.Client{
			Timeout: defaultTimeout,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse // redirect-to-login is itself a signal
			},
		}
	}
	return &Prober{
		client:  client,
		limiter: limiter,
		cache:   cache,
		logger:  cfg.logger,
	}
}

// Check probes one handle on one platform. ok is false when this tier has no
// usable signal (unreliable platform, decisive heuristic, exhausted budget,
// or network failure) and the caller should fall back to the prior tier.
func (p *Prober) Check(ctx context.Context, platform handle.Platform, h string, heuristicConfidence int) (handle.ProbeResult, bool) {
	return p.check(ctx, platform, h, heuristicConfidence, true)
}

//nolint:cyclop // the policy steps are a single ordered checklist
func (p *Prober) check(ctx context.Context, platform handle.Platform, h string, heuristicConfidence int, allowNetwork bool) (handle.ProbeResult, bool) {
	if platform.UnreliableOverHTTP() {
		p.logger.Debug("probe skipped: platform unreliable over HTTP", "platform", platform)
		return handle.ProbeResult{}, false
	}
	if heuristicConfidence >= DecisiveConfidence {
		p.logger.Debug("probe skipped: heuristic already decisive",
			"platform", platform, "confidence", heuristicConfidence)
		return handle.ProbeResult{}, false
	}
	if cached, ok := p.cache.Get(platform, h); ok {
		cached.Method = handle.MethodCached
		p.logger.Debug("probe cache hit", "platform", platform, "handle", h)
		return cached, true
	}
	url, ok := platform.ProfileURL(h)
	if !ok {
		return handle.ProbeResult{}, false
	}
	if !allowNetwork || !p.limiter.TryAcquire() {
		p.logger.Debug("probe skipped: rate limit budget exhausted", "platform", platform)
		return handle.ProbeResult{}, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, http.NoBody)
	if err != nil {
		return handle.ProbeResult{}, false
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		// Timeouts and network errors are "no signal", not a guess.
		p.logger.Debug("probe failed", "platform", platform, "url", url, "error", err)
		return handle.ProbeResult{}, false
	}
	_ = resp.Body.Close() //nolint:errcheck // HEAD response, nothing to drain

	p.limiter.Record()

	exists, confidence := interpret(resp.StatusCode, platform)
	result := handle.ProbeResult{
		Exists:     exists,
		Confidence: confidence,
		Method:     handle.MethodHTTPCheck,
		StatusCode: resp.StatusCode,
		CheckedAt:  time.Now(),
	}
	p.cache.Put(platform, h, result)
	p.logger.Debug("probe complete",
		"platform", platform, "handle", h, "status", resp.StatusCode, "exists", exists)
	return result, true
}

// interpret maps a status code to an existence verdict. Unknown codes fail
// safe toward "taken".
func interpret(status int, platform handle.Platform) (exists bool, confidence int) {
	switch status {
	case http.StatusOK:
		return true, 90
	case http.StatusNotFound:
		if platform.ReducedNotFoundTrust() {
			return false, 70
		}
		return false, 80
	case http.StatusMovedPermanently, http.StatusFound, http.StatusForbidden:
		// Redirect-to-login and forbidden pages usually front a real account.
		return true, 85
	default:
		return true, 50
	}
}

// Candidate is one entry in a batch probe request.
type Candidate struct {
	Handle              string
	Platform            handle.Platform
	HeuristicConfidence int
}

// CheckBatch probes the uncertain candidates in order. Fresh network probes
// are capped at min(MaxBatch, free limiter slots); cache hits are free and
// not counted. Probing is sequential so the shared budget accounting stays
// correct.
func (p *Prober) CheckBatch(ctx context.Context, candidates []Candidate) map[handle.Platform]handle.ProbeResult {
	budget := min(MaxBatch, p.limiter.AvailableSlots())

	results := make(map[handle.Platform]handle.ProbeResult)
	var probed int
	for _, c := range candidates {
		if c.HeuristicConfidence >= DecisiveConfidence {
			continue
		}
		result, ok := p.check(ctx, c.Platform, c.Handle, c.HeuristicConfidence, probed < budget)
		if !ok {
			continue
		}
		if result.Method == handle.MethodHTTPCheck {
			probed++
		}
		results[c.Platform] = result
	}
	return results
}
