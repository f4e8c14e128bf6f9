// Package checker provides a unified API for evaluating social handle
// availability across platforms.
//
// Every evaluation starts from the offline heuristic tier, which is always
// available. When the operator has paid provider access, trusted provider
// verdicts replace heuristic ones outright. Platforms still uncertain after
// that are refined with direct rate-limited probes. Each tier degrades
// silently to the one below it; the heuristic floor means an evaluation
// never fails for network reasons.
//
// Basic usage:
//
//	c := checker.New()
//	result, err := c.Check(ctx, "myhandle")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, v := range result.Verdicts {
//	    fmt.Println(v.Platform, v.Available, v.Confidence)
//	}
package checker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/handlecheck/pkg/handle"
	"github.com/codeGROOVE-dev/handlecheck/pkg/heuristic"
	"github.com/codeGROOVE-dev/handlecheck/pkg/probe"
	"github.com/codeGROOVE-dev/handlecheck/pkg/probecache"
	"github.com/codeGROOVE-dev/handlecheck/pkg/ratelimit"
	"github.com/codeGROOVE-dev/handlecheck/pkg/verifier"
)

// DefaultRefineThreshold is the confidence below which a heuristic verdict
// is worth refining with a probe. Empirically chosen; tune via option.
const DefaultRefineThreshold = 85

// Verifier is the third-party verification tier. Implemented by
// *verifier.Client; a nil Verifier skips the tier entirely.
type Verifier interface {
	Verify(ctx context.Context, h string, platforms []handle.Platform) ([]verifier.Verdict, error)
}

// Prober is the direct probe tier. Implemented by *probe.Prober.
type Prober interface {
	CheckBatch(ctx context.Context, candidates []probe.Candidate) map[handle.Platform]handle.ProbeResult
}

// Checker evaluates handle availability.
type Checker struct {
	verifier    Verifier
	prober      Prober
	logger      *slog.Logger
	threshold   int
	suggestions bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithVerifier enables the third-party verification tier.
func WithVerifier(v Verifier) Option {
	return func(c *Checker) { c.verifier = v }
}

// WithProber replaces the direct probe tier.
func WithProber(p Prober) Option {
	return func(c *Checker) { c.prober = p }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) { c.logger = logger }
}

// WithRefineThreshold sets the heuristic confidence below which probes are
// attempted.
func WithRefineThreshold(threshold int) Option {
	return func(c *Checker) { c.threshold = threshold }
}

// WithSuggestions enables offline alternative-handle suggestions on verdicts
// that come back taken.
func WithSuggestions() Option {
	return func(c *Checker) { c.suggestions = true }
}

// New creates a Checker. Without options it runs heuristics plus direct
// probes with default rate limiting (10 probes / 60s) and a 24h probe cache.
func New(opts ...Option) *Checker {
	c := &Checker{
		logger:    slog.Default(),
		threshold: DefaultRefineThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.prober == nil {
		limiter := ratelimit.New(ratelimit.DefaultCapacity, ratelimit.DefaultWindow)
		cache := probecache.New(probecache.DefaultTTL)
		c.prober = probe.New(limiter, cache, probe.WithLogger(c.logger))
	}
	return c
}

// Check evaluates baseHandle on the given platforms (all supported platforms
// when none are given) and aggregates a single availability score.
func (c *Checker) Check(ctx context.Context, baseHandle string, platforms ...handle.Platform) (*handle.AggregateResult, error) {
	if !handle.Valid(baseHandle) {
		return nil, fmt.Errorf("%w: %q", handle.ErrInvalidHandle, baseHandle)
	}
	if len(platforms) == 0 {
		platforms = handle.All()
	}
	for _, p := range platforms {
		if !handle.Supported(p) {
			return nil, fmt.Errorf("%w: %q", handle.ErrUnsupportedPlatform, p)
		}
	}
	platforms = priorityOrder(platforms)

	start := time.Now()

	// Tier 1: heuristics for every platform, before any network call.
	heuristics := make(map[handle.Platform]heuristic.Verdict, len(platforms))
	for _, p := range platforms {
		heuristics[p] = heuristic.Evaluate(baseHandle, p)
	}

	// Tier 3: one batched provider call when configured. Failure here is a
	// designed degradation path, not an error.
	trusted := make(map[handle.Platform]verifier.Verdict)
	if c.verifier != nil {
		verdicts, err := c.verifier.Verify(ctx, baseHandle, registrable(baseHandle, platforms))
		if err != nil {
			c.logger.Warn("verifier unavailable, falling back", "error", err)
		} else {
			for _, v := range verdicts {
				if v.Trusted {
					trusted[v.Platform] = v
				}
			}
		}
	}

	// Tier 2: direct probes for platforms still uncertain.
	var candidates []probe.Candidate
	for _, p := range platforms {
		if _, ok := trusted[p]; ok {
			continue
		}
		if !p.ValidFor(baseHandle) {
			continue
		}
		if hv := heuristics[p]; hv.Confidence < c.threshold {
			candidates = append(candidates, probe.Candidate{
				Platform:            p,
				Handle:              baseHandle,
				HeuristicConfidence: hv.Confidence,
			})
		}
	}
	probes := make(map[handle.Platform]handle.ProbeResult)
	if len(candidates) > 0 {
		probes = c.prober.CheckBatch(ctx, candidates)
	}

	verdicts := make([]handle.PlatformVerdict, 0, len(platforms))
	var available int
	for _, p := range platforms {
		var tv *verifier.Verdict
		if v, ok := trusted[p]; ok {
			tv = &v
		}
		var pr *handle.ProbeResult
		if r, ok := probes[p]; ok {
			pr = &r
		}
		v := merge(p, baseHandle, heuristics[p], tv, pr)
		if c.suggestions && !v.Available {
			v.Suggestions = heuristic.Suggest(baseHandle, p)
		}
		if v.Available {
			available++
		}
		verdicts = append(verdicts, v)
	}

	result := &handle.AggregateResult{
		BaseHandle:   baseHandle,
		Verdicts:     verdicts,
		OverallScore: overallScore(available, len(verdicts)),
	}
	c.logger.Info("evaluation complete",
		"handle", baseHandle,
		"platforms", len(verdicts),
		"available", available,
		"overall", result.OverallScore,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return result, nil
}

// registrable filters platforms to those whose username rules accept h.
func registrable(h string, platforms []handle.Platform) []handle.Platform {
	out := make([]handle.Platform, 0, len(platforms))
	for _, p := range platforms {
		if p.ValidFor(h) {
			out = append(out, p)
		}
	}
	return out
}

// priorityOrder sorts the requested platforms into the fixed table order,
// dropping duplicates.
func priorityOrder(requested []handle.Platform) []handle.Platform {
	want := make(map[handle.Platform]bool, len(requested))
	for _, p := range requested {
		want[p] = true
	}
	out := make([]handle.Platform, 0, len(requested))
	for _, p := range handle.All() {
		if want[p] {
			out = append(out, p)
		}
	}
	return out
}

// overallScore is the percentage of platforms available, rounded.
func overallScore(available, total int) int {
	if total == 0 {
		return 0
	}
	return (100*available + total/2) / total
}
