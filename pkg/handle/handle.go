// Package handle defines the supported platforms and the shared result types
// for social handle availability checking.
package handle

import (
	"errors"
	"regexp"
	"time"
)

// Common errors returned by the checker and its tiers.
var (
	ErrInvalidHandle       = errors.New("invalid handle")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// handlePattern is the global handle contract. Platform-specific rules are
// stricter and live in the platform table.
var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,30}$`)

// Valid reports whether s satisfies the global handle contract
// (1-30 characters, alphanumeric and underscore).
func Valid(s string) bool {
	return handlePattern.MatchString(s)
}

// Query is one immutable evaluation request.
type Query struct {
	BaseHandle string
	Platform   Platform
}

// Method indicates how a probe result was obtained.
type Method string

// Probe result methods.
const (
	MethodHTTPCheck Method = "http_check"
	MethodCached    Method = "cached"
)

// ProbeResult is the outcome of one direct profile probe. Results are
// replaced wholesale on refresh, never partially updated.
type ProbeResult struct {
	CheckedAt  time.Time `json:"checked_at"`
	Method     Method    `json:"method"`
	StatusCode int       `json:"status_code,omitempty"`
	Confidence int       `json:"confidence"`
	Exists     bool      `json:"exists"`
}

// Source identifies which tier produced a platform verdict.
type Source string

// Verdict sources, ordered by increasing trust and cost.
const (
	SourceHeuristic Source = "heuristic"
	SourceProbe     Source = "probe"
	SourceVerifier  Source = "verifier"
)

// PlatformVerdict is the final per-platform answer.
type PlatformVerdict struct {
	Platform        string   `json:"platform"`
	Handle          string   `json:"handle"` // display-formatted, e.g. "@handle"
	Available       bool     `json:"available"`
	Confidence      int      `json:"confidence"`
	Factors         []string `json:"factors,omitempty"`
	Source          Source   `json:"source"`
	ProfileURL      string   `json:"profile_url,omitempty"`
	RegistrationURL string   `json:"registration_url,omitempty"`
	Suggestions     []string `json:"suggestions,omitempty"`
}

// AggregateResult is one full evaluation across platforms. Verdicts are in
// fixed platform priority order.
type AggregateResult struct {
	BaseHandle   string            `json:"base_handle"`
	Verdicts     []PlatformVerdict `json:"verdicts"`
	OverallScore int               `json:"overall_score"` // % of platforms available
}
