// Package heuristic scores how likely a handle is to be taken on a platform
// using only offline signals. Evaluation is pure and deterministic: no I/O,
// no state, same input always yields the same verdict.
package heuristic

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/codeGROOVE-dev/handlecheck/pkg/handle"
)

// Verdict is the heuristic tier's answer for one (handle, platform) pair.
type Verdict struct {
	TakenScore int      // 0-100, higher = more likely taken
	Confidence int      // 0-100, lowest near the decision boundary
	Factors    []string // up to 3 strongest explanatory reasons
	Available  bool     // TakenScore < takenBoundary
}

const (
	takenBoundary = 50
	maxFactors    = 3
)

//nolint:govet // fieldalignment: table layout kept readable
type signal struct {
	name   string
	factor string
	weight float64
	strong float64 // sub-threshold above which the signal is strong evidence
	fn     func(string) float64
}

var signals = []signal{
	{"length", "very short handles are almost always taken", 0.30, 90, scoreLength},
	{"dictionary", "contains a common English word", 0.20, 70, scoreDictionary},
	{"name", "matches a common personal name", 0.15, 75, scorePersonalName},
	{"brand", "matches or closely resembles a known brand", 0.15, 90, scoreBrand},
	{"reserved", "reserved or system term", 0.10, 90, scoreReserved},
	{"sequential", "keyboard or sequential character pattern", 0.05, 70, scoreSequential},
	{"entropy", "low character variety", 0.05, 75, scoreEntropy},
	{"affix", "common prefix/suffix registration pattern", 0.05, 65, scoreAffix},
	{"special", "clean handle with no digits or underscores", 0.05, 75, scoreSpecialChars},
	{"leet", "leet-speak variant of a desirable word", 0.05, 70, scoreLeet},
	{"geo", "contains a geographic term", 0.05, 75, scoreGeographic},
	{"professional", "contains a professional term", 0.05, 70, scoreProfessional},
	{"pronounceable", "pronounceable, English-like handle", 0.05, 70, scorePronounceability},
	{"repeating", "repeating or alternating character pattern", 0.03, 60, scoreRepeating},
}

// Evaluate scores one handle on one platform.
func Evaluate(h string, p handle.Platform) Verdict {
	lower := strings.ToLower(h)

	type firing struct {
		sig   signal
		score float64
	}
	fired := make([]firing, 0, len(signals))

	var combined float64
	for _, s := range signals {
		score := s.fn(lower)
		combined += s.weight * score
		if score > 0 {
			fired = append(fired, firing{sig: s, score: score})
		}
	}
	combined *= p.Competitiveness()

	// Ultra-short handles are near-certain taken regardless of the blend.
	switch n := utf8.RuneCountInString(lower); {
	case n <= 2:
		combined = math.Max(combined, 95)
	case n == 3:
		combined = math.Max(combined, 85)
	}

	taken := int(math.Round(math.Min(100, math.Max(0, combined))))

	// Strong-evidence signals first, then by raw score.
	sort.SliceStable(fired, func(i, j int) bool {
		si, sj := fired[i], fired[j]
		strongI := si.score >= si.sig.strong
		strongJ := sj.score >= sj.sig.strong
		if strongI != strongJ {
			return strongI
		}
		return si.score > sj.score
	})

	var factors []string
	for _, f := range fired {
		if f.score < 60 || len(factors) == maxFactors {
			break
		}
		factors = append(factors, f.sig.factor)
	}

	diff := taken - takenBoundary
	if diff < 0 {
		diff = -diff
	}
	confidence := diff * 2
	if confidence > 100 {
		confidence = 100
	}

	return Verdict{
		TakenScore: taken,
		Confidence: confidence,
		Factors:    factors,
		Available:  taken < takenBoundary,
	}
}

// Suggest returns up to three alternative handles that the heuristic tier
// scores as available on the platform. Suggestions are offline-only.
func Suggest(h string, p handle.Platform) []string {
	lower := strings.ToLower(h)
	candidates := []string{
		"the" + lower,
		"real" + lower,
		"its" + lower,
		lower + "hq",
		lower + "app",
		lower + "_",
		"_" + lower,
	}

	var out []string
	for _, c := range candidates {
		if !p.ValidFor(c) {
			continue
		}
		if Evaluate(c, p).Available {
			out = append(out, c)
		}
		if len(out) == maxFactors {
			break
		}
	}
	return out
}
