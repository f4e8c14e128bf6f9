// Trust/merge rules between tiers, kept as a pure function so the override
// semantics are testable without any network plumbing.

package checker

import (
	"github.com/codeGROOVE-dev/handlecheck/pkg/handle"
	"github.com/codeGROOVE-dev/handlecheck/pkg/heuristic"
	"github.com/codeGROOVE-dev/handlecheck/pkg/verifier"
)

// merge combines the three optional tier outcomes into one verdict.
//
// Precedence: a trusted verifier verdict wins outright and hides heuristic
// factors; otherwise a probe result overrides the heuristic; otherwise the
// heuristic verdict stands. A handle that fails the platform's own username
// rules is reported unavailable regardless of tier signals.
func merge(p handle.Platform, h string, hv heuristic.Verdict, tv *verifier.Verdict, pr *handle.ProbeResult) handle.PlatformVerdict {
	v := handle.PlatformVerdict{
		Platform:        p.String(),
		Handle:          p.Display(h),
		RegistrationURL: p.RegistrationURL(),
	}
	if url, ok := p.ProfileURL(h); ok {
		v.ProfileURL = url
	}

	if !p.ValidFor(h) {
		v.Available = false
		v.Confidence = 100
		v.Factors = []string{"handle does not meet this platform's username rules"}
		v.Source = handle.SourceHeuristic
		return v
	}

	switch {
	case tv != nil && tv.Trusted:
		v.Available = tv.Available
		v.Confidence = tv.Confidence
		v.Source = handle.SourceVerifier
	case pr != nil:
		v.Available = !pr.Exists
		v.Confidence = pr.Confidence
		v.Source = handle.SourceProbe
	default:
		v.Available = hv.Available
		v.Confidence = hv.Confidence
		v.Factors = hv.Factors
		v.Source = handle.SourceHeuristic
	}
	return v
}
