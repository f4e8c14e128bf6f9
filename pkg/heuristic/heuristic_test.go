package heuristic

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/handlecheck/pkg/handle"
)

func TestEvaluateDeterministic(t *testing.T) {
	handles := []string{"zz", "nike", "john", "kxqzv7j2m", "the_gamer2024", "admin"}
	for _, h := range handles {
		t.Run(h, func(t *testing.T) {
			first := Evaluate(h, handle.Twitter)
			for range 10 {
				if diff := cmp.Diff(first, Evaluate(h, handle.Twitter)); diff != "" {
					t.Errorf("Evaluate(%q) not deterministic (-first +again):\n%s", h, diff)
				}
			}
		})
	}
}

func TestShortHandleNearCertainTaken(t *testing.T) {
	for _, h := range []string{"a", "zz", "x7"} {
		v := Evaluate(h, handle.GitHub)
		if v.Available {
			t.Errorf("Evaluate(%q).Available = true, want false", h)
		}
		if v.TakenScore < 90 {
			t.Errorf("Evaluate(%q).TakenScore = %d, want >= 90", h, v.TakenScore)
		}
		if v.Confidence < 80 {
			t.Errorf("Evaluate(%q).Confidence = %d, want >= 80", h, v.Confidence)
		}
	}
}

func TestHighEntropyHandleAvailable(t *testing.T) {
	v := Evaluate("kxqzv7j2m", handle.GitHub)
	if !v.Available {
		t.Fatalf("Evaluate(kxqzv7j2m).Available = false, want true (score %d)", v.TakenScore)
	}
	if v.Confidence < 50 {
		t.Errorf("Confidence = %d, want >= 50", v.Confidence)
	}
}

func TestLengthMonotonic(t *testing.T) {
	short := Evaluate("ab", handle.GitHub)
	long := Evaluate("ab_unique_2024_handle", handle.Twitter)
	if short.TakenScore <= long.TakenScore {
		t.Errorf("short handle score %d should exceed long handle score %d",
			short.TakenScore, long.TakenScore)
	}
}

func TestConfidenceTracksDistanceFromBoundary(t *testing.T) {
	handles := []string{"zz", "nike", "kxqzv7j2m", "the_gamer2024", "blorptastic"}
	for _, h := range handles {
		v := Evaluate(h, handle.YouTube)
		diff := v.TakenScore - 50
		if diff < 0 {
			diff = -diff
		}
		want := diff * 2
		if want > 100 {
			want = 100
		}
		if v.Confidence != want {
			t.Errorf("Evaluate(%q): Confidence = %d, want %d (score %d)",
				h, v.Confidence, want, v.TakenScore)
		}
	}
}

func TestCompetitivenessMultiplier(t *testing.T) {
	// Same handle, competitive platform (x1.2) vs relaxed (x0.8). Pick a
	// mid-range handle so neither side clamps or hits the short floor.
	competitive := Evaluate("summervibes", handle.Twitter)
	relaxed := Evaluate("summervibes", handle.Pinterest)
	if competitive.TakenScore <= relaxed.TakenScore {
		t.Errorf("competitive score %d should exceed relaxed score %d",
			competitive.TakenScore, relaxed.TakenScore)
	}
}

func TestFactorsCappedAtThree(t *testing.T) {
	// Fires length, dictionary, brand, special chars, pronounceability.
	v := Evaluate("nike", handle.Twitter)
	if len(v.Factors) > 3 {
		t.Errorf("Factors = %v, want at most 3", v.Factors)
	}
	if len(v.Factors) == 0 {
		t.Error("Factors empty for a strongly-flagged handle")
	}
}

func TestStrongSignalsSurfaceFirst(t *testing.T) {
	v := Evaluate("nike", handle.Twitter)
	if len(v.Factors) == 0 {
		t.Fatal("no factors")
	}
	// Brand exact match (98, strong) should beat the mid-strength signals.
	found := false
	for _, f := range v.Factors {
		if strings.Contains(f, "brand") {
			found = true
		}
	}
	if !found {
		t.Errorf("Factors = %v, want a brand factor", v.Factors)
	}
}

func TestNonASCIIDoesNotPanic(t *testing.T) {
	for _, h := range []string{"日本語abc", "héllo", "🎮gamer"} {
		v := Evaluate(h, handle.Twitter)
		if v.TakenScore < 0 || v.TakenScore > 100 {
			t.Errorf("Evaluate(%q).TakenScore = %d, out of range", h, v.TakenScore)
		}
	}
}

func TestEmptyHandleStillVerdicts(t *testing.T) {
	v := Evaluate("", handle.Twitter)
	if v.Available {
		t.Error("empty handle reported available")
	}
}

func TestReservedWordScoresTaken(t *testing.T) {
	v := Evaluate("admin", handle.Twitter)
	if v.Available {
		t.Errorf("admin reported available (score %d)", v.TakenScore)
	}
}

func TestSuggest(t *testing.T) {
	suggestions := Suggest("nike", handle.GitHub)
	if len(suggestions) > 3 {
		t.Fatalf("Suggest returned %d suggestions, want at most 3", len(suggestions))
	}
	for _, s := range suggestions {
		if !handle.GitHub.ValidFor(s) {
			t.Errorf("suggestion %q not valid for github", s)
		}
		if !Evaluate(s, handle.GitHub).Available {
			t.Errorf("suggestion %q not scored available", s)
		}
		if strings.Contains(s, "_") {
			t.Errorf("suggestion %q has underscore on a no-underscore platform", s)
		}
	}
}
