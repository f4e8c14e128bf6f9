package probecache

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/handlecheck/pkg/handle"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func sample(exists bool) handle.ProbeResult {
	return handle.ProbeResult{
		Exists:     exists,
		Confidence: 90,
		Method:     handle.MethodHTTPCheck,
		StatusCode: 200,
	}
}

func TestGetMissing(t *testing.T) {
	c := New(time.Hour)
	if _, ok := c.Get(handle.GitHub, "someone"); ok {
		t.Error("Get on empty cache returned ok")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	clock := newFakeClock()
	c := New(time.Hour, WithClock(clock.Now))

	want := sample(true)
	c.Put(handle.GitHub, "someone", want)

	got, ok := c.Get(handle.GitHub, "someone")
	if !ok {
		t.Fatal("Get missed a fresh entry")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Get mismatch (-want +got):\n%s", diff)
	}
}

func TestExpiryIsExact(t *testing.T) {
	clock := newFakeClock()
	c := New(time.Hour, WithClock(clock.Now))

	c.Put(handle.GitHub, "someone", sample(true))

	clock.Advance(time.Hour - time.Nanosecond)
	if _, ok := c.Get(handle.GitHub, "someone"); !ok {
		t.Error("entry expired before TTL elapsed")
	}

	// At exactly insert+TTL the entry is stale.
	clock.Advance(time.Nanosecond)
	if _, ok := c.Get(handle.GitHub, "someone"); ok {
		t.Error("entry still served at exactly insert+TTL")
	}
	if got := c.Len(); got != 0 {
		t.Errorf("stale entry not evicted, Len = %d", got)
	}
}

func TestCaseInsensitiveHandleKeys(t *testing.T) {
	c := New(time.Hour)
	c.Put(handle.GitHub, "SomeOne", sample(true))

	if _, ok := c.Get(handle.GitHub, "someone"); !ok {
		t.Error("lowercase lookup missed a mixed-case insert")
	}
	if _, ok := c.Get(handle.GitHub, "SOMEONE"); !ok {
		t.Error("uppercase lookup missed a mixed-case insert")
	}
}

func TestPlatformsDoNotCollide(t *testing.T) {
	c := New(time.Hour)
	c.Put(handle.GitHub, "someone", sample(true))

	if _, ok := c.Get(handle.Reddit, "someone"); ok {
		t.Error("entry leaked across platforms")
	}
}

func TestPutReplacesWholesale(t *testing.T) {
	clock := newFakeClock()
	c := New(time.Hour, WithClock(clock.Now))

	c.Put(handle.GitHub, "someone", sample(true))
	clock.Advance(50 * time.Minute)
	c.Put(handle.GitHub, "someone", sample(false))

	got, ok := c.Get(handle.GitHub, "someone")
	if !ok {
		t.Fatal("Get missed after replace")
	}
	if got.Exists {
		t.Error("Get returned the replaced result")
	}

	// Replacement reset the TTL clock.
	clock.Advance(30 * time.Minute)
	if _, ok := c.Get(handle.GitHub, "someone"); !ok {
		t.Error("replaced entry expired on the original insert's clock")
	}
}
