package ratelimit

import (
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually-advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestCapacityEnforced(t *testing.T) {
	clock := newFakeClock()
	w := New(3, time.Minute, WithClock(clock.Now))

	for i := range 3 {
		if !w.TryAcquire() {
			t.Fatalf("TryAcquire %d denied under capacity", i)
		}
		w.Record()
	}
	if w.TryAcquire() {
		t.Error("TryAcquire allowed beyond capacity")
	}
	if got := w.AvailableSlots(); got != 0 {
		t.Errorf("AvailableSlots = %d, want 0", got)
	}
}

func TestWindowSlides(t *testing.T) {
	clock := newFakeClock()
	w := New(2, time.Minute, WithClock(clock.Now))

	w.Record()
	clock.Advance(30 * time.Second)
	w.Record()
	if w.TryAcquire() {
		t.Fatal("TryAcquire allowed at capacity")
	}

	// First entry ages out at exactly 60s; the second stays 30s longer.
	clock.Advance(30 * time.Second)
	if !w.TryAcquire() {
		t.Error("TryAcquire denied after the oldest entry aged out")
	}
	if got := w.AvailableSlots(); got != 1 {
		t.Errorf("AvailableSlots = %d, want 1", got)
	}

	clock.Advance(30 * time.Second)
	if got := w.AvailableSlots(); got != 2 {
		t.Errorf("AvailableSlots after full drain = %d, want 2", got)
	}
}

func TestTryAcquireDoesNotCharge(t *testing.T) {
	clock := newFakeClock()
	w := New(2, time.Minute, WithClock(clock.Now))

	for range 10 {
		if !w.TryAcquire() {
			t.Fatal("TryAcquire denied with an untouched budget")
		}
	}
	if got := w.AvailableSlots(); got != 2 {
		t.Errorf("AvailableSlots = %d after acquire-only calls, want 2", got)
	}
}

func TestRecordBeyondCapacityKeepsBound(t *testing.T) {
	clock := newFakeClock()
	w := New(2, time.Minute, WithClock(clock.Now))

	for range 5 {
		w.Record()
	}
	if got := w.AvailableSlots(); got != 0 {
		t.Errorf("AvailableSlots = %d, want 0", got)
	}
	// All surviving stamps are at t=0, so a full window later the ring is empty.
	clock.Advance(time.Minute)
	if got := w.AvailableSlots(); got != 2 {
		t.Errorf("AvailableSlots after drain = %d, want 2", got)
	}
}

func TestZeroValuesFallBackToDefaults(t *testing.T) {
	w := New(0, 0)
	if w.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", w.capacity, DefaultCapacity)
	}
	if w.window != DefaultWindow {
		t.Errorf("window = %v, want %v", w.window, DefaultWindow)
	}
}

func TestConcurrentUse(t *testing.T) {
	w := New(10, time.Minute)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if w.TryAcquire() {
				w.Record()
			}
			w.AvailableSlots()
		}()
	}
	wg.Wait()

	// Recording is bounded by capacity no matter how the goroutines raced.
	if got := w.AvailableSlots(); got < 0 || got > 10 {
		t.Errorf("AvailableSlots = %d, out of [0,10]", got)
	}
}
