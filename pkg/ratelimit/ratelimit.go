// Package ratelimit provides a sliding-window request limiter shared by all
// direct probes. One instance governs every platform: the budget protects
// against defensive blocking anywhere upstream, not per-site politeness.
package ratelimit

import (
	"sync"
	"time"
)

// Default limits: at most 10 probes in any rolling 60-second window.
const (
	DefaultCapacity = 10
	DefaultWindow   = 60 * time.Second
)

// Window is a sliding-window limiter. It is safe for concurrent use.
//
// Acquisition and recording are split on purpose: TryAcquire answers "may I
// issue a probe now?" without charging the budget, and the caller calls
// Record only after actually issuing a request, so skipped or cache-served
// lookups cost nothing.
type Window struct {
	now      func() time.Time
	stamps   []time.Time // ring buffer, bounded to capacity
	mu       sync.Mutex
	head     int // index of the oldest entry
	count    int
	capacity int
	window   time.Duration
}

// Option configures a Window.
type Option func(*Window)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Window) { w.now = now }
}

// New creates a limiter allowing capacity requests per sliding window.
func New(capacity int, window time.Duration, opts ...Option) *Window {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if window <= 0 {
		window = DefaultWindow
	}
	w := &Window{
		stamps:   make([]time.Time, capacity),
		capacity: capacity,
		window:   window,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// prune drops entries older than the window. Must be called with mu held.
func (w *Window) prune(now time.Time) {
	for w.count > 0 && now.Sub(w.stamps[w.head]) >= w.window {
		w.head = (w.head + 1) % w.capacity
		w.count--
	}
}

// TryAcquire reports whether a probe may be issued now. It does not record
// the request.
func (w *Window) TryAcquire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.prune(w.now())
	return w.count < w.capacity
}

// Record charges one request against the window. Call it only after a
// request was actually issued.
func (w *Window) Record() {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.prune(now)
	if w.count == w.capacity {
		// Keep the bound: overwrite the oldest entry.
		w.head = (w.head + 1) % w.capacity
		w.count--
	}
	w.stamps[(w.head+w.count)%w.capacity] = now
	w.count++
}

// AvailableSlots returns how many probes could be issued right now.
func (w *Window) AvailableSlots() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.prune(w.now())
	return w.capacity - w.count
}
