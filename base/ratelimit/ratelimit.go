package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/holdergate/goapi/base/ctx"
)

// SlidingWindow tracks request timestamps per key over a fixed window.
// It is advisory: callers ask Allowed and skip the key instead of waiting.
type SlidingWindow struct {
	window time.Duration
	limit  int
	mu     sync.Mutex
	hits   map[string][]time.Time
	now    func() time.Time
}

func NewSlidingWindow(window time.Duration, limit int) *SlidingWindow {
	return &SlidingWindow{
		window: window,
		limit:  limit,
		hits:   map[string][]time.Time{},
		now:    time.Now,
	}
}

// Allowed reports whether key is under its request budget for the
// current window.
func (w *SlidingWindow) Allowed(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.prune(key)) < w.limit
}

// Record registers one request against key.
func (w *SlidingWindow) Record(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hits[key] = append(w.prune(key), w.now())
}

// prune drops timestamps that fell out of the window. Caller must hold mu.
func (w *SlidingWindow) prune(key string) []time.Time {
	cutoff := w.now().Add(-w.window)
	hits := w.hits[key]
	i := 0
	for ; i < len(hits); i++ {
		if hits[i].After(cutoff) {
			break
		}
	}
	hits = hits[i:]
	w.hits[key] = hits
	return hits
}

// Pacer serializes calls toward a shared upstream budget. Unlike
// SlidingWindow it blocks, so that sequential per-token calls are spaced
// by actual remaining budget rather than a fixed sleep.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer returns a Pacer allowing interval between calls with burst 1.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the next call is within budget or the context is done.
func (p *Pacer) Wait(c ctx.Ctx) error {
	return p.limiter.Wait(c)
}
