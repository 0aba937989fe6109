// Package backoff paces retry loops with a pluggable growth strategy.
// A Backoff is stateful and not safe for concurrent use; Reset returns
// it to the first interval.
package backoff

import (
	"context"
	"math"
	"time"
)

// Strategy computes a wait interval from the attempt count, the base
// interval, and the previous interval.
type Strategy interface {
	NextDuration(attempt int, base, last time.Duration) time.Duration
}

type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	base         time.Duration
	limit        time.Duration
	attempt      int
	strategy     Strategy
}

func New(strategy Strategy, base, limit time.Duration) *Backoff {
	b := &Backoff{strategy: strategy, base: base, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.attempt = 0
	b.LastDuration = 0
	b.NextDuration = b.next()
}

// Backoff sleeps for the current interval, honoring ctx cancellation,
// then advances to the next one.
func (b *Backoff) Backoff(ctx context.Context) error {
	timer := time.NewTimer(b.NextDuration)
	defer timer.Stop()
	select {
	case <-timer.C:
		b.attempt++
		b.LastDuration = b.NextDuration
		b.NextDuration = b.next()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Backoff) next() time.Duration {
	d := b.strategy.NextDuration(b.attempt, b.base, b.LastDuration)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

type exponential struct{}

func (exponential) NextDuration(attempt int, base, _ time.Duration) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt))) * base
}

// NewExponential doubles the interval on every attempt, capped at limit.
func NewExponential(base, limit time.Duration) *Backoff {
	return New(exponential{}, base, limit)
}

type linear struct{}

func (linear) NextDuration(attempt int, base, _ time.Duration) time.Duration {
	return time.Duration(attempt+1) * base
}

// NewLinear grows the interval by base on every attempt, capped at limit.
func NewLinear(base, limit time.Duration) *Backoff {
	return New(linear{}, base, limit)
}
