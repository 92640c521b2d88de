// Package pacing provides pluggable pacing strategies for sequential calls
// against rate-limited collaborator APIs.
// This is part of the platform layer and contains no business logic.
package pacing

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer paces sequential work items. Wait blocks until the next item may
// proceed, or until the context is done.
type Pacer interface {
	Wait(ctx context.Context) error
}

// fixedDelay sleeps a constant duration between items.
type fixedDelay struct {
	delay time.Duration
}

// FixedDelay returns a pacer that sleeps the given duration on every Wait.
func FixedDelay(delay time.Duration) Pacer {
	return &fixedDelay{delay: delay}
}

func (p *fixedDelay) Wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// tokenBucket paces items through a token bucket.
type tokenBucket struct {
	limiter *rate.Limiter
}

// TokenBucket returns a pacer allowing on average one item per interval,
// with the given burst capacity.
func TokenBucket(interval time.Duration, burst int) Pacer {
	return &tokenBucket{limiter: rate.NewLimiter(rate.Every(interval), burst)}
}

func (p *tokenBucket) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

// noop never waits. Used in tests and backfill dry runs.
type noop struct{}

// None returns a pacer that never waits.
func None() Pacer {
	return noop{}
}

func (noop) Wait(ctx context.Context) error {
	return ctx.Err()
}
