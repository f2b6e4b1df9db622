package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles how fast batch jobs may start. Remote recognizer
// and similarity providers carry their own per-request limiters; this
// one keeps a large batch from queueing far ahead of them.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter admitting requestsPerSecond job starts
// with the given burst. A rate of zero or below disables throttling.
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if requestsPerSecond <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}

	if burst <= 0 {
		burst = 5
	}

	return &Limiter{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until the next job may start or the context ends
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a job could start right now without waiting
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
