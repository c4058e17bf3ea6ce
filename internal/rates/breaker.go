// Package rates fetches exchange rates for a base currency from the upstream
// provider, wrapping the call with a TTL cache, a circuit breaker, and
// bounded retries with a fixed per-attempt timeout.
package rates

import (
	"sync/atomic"
	"time"
)

// Breaker is a process-wide circuit breaker guarding the upstream rate
// provider. It is open (rejecting calls without touching the network)
// exactly when the consecutive-failure count has reached the threshold and
// less than the cooldown has elapsed since the most recent failure.
//
// The breaker is owned by the Client it is constructed with rather than
// living in package state, so it can be exercised in isolation and is safe
// under parallel tests. All fields are updated atomically; the type is safe
// for concurrent use.
type Breaker struct {
	threshold   int64
	cooldown    time.Duration
	failures    atomic.Int64
	lastFailure atomic.Int64 // unix nanoseconds of the most recent failure

	now func() time.Time
}

// NewBreaker constructs a Breaker that opens after threshold consecutive
// failures and stays open for cooldown after the last one.
func NewBreaker(threshold int, cooldown time.Duration) *Breaker {
	if threshold <= 0 {
		threshold = 1
	}
	return &Breaker{
		threshold: int64(threshold),
		cooldown:  cooldown,
		now:       time.Now,
	}
}

// Allow reports whether a call may proceed. When the cooldown has elapsed
// since the last failure the counter resets to zero and one probing call is
// let through.
func (b *Breaker) Allow() bool {
	if b.failures.Load() < b.threshold {
		return true
	}
	last := time.Unix(0, b.lastFailure.Load())
	if b.now().Sub(last) >= b.cooldown {
		b.failures.Store(0)
		return true
	}
	return false
}

// Failure records a failed call.
func (b *Breaker) Failure() {
	b.failures.Add(1)
	b.lastFailure.Store(b.now().UnixNano())
}

// Success resets the consecutive-failure count.
func (b *Breaker) Success() {
	b.failures.Store(0)
}

// Failures returns the current consecutive-failure count.
func (b *Breaker) Failures() int {
	return int(b.failures.Load())
}
