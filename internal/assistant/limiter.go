// Package assistant implements the query pipeline: context assembly from
// domain records, prompt composition, rate-limited retrying invocation of the
// generation service, and validation of the generated text against the same
// records.
package assistant

import (
	"sync"
	"time"
)

// RateLimiter is sliding-window admission control over calls to the
// generation service. One shared instance gates all requests in the process.
type RateLimiter struct {
	mu       sync.Mutex
	maxCalls int
	window   time.Duration
	calls    []time.Time

	clockNow func() time.Time
	sleep    func(time.Duration)
}

func NewRateLimiter(maxCalls int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxCalls: maxCalls,
		window:   window,
		clockNow: time.Now,
		sleep:    time.Sleep,
	}
}

// Admit blocks until a call may proceed without exceeding maxCalls in any
// trailing window, then records the call. The lock is never held across a
// sleep, so concurrent callers queue up without serializing on the wait.
func (l *RateLimiter) Admit() {
	for {
		l.mu.Lock()
		now := l.clockNow()

		cutoff := now.Add(-l.window)
		kept := l.calls[:0]
		for _, t := range l.calls {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
		l.calls = kept

		if len(l.calls) < l.maxCalls {
			l.calls = append(l.calls, now)
			l.mu.Unlock()
			return
		}

		wait := l.calls[0].Add(l.window).Sub(now)
		l.mu.Unlock()

		if wait > 0 {
			l.sleep(wait)
		}
	}
}
