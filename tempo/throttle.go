package tempo

import (
	"sync"
	"time"
)

// # Throttle
//
// Throttle is a rate gate: it runs an action at most once per period.
// It is useful for logging and printing, where a call site may be hit
// on every iteration but should only produce output at a fixed cadence.
// A Throttle should be instantiated using [NewThrottle]; its zero value
// behaves like a throttle that has never fired with a zero period.
type Throttle struct {
	mu     sync.Mutex
	period time.Duration
	last   time.Time
}

// NewThrottle returns a throttle with the given minimum interval
// between firings. A zero period always fires.
func NewThrottle(period time.Duration) *Throttle {
	return &Throttle{period: period}
}

// RateLimit invokes fn if strictly more than the throttle period has
// elapsed since the last invocation, and suppresses it otherwise.
// The last-fire time is updated only when fn runs. The first call
// always fires.
func (t *Throttle) RateLimit(fn func()) {
	t.mu.Lock()
	if !t.last.IsZero() && time.Since(t.last) <= t.period {
		t.mu.Unlock()
		return
	}
	t.last = time.Now()
	t.mu.Unlock()

	fn()
}

// Wrap returns a rate-limited version of fn. Calling the returned
// function is equivalent to calling t.RateLimit(fn).
func (t *Throttle) Wrap(fn func()) func() {
	return func() {
		t.RateLimit(fn)
	}
}
