package geocoding

import (
	"sync"
	"time"
)

// Throttle spaces outbound provider calls by a minimum interval. All
// gateway operations share one throttle, so the interval applies across
// operation kinds. The clock and sleep functions are injectable so tests
// can run against a fake clock instead of real sleeps.
type Throttle struct {
	mu    sync.Mutex
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewThrottle creates a throttle on the real clock
func NewThrottle() *Throttle {
	return NewThrottleWithClock(time.Now, time.Sleep)
}

// NewThrottleWithClock creates a throttle with explicit clock functions
func NewThrottleWithClock(now func() time.Time, sleep func(time.Duration)) *Throttle {
	return &Throttle{now: now, sleep: sleep}
}

// Wait blocks until at least min has elapsed since the previous call,
// then records the new call time. The mutex is held across the sleep so
// concurrent callers are serialized against the shared last-call time.
func (t *Throttle) Wait(min time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() {
		if elapsed := t.now().Sub(t.last); elapsed < min {
			t.sleep(min - elapsed)
		}
	}
	t.last = t.now()
}
