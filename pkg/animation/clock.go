package animation

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is the package-level time source for tickers. Production code uses
// the real clock; tests inject a clockwork fake via SetClock.
var clock clockwork.Clock = clockwork.NewRealClock()

// SetClock replaces the animation clock and returns the previous one so
// callers can restore it during cleanup. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) clockwork.Clock {
	prev := clock
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }
