package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake for deterministic output.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Now returns the current time from the package clock.
func Now() time.Time {
	return clock.Now()
}

// FeedWindow is the close-approach date range requested from the
// observation feed.
type FeedWindow struct {
	Start time.Time
	End   time.Time
}

// CurrentFeedWindow returns today through tomorrow in UTC, the window the
// original visualization covers.
func CurrentFeedWindow() FeedWindow {
	now := clock.Now().UTC()
	return FeedWindow{Start: now, End: now.AddDate(0, 0, 1)}
}
