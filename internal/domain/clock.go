package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock stamps assessments and resolves "today"; tests freeze it with SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source used for assessment timestamps and the
// default departure date. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Today returns midnight of the current date in loc.
func Today(loc *time.Location) time.Time {
	now := clock.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
}
