package dataset

import "github.com/jonboulle/clockwork"

// clock times each load so tests can freeze or advance time via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source used for load timing. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
