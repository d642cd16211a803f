package core

import "time"

// DelayFunc blocks the caller for d. It is a busy wait on the
// microcontroller, so interrupts keep firing while it runs.
type DelayFunc func(d time.Duration)

// delayFunc defaults to the platform primitive (see delay_go.go / delay_tinygo.go)
var delayFunc DelayFunc = platformDelay

// SetDelay replaces the delay primitive (simulators and tests)
func SetDelay(fn DelayFunc) {
	if fn == nil {
		fn = platformDelay
	}
	delayFunc = fn
}

// Delay blocks for d using the configured primitive.
// Used both for input debounce and for per-digit dwell.
func Delay(d time.Duration) {
	delayFunc(d)
}
