//go:build tinygo

package core

import (
	"time"

	"tinygo.org/x/drivers/delay"
)

// platformDelay spins for d in 1ms slices, since delay.Sleep is only
// calibrated for short waits. The timer interrupt stays enabled.
func platformDelay(d time.Duration) {
	for ; d >= time.Millisecond; d -= time.Millisecond {
		delay.Sleep(time.Millisecond)
	}
	if d > 0 {
		delay.Sleep(d)
	}
}
