//go:build !tinygo

package core

import "time"

// platformDelay sleeps on host Go. The host interrupt is a goroutine, so
// letting the scheduler run is the equivalent of a busy wait.
func platformDelay(d time.Duration) {
	time.Sleep(d)
}
