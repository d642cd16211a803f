package core

import (
	"errors"
	"sync/atomic"
	"time"
)

// Timer frequencies for the classic 16-bit up-counting timer
const (
	TimerFreq     = 12000000 // 12MHz oscillator
	TimerPrescale = 12       // one count per machine cycle
	TimerMax      = 1 << 16  // counter overflows at 0x10000
)

// Time base defaults
const (
	TickPeriod     = 50 * time.Millisecond
	TicksPerSecond = 20 // 20 x 50ms = 1s
)

var (
	ErrInvalidPeriod    = errors.New("timer period out of range")
	ErrInvalidThreshold = errors.New("ticks per second out of range")
)

var systemTicks atomic.Uint32

// GetTicks returns the number of timer interrupts taken since boot
func GetTicks() uint32 {
	return systemTicks.Load()
}

// SetTicks sets the interrupt count (for testing/hardware integration)
func SetTicks(ticks uint32) {
	systemTicks.Store(ticks)
}

// TimerFromUS converts microseconds to timer counts
func TimerFromUS(us uint32) uint32 {
	return uint32(uint64(us) * (TimerFreq / TimerPrescale) / 1000000)
}

// TimerToUS converts timer counts to microseconds
func TimerToUS(counts uint32) uint32 {
	return uint32(uint64(counts) * 1000000 / (TimerFreq / TimerPrescale))
}

// ReloadValue returns the preload that makes the 16-bit counter overflow
// after period. 50ms gives 0x3CB0.
func ReloadValue(period time.Duration) (uint16, error) {
	if period <= 0 {
		return 0, ErrInvalidPeriod
	}
	counts := TimerFromUS(uint32(period / time.Microsecond))
	if counts == 0 || counts > TimerMax {
		return 0, ErrInvalidPeriod
	}
	return uint16(TimerMax - counts), nil
}

// TimerDriver is the periodic interrupt source the time base runs on.
// Platform-specific implementations handle the actual hardware.
type TimerDriver interface {
	// Configure sets the period and the handler run on every expiry.
	// The handler runs in interrupt context and must not block.
	Configure(period time.Duration, handler func()) error

	// Reload re-arms the timer for the next period. Called first thing in
	// the handler so the cadence has no software gap.
	Reload()

	// Start enables the interrupt
	Start()

	// Stop disables the interrupt
	Stop()
}

// Global singleton used by core code.
var timerDriver TimerDriver

// SetTimerDriver is called by target-specific code to register its driver.
func SetTimerDriver(d TimerDriver) {
	timerDriver = d
}
