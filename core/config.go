package core

import (
	"errors"
	"time"
)

// Config describes the board wiring and timing of the firmware
type Config struct {
	// Input lines (active-low, pulled up)
	ModeSwitch GPIOPin
	StartStop  GPIOPin

	// Output lines
	Segments     [SegmentBusWidth]GPIOPin // a, b, c, d, e, f, g, dp
	DigitSelects [DigitCount]GPIOPin      // HH tens ... SS ones, active-low

	// Time base
	TickPeriod     time.Duration
	TicksPerSecond uint16

	// Main loop timing
	DigitDwell    time.Duration // per-digit on time during a sweep
	DebounceDelay time.Duration // wait after a press before acting on it

	// LevelTriggered keeps the legacy behaviour where a held input
	// retriggers on every loop pass
	LevelTriggered bool
}

// Design defaults
const (
	DefaultDigitDwell    = 2 * time.Millisecond
	DefaultDebounceDelay = 200 * time.Millisecond

	MinDigitDwell = 1 * time.Millisecond
	MaxDigitDwell = 5 * time.Millisecond
)

var ErrInvalidDwell = errors.New("digit dwell out of range")

// DefaultConfig returns the reference wiring: segments on GPIO 0-7, digit
// selects on GPIO 8-13, mode switch on GPIO 14, start/stop on GPIO 15.
func DefaultConfig() Config {
	cfg := Config{
		Segments:     [SegmentBusWidth]GPIOPin{0, 1, 2, 3, 4, 5, 6, 7},
		DigitSelects: [DigitCount]GPIOPin{8, 9, 10, 11, 12, 13},
		ModeSwitch:   14,
		StartStop:    15,
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing timing values with the design constants
func (c *Config) applyDefaults() {
	if c.TickPeriod == 0 {
		c.TickPeriod = TickPeriod
	}
	if c.TicksPerSecond == 0 {
		c.TicksPerSecond = TicksPerSecond
	}
	if c.DigitDwell == 0 {
		c.DigitDwell = DefaultDigitDwell
	}
	if c.DebounceDelay == 0 {
		c.DebounceDelay = DefaultDebounceDelay
	}
}

// Validate checks timing and wiring.
// The tick period times the threshold must land within one tick of a second.
func (c *Config) Validate() error {
	if c.TickPeriod <= 0 || c.TickPeriod > time.Second {
		return ErrInvalidPeriod
	}
	if c.TicksPerSecond == 0 {
		return ErrInvalidThreshold
	}
	second := c.TickPeriod * time.Duration(c.TicksPerSecond)
	diff := second - time.Second
	if diff < 0 {
		diff = -diff
	}
	if diff >= c.TickPeriod {
		return ErrInvalidThreshold
	}
	if c.DigitDwell < MinDigitDwell || c.DigitDwell > MaxDigitDwell {
		return ErrInvalidDwell
	}

	seen := make(map[GPIOPin]bool, SegmentBusWidth+DigitCount+2)
	pins := make([]GPIOPin, 0, SegmentBusWidth+DigitCount+2)
	pins = append(pins, c.Segments[:]...)
	pins = append(pins, c.DigitSelects[:]...)
	pins = append(pins, c.ModeSwitch, c.StartStop)
	for _, pin := range pins {
		if seen[pin] {
			return ErrPinConflict
		}
		seen[pin] = true
	}
	return nil
}
