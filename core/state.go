package core

import "sync/atomic"

// Mode selects whether the time advances on its own or under stopwatch control
type Mode uint32

const (
	ModeClock Mode = iota
	ModeStopwatch
)

func (m Mode) String() string {
	switch m {
	case ModeClock:
		return "clock"
	case ModeStopwatch:
		return "stopwatch"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == ModeClock {
		return ModeStopwatch
	}
	return ModeClock
}

// State is the state shared between the timer interrupt and the main loop.
//
// The clock time is packed into a single word so a reader never sees a torn
// value, even if the interrupt fires in the middle of a render pass. The
// interrupt side only ever uses loads and compare-and-swap, so nothing on the
// interrupt path can block.
type State struct {
	time    atomic.Uint32 // packed ClockTime
	mode    atomic.Uint32
	running atomic.Bool
}

// NewState returns the power-on state: 00:00:00, clock mode, stopped
func NewState() *State {
	return &State{}
}

// Time returns a consistent snapshot of the clock time
func (s *State) Time() ClockTime {
	return unpackClockTime(s.time.Load())
}

// SetTime overwrites the clock time
func (s *State) SetTime(t ClockTime) {
	s.time.Store(t.pack())
}

// Mode returns the active mode
func (s *State) Mode() Mode {
	return Mode(s.mode.Load())
}

// Running reports whether the stopwatch is accumulating
func (s *State) Running() bool {
	return s.running.Load()
}

// advanceFrom replaces the time with its advanced value, but only if nobody
// changed it since prev was read. A concurrent reset wins over the advance.
func (s *State) advanceFrom(prev, next ClockTime) bool {
	return s.time.CompareAndSwap(prev.pack(), next.pack())
}

// ToggleMode flips the mode and resets the time to 00:00:00, with the timer
// interrupt masked. The run flag is left alone: a stopwatch left running
// comes back running from zero.
func (s *State) ToggleMode() Mode {
	irq := disableInterrupts()
	next := Mode(s.mode.Load()).Toggle()
	s.mode.Store(uint32(next))
	s.time.Store(0)
	restoreInterrupts(irq)
	return next
}

// ToggleRun flips the stopwatch run flag and returns the new value
func (s *State) ToggleRun() bool {
	for {
		cur := s.running.Load()
		if s.running.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}
