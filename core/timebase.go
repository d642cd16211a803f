package core

import "time"

// Step runs one timer tick of the time base as a pure function.
// It returns the new time and the new tick counter. The time only changes
// on the tick that completes a second, and then only in clock mode or while
// the stopwatch is running.
func Step(t ClockTime, mode Mode, running bool, ticks, threshold uint16) (ClockTime, uint16) {
	ticks++
	if ticks < threshold {
		return t, ticks
	}
	if mode == ModeClock || running {
		t = t.Advance()
	}
	return t, 0
}

// TimeBase turns the periodic timer interrupt into one-second advances of
// the shared clock time.
type TimeBase struct {
	state     *State
	timer     TimerDriver
	threshold uint16

	// ticks is touched only from the interrupt handler
	ticks uint16
}

// NewTimeBase creates a time base advancing state once every threshold ticks
func NewTimeBase(state *State, timer TimerDriver, threshold uint16) *TimeBase {
	return &TimeBase{
		state:     state,
		timer:     timer,
		threshold: threshold,
	}
}

// OnTick is the timer interrupt handler.
// The timer is re-armed before any accumulation work is done.
func (tb *TimeBase) OnTick() {
	tb.timer.Reload()
	systemTicks.Add(1)

	prev := tb.state.Time()
	next, ticks := Step(prev, tb.state.Mode(), tb.state.Running(), tb.ticks, tb.threshold)
	tb.ticks = ticks
	if ticks != 0 {
		return
	}

	if next == prev {
		RecordEvent(EvtSecondHeld, prev.pack(), 0)
		return
	}
	if tb.state.advanceFrom(prev, next) {
		RecordEvent(EvtSecond, next.pack(), uint32(tb.state.Mode()))
	} else {
		// Time was reset from the main loop while we were computing
		RecordEvent(EvtAdvanceLost, prev.pack(), 0)
	}
}

// Start configures the timer with this time base as its handler and enables it
func (tb *TimeBase) Start(period time.Duration) error {
	if err := tb.timer.Configure(period, tb.OnTick); err != nil {
		return err
	}
	tb.timer.Start()
	return nil
}

// Stop disables the timer interrupt
func (tb *TimeBase) Stop() {
	tb.timer.Stop()
}

// tickCount exposes the interrupt-local counter to tests
func (tb *TimeBase) tickCount() uint16 {
	return tb.ticks
}
