package sim

import (
	"fmt"
	"io"

	"segclock/core"
)

// HeadlessOptions scripts a headless run
type HeadlessOptions struct {
	Seconds   int
	Stopwatch bool // switch to stopwatch mode and start it first
	Verbose   bool // render every simulated second
}

// RunHeadless drives a virtual machine through opts.Seconds of simulated
// time and writes the final display to w
func RunHeadless(w io.Writer, m *Machine, opts HeadlessOptions) (core.ClockTime, error) {
	cfg := m.Firmware.Config
	if err := m.Step(0); err != nil {
		return core.ClockTime{}, err
	}
	if opts.Stopwatch {
		if err := m.Tap(cfg.ModeSwitch); err != nil {
			return core.ClockTime{}, err
		}
		if err := m.Tap(cfg.StartStop); err != nil {
			return core.ClockTime{}, err
		}
	}

	for i := 0; i < opts.Seconds; i++ {
		if err := m.Step(int(cfg.TicksPerSecond)); err != nil {
			return core.ClockTime{}, err
		}
		if opts.Verbose {
			fmt.Fprintf(w, "%s\n\n", Render(m.Board.Frame()))
		}
	}

	frame := m.Board.Frame()
	shown, ok := ReadTime(frame)
	if !ok {
		return shown, fmt.Errorf("sim: display does not show a valid time: % x", frame[:])
	}
	fmt.Fprintf(w, "%s\n%s %s\n", Render(frame), m.Firmware.State.Mode(), shown)
	return shown, nil
}
