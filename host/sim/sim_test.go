package sim

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"segclock/core"

	"github.com/matryer/is"
)

func TestDecodeSegments(t *testing.T) {
	is := is.New(t)
	for d := uint8(0); d < 10; d++ {
		got, ok := DecodeSegments(core.SegmentPattern(d))
		is.True(ok)
		is.Equal(got, d)

		// Decimal point lit
		got, ok = DecodeSegments(core.SegmentPattern(d) &^ segDP)
		is.True(ok)
		is.Equal(got, d)
	}
	_, ok := DecodeSegments(core.SegmentBlank)
	is.True(!ok)
}

func TestRender(t *testing.T) {
	is := is.New(t)
	var frame [core.DigitCount]uint8
	for i, d := range core.Digits(core.ClockTime{Hours: 12, Minutes: 34, Seconds: 56}) {
		frame[i] = core.SegmentPattern(d)
	}
	lines := strings.Split(Render(frame), "\n")
	is.Equal(len(lines), 3)
	is.Equal(lines[0], "    _     _        _  _ ")
	is.Equal(lines[1], "  | _| .  _||_| . |_ |_ ")
	is.Equal(lines[2], "  ||_  .  _|  | .  _||_|")
}

func TestBoardLatchesOnRelease(t *testing.T) {
	is := is.New(t)
	cfg := core.DefaultConfig()
	b := NewBoard(cfg)
	for _, pin := range cfg.Segments {
		is.NoErr(b.ConfigureOutput(pin))
	}
	for _, pin := range cfg.DigitSelects {
		is.NoErr(b.ConfigureOutput(pin))
	}

	sel := cfg.DigitSelects[3]
	is.NoErr(b.SetPin(sel, false))
	for i, pin := range cfg.Segments {
		is.NoErr(b.SetPin(pin, core.SegmentPattern(7)&(1<<i) != 0))
	}
	is.Equal(b.Frame()[3], core.SegmentBlank) // not latched while lit
	is.NoErr(b.SetPin(sel, true))
	is.Equal(b.Frame()[3], core.SegmentPattern(7))
	is.Equal(b.Refreshes()[3], uint64(1))

	is.NoErr(b.SetPin(cfg.DigitSelects[0], false))
	is.NoErr(b.SetPin(cfg.DigitSelects[1], false))
	is.Equal(b.Ghosts(), uint64(1))
}

func TestBoardPinModes(t *testing.T) {
	is := is.New(t)
	b := NewBoard(core.DefaultConfig())
	is.NoErr(b.ConfigureInputPullUp(14))
	is.True(b.ConfigureOutput(14) != nil)
	is.True(b.SetPin(14, false) != nil)

	level, err := b.GetPin(14)
	is.NoErr(err)
	is.True(level)
	b.Press(14)
	level, _ = b.GetPin(14)
	is.True(!level)

	_, err = b.GetPin(30)
	is.True(err != nil)
}

func TestMachineDisplaysTime(t *testing.T) {
	is := is.New(t)
	m, err := NewVirtualMachine(core.DefaultConfig())
	is.NoErr(err)

	is.NoErr(m.Step(0))
	shown, ok := m.Time()
	is.True(ok)
	is.Equal(shown, core.ClockTime{})

	is.NoErr(m.Step(core.TicksPerSecond * 61))
	shown, ok = m.Time()
	is.True(ok)
	is.Equal(shown, core.ClockTime{Minutes: 1, Seconds: 1})
	is.Equal(m.Board.Ghosts(), uint64(0))
	for _, n := range m.Board.Refreshes() {
		is.True(n > 0)
	}
}

func TestHeadlessClock(t *testing.T) {
	is := is.New(t)
	m, err := NewVirtualMachine(core.DefaultConfig())
	is.NoErr(err)

	var out bytes.Buffer
	shown, err := RunHeadless(&out, m, HeadlessOptions{Seconds: 3661})
	is.NoErr(err)
	is.Equal(shown, core.ClockTime{Hours: 1, Minutes: 1, Seconds: 1})
	is.True(strings.Contains(out.String(), "clock 01:01:01"))
}

func TestHeadlessStopwatch(t *testing.T) {
	is := is.New(t)
	cfg := core.DefaultConfig()
	m, err := NewVirtualMachine(cfg)
	is.NoErr(err)

	var out bytes.Buffer
	shown, err := RunHeadless(&out, m, HeadlessOptions{Seconds: 90, Stopwatch: true})
	is.NoErr(err)
	is.Equal(shown, core.ClockTime{Minutes: 1, Seconds: 30})
	is.Equal(m.Firmware.State.Mode(), core.ModeStopwatch)

	// Stop: the display freezes
	is.NoErr(m.Tap(cfg.StartStop))
	is.NoErr(m.Step(core.TicksPerSecond * 10))
	shown, _ = m.Time()
	is.Equal(shown, core.ClockTime{Minutes: 1, Seconds: 30})

	// Mode switch resets to zero and returns to clock mode
	is.NoErr(m.Tap(cfg.ModeSwitch))
	shown, _ = m.Time()
	is.Equal(shown, core.ClockTime{})
	is.Equal(m.Firmware.State.Mode(), core.ModeClock)
}

func TestRealtimeMachineRestoresDelay(t *testing.T) {
	is := is.New(t)
	_, err := NewVirtualMachine(core.DefaultConfig())
	is.NoErr(err)
	_, err = NewMachine(core.DefaultConfig())
	is.NoErr(err)

	start := time.Now()
	core.Delay(5 * time.Millisecond)
	is.True(time.Since(start) >= 5*time.Millisecond) // dwell and debounce sleep again
}

func TestRealtimeMachineRejectsStep(t *testing.T) {
	is := is.New(t)
	m, err := NewMachine(core.DefaultConfig())
	is.NoErr(err)
	is.Equal(m.Step(1), errRealtime)
}
