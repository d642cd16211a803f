package sim

import (
	"context"
	"errors"
	"time"

	"segclock/core"
)

var errRealtime = errors.New("sim: machine runs in real time")

// Machine is the firmware wired to a Board. A real-time machine ticks from
// a core.TickerTimer and sleeps through dwell and debounce; a virtual one
// only moves when stepped.
type Machine struct {
	Board    *Board
	Firmware *core.Firmware

	virtual *core.VirtualTimer
	started bool
}

// NewMachine builds a real-time machine. It restores the platform delay in
// case a virtual machine replaced it earlier in the process.
func NewMachine(cfg core.Config) (*Machine, error) {
	core.SetDelay(nil)
	return newMachine(cfg, core.NewTickerTimer(), nil)
}

// NewVirtualMachine builds a machine whose clock only advances through Step.
// Delays are skipped.
func NewVirtualMachine(cfg core.Config) (*Machine, error) {
	vt := core.NewVirtualTimer()
	core.SetDelay(func(time.Duration) {})
	return newMachine(cfg, vt, vt)
}

func newMachine(cfg core.Config, timer core.TimerDriver, vt *core.VirtualTimer) (*Machine, error) {
	board := NewBoard(cfg)
	core.SetGPIODriver(board)
	core.SetTimerDriver(timer)

	fw, err := core.NewFirmware(cfg, nil)
	if err != nil {
		return nil, err
	}
	return &Machine{Board: board, Firmware: fw, virtual: vt}, nil
}

// Run starts the firmware and blocks until ctx is done
func (m *Machine) Run(ctx context.Context) error {
	err := m.Firmware.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Step advances a virtual machine by ticks timer periods, then runs one
// pass of the main loop so the display shows the new time
func (m *Machine) Step(ticks int) error {
	if m.virtual == nil {
		return errRealtime
	}
	if !m.started {
		if err := m.Firmware.Start(); err != nil {
			return err
		}
		m.started = true
	}
	m.virtual.Tick(ticks)
	m.Firmware.Controller.Step()
	return nil
}

// Tap presses and releases an input across two main-loop passes
func (m *Machine) Tap(pin core.GPIOPin) error {
	m.Board.Press(pin)
	if err := m.Step(0); err != nil {
		return err
	}
	m.Board.Release(pin)
	return m.Step(0)
}

// Time decodes the time currently latched on the display
func (m *Machine) Time() (core.ClockTime, bool) {
	return ReadTime(m.Board.Frame())
}
