package core

import "context"

// Controller is the cooperative main loop: it renders the time, polls the
// mode switch and the start/stop button, and updates the shared state.
type Controller struct {
	state     *State
	mux       *Multiplexer
	modeIn    *Input
	startStop *Input
}

// NewController wires the main loop to its display and inputs
func NewController(state *State, mux *Multiplexer, modeIn, startStop *Input) *Controller {
	return &Controller{
		state:     state,
		mux:       mux,
		modeIn:    modeIn,
		startStop: startStop,
	}
}

// Step runs one pass of the main loop.
// Errors are logged and the pass carries on; nothing here is fatal.
func (c *Controller) Step() {
	if err := c.mux.Scan(c.state.Time()); err != nil {
		c.halError("scan", err)
	}

	pressed, err := c.modeIn.Pressed()
	if err != nil {
		c.halError("mode switch", err)
	} else if pressed {
		mode := c.state.ToggleMode()
		RecordEvent(EvtModeToggle, uint32(mode), 0)
		DebugPrintln("mode: " + mode.String() + ", time reset")
	}

	if c.state.Mode() != ModeStopwatch {
		return
	}
	pressed, err = c.startStop.Pressed()
	if err != nil {
		c.halError("start/stop", err)
	} else if pressed {
		running := c.state.ToggleRun()
		var v uint32
		if running {
			v = 1
			DebugPrintln("stopwatch: running at " + c.state.Time().String())
		} else {
			DebugPrintln("stopwatch: stopped at " + c.state.Time().String())
		}
		RecordEvent(EvtRunToggle, v, 0)
	}
}

// Run loops Step until ctx is done. Firmware passes context.Background()
// and never returns.
func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			if err := c.mux.Blank(); err != nil {
				c.halError("blank", err)
			}
			return ctx.Err()
		default:
		}
		c.Step()
	}
}

func (c *Controller) halError(what string, err error) {
	RecordEvent(EvtHALError, GetTicks(), 0)
	DebugAsync("hal error in " + what + ": " + err.Error())
}
