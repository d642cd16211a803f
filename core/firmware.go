package core

import (
	"context"
	"errors"
)

var ErrDriverMissing = errors.New("driver not configured")

// Firmware bundles the shared state, the time base and the main loop
type Firmware struct {
	Config     Config
	State      *State
	TimeBase   *TimeBase
	Controller *Controller
	Display    *Multiplexer
}

// NewFirmware validates cfg and wires every component to the registered
// GPIO and timer drivers. If bus is nil the segment bus is driven through
// GPIO one line at a time.
func NewFirmware(cfg Config, bus SegmentBus) (*Firmware, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gpio := GetGPIODriver()
	if gpio == nil || timerDriver == nil {
		return nil, ErrDriverMissing
	}

	if bus == nil {
		gb, err := NewGPIOSegmentBus(gpio, cfg.Segments)
		if err != nil {
			return nil, err
		}
		bus = gb
	}
	mux, err := NewMultiplexer(gpio, bus, cfg.DigitSelects, cfg.DigitDwell)
	if err != nil {
		return nil, err
	}
	modeIn, err := NewInput(gpio, cfg.ModeSwitch, cfg.DebounceDelay, cfg.LevelTriggered)
	if err != nil {
		return nil, err
	}
	startStop, err := NewInput(gpio, cfg.StartStop, cfg.DebounceDelay, cfg.LevelTriggered)
	if err != nil {
		return nil, err
	}

	state := NewState()
	return &Firmware{
		Config:     cfg,
		State:      state,
		TimeBase:   NewTimeBase(state, timerDriver, cfg.TicksPerSecond),
		Controller: NewController(state, mux, modeIn, startStop),
		Display:    mux,
	}, nil
}

// Start arms the periodic timer interrupt
func (f *Firmware) Start() error {
	DebugPrintln("timebase: " + itoa(int(f.Config.TickPeriod.Milliseconds())) +
		"ms x " + utoa(uint32(f.Config.TicksPerSecond)))
	return f.TimeBase.Start(f.Config.TickPeriod)
}

// Run starts the time base and runs the main loop until ctx is done
func (f *Firmware) Run(ctx context.Context) error {
	if err := f.Start(); err != nil {
		return err
	}
	defer f.TimeBase.Stop()
	return f.Controller.Run(ctx)
}
