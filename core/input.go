package core

import "time"

// Input is a debounced active-low input line (switch or push button).
//
// In edge-triggered mode a press registers once when the line is first seen
// LOW, after the debounce delay; the input re-arms only after the line has
// been sampled HIGH again. In level-triggered mode every pass that samples
// LOW registers a press, so a held line keeps retriggering.
type Input struct {
	gpio     GPIODriver
	pin      GPIOPin
	debounce time.Duration
	level    bool

	armed bool
}

// NewInput configures pin as an input with pull-up
func NewInput(gpio GPIODriver, pin GPIOPin, debounce time.Duration, levelTriggered bool) (*Input, error) {
	if err := gpio.ConfigureInputPullUp(pin); err != nil {
		return nil, err
	}
	return &Input{
		gpio:     gpio,
		pin:      pin,
		debounce: debounce,
		level:    levelTriggered,
		armed:    true,
	}, nil
}

// Pressed samples the line once and reports whether a press registered.
// On a press it blocks for the debounce delay before returning.
func (in *Input) Pressed() (bool, error) {
	high, err := in.gpio.GetPin(in.pin)
	if err != nil {
		return false, err
	}
	if high {
		in.armed = true
		return false, nil
	}
	if !in.level && !in.armed {
		// Still held from the previous press
		return false, nil
	}
	in.armed = false
	Delay(in.debounce)
	RecordEvent(EvtPress, uint32(in.pin), 0)
	return true, nil
}
