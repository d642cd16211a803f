//go:build linux && !tinygo

package main

import (
	"segclock/core"

	"github.com/stianeikeland/go-rpio/v4"
)

// RPIOGPIODriver implements the GPIODriver interface on a Raspberry Pi
// through /dev/gpiomem. Pin numbers are BCM numbers.
type RPIOGPIODriver struct {
	configuredPins map[core.GPIOPin]rpio.Pin
	outputs        map[core.GPIOPin]bool
}

// NewRPIOGPIODriver creates a driver. rpio.Open must already have succeeded.
func NewRPIOGPIODriver() *RPIOGPIODriver {
	return &RPIOGPIODriver{
		configuredPins: make(map[core.GPIOPin]rpio.Pin),
		outputs:        make(map[core.GPIOPin]bool),
	}
}

// ConfigureOutput configures a pin as a digital output
func (d *RPIOGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		if !d.outputs[pin] {
			return core.ErrPinConflict
		}
		return nil
	}

	p := rpio.Pin(pin)
	p.Output()
	d.configuredPins[pin] = p
	d.outputs[pin] = true
	return nil
}

// ConfigureInputPullUp configures a pin as an input with the SoC pull-up
func (d *RPIOGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	if _, exists := d.configuredPins[pin]; exists {
		if d.outputs[pin] {
			return core.ErrPinConflict
		}
		return nil
	}

	p := rpio.Pin(pin)
	p.Input()
	p.PullUp()
	d.configuredPins[pin] = p
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *RPIOGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	p, exists := d.configuredPins[pin]
	if !exists {
		if err := d.ConfigureOutput(pin); err != nil {
			return err
		}
		p = d.configuredPins[pin]
	}

	if value {
		p.High()
	} else {
		p.Low()
	}
	return nil
}

// GetPin reads the current pin state
func (d *RPIOGPIODriver) GetPin(pin core.GPIOPin) (bool, error) {
	p, exists := d.configuredPins[pin]
	if !exists {
		return true, nil
	}
	return p.Read() == rpio.High, nil
}
