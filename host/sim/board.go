// Package sim runs the clock firmware against a simulated board on the host.
package sim

import (
	"fmt"
	"sync"

	"segclock/core"
)

// Board is a virtual circuit: six multiplexed digits on a shared segment bus
// plus two active-low inputs. It implements core.GPIODriver.
//
// Whatever the bus carries when a digit's select is released is latched into
// that digit's frame slot, which is what the eye would retain.
type Board struct {
	mu sync.Mutex

	cfg     core.Config
	levels  map[core.GPIOPin]bool
	outputs map[core.GPIOPin]bool
	inputs  map[core.GPIOPin]bool

	segIndex map[core.GPIOPin]int
	selIndex map[core.GPIOPin]int

	frame   [core.DigitCount]uint8
	refresh [core.DigitCount]uint64
	ghosts  uint64
}

// NewBoard creates a board wired as cfg describes. All digits start blank.
func NewBoard(cfg core.Config) *Board {
	b := &Board{
		cfg:      cfg,
		levels:   make(map[core.GPIOPin]bool),
		outputs:  make(map[core.GPIOPin]bool),
		inputs:   make(map[core.GPIOPin]bool),
		segIndex: make(map[core.GPIOPin]int),
		selIndex: make(map[core.GPIOPin]int),
	}
	for i, pin := range cfg.Segments {
		b.segIndex[pin] = i
	}
	for i, pin := range cfg.DigitSelects {
		b.selIndex[pin] = i
	}
	for i := range b.frame {
		b.frame[i] = core.SegmentBlank
	}
	return b
}

// ConfigureOutput configures a pin as a digital output
func (b *Board) ConfigureOutput(pin core.GPIOPin) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.inputs[pin] {
		return fmt.Errorf("gpio: pin %d: already an input", pin)
	}
	b.outputs[pin] = true
	if _, ok := b.levels[pin]; !ok {
		b.levels[pin] = true
	}
	return nil
}

// ConfigureInputPullUp configures a pin as an input that idles HIGH
func (b *Board) ConfigureInputPullUp(pin core.GPIOPin) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.outputs[pin] {
		return fmt.Errorf("gpio: pin %d: already an output", pin)
	}
	b.inputs[pin] = true
	b.levels[pin] = true
	return nil
}

// SetPin drives an output pin
func (b *Board) SetPin(pin core.GPIOPin, value bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.outputs[pin] {
		return fmt.Errorf("gpio: pin %d: not in output mode", pin)
	}

	if pos, ok := b.selIndex[pin]; ok {
		wasOn := !b.levels[pin]
		switch {
		case !value && !wasOn:
			if b.activeSelects() > 0 {
				b.ghosts++
			}
		case value && wasOn:
			b.frame[pos] = b.busLocked()
			b.refresh[pos]++
		}
	}
	b.levels[pin] = value
	return nil
}

// GetPin reads a pin level
func (b *Board) GetPin(pin core.GPIOPin) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.inputs[pin] && !b.outputs[pin] {
		return false, fmt.Errorf("gpio: pin %d: not configured", pin)
	}
	return b.levels[pin], nil
}

// Press pulls an input line LOW
func (b *Board) Press(pin core.GPIOPin) {
	b.SetInput(pin, false)
}

// Release lets an input line float back HIGH
func (b *Board) Release(pin core.GPIOPin) {
	b.SetInput(pin, true)
}

// SetInput forces the level on an input line
func (b *Board) SetInput(pin core.GPIOPin, level bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.levels[pin] = level
}

// Frame returns the latched pattern of every digit
func (b *Board) Frame() [core.DigitCount]uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

// Refreshes returns how many times each digit has been lit
func (b *Board) Refreshes() [core.DigitCount]uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.refresh
}

// Ghosts returns how many times a select was asserted while another digit
// was still lit
func (b *Board) Ghosts() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ghosts
}

// Bus returns the byte currently on the segment lines
func (b *Board) Bus() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.busLocked()
}

func (b *Board) busLocked() uint8 {
	var v uint8
	for pin, i := range b.segIndex {
		if b.levels[pin] {
			v |= 1 << i
		}
	}
	return v
}

func (b *Board) activeSelects() int {
	n := 0
	for pin := range b.selIndex {
		if !b.levels[pin] {
			n++
		}
	}
	return n
}
