//go:build rp2040

package main

// PIO segment bus using tinygo-org/pio.
// One state machine shifts each pattern onto eight consecutive pins, so a
// digit's segments change in a single cycle instead of eight GPIO writes.

import (
	"errors"
	"machine"

	"segclock/core"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

var errSegmentsNotConsecutive = errors.New("pio: segment pins must be consecutive")

// buildSegmentProgram creates the segment bus program using AssemblerV0
func buildSegmentProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),                             // 0: pull block
		asm.Out(rp2pio.OutDestPins, core.SegmentBusWidth).Encode(), // 1: out pins, 8
		// .wrap
	}
}

const segmentPIOOrigin = -1 // Any free offset; the program has no jumps

// PIOSegmentBus implements core.SegmentBus on a PIO state machine
type PIOSegmentBus struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	base   machine.Pin
	offset uint8
}

// NewPIOSegmentBus creates a segment bus on the given PIO block and state
// machine. pioNum: 0 for PIO0, 1 for PIO1; smNum: 0-3.
func NewPIOSegmentBus(pioNum, smNum uint8) *PIOSegmentBus {
	pioHW := rp2pio.PIO0
	if pioNum != 0 {
		pioHW = rp2pio.PIO1
	}
	return &PIOSegmentBus{
		pio: pioHW,
		sm:  pioHW.StateMachine(smNum),
	}
}

// Init loads the program and hands the segment pins to the state machine.
// All segments are left off.
func (b *PIOSegmentBus) Init(pins [core.SegmentBusWidth]core.GPIOPin) error {
	for i := 1; i < len(pins); i++ {
		if pins[i] != pins[0]+core.GPIOPin(i) {
			return errSegmentsNotConsecutive
		}
	}
	b.base = machine.Pin(pins[0])

	b.sm.TryClaim()

	program := buildSegmentProgram()
	offset, err := b.pio.AddProgram(program, segmentPIOOrigin)
	if err != nil {
		return err
	}
	b.offset = offset

	for i := range pins {
		machine.Pin(pins[i]).Configure(machine.PinConfig{Mode: b.pio.PinMode()})
	}

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetOutPins(b.base, core.SegmentBusWidth)
	// Shift right so bit 0 lands on segment a; explicit PULL
	cfg.SetOutShift(true, false, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)

	b.sm.Init(offset, cfg)

	// Pin directions must be set after Init
	b.sm.SetPindirsConsecutive(b.base, core.SegmentBusWidth, true)
	b.sm.SetPinsConsecutive(b.base, core.SegmentBusWidth, true)

	b.sm.SetEnabled(true)
	return nil
}

// WriteSegments queues a pattern for the bus. The FIFO is four deep and
// the program drains it in two cycles, so the wait is brief.
func (b *PIOSegmentBus) WriteSegments(pattern uint8) error {
	for b.sm.IsTxFIFOFull() {
	}
	b.sm.TxPut(uint32(pattern))
	return nil
}
