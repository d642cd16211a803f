package core

import "time"

// DigitCount is the number of digit positions: HH MM SS
const DigitCount = 6

// SegmentCodes maps a decimal digit to its active-low segment pattern.
// Bit 0 is segment a through bit 6 for segment g, bit 7 is the decimal point.
// A cleared bit lights the segment.
var SegmentCodes = [10]uint8{
	0xC0, // 0
	0xF9, // 1
	0xA4, // 2
	0xB0, // 3
	0x99, // 4
	0x92, // 5
	0x82, // 6
	0xF8, // 7
	0x80, // 8
	0x90, // 9
}

// SegmentBlank turns every segment off
const SegmentBlank uint8 = 0xFF

// SegmentPattern returns the pattern for digit d, or SegmentBlank if d is
// not a decimal digit
func SegmentPattern(d uint8) uint8 {
	if int(d) >= len(SegmentCodes) {
		return SegmentBlank
	}
	return SegmentCodes[d]
}

// Digits splits t into tens/ones of hours, minutes and seconds,
// left to right
func Digits(t ClockTime) [DigitCount]uint8 {
	return [DigitCount]uint8{
		t.Hours / 10, t.Hours % 10,
		t.Minutes / 10, t.Minutes % 10,
		t.Seconds / 10, t.Seconds % 10,
	}
}

// Multiplexer renders a ClockTime onto six digits sharing one segment bus.
// Only one digit select is ever asserted, for DigitDwell, before moving on.
type Multiplexer struct {
	gpio    GPIODriver
	bus     SegmentBus
	selects [DigitCount]GPIOPin
	dwell   time.Duration
}

// NewMultiplexer configures the digit select lines as outputs, all
// de-asserted (HIGH)
func NewMultiplexer(gpio GPIODriver, bus SegmentBus, selects [DigitCount]GPIOPin, dwell time.Duration) (*Multiplexer, error) {
	m := &Multiplexer{
		gpio:    gpio,
		bus:     bus,
		selects: selects,
		dwell:   dwell,
	}
	for _, pin := range selects {
		if err := gpio.ConfigureOutput(pin); err != nil {
			return nil, err
		}
	}
	if err := m.Blank(); err != nil {
		return nil, err
	}
	return m, nil
}

// Blank de-asserts every digit select and turns the segments off
func (m *Multiplexer) Blank() error {
	for _, pin := range m.selects {
		if err := m.gpio.SetPin(pin, true); err != nil {
			return err
		}
	}
	return m.bus.WriteSegments(SegmentBlank)
}

// Scan performs one full sweep of all six digits for t.
// A failing digit is skipped so the rest of the sweep still shows; the first
// error is returned.
func (m *Multiplexer) Scan(t ClockTime) error {
	digits := Digits(t)
	var firstErr error
	for pos, d := range digits {
		if err := m.showDigit(pos, d); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// showDigit asserts one position, drives its pattern, dwells, and always
// releases the select before returning
func (m *Multiplexer) showDigit(pos int, d uint8) error {
	sel := m.selects[pos]
	if err := m.gpio.SetPin(sel, false); err != nil {
		return err
	}
	err := m.bus.WriteSegments(SegmentPattern(d))
	if err == nil {
		Delay(m.dwell)
	}
	if relErr := m.gpio.SetPin(sel, true); err == nil {
		err = relErr
	}
	return err
}
