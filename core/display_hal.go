package core

// SegmentBusWidth is the number of lines on the shared segment bus (a-g, dp)
const SegmentBusWidth = 8

// SegmentBus drives the segment lines shared by all six digits.
// Bit i of the pattern goes to segment line i; a cleared bit lights the
// segment (active-low).
type SegmentBus interface {
	WriteSegments(pattern uint8) error
}

// GPIOSegmentBus drives the segment bus one GPIO line at a time
type GPIOSegmentBus struct {
	gpio GPIODriver
	pins [SegmentBusWidth]GPIOPin
}

// NewGPIOSegmentBus configures the eight segment pins as outputs, all HIGH (off)
func NewGPIOSegmentBus(gpio GPIODriver, pins [SegmentBusWidth]GPIOPin) (*GPIOSegmentBus, error) {
	for _, pin := range pins {
		if err := gpio.ConfigureOutput(pin); err != nil {
			return nil, err
		}
		if err := gpio.SetPin(pin, true); err != nil {
			return nil, err
		}
	}
	return &GPIOSegmentBus{gpio: gpio, pins: pins}, nil
}

// WriteSegments drives every segment line from the pattern bits
func (b *GPIOSegmentBus) WriteSegments(pattern uint8) error {
	for i, pin := range b.pins {
		if err := b.gpio.SetPin(pin, pattern&(1<<i) != 0); err != nil {
			return err
		}
	}
	return nil
}
