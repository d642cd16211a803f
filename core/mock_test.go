package core

import (
	"errors"
	"testing"
	"time"
)

// pinOp is one recorded SetPin call
type pinOp struct {
	pin   GPIOPin
	value bool
}

// mockGPIODriver is a test implementation of GPIODriver
type mockGPIODriver struct {
	pins    map[GPIOPin]bool
	outputs map[GPIOPin]bool
	inputs  map[GPIOPin]bool
	ops     []pinOp
	failPin GPIOPin
	fail    bool
}

func newMockGPIODriver() *mockGPIODriver {
	return &mockGPIODriver{
		pins:    make(map[GPIOPin]bool),
		outputs: make(map[GPIOPin]bool),
		inputs:  make(map[GPIOPin]bool),
	}
}

var errMockPin = errors.New("mock pin failure")

func (m *mockGPIODriver) ConfigureOutput(pin GPIOPin) error {
	m.outputs[pin] = true
	return nil
}

func (m *mockGPIODriver) ConfigureInputPullUp(pin GPIOPin) error {
	m.inputs[pin] = true
	m.pins[pin] = true
	return nil
}

func (m *mockGPIODriver) SetPin(pin GPIOPin, value bool) error {
	if m.fail && pin == m.failPin {
		return errMockPin
	}
	m.pins[pin] = value
	m.ops = append(m.ops, pinOp{pin, value})
	return nil
}

func (m *mockGPIODriver) GetPin(pin GPIOPin) (bool, error) {
	if m.fail && pin == m.failPin {
		return false, errMockPin
	}
	return m.pins[pin], nil
}

// mockBus records every pattern written to the segment bus along with the
// select lines asserted at that moment
type mockBus struct {
	gpio     *mockGPIODriver
	selects  [DigitCount]GPIOPin
	patterns []uint8
	active   [][]int
}

func (b *mockBus) WriteSegments(pattern uint8) error {
	b.patterns = append(b.patterns, pattern)
	var on []int
	for i, pin := range b.selects {
		if level, ok := b.gpio.pins[pin]; ok && !level {
			on = append(on, i)
		}
	}
	b.active = append(b.active, on)
	return nil
}

// mockTimer records the order of calls made by the time base
type mockTimer struct {
	calls   []string
	handler func()
	period  time.Duration
}

func (m *mockTimer) Configure(period time.Duration, handler func()) error {
	m.calls = append(m.calls, "configure")
	m.period = period
	m.handler = handler
	return nil
}

func (m *mockTimer) Reload() { m.calls = append(m.calls, "reload") }
func (m *mockTimer) Start()  { m.calls = append(m.calls, "start") }
func (m *mockTimer) Stop()   { m.calls = append(m.calls, "stop") }

// noDelay swaps the delay primitive for a recorder for the duration of a test
func noDelay(t *testing.T) *[]time.Duration {
	t.Helper()
	var waits []time.Duration
	SetDelay(func(d time.Duration) { waits = append(waits, d) })
	t.Cleanup(func() { SetDelay(nil) })
	return &waits
}

// setupMockDrivers registers fresh mock drivers and restores the old ones
func setupMockDrivers(t *testing.T) (*mockGPIODriver, *VirtualTimer) {
	t.Helper()
	oldGPIO, oldTimer := gpioDriver, timerDriver
	gpio := newMockGPIODriver()
	vt := NewVirtualTimer()
	SetGPIODriver(gpio)
	SetTimerDriver(vt)
	t.Cleanup(func() {
		SetGPIODriver(oldGPIO)
		SetTimerDriver(oldTimer)
	})
	return gpio, vt
}
