package core

import "testing"

const testButton GPIOPin = 15

func TestInputConfiguresPullUp(t *testing.T) {
	gpio := newMockGPIODriver()
	if _, err := NewInput(gpio, testButton, DefaultDebounceDelay, false); err != nil {
		t.Fatalf("NewInput failed: %v", err)
	}
	if !gpio.inputs[testButton] {
		t.Errorf("pin %d not configured as pulled-up input", testButton)
	}
}

func TestInputEdgeTriggered(t *testing.T) {
	waits := noDelay(t)
	gpio := newMockGPIODriver()
	in, err := NewInput(gpio, testButton, DefaultDebounceDelay, false)
	if err != nil {
		t.Fatalf("NewInput failed: %v", err)
	}

	// Idle line reads HIGH
	if pressed, _ := in.Pressed(); pressed {
		t.Fatal("press registered on an idle line")
	}

	// Held for several passes: one press only
	gpio.pins[testButton] = false
	presses := 0
	for i := 0; i < 10; i++ {
		pressed, err := in.Pressed()
		if err != nil {
			t.Fatalf("Pressed failed: %v", err)
		}
		if pressed {
			presses++
		}
	}
	if presses != 1 {
		t.Errorf("expected 1 press while held, got %d", presses)
	}
	if len(*waits) != 1 || (*waits)[0] != DefaultDebounceDelay {
		t.Errorf("expected one debounce wait of %v, got %v", DefaultDebounceDelay, *waits)
	}

	// Release and press again: second press registers
	gpio.pins[testButton] = true
	if pressed, _ := in.Pressed(); pressed {
		t.Error("press registered on release")
	}
	gpio.pins[testButton] = false
	if pressed, _ := in.Pressed(); !pressed {
		t.Error("second press not registered after release")
	}
}

func TestInputLevelTriggered(t *testing.T) {
	noDelay(t)
	gpio := newMockGPIODriver()
	in, err := NewInput(gpio, testButton, DefaultDebounceDelay, true)
	if err != nil {
		t.Fatalf("NewInput failed: %v", err)
	}

	gpio.pins[testButton] = false
	presses := 0
	for i := 0; i < 5; i++ {
		if pressed, _ := in.Pressed(); pressed {
			presses++
		}
	}
	if presses != 5 {
		t.Errorf("level-triggered input: expected 5 presses while held, got %d", presses)
	}
}

func TestInputReadError(t *testing.T) {
	noDelay(t)
	gpio := newMockGPIODriver()
	in, err := NewInput(gpio, testButton, DefaultDebounceDelay, false)
	if err != nil {
		t.Fatalf("NewInput failed: %v", err)
	}
	gpio.fail = true
	gpio.failPin = testButton

	pressed, err := in.Pressed()
	if err != errMockPin {
		t.Errorf("expected errMockPin, got %v", err)
	}
	if pressed {
		t.Error("press registered on a read error")
	}
}
