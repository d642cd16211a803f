// Package serial mirrors firmware debug output onto a serial port, the way
// the board's debug UART would carry it.
package serial

import (
	"io"
)

// Port is the write side of a serial link. The debug UART is output only.
type Port interface {
	io.WriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate of the debug UART
	Baud int
}

// DefaultConfig returns the debug UART settings used by the boards
func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   115200,
	}
}
