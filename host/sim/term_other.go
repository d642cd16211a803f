//go:build !linux && !darwin

package sim

import (
	"context"
	"errors"
	"io"
	"os"
)

// RunTerminal needs termios; use the window or headless mode instead
func RunTerminal(ctx context.Context, m *Machine, in *os.File, out io.Writer) error {
	return errors.New("sim: terminal mode is not supported on this platform")
}
