//go:build !tinygo && !cgo

package sim

import (
	"context"
	"errors"
)

// RunWindow needs cgo for the graphics backend
func RunWindow(ctx context.Context, m *Machine) error {
	return errors.New("sim: window mode requires cgo; try the term or headless command")
}
