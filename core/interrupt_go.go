//go:build !tinygo

package core

// irqState stands in for the saved interrupt mask on host Go
type irqState uintptr

// disableInterrupts is a no-op on host Go. The shared state is atomic, and
// the host "interrupt" is a goroutine that cannot be masked.
func disableInterrupts() irqState {
	return 0
}

// restoreInterrupts is a no-op on host Go
func restoreInterrupts(state irqState) {
	_ = state
}
