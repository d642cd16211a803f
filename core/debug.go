package core

import "sync/atomic"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event kinds captured in the event ring
const (
	EvtSecond      = 1 // Time advanced by one second
	EvtSecondHeld  = 2 // Second boundary with the stopwatch stopped
	EvtAdvanceLost = 3 // Advance dropped because the time was reset
	EvtModeToggle  = 4 // Mode switched
	EvtRunToggle   = 5 // Stopwatch started/stopped
	EvtPress       = 6 // Debounced input press registered
	EvtHALError    = 7 // A driver call failed in the main loop
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

// eventSlot is one ring entry. Each field is atomic because the ring is
// written from the timer interrupt and read from the main loop.
type eventSlot struct {
	kind  atomic.Uint32
	clock atomic.Uint32
	v1    atomic.Uint32
	v2    atomic.Uint32
}

// Event is a decoded ring entry
type Event struct {
	Kind   uint8
	Clock  uint32 // Interrupt count when the event was recorded
	Value1 uint32 // Context-dependent value
	Value2 uint32 // Context-dependent value
}

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	eventRing     [EventRingSize]eventSlot
	eventRingHead atomic.Uint32

	// Async debug output channel
	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, stderr, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// InitAsyncDebug starts the async debug output goroutine
// Call this from main() after SetDebugWriter
func InitAsyncDebug() {
	debugChan = make(chan string, 16)
	go debugOutputWorker(debugChan)
}

func debugOutputWorker(ch <-chan string) {
	for msg := range ch {
		if debugPrintln != nil {
			debugPrintln(msg)
		}
	}
}

// DebugPrintln writes a debug message using the platform-specific writer.
// Blocks on the writer, so never call it from the timer interrupt.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugAsync queues a debug message for async output (non-blocking)
// Drops the message if the channel is full or async output is not running
func DebugAsync(msg string) {
	if !debugEnabled || debugChan == nil {
		return
	}
	select {
	case debugChan <- msg:
	default:
	}
}

// RecordEvent captures an event in the ring buffer.
// Safe to call from the timer interrupt: no locks, no allocation. Fields are
// stored one at a time, so Events can return a half-written slot if it runs
// concurrently with a writer; the ring is for post-mortem dumps.
func RecordEvent(kind uint8, value1, value2 uint32) {
	idx := (eventRingHead.Add(1) - 1) % EventRingSize
	slot := &eventRing[idx]
	slot.kind.Store(uint32(kind))
	slot.clock.Store(GetTicks())
	slot.v1.Store(value1)
	slot.v2.Store(value2)
}

// Events returns the ring contents from oldest to newest, skipping empty slots
func Events() []Event {
	start := eventRingHead.Load()
	out := make([]Event, 0, EventRingSize)
	for i := uint32(0); i < EventRingSize; i++ {
		slot := &eventRing[(start+i)%EventRingSize]
		kind := slot.kind.Load()
		if kind == 0 {
			continue
		}
		out = append(out, Event{
			Kind:   uint8(kind),
			Clock:  slot.clock.Load(),
			Value1: slot.v1.Load(),
			Value2: slot.v2.Load(),
		})
	}
	return out
}

// EventName returns a printable name for an event kind
func EventName(kind uint8) string {
	switch kind {
	case EvtSecond:
		return "SECOND"
	case EvtSecondHeld:
		return "HELD"
	case EvtAdvanceLost:
		return "ADVANCE_LOST!"
	case EvtModeToggle:
		return "MODE"
	case EvtRunToggle:
		return "RUN"
	case EvtPress:
		return "PRESS"
	case EvtHALError:
		return "HAL_ERROR!"
	default:
		return "UNKNOWN"
	}
}

// DumpEventRing outputs the event ring through the debug writer
func DumpEventRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENT] === Event Ring Dump ===")
	debugPrintln("[EVENT] Total ticks: " + utoa(GetTicks()))
	for _, evt := range Events() {
		line := "[EVENT] " + EventName(evt.Kind) +
			" tick=" + utoa(evt.Clock)
		switch evt.Kind {
		case EvtSecond, EvtSecondHeld, EvtAdvanceLost:
			line += " time=" + unpackClockTime(evt.Value1).String()
		default:
			line += " v1=" + utoa(evt.Value1)
		}
		line += " v2=" + utoa(evt.Value2)
		debugPrintln(line)
	}
	debugPrintln("[EVENT] === End Dump ===")
}

// ClearEventRing clears the event buffer
func ClearEventRing() {
	for i := range eventRing {
		slot := &eventRing[i]
		slot.kind.Store(0)
		slot.clock.Store(0)
		slot.v1.Store(0)
		slot.v2.Store(0)
	}
	eventRingHead.Store(0)
}
