package serial

import (
	"sync"

	"segclock/core"
)

// DebugSink writes firmware debug lines to a port, CRLF terminated.
// Write errors are counted, not reported: the firmware never blocks on
// its debug channel.
type DebugSink struct {
	mu     sync.Mutex
	port   Port
	errors uint32
}

// NewDebugSink creates a sink writing to port
func NewDebugSink(port Port) *DebugSink {
	return &DebugSink{port: port}
}

// Writer returns the sink as a core.DebugWriter
func (s *DebugSink) Writer() core.DebugWriter {
	return s.WriteLine
}

// WriteLine writes one line
func (s *DebugSink) WriteLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, 0, len(line)+2)
	buf = append(buf, line...)
	buf = append(buf, '\r', '\n')
	if _, err := s.port.Write(buf); err != nil {
		s.errors++
	}
}

// Errors returns how many lines failed to write
func (s *DebugSink) Errors() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors
}

// Close closes the underlying port
func (s *DebugSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port.Close()
}
