//go:build !tinygo

package core

import (
	"sync"
	"time"
)

// TickerTimer is a TimerDriver for hosted targets (Linux boards, simulator).
// The handler runs on its own goroutine, which plays the part of the
// interrupt: it preempts nothing, but it runs concurrently with the main loop.
type TickerTimer struct {
	mu      sync.Mutex
	period  time.Duration
	handler func()
	stop    chan struct{}
	done    chan struct{}
}

// NewTickerTimer creates a stopped ticker timer
func NewTickerTimer() *TickerTimer {
	return &TickerTimer{}
}

// Configure sets the period and handler. Must be called while stopped.
func (t *TickerTimer) Configure(period time.Duration, handler func()) error {
	if period <= 0 {
		return ErrInvalidPeriod
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.period = period
	t.handler = handler
	return nil
}

// Reload is a no-op: time.Ticker reloads itself and drops ticks for slow
// handlers instead of drifting
func (t *TickerTimer) Reload() {}

// Start launches the interrupt goroutine
func (t *TickerTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil || t.handler == nil {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.loop(t.period, t.handler, t.stop, t.done)
}

// Stop halts the interrupt goroutine and waits for it to exit
func (t *TickerTimer) Stop() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (t *TickerTimer) loop(period time.Duration, handler func(), stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			handler()
		case <-stop:
			return
		}
	}
}
