package core

import "time"

// Timer represents a scheduled event on a TimerList
type Timer struct {
	WakeTime uint64
	Handler  func(*Timer) uint8
	Next     *Timer
}

const (
	SF_DONE       = 0
	SF_RESCHEDULE = 1
)

// TimerList is a software timer queue sorted by wake time
type TimerList struct {
	head *Timer
	now  uint64
}

// Now returns the list's current time in timer counts
func (l *TimerList) Now() uint64 {
	return l.now
}

// Schedule adds a timer to the list
func (l *TimerList) Schedule(t *Timer) {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	l.insert(t)
}

// Remove takes a timer off the list if it is queued
func (l *TimerList) Remove(t *Timer) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for p := &l.head; *p != nil; p = &(*p).Next {
		if *p == t {
			*p = t.Next
			t.Next = nil
			return
		}
	}
}

// insert inserts a timer in sorted order by WakeTime
func (l *TimerList) insert(t *Timer) {
	if l.head == nil || t.WakeTime < l.head.WakeTime {
		t.Next = l.head
		l.head = t
		return
	}

	current := l.head
	for current.Next != nil && current.Next.WakeTime <= t.WakeTime {
		current = current.Next
	}

	t.Next = current.Next
	current.Next = t
}

// AdvanceTo moves time forward to now, running every timer that falls due
// in wake order. Handlers see Now() equal to their own wake time.
func (l *TimerList) AdvanceTo(now uint64) {
	for l.head != nil && l.head.WakeTime <= now {
		timer := l.head
		l.head = timer.Next
		timer.Next = nil

		l.now = timer.WakeTime
		if timer.Handler(timer) == SF_RESCHEDULE {
			l.insert(timer)
		}
	}
	l.now = now
}

// VirtualTimer is a deterministic TimerDriver driven by a TimerList instead
// of hardware. Tests and the headless simulator advance it explicitly.
type VirtualTimer struct {
	list    TimerList
	timer   Timer
	period  uint64 // in timer counts
	handler func()
	running bool
}

// NewVirtualTimer creates a stopped virtual timer
func NewVirtualTimer() *VirtualTimer {
	return &VirtualTimer{}
}

// Configure sets the period and the handler run on each expiry
func (v *VirtualTimer) Configure(period time.Duration, handler func()) error {
	if _, err := ReloadValue(period); err != nil {
		return err
	}
	v.period = uint64(TimerFromUS(uint32(period / time.Microsecond)))
	v.handler = handler
	v.timer.Handler = v.fire
	return nil
}

// Reload re-arms the timer one period after the current expiry
func (v *VirtualTimer) Reload() {
	v.timer.WakeTime = v.list.Now() + v.period
}

// Start arms the first expiry one period from now
func (v *VirtualTimer) Start() {
	if v.running || v.handler == nil {
		return
	}
	v.running = true
	v.timer.WakeTime = v.list.Now() + v.period
	v.list.Schedule(&v.timer)
}

// Stop disarms the timer
func (v *VirtualTimer) Stop() {
	if !v.running {
		return
	}
	v.running = false
	v.list.Remove(&v.timer)
}

// Tick advances virtual time by exactly n periods
func (v *VirtualTimer) Tick(n int) {
	for i := 0; i < n; i++ {
		v.list.AdvanceTo(v.list.Now() + v.period)
	}
}

// Advance moves virtual time forward by d
func (v *VirtualTimer) Advance(d time.Duration) {
	v.list.AdvanceTo(v.list.Now() + uint64(d/time.Microsecond)*(TimerFreq/TimerPrescale)/1000000)
}

// fire runs the handler. The handler is expected to call Reload, which sets
// the next wake time; without it the timer is one-shot.
func (v *VirtualTimer) fire(t *Timer) uint8 {
	wake := t.WakeTime
	v.handler()
	if !v.running || t.WakeTime == wake {
		return SF_DONE
	}
	return SF_RESCHEDULE
}
