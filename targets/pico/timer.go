//go:build rp2040

package main

import (
	"device/rp"
	"runtime/interrupt"
	"time"

	"segclock/core"
)

// The TinyGo runtime sleeps on alarm 0; the time base owns alarm 1.
const alarmBit = 1 << 1

// activeAlarm is read from the interrupt handler, which cannot capture
var activeAlarm *AlarmTimer

// AlarmTimer drives the time base from TIMER alarm 1. The hardware counter
// runs at 1MHz, the same count rate the core timer constants describe.
type AlarmTimer struct {
	period   uint32 // counts
	deadline uint32
	handler  func()
	intr     interrupt.Interrupt
}

// NewAlarmTimer claims alarm 1 and its interrupt line
func NewAlarmTimer() *AlarmTimer {
	t := &AlarmTimer{}
	activeAlarm = t
	t.intr = interrupt.New(rp.IRQ_TIMER_IRQ_1, func(interrupt.Interrupt) {
		// Write-1-to-clear
		rp.TIMER.INTR.Set(alarmBit)
		if a := activeAlarm; a != nil && a.handler != nil {
			a.handler()
		}
	})
	return t
}

// Configure sets the period and the handler run from the alarm interrupt
func (t *AlarmTimer) Configure(period time.Duration, handler func()) error {
	if _, err := core.ReloadValue(period); err != nil {
		return err
	}
	t.period = core.TimerFromUS(uint32(period / time.Microsecond))
	t.handler = handler
	return nil
}

// Reload arms the next alarm one period after the previous deadline, so
// handler latency never accumulates. A deadline already in the past is
// pushed out from now, because the alarm only matches on equality.
func (t *AlarmTimer) Reload() {
	t.deadline += t.period
	now := rp.TIMER.TIMERAWL.Get()
	if int32(t.deadline-now) <= 0 {
		t.deadline = now + t.period
	}
	rp.TIMER.ALARM1.Set(t.deadline)
}

// Start arms the first alarm and enables its interrupt
func (t *AlarmTimer) Start() {
	rp.TIMER.INTR.Set(alarmBit)
	rp.TIMER.INTE.SetBits(alarmBit)
	t.deadline = rp.TIMER.TIMERAWL.Get() + t.period
	rp.TIMER.ALARM1.Set(t.deadline)
	t.intr.Enable()
}

// Stop disarms the alarm and masks its interrupt
func (t *AlarmTimer) Stop() {
	rp.TIMER.ARMED.Set(alarmBit)
	rp.TIMER.INTE.ClearBits(alarmBit)
	t.intr.Disable()
}
