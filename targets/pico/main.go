//go:build rp2040

package main

import (
	"context"
	"machine"

	"segclock/core"
)

func main() {
	// Disable watchdog on boot to clear any previous state
	if err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0}); err != nil {
		return
	}

	core.SetDebugWriter(func(s string) {
		machine.Serial.Write([]byte(s))
		machine.Serial.Write([]byte("\r\n"))
	})
	core.SetDebugEnabled(true)
	core.InitAsyncDebug()

	core.SetGPIODriver(NewRPGPIODriver())
	core.SetTimerDriver(NewAlarmTimer())

	cfg := core.DefaultConfig()

	// Fall back to the GPIO bus when PIO is unavailable
	var bus core.SegmentBus
	pioBus := NewPIOSegmentBus(0, 0)
	if err := pioBus.Init(cfg.Segments); err != nil {
		core.DebugPrintln("pio segment bus: " + err.Error() + ", using gpio")
	} else {
		bus = pioBus
	}

	fw, err := core.NewFirmware(cfg, bus)
	if err != nil {
		core.DebugPrintln("init: " + err.Error())
		for {
		}
	}
	core.DebugPrintln("=== segclock " + fw.State.Mode().String() + " " + fw.State.Time().String() + " ===")

	// Never returns
	fw.Run(context.Background())
}
