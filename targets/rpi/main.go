//go:build linux && !tinygo

// rpi runs the clock firmware on a Raspberry Pi header.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"segclock/core"

	"github.com/stianeikeland/go-rpio/v4"
)

// boardConfig keeps clear of the I2C, UART and ID EEPROM pins
func boardConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.Segments = [core.SegmentBusWidth]core.GPIOPin{4, 5, 6, 7, 8, 9, 10, 11}
	cfg.DigitSelects = [core.DigitCount]core.GPIOPin{16, 17, 18, 19, 20, 21}
	cfg.ModeSwitch = 22
	cfg.StartStop = 23
	return cfg
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "segclock:", err)
		os.Exit(1)
	}
}

func run() error {
	core.SetDebugWriter(func(s string) { fmt.Fprintln(os.Stderr, s) })
	core.SetDebugEnabled(true)
	core.InitAsyncDebug()

	if err := rpio.Open(); err != nil {
		return fmt.Errorf("open gpio: %w", err)
	}
	defer rpio.Close()

	core.SetGPIODriver(NewRPIOGPIODriver())
	core.SetTimerDriver(core.NewTickerTimer())

	fw, err := core.NewFirmware(boardConfig(), nil)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run blanks the display on the way out
	err = fw.Run(ctx)
	if errors.Is(err, context.Canceled) {
		core.DumpEventRing()
		return nil
	}
	return err
}
