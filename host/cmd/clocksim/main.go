// clocksim runs the six-digit clock firmware against a simulated board.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"segclock/core"
	"segclock/host/serial"
	"segclock/host/sim"

	"github.com/alecthomas/kong"
)

type cli struct {
	Tick           time.Duration `name:"tick" default:"50ms" help:"timer interrupt period"`
	TicksPerSecond uint16        `name:"ticks-per-second" default:"20" help:"interrupts per clock second"`
	Dwell          time.Duration `name:"dwell" default:"2ms" help:"per-digit on time"`
	Debounce       time.Duration `name:"debounce" default:"200ms" help:"wait after a press"`
	LevelTriggered bool          `name:"level-triggered" help:"act on every pass while an input is held"`
	Verbose        bool          `name:"verbose" short:"v" help:"log firmware events to stderr"`
	DebugPort      string        `name:"debug-port" help:"mirror firmware debug output to this serial device"`
	DebugBaud      int           `name:"debug-baud" default:"115200" help:"debug serial baud rate"`

	Window   windowCmd   `cmd:"" default:"1" help:"show the display in a desktop window (hold M / Space)"`
	Term     termCmd     `cmd:"" help:"show the display in the terminal (m / space / q)"`
	Headless headlessCmd `cmd:"" help:"run simulated time as fast as possible and print the result"`
}

func main() {
	var c cli
	ctx := kong.Parse(&c)
	err := ctx.Run(&c)
	ctx.FatalIfErrorf(err)
}

func (c *cli) config() core.Config {
	cfg := core.DefaultConfig()
	cfg.TickPeriod = c.Tick
	cfg.TicksPerSecond = c.TicksPerSecond
	cfg.DigitDwell = c.Dwell
	cfg.DebounceDelay = c.Debounce
	cfg.LevelTriggered = c.LevelTriggered
	return cfg
}

// setupDebug routes firmware debug output. stderr is skipped when the
// terminal itself is the display.
func (c *cli) setupDebug(stderr bool) (func(), error) {
	cleanup := func() {}
	var writers []core.DebugWriter
	if c.Verbose && stderr {
		writers = append(writers, func(s string) { fmt.Fprintln(os.Stderr, s) })
	}
	if c.DebugPort != "" {
		cfg := serial.DefaultConfig(c.DebugPort)
		cfg.Baud = c.DebugBaud
		port, err := serial.Open(cfg)
		if err != nil {
			return cleanup, err
		}
		sink := serial.NewDebugSink(port)
		writers = append(writers, sink.Writer())
		cleanup = func() { sink.Close() }
	}
	if len(writers) == 0 {
		return cleanup, nil
	}

	core.SetDebugWriter(func(s string) {
		for _, w := range writers {
			w(s)
		}
	})
	core.SetDebugEnabled(true)
	core.InitAsyncDebug()
	return cleanup, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

type windowCmd struct{}

func (w *windowCmd) Run(c *cli) error {
	cleanup, err := c.setupDebug(true)
	defer cleanup()
	if err != nil {
		return err
	}
	m, err := sim.NewMachine(c.config())
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()
	return sim.RunWindow(ctx, m)
}

type termCmd struct{}

func (t *termCmd) Run(c *cli) error {
	cleanup, err := c.setupDebug(false)
	defer cleanup()
	if err != nil {
		return err
	}
	m, err := sim.NewMachine(c.config())
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()
	return sim.RunTerminal(ctx, m, os.Stdin, os.Stdout)
}

type headlessCmd struct {
	Seconds int    `name:"seconds" default:"60" help:"simulated seconds to run"`
	Mode    string `name:"mode" default:"clock" help:"clock or stopwatch (started at zero)"`
	Frames  bool   `name:"frames" help:"render every simulated second"`
}

func (h *headlessCmd) Run(c *cli) error {
	if h.Mode != "clock" && h.Mode != "stopwatch" {
		return fmt.Errorf("--mode must be clock or stopwatch, got %q", h.Mode)
	}
	cleanup, err := c.setupDebug(true)
	defer cleanup()
	if err != nil {
		return err
	}
	m, err := sim.NewVirtualMachine(c.config())
	if err != nil {
		return err
	}
	_, err = sim.RunHeadless(os.Stdout, m, sim.HeadlessOptions{
		Seconds:   h.Seconds,
		Stopwatch: h.Mode == "stopwatch",
		Verbose:   h.Frames,
	})
	if c.Verbose {
		core.DumpEventRing()
	}
	return err
}
