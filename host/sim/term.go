//go:build linux || darwin

package sim

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"segclock/core"

	"golang.org/x/sys/unix"
)

// How long a key tap holds an input LOW. Longer than one main-loop pass so
// the firmware always sees it.
const keyHold = 150 * time.Millisecond

const terminalRefresh = 50 * time.Millisecond

func tcget(fd uintptr) (*unix.Termios, error) {
	p, err := unix.IoctlGetTermios(int(fd), getTermios)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func tcset(fd uintptr, p *unix.Termios) error {
	return unix.IoctlSetTermios(int(fd), setTermios, p)
}

// RunTerminal runs m in real time, redrawing the display on out and reading
// single keys from in: m taps the mode switch, space or s taps start/stop,
// q quits.
func RunTerminal(ctx context.Context, m *Machine, in *os.File, out io.Writer) error {
	saved, err := tcget(in.Fd())
	if err != nil {
		return fmt.Errorf("sim: terminal: %w", err)
	}
	raw := *saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := tcset(in.Fd(), &raw); err != nil {
		return fmt.Errorf("sim: terminal: %w", err)
	}
	defer tcset(in.Fd(), saved)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	keys := make(chan byte)
	go readKeys(in, keys)

	cfg := m.Firmware.Config
	refresh := time.NewTicker(terminalRefresh)
	defer refresh.Stop()
	for {
		select {
		case <-ctx.Done():
			return <-done
		case err := <-done:
			return err
		case k := <-keys:
			switch k {
			case 'm', 'M':
				tap(m.Board, cfg.ModeSwitch)
			case ' ', 's', 'S':
				tap(m.Board, cfg.StartStop)
			case 'q', 'Q', 3:
				cancel()
			}
		case <-refresh.C:
			fmt.Fprintf(out, "\x1b[H\x1b[2J%s\r\n\r\n%-9s [m] mode  [space] start/stop  [q] quit\r\n",
				crlf(Render(m.Board.Frame())), m.Firmware.State.Mode())
		}
	}
}

func readKeys(in io.Reader, keys chan<- byte) {
	var buf [1]byte
	for {
		n, err := in.Read(buf[:])
		if err != nil {
			return
		}
		if n == 1 {
			keys <- buf[0]
		}
	}
}

func tap(b *Board, pin core.GPIOPin) {
	b.Press(pin)
	time.AfterFunc(keyHold, func() { b.Release(pin) })
}

// crlf converts line endings for a terminal in raw mode
func crlf(s string) string {
	out := make([]byte, 0, len(s)+4)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, '\r')
		}
		out = append(out, s[i])
	}
	return string(out)
}
