//go:build !tinygo && cgo

package sim

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Window geometry in pixels
const (
	digitWidth  = 60
	digitHeight = 110
	segThick    = 10
	digitGap    = 20
	colonGap    = 30
	margin      = 30

	windowWidth  = 2*margin + 6*digitWidth + 3*digitGap + 2*colonGap
	windowHeight = 2*margin + digitHeight
)

var (
	colorOn  = color.RGBA{0xff, 0x30, 0x20, 0xff}
	colorOff = color.RGBA{0x30, 0x08, 0x08, 0xff}
	colorBg  = color.RGBA{0x08, 0x08, 0x08, 0xff}
)

// segRects holds each segment's rectangle relative to the digit origin,
// in bus order a..g
var segRects = [7][4]float32{
	{segThick, 0, digitWidth - 2*segThick, segThick},                             // a
	{digitWidth - segThick, segThick, segThick, digitHeight/2 - segThick},        // b
	{digitWidth - segThick, digitHeight / 2, segThick, digitHeight/2 - segThick}, // c
	{segThick, digitHeight - segThick, digitWidth - 2*segThick, segThick},        // d
	{0, digitHeight / 2, segThick, digitHeight/2 - segThick},                     // e
	{0, segThick, segThick, digitHeight/2 - segThick},                            // f
	{segThick, digitHeight/2 - segThick/2, digitWidth - 2*segThick, segThick},    // g
}

// RunWindow runs m in real time in a desktop window. Holding M holds the
// mode switch LOW and holding Space holds start/stop LOW, like the real
// buttons. It blocks until the window closes or ctx is done.
func RunWindow(ctx context.Context, m *Machine) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	g := &clockGame{ctx: ctx, m: m}
	ebiten.SetWindowTitle("segclock")
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	cancel()
	runErr := <-done
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return runErr
}

type clockGame struct {
	ctx context.Context
	m   *Machine
}

func (g *clockGame) Update() error {
	if g.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	cfg := g.m.Firmware.Config
	g.m.Board.SetInput(cfg.ModeSwitch, !ebiten.IsKeyPressed(ebiten.KeyM))
	g.m.Board.SetInput(cfg.StartStop, !ebiten.IsKeyPressed(ebiten.KeySpace))
	return nil
}

func (g *clockGame) Draw(screen *ebiten.Image) {
	screen.Fill(colorBg)

	x := float32(margin)
	for i, pattern := range g.m.Board.Frame() {
		if i > 0 {
			x += digitGap
			if i%2 == 0 {
				drawColon(screen, x, float32(margin))
				x += colonGap
			}
		}
		drawDigit(screen, x, float32(margin), pattern)
		x += digitWidth
	}
}

func (g *clockGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

func drawDigit(dst *ebiten.Image, x, y float32, pattern uint8) {
	for seg, r := range segRects {
		clr := colorOff
		if lit(pattern, 1<<seg) {
			clr = colorOn
		}
		vector.DrawFilledRect(dst, x+r[0], y+r[1], r[2], r[3], clr, false)
	}
}

func drawColon(dst *ebiten.Image, x, y float32) {
	cx := x + colonGap/2 - segThick
	vector.DrawFilledRect(dst, cx-segThick, y+digitHeight/3, segThick, segThick, colorOn, false)
	vector.DrawFilledRect(dst, cx-segThick, y+2*digitHeight/3, segThick, segThick, colorOn, false)
}
