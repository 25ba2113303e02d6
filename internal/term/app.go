// Package term runs the figure inside a terminal. The canvas is rasterized at
// one pixel per column and two per row, and each cell shows its two pixels as
// an upper half block.
package term

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/osuushi/collinear"
	"github.com/osuushi/collinear/config"
	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/internal/logging"
	"github.com/osuushi/collinear/render"
	"github.com/osuushi/collinear/scene"
)

const halfBlock = '▀'

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

type App struct {
	screen  tcell.Screen
	session *collinear.Session
	canvas  *render.GGCanvas
	width   float64
	height  float64
	cols    int
	rows    int
	pressed bool
	summary string
	// Grab tolerance from config, and the one in effect for the current cells
	minSlop float64
	slop    float64
}

// NewApp lays the scene described by cfg out over an initialized screen.
func NewApp(screen tcell.Screen, cfg config.Config) *App {
	a := &App{screen: screen, minSlop: cfg.HitSlop}
	a.width, a.height = cfg.Size()
	a.layout()

	a.session = collinear.NewSession(cfg, a.canvas, scene.WithHitSlop(a.slop))
	a.session.OnFrame = a.present
	return a
}

func (a *App) Scene() *scene.Scene {
	return a.session.Scene
}

// Run draws the figure and handles input until a quit key or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	a.screen.HideCursor()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	a.session.Draw()
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			a.screen.Sync()
			a.layout()
			a.session.Canvas = a.canvas
			a.session.Controller.SetHitSlop(a.slop)
			a.session.Draw()
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'r':
			a.session.Controller.Reset()
		case 'e':
			s := a.session.Scene
			if s.Variant == construction.Extended {
				s.Variant = construction.Basic
			} else {
				s.Variant = construction.Extended
			}
			logging.Logger().Debug("toggled variant", "variant", s.Variant)
			a.session.Draw()
		}
	}
	return false
}

// Terminals report button state rather than press and release, so edges are
// found by comparing with the previous event.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	p := a.toCanvas(col, row)
	pressed := ev.Buttons()&tcell.Button1 != 0
	c := a.session.Controller

	switch {
	case pressed && !a.pressed:
		c.PointerDown(p)
	case !pressed && a.pressed:
		c.PointerMove(p)
		c.PointerUp()
	default:
		c.PointerMove(p)
	}
	a.pressed = pressed
	a.drawStatus()
	a.screen.Show()
}

func (a *App) layout() {
	cols, rows := a.screen.Size()
	// The last row is the status line
	a.cols = max(cols, 1)
	a.rows = max(rows-1, 1)
	a.canvas = render.NewScaledGGCanvas(a.cols, a.rows*2, a.width, a.height)

	// A cell covers many canvas pixels, so a press anywhere in the cell over a
	// vertex should grab it.
	cellW, cellH := a.width/float64(a.cols), a.height/float64(a.rows)
	a.slop = math.Max(a.minSlop, math.Max(cellW, cellH))
}

// Center of the cell in canvas coordinates.
func (a *App) toCanvas(col, row int) collinear.Point {
	return collinear.Point{
		X: (float64(col) + 0.5) * a.width / float64(a.cols),
		Y: (float64(row) + 0.5) * a.height / float64(a.rows),
	}
}

func (a *App) present(_ int, built *construction.Construction, err error) {
	img := a.canvas.Image()
	for row := 0; row < a.rows; row++ {
		for col := 0; col < a.cols; col++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(img, col, row*2)).
				Background(cellColor(img, col, row*2+1))
			a.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	a.summary = summarize(built, err)
	a.drawStatus()
	a.screen.Show()
}

// drawStatus writes the pointer state and the summary of the last frame.
func (a *App) drawStatus() {
	c := a.session.Controller
	text := fmt.Sprintf(" %s %s | %s | r reset  e extended  q quit", c.State(), cursorName(c.Cursor()), a.summary)

	_, rows := a.screen.Size()
	y := rows - 1
	runes := []rune(text)
	for x := 0; x < a.cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		a.screen.SetContent(x, y, r, nil, statusStyle)
	}
}

func summarize(built *construction.Construction, err error) string {
	if err != nil {
		return err.Error()
	}
	from, to := built.Highlight()
	return fmt.Sprintf("%s line %s%s residual %.1e", built.Variant, from, to, built.Residual())
}

func cursorName(c scene.Cursor) string {
	switch c {
	case scene.CursorGrab:
		return "(grab)"
	case scene.CursorGrabbing:
		return "(grabbing)"
	}
	return ""
}

func cellColor(img image.Image, x, y int) tcell.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
