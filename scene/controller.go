package scene

import (
	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/geom"
	"github.com/osuushi/collinear/internal/logging"
)

// Pointer tolerance beyond a vertex's radius for grabbing it.
const DefaultHitSlop = 5

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// The pointer affordance a host should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrab
	CursorGrabbing
)

// Controller turns pointer events into vertex drags. It owns no drawing; it
// calls redraw whenever the scene changed.
type Controller struct {
	scene   *Scene
	redraw  func()
	clamp   bool
	slop    float64
	state   State
	grabbed int
	cursor  Cursor
}

type Option func(*Controller)

// WithClamping toggles keeping dragged vertices inside the canvas. On by
// default.
func WithClamping(clamp bool) Option {
	return func(c *Controller) { c.clamp = clamp }
}

// WithHitSlop sets how far outside a vertex's radius a press still grabs it.
func WithHitSlop(slop float64) Option {
	return func(c *Controller) { c.slop = slop }
}

func NewController(s *Scene, redraw func(), opts ...Option) *Controller {
	c := &Controller{
		scene:   s,
		redraw:  redraw,
		clamp:   true,
		slop:    DefaultHitSlop,
		grabbed: -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Scene() *Scene {
	return c.scene
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Cursor() Cursor {
	return c.cursor
}

func (c *Controller) HitSlop() float64 {
	return c.slop
}

// SetHitSlop changes the grab tolerance, for hosts whose pointer resolution
// changes at run time.
func (c *Controller) SetHitSlop(slop float64) {
	c.slop = slop
}

// Grabbed returns the index of the vertex being dragged.
func (c *Controller) Grabbed() (int, bool) {
	return c.grabbed, c.state == Dragging
}

func (c *Controller) PointerDown(p geom.Point) {
	i, ok := c.scene.VertexAt(p, c.slop)
	if !ok {
		return
	}
	c.state = Dragging
	c.grabbed = i
	c.cursor = CursorGrabbing
	logging.Logger().Debug("grabbed vertex", "label", construction.Vertices[i], "x", p.X, "y", p.Y)
}

func (c *Controller) PointerMove(p geom.Point) {
	if c.state != Dragging {
		// Hover only changes the affordance
		if _, ok := c.scene.VertexAt(p, c.slop); ok {
			c.cursor = CursorGrab
		} else {
			c.cursor = CursorDefault
		}
		return
	}
	if !c.scene.MoveVertex(c.grabbed, p, c.clamp) {
		logging.Logger().Warn("ignored non-finite pointer position", "x", p.X, "y", p.Y)
		return
	}
	c.draw()
}

func (c *Controller) PointerUp() {
	c.release()
}

// PointerLeave ends a drag the same way a release does.
func (c *Controller) PointerLeave() {
	c.release()
}

func (c *Controller) release() {
	if c.state != Dragging {
		return
	}
	logging.Logger().Debug("released vertex", "label", construction.Vertices[c.grabbed])
	c.state = Idle
	c.grabbed = -1
	c.cursor = CursorDefault
}

// Reset restores the original vertex positions and redraws. The drag state is
// left alone: resetting mid-drag keeps the same vertex grabbed, and the next
// move picks up from the pointer.
func (c *Controller) Reset() {
	c.scene.Reset()
	logging.Logger().Debug("reset vertices", "state", c.state)
	c.draw()
}

func (c *Controller) Handle(e Event) {
	switch e.Kind {
	case PointerDown:
		c.PointerDown(e.Point)
	case PointerMove:
		c.PointerMove(e.Point)
	case PointerUp:
		c.PointerUp()
	case PointerLeave:
		c.PointerLeave()
	case ResetRequest:
		c.Reset()
	}
}

func (c *Controller) draw() {
	if c.redraw != nil {
		c.redraw()
	}
}
