package collinear

import (
	"github.com/osuushi/collinear/config"
	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/render"
	"github.com/osuushi/collinear/scene"
)

// Called after every frame, with the 1-based frame number and the result of
// drawing it.
type FrameFunc func(frame int, built *construction.Construction, err error)

// A Session wires a scene, its controller and a renderer to one canvas, so
// that every change the controller makes is painted straight away.
type Session struct {
	Scene      *scene.Scene
	Controller *scene.Controller
	Renderer   *render.Renderer
	Canvas     render.Canvas
	OnFrame    FrameFunc
	frames     int
}

// NewSession builds the starting scene from cfg. Extra controller options are
// applied after the ones cfg implies.
func NewSession(cfg config.Config, canvas render.Canvas, opts ...scene.Option) *Session {
	s := &Session{
		Scene:    cfg.Scene(),
		Renderer: render.New(cfg.Theme),
		Canvas:   canvas,
	}
	opts = append(cfg.ControllerOptions(), opts...)
	s.Controller = scene.NewController(s.Scene, s.redraw, opts...)
	return s
}

// Draw paints a full frame.
func (s *Session) Draw() (*construction.Construction, error) {
	built, err := s.Renderer.Draw(s.Canvas, s.Scene)
	s.frames++
	if s.OnFrame != nil {
		s.OnFrame(s.frames, built, err)
	}
	return built, err
}

func (s *Session) redraw() {
	s.Draw()
}

func (s *Session) Frames() int {
	return s.frames
}
