// Package render paints the triangle and its construction onto a Canvas.
package render

import (
	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/geom"
	"github.com/osuushi/collinear/internal/logging"
	"github.com/osuushi/collinear/scene"
)

type Renderer struct {
	Theme Theme
}

func New(theme Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// DrawPoint draws a filled, outlined circle with its label centered above it.
func (r *Renderer) DrawPoint(c Canvas, p geom.Point, label string, style PointStyle) {
	c.Circle(p.X, p.Y, style)
	c.Text(label, p.X, p.Y-style.Radius-r.Theme.Label.Offset, r.Theme.Label)
}

func (r *Renderer) DrawLine(c Canvas, a, b geom.Point, style LineStyle) {
	c.Line(a.X, a.Y, b.X, b.Y, style)
}

// DrawExtendedLine draws the faded infinite line through a and b, running
// ExtensionLength past each of them. Coincident points have no direction, so
// nothing is drawn.
func (r *Renderer) DrawExtendedLine(c Canvas, a, b geom.Point) {
	length := geom.Distance(a, b)
	if length == 0 {
		return
	}
	// Lerp past both ends: t is measured in units of |ab|
	overshoot := r.Theme.ExtensionLength / length
	start := a.Lerp(b, -overshoot)
	end := a.Lerp(b, 1+overshoot)
	r.DrawLine(c, start, end, r.Theme.Extension)
}

var sides = [3][2]construction.Label{
	{construction.A, construction.B},
	{construction.B, construction.C},
	{construction.C, construction.A},
}

// Draw clears the canvas and paints the whole figure for the scene's current
// vertices, back to front:
//
//  1. faded extensions of the sides and the altitudes projected onto
//  2. the sides
//  3. the altitudes from the vertices
//  4. the perpendiculars from D
//  5. the collinearity line through the two outermost feet
//  6. every point with its label
//
// If the triangle is degenerate the derived layers are skipped and the
// construction error is returned after the vertices are drawn.
func (r *Renderer) Draw(c Canvas, s *scene.Scene) (*construction.Construction, error) {
	c.Clear(r.Theme.Background)

	built, err := s.Construct()
	at := func(l construction.Label) geom.Point {
		if built != nil {
			p, _ := built.Point(l)
			return p
		}
		return s.Vertices[vertexIndex(l)].Point
	}

	for _, side := range sides {
		r.DrawExtendedLine(c, at(side[0]), at(side[1]))
	}
	if built != nil {
		for _, line := range construction.AltitudeLines(built.Variant) {
			r.DrawExtendedLine(c, at(line[0]), at(line[1]))
		}
	}

	for _, side := range sides {
		r.DrawLine(c, at(side[0]), at(side[1]), r.Theme.Side)
	}

	if built != nil {
		steps := built.Steps()
		for _, tier := range []construction.Tier{construction.Primary, construction.Secondary} {
			style := r.Theme.PrimaryPerpendicular
			if tier == construction.Secondary {
				style = r.Theme.SecondaryPerpendicular
			}
			for _, step := range steps {
				if step.Tier == tier {
					r.DrawLine(c, at(step.From), at(step.Target), style)
				}
			}
		}

		first, second := built.Highlight()
		r.DrawLine(c, at(first), at(second), r.Theme.Collinearity)
	}

	for i, v := range s.Vertices {
		style := r.Theme.Vertex
		style.Radius = v.Radius
		r.DrawPoint(c, v.Point, construction.Vertices[i].String(), style)
	}

	if built == nil {
		logging.Logger().Warn("skipping derived points", "error", err)
		return nil, err
	}

	for _, tier := range []construction.Tier{construction.Primary, construction.Secondary} {
		style := r.Theme.pointStyle(r.Theme.AltitudeFoot)
		if tier == construction.Secondary {
			style = r.Theme.pointStyle(r.Theme.CollinearPoint)
		}
		for _, step := range built.Steps() {
			if step.Tier == tier {
				r.DrawPoint(c, at(step.Target), step.Target.String(), style)
			}
		}
	}
	return built, nil
}

func vertexIndex(l construction.Label) int {
	for i, v := range construction.Vertices {
		if v == l {
			return i
		}
	}
	panic("render: not a vertex: " + l.String())
}
