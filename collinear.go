// Interactive feet-of-perpendicular collinearity figures for Go.
//
// Drop the altitudes AD and BE of a triangle ABC, then drop perpendiculars from
// D onto AB, BE and AC. Their feet P, Q and S always lie on one line, for any
// triangle. This package computes that figure, renders it, and lets a pointer
// drag the vertices around while it is redrawn.
//
// The packages underneath can be used directly: geom for the kernel,
// construction for the pipeline, scene for the draggable model and its
// controller, and render for drawing.
package collinear

import (
	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/geom"
)

type Point = geom.Point
type Triangle = construction.Triangle
type Construction = construction.Construction

// Compute the figure for the triangle abc. With extended set, the third
// altitude CF and the foot R on it are included.
//
// A degenerate triangle (coincident or collinear vertices) yields an error
// satisfying errors.Is(err, geom.ErrDegenerateLine).
func Construct(a, b, c Point, extended bool) (*Construction, error) {
	variant := construction.Basic
	if extended {
		variant = construction.Extended
	}
	return construction.Compute(Triangle{A: a, B: b, C: c}, variant)
}
