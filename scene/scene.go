// Package scene holds the draggable triangle and the controller that maps
// pointer input onto it.
package scene

import (
	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/geom"
)

// Indexes into Scene.Vertices.
const (
	A = iota
	B
	C
)

// A user-draggable triangle vertex. Origin is where Reset puts it back.
type Vertex struct {
	geom.Point
	Origin geom.Point
	Radius float64
}

type Scene struct {
	Vertices [3]Vertex
	Width    float64
	Height   float64
	Variant  construction.Variant
}

func New(width, height float64, initial construction.Triangle, radius float64, variant construction.Variant) *Scene {
	s := &Scene{Width: width, Height: height, Variant: variant}
	for i, p := range [3]geom.Point{initial.A, initial.B, initial.C} {
		s.Vertices[i] = Vertex{Point: p, Origin: p, Radius: radius}
	}
	return s
}

func (s *Scene) Triangle() construction.Triangle {
	return construction.Triangle{
		A: s.Vertices[A].Point,
		B: s.Vertices[B].Point,
		C: s.Vertices[C].Point,
	}
}

// Construct derives the rest of the figure from the current vertex positions.
// Nothing is cached; every call computes a fresh construction.
func (s *Scene) Construct() (*construction.Construction, error) {
	return construction.Compute(s.Triangle(), s.Variant)
}

// Reset puts every vertex back at its original position.
func (s *Scene) Reset() {
	for i := range s.Vertices {
		s.Vertices[i].Point = s.Vertices[i].Origin
	}
}

// VertexAt returns the first vertex, in A, B, C order, whose hit circle
// (radius plus slop) contains p.
func (s *Scene) VertexAt(p geom.Point, slop float64) (int, bool) {
	for i, v := range s.Vertices {
		if geom.Distance(p, v.Point) <= v.Radius+slop {
			return i, true
		}
	}
	return -1, false
}

// MoveVertex sets vertex i to p. With clamp set, each axis is kept within
// [radius, dimension - radius] so the vertex stays fully on the canvas.
// A non-finite p leaves the vertex where it is and reports false.
func (s *Scene) MoveVertex(i int, p geom.Point, clamp bool) bool {
	if !p.IsFinite() {
		return false
	}
	v := &s.Vertices[i]
	if clamp {
		p.X = geom.Clamp(p.X, v.Radius, s.Width-v.Radius)
		p.Y = geom.Clamp(p.Y, v.Radius, s.Height-v.Radius)
	}
	v.Point = p
	return true
}
