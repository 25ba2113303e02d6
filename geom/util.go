package geom

import "math"

const Tolerance = 1e-6

// Equality is tolerance based. Derived points come out of a chain of
// projections, so exact comparison is almost never what a caller wants.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) Equal(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func Distance(p1, p2 Point) float64 {
	return p1.Sub(p2).Vec().Norm()
}

// Z component of (a - o) x (b - o). Twice the signed area of the triangle oab,
// so it is zero exactly when the three points are collinear.
func Cross(o, a, b Point) float64 {
	return a.Sub(o).Vec().Cross(b.Sub(o).Vec())
}

func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}
