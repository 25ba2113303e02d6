package geom

import "github.com/golang/geo/r2"

// A location in canvas pixel space. Y grows downward, like every raster
// surface we draw on.
type Point struct {
	X float64
	Y float64
}

// Vec converts the point to an r2 vector so we can borrow its arithmetic.
func (p Point) Vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func FromVec(v r2.Point) Point {
	return Point{X: v.X, Y: v.Y}
}

func (p Point) Add(other Point) Point {
	return FromVec(p.Vec().Add(other.Vec()))
}

func (p Point) Sub(other Point) Point {
	return FromVec(p.Vec().Sub(other.Vec()))
}

func (p Point) Scale(k float64) Point {
	return FromVec(p.Vec().Mul(k))
}

// Linear interpolation from p (t=0) to other (t=1). Values of t outside [0, 1]
// extrapolate along the same line.
func (p Point) Lerp(other Point, t float64) Point {
	return p.Add(other.Sub(p).Scale(t))
}
