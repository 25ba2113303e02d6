package geom

import (
	"math"

	"github.com/pkg/errors"
)

// Returned when the two points defining a line coincide, so the line has no
// direction to project onto.
var ErrDegenerateLine = errors.New("degenerate line: reference points coincide")

// Returned when an input coordinate is NaN or infinite.
var ErrNonFinite = errors.New("non-finite coordinate")

// Orthogonally project p onto the infinite line through l1 and l2.
//
// The scalar projection is t = ((p - l1) · (l2 - l1)) / |l2 - l1|², and the
// foot is l1 + t(l2 - l1). Only an exactly zero line length is rejected; a
// very short line still has a well defined (if ill conditioned) foot.
func FootOfPerpendicular(p, l1, l2 Point) (Point, error) {
	if !p.IsFinite() || !l1.IsFinite() || !l2.IsFinite() {
		return Point{}, ErrNonFinite
	}
	d := l2.Sub(l1).Vec()
	lengthSquared := d.Dot(d)
	if math.IsInf(lengthSquared, 0) {
		return Point{}, ErrNonFinite
	}
	if lengthSquared == 0 {
		return Point{}, ErrDegenerateLine
	}
	t := p.Sub(l1).Vec().Dot(d) / lengthSquared
	return l1.Add(FromVec(d.Mul(t))), nil
}
