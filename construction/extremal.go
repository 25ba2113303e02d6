package construction

import (
	"math"

	"github.com/osuushi/collinear/geom"
)

// Pick the pair of points with the greatest distance between them.
//
// Pairs are visited in order (0,1), (0,2), ..., (1,2), ... and a later pair
// only replaces the current best if it is strictly further apart. On an exact
// tie the first pair visited wins. ok is false when there are fewer than two
// points.
func ExtremalPair(points []geom.Point) (i, j int, ok bool) {
	best := math.Inf(-1)
	for a := 0; a < len(points); a++ {
		for b := a + 1; b < len(points); b++ {
			if d := geom.Distance(points[a], points[b]); d > best {
				best = d
				i, j, ok = a, b, true
			}
		}
	}
	return i, j, ok
}

// How far a set of points is from lying on one line, independent of scale.
// This is the largest |cross| over every triple, divided by the squared span
// of the set. Zero for perfectly collinear points and for sets too small or
// too tight to measure.
func Residual(points []geom.Point) float64 {
	if len(points) < 3 {
		return 0
	}
	i, j, _ := ExtremalPair(points)
	span := geom.Distance(points[i], points[j])
	if span == 0 {
		return 0
	}

	var worst float64
	for a := 0; a < len(points); a++ {
		for b := a + 1; b < len(points); b++ {
			for c := b + 1; c < len(points); c++ {
				worst = math.Max(worst, math.Abs(geom.Cross(points[a], points[b], points[c])))
			}
		}
	}
	return worst / (span * span)
}
