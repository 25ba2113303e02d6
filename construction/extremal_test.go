package construction

import (
	"math/rand"
	"testing"

	"github.com/osuushi/collinear/geom"
	"github.com/stretchr/testify/assert"
)

func TestExtremalPair(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		_, _, ok := ExtremalPair(nil)
		assert.False(t, ok)
		_, _, ok = ExtremalPair([]geom.Point{{X: 1, Y: 1}})
		assert.False(t, ok)
	})

	t.Run("picks the outermost pair", func(t *testing.T) {
		points := []geom.Point{{X: 5, Y: 5}, {X: 0, Y: 0}, {X: 10, Y: 10}}
		i, j, ok := ExtremalPair(points)
		assert.True(t, ok)
		assert.Equal(t, 1, i)
		assert.Equal(t, 2, j)
	})

	t.Run("ties go to the first pair visited", func(t *testing.T) {
		square := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}

		// (0,1) and (2,3) are both diagonals of the unit square
		i, j, _ := ExtremalPair(square)
		assert.Equal(t, [2]int{0, 1}, [2]int{i, j})

		// Coincident points tie at zero
		same := []geom.Point{{X: 3, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 3}}
		i, j, ok := ExtremalPair(same)
		assert.True(t, ok)
		assert.Equal(t, [2]int{0, 1}, [2]int{i, j})

		// PS ties QS, PQ is shorter: PS wins, as it is visited first
		collinear := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 4, Y: 0}}
		i, j, _ = ExtremalPair(collinear)
		assert.Equal(t, [2]int{0, 2}, [2]int{i, j})
	})

	t.Run("selected pair dominates every other pair", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for n := 2; n < 8; n++ {
			points := make([]geom.Point, n)
			for k := range points {
				points[k] = geom.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
			}
			i, j, ok := ExtremalPair(points)
			assert.True(t, ok)
			best := geom.Distance(points[i], points[j])
			for a := range points {
				for b := a + 1; b < n; b++ {
					assert.GreaterOrEqual(t, best, geom.Distance(points[a], points[b]))
				}
			}
		}
	})
}

func TestResidual(t *testing.T) {
	line := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 6}, {X: -2, Y: -4}}
	assert.InDelta(t, 0, Residual(line), geom.Tolerance)

	// A right isoceles triangle: |cross| = 2, span² = 2
	triangle := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	assert.InDelta(t, 0.5, Residual(triangle), geom.Tolerance)

	assert.Equal(t, 0.0, Residual(triangle[:2]))
	assert.Equal(t, 0.0, Residual([]geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}))
}
