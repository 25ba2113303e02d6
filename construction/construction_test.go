package construction

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/osuushi/collinear/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const residualTolerance = 1e-9

func TestComputeReferenceTriangle(t *testing.T) {
	tri := Triangle{
		A: geom.Point{X: 200, Y: 150},
		B: geom.Point{X: 600, Y: 150},
		C: geom.Point{X: 400, Y: 450},
	}
	c, err := Compute(tri, Basic)
	require.NoError(t, err)

	expected := map[Label]geom.Point{
		D: {X: 476.9230769230769, Y: 334.61538461538464},
		E: {X: 323.0769230769231, Y: 334.61538461538464},
		P: {X: 476.9230769230769, Y: 150},
		Q: {X: 429.585798816568, Y: 263.60946745562137},
		S: {X: 370.41420118343194, Y: 405.62130177514797},
	}
	for label, want := range expected {
		got, ok := c.Point(label)
		require.True(t, ok, "missing %s", label)
		assert.InDelta(t, want.X, got.X, geom.Tolerance, "%s.X", label)
		assert.InDelta(t, want.Y, got.Y, geom.Tolerance, "%s.Y", label)
	}

	d, _ := c.Point(D)
	assert.InDelta(t, 0, geom.Cross(tri.B, tri.C, d)/(geom.Distance(tri.B, tri.C)*geom.Distance(tri.B, d)), geom.Tolerance)

	assert.Equal(t, []Label{P, Q, S}, c.Collinear())
	assert.Less(t, c.Residual(), 1e-6)

	// P and S are the outermost of the three
	first, second := c.Highlight()
	assert.Equal(t, P, first)
	assert.Equal(t, S, second)
}

func TestComputeOrder(t *testing.T) {
	tri := Triangle{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 10, Y: 0}, C: geom.Point{X: 3, Y: 8}}

	basic, err := Compute(tri, Basic)
	require.NoError(t, err)
	assert.Equal(t, []Label{A, B, C, D, E, P, Q, S}, basic.Labels())

	extended, err := Compute(tri, Extended)
	require.NoError(t, err)
	assert.Equal(t, []Label{A, B, C, D, E, F, P, Q, R, S}, extended.Labels())
	assert.Equal(t, []Label{P, Q, R, S}, extended.Collinear())

	_, ok := basic.Point(F)
	assert.False(t, ok)
}

func TestCollinearityRandomized(t *testing.T) {
	for _, variant := range []Variant{Basic, Extended} {
		t.Run(fmt.Sprintf("With %s variant", variant), func(t *testing.T) {
			rng := rand.New(rand.NewSource(3))
			checked := 0
			for checked < 500 {
				tri := randomTriangle(rng)
				// Skip near-flat triangles; those are covered by the degenerate tests
				if math.Abs(geom.Cross(tri.A, tri.B, tri.C)) < 1000 {
					continue
				}
				c, err := Compute(tri, variant)
				require.NoError(t, err)
				assert.Less(t, c.Residual(), residualTolerance, "triangle %+v", tri)
				checked++
			}
		})
	}
}

func TestComputeDegenerate(t *testing.T) {
	t.Run("coincident A and B", func(t *testing.T) {
		p := geom.Point{X: 100, Y: 100}
		c, err := Compute(Triangle{A: p, B: p, C: geom.Point{X: 300, Y: 400}}, Basic)
		assert.Nil(t, c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, geom.ErrDegenerateLine))

		var degenerate *DegenerateError
		require.True(t, errors.As(err, &degenerate))
		// D and E have usable lines; P is the first step projecting onto AB
		assert.Equal(t, P, degenerate.Step)
		assert.Equal(t, [2]Label{A, B}, degenerate.Line)
	})

	t.Run("coincident B and C", func(t *testing.T) {
		p := geom.Point{X: 100, Y: 100}
		_, err := Compute(Triangle{A: geom.Point{X: 300, Y: 400}, B: p, C: p}, Basic)
		var degenerate *DegenerateError
		require.True(t, errors.As(err, &degenerate))
		assert.Equal(t, D, degenerate.Step)
	})

	t.Run("flat triangle", func(t *testing.T) {
		// E lands on B, so the line BE has no direction
		tri := Triangle{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 5, Y: 0}, C: geom.Point{X: 10, Y: 0}}
		_, err := Compute(tri, Basic)
		var degenerate *DegenerateError
		require.True(t, errors.As(err, &degenerate))
		assert.Equal(t, Q, degenerate.Step)
		assert.Equal(t, "computing Q onto line BE: degenerate line: reference points coincide", err.Error())
	})
}

func TestOutOfOrderStepPanics(t *testing.T) {
	c := &Construction{points: map[Label]geom.Point{A: {}, B: {X: 1}, C: {Y: 1}}}
	assert.Panics(t, func() {
		c.apply(Step{Target: P, From: D, Line: [2]Label{A, B}, Tier: Secondary})
	})
}

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := handlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			throw(errors.New("kaboom!"))
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestAltitudeLines(t *testing.T) {
	assert.Equal(t, [][2]Label{{B, E}}, AltitudeLines(Basic))
	assert.Equal(t, [][2]Label{{B, E}, {C, F}}, AltitudeLines(Extended))
}

// Helpers

func randomTriangle(rng *rand.Rand) Triangle {
	point := func() geom.Point {
		return geom.Point{X: rng.Float64() * 800, Y: rng.Float64() * 600}
	}
	return Triangle{A: point(), B: point(), C: point()}
}
