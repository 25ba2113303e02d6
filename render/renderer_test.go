package render

import (
	"strings"
	"testing"

	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawOrder(t *testing.T) {
	theme := DefaultTheme()
	theme.ColorByRole = true
	r := New(theme)
	canvas := &recorder{}

	built, err := r.Draw(canvas, referenceScene(construction.Basic))
	require.NoError(t, err)
	require.NotNil(t, built)

	assert.Equal(t, "clear", canvas.ops[0])
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "P", "Q", "S"}, canvas.labels())

	// Layer sizes: 4 extensions, 3 sides, 2 altitudes, 3 feet from D, 1 highlight
	layers := []struct {
		style LineStyle
		count int
	}{
		{theme.Extension, 4},
		{theme.Side, 3},
		{theme.PrimaryPerpendicular, 2},
		{theme.SecondaryPerpendicular, 3},
		{theme.Collinearity, 1},
	}
	offset := 1
	for _, layer := range layers {
		assert.Equal(t, layer.count, canvas.linesIn(layer.style.Color))
		for i := 0; i < layer.count; i++ {
			assert.Contains(t, canvas.ops[offset+i], "line "+layer.style.Color.String()+" ")
		}
		offset += layer.count
	}

	// Points come after every line, vertices first
	assert.Equal(t, "circle "+theme.Vertex.Fill.String()+" r8", canvas.ops[offset])
	assert.Equal(t, "circle "+theme.AltitudeFoot.Fill.String()+" r6", canvas.ops[offset+6])
	assert.Equal(t, "circle "+theme.CollinearPoint.Fill.String()+" r6", canvas.ops[offset+10])
}

func TestDrawHighlightSpansOutermostFeet(t *testing.T) {
	r := New(DefaultTheme())
	canvas := &recorder{}
	built, err := r.Draw(canvas, referenceScene(construction.Basic))
	require.NoError(t, err)

	p, _ := built.Point(construction.P)
	s, _ := built.Point(construction.S)
	highlight := canvas.lines(r.Theme.Collinearity.Color)
	require.Len(t, highlight, 1)
	assert.Contains(t, highlight[0], fmtPoint(p.X, p.Y))
	assert.Contains(t, highlight[0], fmtPoint(s.X, s.Y))
}

func TestDrawExtended(t *testing.T) {
	theme := DefaultTheme()
	r := New(theme)
	canvas := &recorder{}

	built, err := r.Draw(canvas, referenceScene(construction.Extended))
	require.NoError(t, err)
	assert.Equal(t, construction.Extended, built.Variant)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "P", "Q", "R", "S"}, canvas.labels())
	assert.Equal(t, 5, canvas.linesIn(theme.Extension.Color))
	assert.Equal(t, 3, canvas.linesIn(theme.PrimaryPerpendicular.Color))
	assert.Equal(t, 4, canvas.linesIn(theme.SecondaryPerpendicular.Color))
}

func TestDrawSingleColorPoints(t *testing.T) {
	theme := DefaultTheme()
	theme.ColorByRole = false
	canvas := &recorder{}
	_, err := New(theme).Draw(canvas, referenceScene(construction.Basic))
	require.NoError(t, err)

	vertexFill := theme.Vertex.Fill.String()
	circles := 0
	for _, op := range canvas.ops {
		if strings.HasPrefix(op, "circle") {
			assert.Contains(t, op, vertexFill)
			circles++
		}
	}
	assert.Equal(t, 8, circles)
}

func TestDrawDegenerate(t *testing.T) {
	s := referenceScene(construction.Basic)
	s.Vertices[1].Point = s.Vertices[0].Point
	canvas := &recorder{}

	built, err := New(DefaultTheme()).Draw(canvas, s)
	assert.Nil(t, built)
	assert.True(t, errors.Is(err, geom.ErrDegenerateLine))

	// Sides and vertices are still drawn; AB has no extension
	assert.Equal(t, []string{"A", "B", "C"}, canvas.labels())
	assert.Equal(t, 2, canvas.linesIn(DefaultTheme().Extension.Color))
	assert.Equal(t, 3, canvas.linesIn(DefaultTheme().Side.Color))
	assert.Equal(t, 0, canvas.linesIn(DefaultTheme().Collinearity.Color))
}

func TestDrawIsIdempotent(t *testing.T) {
	r := New(DefaultTheme())
	s := referenceScene(construction.Extended)
	first, second := &recorder{}, &recorder{}
	_, err := r.Draw(first, s)
	require.NoError(t, err)
	_, err = r.Draw(second, s)
	require.NoError(t, err)
	assert.Equal(t, first.ops, second.ops)
}

func TestDrawExtendedLine(t *testing.T) {
	theme := DefaultTheme()
	theme.ExtensionLength = 100
	r := New(theme)

	t.Run("extends both ends", func(t *testing.T) {
		canvas := &recorder{}
		r.DrawExtendedLine(canvas, geom.Point{X: 0, Y: 0}, geom.Point{X: 30, Y: 40})
		require.Len(t, canvas.ops, 1)
		assert.Equal(t, "line "+theme.Extension.Color.String()+" -60,-80 90,120", canvas.ops[0])
	})

	t.Run("coincident points draw nothing", func(t *testing.T) {
		canvas := &recorder{}
		r.DrawExtendedLine(canvas, geom.Point{X: 5, Y: 5}, geom.Point{X: 5, Y: 5})
		assert.Empty(t, canvas.ops)
	})
}

func TestDrawPoint(t *testing.T) {
	canvas := &labelRecorder{}
	r := New(DefaultTheme())
	r.DrawPoint(canvas, geom.Point{X: 100, Y: 100}, "A", r.Theme.Vertex)
	// radius 8 plus the 12 pixel gap
	assert.Equal(t, geom.Point{X: 100, Y: 80}, canvas.at)
	assert.Equal(t, "A", canvas.text)
}

// Helpers

type labelRecorder struct {
	recorder
	text string
	at   geom.Point
}

func (l *labelRecorder) Text(s string, x, y float64, style LabelStyle) {
	l.text = s
	l.at = geom.Point{X: x, Y: y}
}
