package render

import (
	"fmt"
	"strings"

	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/geom"
	"github.com/osuushi/collinear/scene"
)

// recorder is a Canvas that remembers what was drawn, as short strings.
type recorder struct {
	ops []string
}

func (r *recorder) Size() (float64, float64) { return 800, 600 }

func (r *recorder) Clear(Color) { r.ops = append(r.ops, "clear") }

func (r *recorder) Line(x1, y1, x2, y2 float64, style LineStyle) {
	r.ops = append(r.ops, fmt.Sprintf("line %s %s %s", style.Color, fmtPoint(x1, y1), fmtPoint(x2, y2)))
}

func (r *recorder) Circle(x, y float64, style PointStyle) {
	r.ops = append(r.ops, fmt.Sprintf("circle %s r%g", style.Fill, style.Radius))
}

func (r *recorder) Text(s string, x, y float64, style LabelStyle) {
	r.ops = append(r.ops, "text "+s)
}

// Labels of every text op, in paint order.
func (r *recorder) labels() []string {
	var labels []string
	for _, op := range r.ops {
		var label string
		if n, _ := fmt.Sscanf(op, "text %s", &label); n == 1 {
			labels = append(labels, label)
		}
	}
	return labels
}

// Line ops drawn with the color, in paint order.
func (r *recorder) lines(c Color) []string {
	var lines []string
	prefix := "line " + c.String() + " "
	for _, op := range r.ops {
		if strings.HasPrefix(op, prefix) {
			lines = append(lines, op)
		}
	}
	return lines
}

func (r *recorder) linesIn(c Color) int {
	return len(r.lines(c))
}

func fmtPoint(x, y float64) string {
	return fmt.Sprintf("%.0f,%.0f", x, y)
}

func referenceScene(variant construction.Variant) *scene.Scene {
	return scene.New(800, 600, construction.Triangle{
		A: geom.Point{X: 200, Y: 150},
		B: geom.Point{X: 600, Y: 150},
		C: geom.Point{X: 400, Y: 450},
	}, 8, variant)
}
