package construction

import (
	"fmt"

	"github.com/osuushi/collinear/geom"
)

// The full set of points for one frame. A Construction is built fresh by
// Compute and never modified afterwards.
type Construction struct {
	Variant Variant
	points  map[Label]geom.Point
	order   []Label
}

// Compute evaluates the step table for the variant against the triangle.
//
// If a reference line is degenerate the pipeline stops at that step, and the
// result is nil with a *DegenerateError.
func Compute(t Triangle, v Variant) (result *Construction, err error) {
	defer func() {
		recoveredErr := handlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	c := &Construction{
		Variant: v,
		points:  make(map[Label]geom.Point, 10),
	}
	c.set(A, t.A)
	c.set(B, t.B)
	c.set(C, t.C)
	for _, step := range Steps(v) {
		c.apply(step)
	}
	return c, nil
}

func (c *Construction) apply(step Step) {
	from := c.mustGet(step.From)
	l1 := c.mustGet(step.Line[0])
	l2 := c.mustGet(step.Line[1])
	foot, err := geom.FootOfPerpendicular(from, l1, l2)
	if err != nil {
		throw(&DegenerateError{Step: step.Target, Line: step.Line, Err: err})
	}
	c.set(step.Target, foot)
}

func (c *Construction) set(l Label, p geom.Point) {
	c.points[l] = p
	c.order = append(c.order, l)
}

// Reading a label before its step ran means the step table is out of order,
// which is a bug rather than a property of the input.
func (c *Construction) mustGet(l Label) geom.Point {
	p, ok := c.points[l]
	if !ok {
		panic(fmt.Sprintf("construction: %s read before it was computed", l))
	}
	return p
}

func (c *Construction) Point(l Label) (geom.Point, bool) {
	p, ok := c.points[l]
	return p, ok
}

// Labels in the order they were computed: vertices first, then each step.
func (c *Construction) Labels() []Label {
	return append([]Label(nil), c.order...)
}

func (c *Construction) Steps() []Step {
	return Steps(c.Variant)
}

// The labels expected to be collinear: the targets of the secondary steps.
func (c *Construction) Collinear() []Label {
	var labels []Label
	for _, step := range c.Steps() {
		if step.Tier == Secondary {
			labels = append(labels, step.Target)
		}
	}
	return labels
}

func (c *Construction) CollinearPoints() []geom.Point {
	labels := c.Collinear()
	points := make([]geom.Point, len(labels))
	for i, l := range labels {
		points[i] = c.points[l]
	}
	return points
}

// The two collinear points furthest apart, which the highlight line spans.
func (c *Construction) Highlight() (Label, Label) {
	labels := c.Collinear()
	i, j, _ := ExtremalPair(c.CollinearPoints())
	return labels[i], labels[j]
}

func (c *Construction) Residual() float64 {
	return Residual(c.CollinearPoints())
}
