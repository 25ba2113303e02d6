package render

// Canvas is the drawing sink the renderer paints through. Coordinates are
// canvas pixels with the origin at the top left.
type Canvas interface {
	Size() (width, height float64)
	// Clear repaints the whole surface with the background color.
	Clear(background Color)
	Line(x1, y1, x2, y2 float64, style LineStyle)
	// Circle fills and then strokes a circle of style.Radius.
	Circle(x, y float64, style PointStyle)
	// Text draws s centered on (x, y), both horizontally and vertically.
	Text(s string, x, y float64, style LabelStyle)
}
