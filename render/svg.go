package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// SVGCanvas records drawing calls as SVG elements in paint order.
type SVGCanvas struct {
	width, height float64
	body          bytes.Buffer
}

func NewSVGCanvas(width, height float64) *SVGCanvas {
	return &SVGCanvas{width: width, height: height}
}

func (s *SVGCanvas) Size() (float64, float64) {
	return s.width, s.height
}

// Clear drops everything drawn so far, like a raster clear would.
func (s *SVGCanvas) Clear(background Color) {
	s.body.Reset()
	fmt.Fprintf(&s.body, `<rect x="0" y="0" width="%s" height="%s" fill="%s" fill-opacity="%s"/>`+"\n",
		num(s.width), num(s.height), background.Hex(), num(background.A))
}

func (s *SVGCanvas) Line(x1, y1, x2, y2 float64, style LineStyle) {
	fmt.Fprintf(&s.body, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-opacity="%s" stroke-width="%s" stroke-linecap="round"/>`+"\n",
		num(x1), num(y1), num(x2), num(y2), style.Color.Hex(), num(style.Color.A), num(style.Width))
}

func (s *SVGCanvas) Circle(x, y float64, style PointStyle) {
	fmt.Fprintf(&s.body, `<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s" stroke="%s" stroke-opacity="%s" stroke-width="%s"/>`+"\n",
		num(x), num(y), num(style.Radius), style.Fill.Hex(), num(style.Fill.A),
		style.Stroke.Hex(), num(style.Stroke.A), num(style.StrokeWidth))
}

func (s *SVGCanvas) Text(text string, x, y float64, style LabelStyle) {
	fmt.Fprintf(&s.body, `<text x="%s" y="%s" fill="%s" font-family="sans-serif" font-weight="bold" font-size="%s" text-anchor="middle" dominant-baseline="middle">`,
		num(x), num(y), style.Color.Hex(), num(style.Size))
	xml.EscapeText(&s.body, []byte(text))
	s.body.WriteString("</text>\n")
}

// WriteTo writes the complete document.
func (s *SVGCanvas) WriteTo(w io.Writer) (int64, error) {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(s.width), num(s.height), num(s.width), num(s.height))
	doc.Write(s.body.Bytes())
	doc.WriteString("</svg>\n")
	return doc.WriteTo(w)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
