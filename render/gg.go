package render

import (
	"image"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
)

// Labels are bold, like the figure they imitate. The font is embedded, so a
// parse failure means a broken build rather than bad input.
func boldFont() *truetype.Font {
	labelFontOnce.Do(func() {
		f, err := truetype.Parse(gobold.TTF)
		if err != nil {
			panic(errors.Wrap(err, "parsing embedded label font"))
		}
		labelFont = f
	})
	return labelFont
}

// GGCanvas rasterizes onto a fogleman/gg context.
type GGCanvas struct {
	ctx           *gg.Context
	width, height float64
	faces         map[float64]font.Face
}

func NewGGCanvas(width, height int) *GGCanvas {
	return NewScaledGGCanvas(width, height, float64(width), float64(height))
}

// NewScaledGGCanvas makes a pixelWidth x pixelHeight raster that presents
// itself as a width x height canvas. Drawing is scaled to fit; this is how the
// terminal front-end paints a full-size figure into a handful of cells.
func NewScaledGGCanvas(pixelWidth, pixelHeight int, width, height float64) *GGCanvas {
	ctx := gg.NewContext(pixelWidth, pixelHeight)
	ctx.SetLineCap(gg.LineCapRound)
	ctx.SetLineJoin(gg.LineJoinRound)
	ctx.Scale(float64(pixelWidth)/width, float64(pixelHeight)/height)
	return &GGCanvas{
		ctx:    ctx,
		width:  width,
		height: height,
		faces:  make(map[float64]font.Face),
	}
}

func (g *GGCanvas) Size() (float64, float64) {
	return g.width, g.height
}

func (g *GGCanvas) Clear(background Color) {
	g.setColor(background)
	g.ctx.Clear()
}

func (g *GGCanvas) Line(x1, y1, x2, y2 float64, style LineStyle) {
	g.ctx.DrawLine(x1, y1, x2, y2)
	g.setColor(style.Color)
	g.ctx.SetLineWidth(style.Width)
	g.ctx.Stroke()
}

func (g *GGCanvas) Circle(x, y float64, style PointStyle) {
	g.ctx.DrawCircle(x, y, style.Radius)
	g.setColor(style.Fill)
	g.ctx.FillPreserve()
	g.setColor(style.Stroke)
	g.ctx.SetLineWidth(style.StrokeWidth)
	g.ctx.Stroke()
}

func (g *GGCanvas) Text(s string, x, y float64, style LabelStyle) {
	g.ctx.SetFontFace(g.face(style.Size))
	g.setColor(style.Color)
	g.ctx.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

func (g *GGCanvas) face(size float64) font.Face {
	if face, ok := g.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(boldFont(), &truetype.Options{Size: size})
	g.faces[size] = face
	return face
}

func (g *GGCanvas) setColor(c Color) {
	g.ctx.SetRGBA(c.R, c.G, c.B, c.A)
}

func (g *GGCanvas) Context() *gg.Context {
	return g.ctx
}

func (g *GGCanvas) Image() image.Image {
	return g.ctx.Image()
}

func (g *GGCanvas) SavePNG(path string) error {
	return errors.Wrapf(g.ctx.SavePNG(path), "saving %s", path)
}

func (g *GGCanvas) EncodePNG(w io.Writer) error {
	return errors.Wrap(g.ctx.EncodePNG(w), "encoding png")
}
