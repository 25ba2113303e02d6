// Package config describes how a figure starts out: canvas size, initial
// vertices, construction variant, drag behaviour and theme.
package config

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/geom"
	"github.com/osuushi/collinear/render"
	"github.com/osuushi/collinear/scene"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Canvas   Canvas   `yaml:"canvas"`
	Vertices Vertices `yaml:"vertices"`
	// Adds the third altitude CF and the foot R
	Extended  bool         `yaml:"extended"`
	ClampDrag bool         `yaml:"clampDrag"`
	HitSlop   float64      `yaml:"hitSlop"`
	Theme     render.Theme `yaml:"theme"`
}

type Canvas struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// When set, Width and Height are ignored and the canvas is fitted to this
	// display area instead.
	Available *Area `yaml:"available"`
}

type Area struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Initial vertex positions. Relative positions are fractions of the canvas
// size; otherwise they are pixels.
type Vertices struct {
	Relative bool       `yaml:"relative"`
	A        geom.Point `yaml:"a"`
	B        geom.Point `yaml:"b"`
	C        geom.Point `yaml:"c"`
}

func Default() Config {
	return Config{
		Canvas: Canvas{Width: 800, Height: 600},
		Vertices: Vertices{
			Relative: true,
			A:        geom.Point{X: 0.25, Y: 0.25},
			B:        geom.Point{X: 0.75, Y: 0.25},
			C:        geom.Point{X: 0.5, Y: 0.75},
		},
		ClampDrag: true,
		HitSlop:   scene.DefaultHitSlop,
		Theme:     render.DefaultTheme(),
	}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	cfg, err := Parse(data)
	return cfg, errors.Wrapf(err, "loading %s", path)
}

// Parse reads YAML over the defaults, so a document only needs the fields it
// changes. Unknown fields are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	width, height := c.Size()
	if width <= 0 || height <= 0 {
		return errors.Errorf("canvas must have a positive size, got %gx%g", width, height)
	}
	if c.Theme.Vertex.Radius <= 0 {
		return errors.Errorf("vertex radius must be positive, got %g", c.Theme.Vertex.Radius)
	}
	if c.HitSlop < 0 {
		return errors.Errorf("hit slop must not be negative, got %g", c.HitSlop)
	}
	t := c.Triangle()
	if geom.Equal(geom.Cross(t.A, t.B, t.C), 0) {
		return errors.Errorf("initial vertices are collinear: %v %v %v", t.A, t.B, t.C)
	}
	return nil
}

// Size is the canvas size in pixels.
func (c Config) Size() (float64, float64) {
	if c.Canvas.Available != nil {
		return CanvasSize(c.Canvas.Available.Width, c.Canvas.Available.Height)
	}
	return c.Canvas.Width, c.Canvas.Height
}

// CanvasSize fits a 4:3 canvas into a display area, leaving room for page
// margins and controls, and capping it at 1400x1000. Sizes are floored to
// whole pixels.
func CanvasSize(availableWidth, availableHeight float64) (float64, float64) {
	maxWidth := math.Min(availableWidth-40, 1400)
	maxHeight := math.Min(availableHeight-200, 1000)

	width := maxWidth
	height := width * 0.75
	if height > maxHeight {
		height = maxHeight
		width = height / 0.75
	}
	return math.Floor(width), math.Floor(height)
}

// Triangle is the initial triangle in pixels.
func (c Config) Triangle() construction.Triangle {
	v := c.Vertices
	if !v.Relative {
		return construction.Triangle{A: v.A, B: v.B, C: v.C}
	}
	width, height := c.Size()
	scale := func(p geom.Point) geom.Point {
		return geom.Point{X: p.X * width, Y: p.Y * height}
	}
	return construction.Triangle{A: scale(v.A), B: scale(v.B), C: scale(v.C)}
}

// SetTriangle replaces the initial vertices with absolute positions.
func (c *Config) SetTriangle(t construction.Triangle) {
	c.Vertices = Vertices{A: t.A, B: t.B, C: t.C}
}

func (c Config) Variant() construction.Variant {
	if c.Extended {
		return construction.Extended
	}
	return construction.Basic
}

// Scene builds the starting scene. Vertex hit radius follows the theme's
// vertex radius, so what you see is what you can grab.
func (c Config) Scene() *scene.Scene {
	width, height := c.Size()
	return scene.New(width, height, c.Triangle(), c.Theme.Vertex.Radius, c.Variant())
}

func (c Config) ControllerOptions() []scene.Option {
	return []scene.Option{
		scene.WithClamping(c.ClampDrag),
		scene.WithHitSlop(c.HitSlop),
	}
}
