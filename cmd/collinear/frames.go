package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/collinear/render"
	"github.com/pkg/errors"
)

// Output format from a file name: SVG for .svg, PNG for everything else.
func formatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return "svg"
	}
	return "png"
}

func newCanvas(format string, width, height float64) render.Canvas {
	if format == "svg" {
		return render.NewSVGCanvas(width, height)
	}
	return render.NewGGCanvas(int(width), int(height))
}

func saveCanvas(c render.Canvas, path string) error {
	switch c := c.(type) {
	case *render.GGCanvas:
		if err := c.SavePNG(path); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
		return nil
	case *render.SVGCanvas:
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "creating %s", path)
		}
		if _, err := c.WriteTo(f); err != nil {
			f.Close()
			return errors.Wrapf(err, "writing %s", path)
		}
		return errors.Wrapf(f.Close(), "closing %s", path)
	}
	return errors.Errorf("can't save a %T", c)
}
