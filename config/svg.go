package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/geom"
	"github.com/pkg/errors"
)

// LoadSVGTriangle reads the first <polygon> of an SVG document as a triangle.
// This is not a general SVG reader: transforms and units are ignored, and the
// polygon must have exactly three points.
func LoadSVGTriangle(in io.Reader) (construction.Triangle, error) {
	root, err := svgparser.Parse(in, true)
	if err != nil {
		return construction.Triangle{}, errors.Wrap(err, "parsing svg")
	}

	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return construction.Triangle{}, errors.New("no polygon found")
	}

	points, err := parsePoints(polygons[0].Attributes["points"])
	if err != nil {
		return construction.Triangle{}, err
	}
	if len(points) != 3 {
		return construction.Triangle{}, errors.Errorf("polygon has %d points, want 3", len(points))
	}
	return construction.Triangle{A: points[0], B: points[1], C: points[2]}, nil
}

func LoadSVGTriangleFile(path string) (construction.Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return construction.Triangle{}, errors.Wrap(err, "opening svg")
	}
	defer f.Close()
	t, err := LoadSVGTriangle(f)
	return t, errors.Wrapf(err, "loading %s", path)
}

// Polygon points are "x,y" pairs separated by whitespace.
func parsePoints(attribute string) ([]geom.Point, error) {
	var points []geom.Point
	for _, pointString := range strings.Fields(attribute) {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coordinates[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coordinates[0])
		}
		y, err := strconv.ParseFloat(coordinates[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coordinates[1])
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}
