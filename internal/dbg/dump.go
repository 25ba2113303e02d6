// Package dbg has helpers for looking at figures while debugging: readable
// names, structure dumps and inline terminal previews.
package dbg

import (
	"io"
	"os"

	"github.com/kr/pretty"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Dump formats v with field names, including unexported ones.
func Dump(v interface{}) string {
	return pretty.Sprint(v)
}

type pngSaver interface {
	SavePNG(path string) error
}

// Show prints a raster inline, for terminals that speak the iTerm image
// protocol.
func Show(img pngSaver, w io.Writer) error {
	f, err := os.CreateTemp("", "collinear-*.png")
	if err != nil {
		return errors.Wrap(err, "creating preview file")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := img.SavePNG(path); err != nil {
		return errors.Wrap(err, "saving preview")
	}
	return errors.Wrap(imgcat.CatFile(path, w), "printing preview")
}
