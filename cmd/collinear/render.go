package main

import (
	"fmt"
	"os"

	"github.com/osuushi/collinear"
	"github.com/osuushi/collinear/config"
	"github.com/osuushi/collinear/internal/dbg"
	"github.com/osuushi/collinear/internal/logging"
	"github.com/osuushi/collinear/render"
	"github.com/pkg/errors"
)

var (
	renderCmd  = app.Command("render", "Draw the starting figure to a PNG or SVG file.")
	renderOut  = renderCmd.Flag("out", "Output file. A .svg extension writes SVG, anything else PNG.").Short('o').Default("collinear.png").String()
	renderShow = renderCmd.Flag("imgcat", "Also show a PNG inline in the terminal.").Bool()
)

func runRender() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := renderFile(cfg, *renderOut, *renderShow); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", *renderOut)
	return nil
}

func renderFile(cfg config.Config, out string, show bool) error {
	width, height := cfg.Size()
	canvas := newCanvas(formatFor(out), width, height)
	built, err := collinear.NewSession(cfg, canvas).Draw()
	if err != nil {
		return errors.Wrap(err, "drawing")
	}
	if err := saveCanvas(canvas, out); err != nil {
		return err
	}
	logging.Logger().Info("wrote figure", "path", out, "residual", built.Residual())

	if raster, ok := canvas.(*render.GGCanvas); ok && show {
		return dbg.Show(raster, os.Stdout)
	}
	return nil
}
