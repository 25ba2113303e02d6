package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/osuushi/collinear"
	"github.com/osuushi/collinear/config"
	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/internal/dbg"
	"github.com/osuushi/collinear/internal/logging"
	"github.com/osuushi/collinear/scene"
	"github.com/pkg/errors"
)

var (
	replayCmd    = app.Command("replay", "Play a pointer event script and write a frame for every redraw.")
	replayScript = replayCmd.Arg("script", "Event script. Read from stdin when omitted.").File()
	replayDir    = replayCmd.Flag("out-dir", "Directory for the frames. Defaults to a generated name.").String()
	replayFormat = replayCmd.Flag("format", "Frame format.").Default("png").Enum("png", "svg")
)

func runReplay() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if *replayScript != nil {
		defer (*replayScript).Close()
		in = *replayScript
	}

	dir := *replayDir
	if dir == "" {
		dir = dbg.SessionName()
	}

	frames, err := replay(cfg, in, dir, *replayFormat)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d frames to %s\n", frames, dir)
	return nil
}

// replay draws the starting frame, then feeds every scripted event to the
// controller. Frames are numbered from 1 in the order they were drawn.
func replay(cfg config.Config, in io.Reader, dir, format string) (int, error) {
	events, err := scene.ReadEvents(in)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, errors.Wrapf(err, "creating %s", dir)
	}

	width, height := cfg.Size()
	canvas := newCanvas(format, width, height)
	session := collinear.NewSession(cfg, canvas)

	var saveErr error
	session.OnFrame = func(frame int, _ *construction.Construction, err error) {
		if err != nil {
			logging.Logger().Warn("degenerate frame", "frame", frame, "error", err)
		}
		if saveErr != nil {
			return
		}
		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.%s", frame, format))
		saveErr = saveCanvas(canvas, path)
	}

	session.Draw()
	for _, event := range events {
		if saveErr != nil {
			break
		}
		session.Controller.Handle(event)
	}
	return session.Frames(), saveErr
}
