package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osuushi/collinear/internal/logging"
	"github.com/osuushi/collinear/internal/watcher"
	"github.com/pkg/errors"
)

var (
	watchCmd  = app.Command("watch", "Render again whenever the configuration or triangle file changes.")
	watchOut  = watchCmd.Flag("out", "Output file. A .svg extension writes SVG, anything else PNG.").Short('o').Default("collinear.png").String()
	watchShow = watchCmd.Flag("imgcat", "Also show each PNG inline in the terminal.").Bool()
)

func runWatch() error {
	files := []string{}
	for _, path := range []string{*configPath, *svgPath} {
		if path != "" {
			files = append(files, path)
		}
	}
	if len(files) == 0 {
		return errors.New("nothing to watch; pass --config or --triangle-svg")
	}

	w, err := watcher.New(200 * time.Millisecond)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(files...); err != nil {
		return err
	}

	rerender()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return w.Watch(ctx, func(path string) {
		logging.Logger().Info("file changed", "path", path)
		rerender()
	})
}

// A broken edit is reported and the previous output kept, so watching carries
// on until the file is fixed.
func rerender() {
	cfg, err := loadConfig()
	if err == nil {
		err = renderFile(cfg, *watchOut, *watchShow)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("Wrote %s\n", *watchOut)
}
