package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/osuushi/collinear/internal/term"
	"github.com/pkg/errors"
)

var interactiveCmd = app.Command("interactive", "Drag the vertices with the mouse, in the terminal.")

func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "opening terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return term.NewApp(screen, cfg).Run(ctx)
}
