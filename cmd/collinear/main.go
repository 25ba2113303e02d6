package main

import (
	"log/slog"
	"os"

	"github.com/osuushi/collinear/config"
	"github.com/osuushi/collinear/internal/logging"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Draws a triangle with its altitudes AD and BE, then the perpendiculars from
// D onto AB, BE and AC. Their feet P, Q and S are always collinear, however
// the triangle is dragged. Every command starts from the same configuration:
// the defaults, a YAML file, an SVG polygon, or a mix of those.
var (
	app        = kingpin.New("collinear", "Explore the collinear feet of the perpendiculars from an altitude foot.")
	configPath = app.Flag("config", "YAML configuration file.").Short('c').ExistingFile()
	svgPath    = app.Flag("triangle-svg", "Take the starting triangle from the first <polygon> of an SVG file.").ExistingFile()
	extended   = app.Flag("extended", "Add the third altitude CF and the foot R on it.").Bool()
	verbose    = app.Flag("verbose", "Log debug output to stderr.").Short('v').Bool()
)

func main() {
	app.HelpFlag.Short('h')
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var err error
	switch command {
	case renderCmd.FullCommand():
		err = runRender()
	case replayCmd.FullCommand():
		err = runReplay()
	case inspectCmd.FullCommand():
		err = runInspect()
	case interactiveCmd.FullCommand():
		err = runInteractive()
	case watchCmd.FullCommand():
		err = runWatch()
	}
	app.FatalIfError(err, "%s", command)
}

// loadConfig applies the global flags on top of the configuration file, or the
// defaults when there is none.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return cfg, err
		}
	}
	if *svgPath != "" {
		t, err := config.LoadSVGTriangleFile(*svgPath)
		if err != nil {
			return cfg, err
		}
		cfg.SetTriangle(t)
	}
	if *extended {
		cfg.Extended = true
	}
	return cfg, cfg.Validate()
}
