package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/collinear/construction"
	"github.com/osuushi/collinear/geom"
	"github.com/osuushi/collinear/internal/dbg"
)

// Residuals above this are worth flagging. Exact arithmetic gives zero.
const residualLimit = 1e-9

var (
	inspectCmd   = app.Command("inspect", "Print the points of the starting figure and how well they line up.")
	inspectDump  = inspectCmd.Flag("dump", "Also dump the whole construction.").Bool()
	inspectColor = inspectCmd.Flag("color", "Colorize the report.").Default("true").Bool()
)

func runInspect() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return inspect(os.Stdout, cfg.Triangle(), cfg.Variant(), *inspectColor, *inspectDump)
}

func inspect(w io.Writer, t construction.Triangle, v construction.Variant, color, dump bool) error {
	au := aurora.NewAurora(color)

	c, err := construction.Compute(t, v)
	if err != nil {
		fmt.Fprintf(w, "%s %v\n", au.Red("degenerate:"), err)
		return err
	}

	for _, l := range construction.Vertices {
		p, _ := c.Point(l)
		fmt.Fprintf(w, "%s  %s\n", au.Bold(au.Cyan(l)), formatPoint(p))
	}
	for _, step := range c.Steps() {
		p, _ := c.Point(step.Target)
		fmt.Fprintf(w, "%s  %s  foot from %s on %s%s\n",
			au.Bold(au.Magenta(step.Target)), formatPoint(p), step.From, step.Line[0], step.Line[1])
	}

	from, to := c.Highlight()
	fmt.Fprintf(w, "collinear  %s, drawn %s%s\n", joinLabels(c.Collinear()), from, to)

	residual := c.Residual()
	verdict := au.Green("ok")
	if residual > residualLimit {
		verdict = au.Red("off")
	}
	fmt.Fprintf(w, "residual   %.3e %s\n", residual, verdict)

	if dump {
		fmt.Fprintln(w, dbg.Dump(c))
	}
	return nil
}

func formatPoint(p geom.Point) string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

func joinLabels(labels []construction.Label) string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.String()
	}
	return strings.Join(names, " ")
}
