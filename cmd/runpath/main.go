/*
runpath reads a grid of single-digit traversal costs and prints the minimum
total cost from the top-left to the bottom-right cell for the short-run
(1..3 steps) and long-run (4..10 steps) movement rules.

If a positional argument is given it is used as the input file; otherwise the
grid is read from standard input. With -min and -max a single custom mode is
run instead of the two standard ones.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/runpath/costgrid"
	"github.com/katalvlaran/runpath/planner"
)

var log = logrus.New()

// config is the parsed command line.
type config struct {
	input   string
	minRun  int
	maxRun  int
	maxCost int
	verbose bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("runpath", flag.ContinueOnError)
	fs.IntVar(&cfg.minRun, "min", 0, "minimum steps per run for a custom mode (requires -max)")
	fs.IntVar(&cfg.maxRun, "max", 0, "maximum steps per run for a custom mode")
	fs.IntVar(&cfg.maxCost, "max-cost", costgrid.DefaultMaxCost, "largest accepted cell cost")
	fs.BoolVar(&cfg.verbose, "v", false, "log search statistics")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		cfg.input = fs.Arg(0)
	}
	if cfg.minRun != 0 && cfg.maxRun == 0 {
		return cfg, fmt.Errorf("-min %d requires -max", cfg.minRun)
	}
	if cfg.maxCost < 0 {
		return cfg, fmt.Errorf("-max-cost must be non-negative, got %d", cfg.maxCost)
	}

	return cfg, nil
}

// modes returns the custom mode when -max is set, else the two standard modes.
func (c config) modes() []planner.Mode {
	if c.maxRun > 0 {
		return []planner.Mode{{Name: "custom", MinRun: c.minRun, MaxRun: c.maxRun}}
	}

	return []planner.Mode{planner.ShortRun, planner.LongRun}
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.WithError(err).Fatal("invalid arguments")
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(context.Background(), cfg, os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Fatal("runpath failed")
	}
}

// run loads the grid, solves every mode and writes one line of totals to w.
func run(ctx context.Context, cfg config, stdin io.Reader, w io.Writer) error {
	r := stdin
	if cfg.input != "" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	g, err := costgrid.Read(r, costgrid.WithMaxCost(cfg.maxCost))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"width":  g.Width(),
		"height": g.Height(),
	}).Debug("grid loaded")

	start := time.Now()
	modes := cfg.modes()
	results, err := planner.SolveModes(ctx, g, modes...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for i, res := range results {
		log.WithFields(logrus.Fields{
			"mode":     modes[i].Name,
			"cost":     res.Cost,
			"expanded": res.Expanded,
			"pushed":   res.Pushed,
			"stale":    res.Stale,
		}).Debug("search finished")
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "part%d: %d", i+1, res.Cost)
	}
	fmt.Fprintln(w)
	log.WithField("elapsed", elapsed).Info("solved")

	return nil
}
