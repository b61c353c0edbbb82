// SPDX-License-Identifier: MIT

// Command hyperlayout builds a topology, embeds it in N-dimensional space for
// a fixed number of rounds and prints a quality report (and optionally every
// position).
//
// Usage:
//
//	hyperlayout -topology layered -layers 3,4,4,3 -rounds 500 -dim 3
//	hyperlayout -config layout.yaml -topology grid -n 6 -positions
//
// SIGINT/SIGTERM stop the run between rounds; the report covers the rounds
// completed so far.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/hyperlayout/embed"
	"github.com/katalvlaran/hyperlayout/quality"
)

type options struct {
	configPath string
	topology   string
	n          int
	layers     string
	p          float64
	rounds     int
	dim        int
	seed       int64
	workers    int
	logLevel   string
	positions  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("hyperlayout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML embedding configuration")
	fs.StringVar(&o.topology, "topology", "layered", "path|cycle|star|complete|grid|layered|random")
	fs.IntVar(&o.n, "n", 10, "vertex count (grid: side length)")
	fs.StringVar(&o.layers, "layers", "3,4,4,3", "layer sizes for -topology layered")
	fs.Float64Var(&o.p, "p", 0.2, "edge probability for -topology random")
	fs.IntVar(&o.rounds, "rounds", 500, "relaxation rounds to run")
	fs.IntVar(&o.dim, "dim", 0, "dimensions (0 = from config)")
	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 = from config)")
	fs.IntVar(&o.workers, "workers", -1, "relaxation workers (-1 = from config, 0 = one per CPU)")
	fs.StringVar(&o.logLevel, "log-level", "info", "trace|debug|info|warn|error")
	fs.BoolVar(&o.positions, "positions", false, "print every final position")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if o.rounds < 0 {
		return options{}, fmt.Errorf("-rounds=%d must not be negative", o.rounds)
	}

	return o, nil
}

// config resolves the embedding configuration: defaults, then the file, then flags.
func (o options) config() (embed.Config, error) {
	cfg := embed.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = embed.LoadConfig(o.configPath); err != nil {
			return embed.Config{}, err
		}
	}
	if o.dim > 0 {
		cfg.Dimensions = o.dim
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if o.workers >= 0 {
		cfg.Workers = o.workers
	}

	return cfg, cfg.Validate()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "hyperlayout",
		Level:  hclog.LevelFromString(o.logLevel),
		Output: stderr,
	})

	cfg, err := o.config()
	if err != nil {
		return err
	}
	g, err := buildTopology(o, cfg.Seed)
	if err != nil {
		return err
	}
	e, err := embed.FromGraph(g, cfg.Dimensions, append(cfg.Options(), embed.WithLogger(logger))...)
	if err != nil {
		return err
	}
	logger.Info("embedding",
		"run", e.ID().String(),
		"topology", o.topology,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"dim", cfg.Dimensions,
		"rounds", o.rounds)

	if err := e.Run(ctx, o.rounds); err != nil {
		if !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Warn("interrupted", "completed", e.Rounds())
	}
	last := e.LastRound()
	logger.Info("done", "rounds", e.Rounds(), "max_shift", last.MaxShift, "mean_shift", last.MeanShift)

	report, err := quality.Evaluate(e, g)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "rounds:           %d\n", e.Rounds())
	fmt.Fprintf(stdout, "nodes:            %d\n", report.Nodes)
	fmt.Fprintf(stdout, "components:       %d\n", report.Components)
	fmt.Fprintf(stdout, "stress:           %.6f\n", report.Stress)
	fmt.Fprintf(stdout, "correlation:      %.6f\n", report.Correlation)
	fmt.Fprintf(stdout, "mean edge length: %.6f\n", report.MeanEdgeLength)
	if err := printLayers(stdout, o, e); err != nil {
		return err
	}
	if o.positions {
		pos := e.Positions()
		for _, h := range quality.SortedHandles(pos) {
			fmt.Fprintf(stdout, "%s\t%s\n", h, pos[h])
		}
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "hyperlayout:", err)
		os.Exit(1)
	}
}
