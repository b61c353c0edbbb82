// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hyperlayout/builder"
	"github.com/katalvlaran/hyperlayout/core"
	"github.com/katalvlaran/hyperlayout/embed"
	"github.com/katalvlaran/hyperlayout/quality"
)

// parseLayers turns "3,4,3" into []int{3, 4, 3}.
func parseLayers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("-layers %q: %w", s, err)
		}
		sizes = append(sizes, n)
	}

	return sizes, nil
}

// buildTopology maps the -topology flag to a builder constructor.
func buildTopology(o options, seed int64) (*core.Graph, error) {
	var con builder.Constructor
	switch o.topology {
	case "path":
		con = builder.Path(o.n)
	case "cycle":
		con = builder.Cycle(o.n)
	case "star":
		con = builder.Star(o.n)
	case "complete":
		con = builder.Complete(o.n)
	case "grid":
		con = builder.Grid(o.n, o.n)
	case "layered":
		sizes, err := parseLayers(o.layers)
		if err != nil {
			return nil, err
		}
		con = builder.Layered(sizes...)
	case "random":
		con = builder.RandomSparse(o.n, o.p)
	default:
		return nil, fmt.Errorf("unknown -topology %q", o.topology)
	}

	// RandomSparse needs a source even when the layout itself is time-seeded.
	if seed == 0 {
		seed = 1
	}

	return builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, con)
}

// printLayers reports the mean distance between consecutive layers and between
// the first and last layer when the topology is layered.
func printLayers(w io.Writer, o options, e *embed.Embedding) error {
	if o.topology != "layered" {
		return nil
	}
	sizes, err := parseLayers(o.layers)
	if err != nil {
		return err
	}
	group := func(l int) []embed.Handle {
		var hs []embed.Handle
		for _, id := range builder.LayerMembers(sizes, l) {
			hs = append(hs, embed.Handle(id))
		}
		return hs
	}

	pos := e.Positions()
	for l := 0; l+1 < len(sizes); l++ {
		d, err := quality.MeanDistance(pos, group(l), group(l+1))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "layers %d-%d:       %.6f\n", l, l+1, d)
	}
	last := len(sizes) - 1
	d, err := quality.MeanDistance(pos, group(0), group(last))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "layers 0-%d:       %.6f\n", last, d)

	return nil
}
