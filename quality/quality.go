// SPDX-License-Identifier: MIT

// Package quality measures how well an embedding reflects its graph.
//
// The geometric side is a DistanceMatrix over committed positions; the
// topological side is a PathMatrix of shortest-path lengths (dijkstra with a
// pluggable edge cost) or BFS hop counts. From these it derives:
//
//   - MeanDistance: average distance between two groups of nodes, e.g. layers.
//   - Stress: normalized squared error between geometric and expected distance,
//     where an edge of weight w is expected to span eq/w.
//   - Correlation: Pearson correlation of hop count vs geometric distance.
//
// All functions are read-only; they never mutate the embedding or the graph.
package quality

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hyperlayout/bfs"
	"github.com/katalvlaran/hyperlayout/core"
	"github.com/katalvlaran/hyperlayout/dfs"
	"github.com/katalvlaran/hyperlayout/dijkstra"
	"github.com/katalvlaran/hyperlayout/embed"
	"github.com/katalvlaran/hyperlayout/hyperpoint"
)

// Sentinel errors for quality measurements.
var (
	// ErrEmptyGroup indicates MeanDistance was given an empty group.
	ErrEmptyGroup = errors.New("quality: empty group")

	// ErrUnknownHandle indicates a handle with no position.
	ErrUnknownHandle = errors.New("quality: handle has no position")

	// ErrNoPairs indicates there was no pair of nodes to measure.
	ErrNoPairs = errors.New("quality: no measurable pairs")

	// ErrNilInput indicates a nil graph or embedding.
	ErrNilInput = errors.New("quality: nil graph or embedding")
)

// Positions maps handles to positions, as returned by Embedding.Positions.
type Positions = map[embed.Handle]hyperpoint.Point

// Report bundles the layout diagnostics the CLI prints.
type Report struct {
	Nodes int
	Pairs int
	// Components counts weakly connected components; each is laid out on its own.
	Components  int
	Stress      float64
	Correlation float64
	// MeanEdgeLength is the mean geometric length of graph edges.
	MeanEdgeLength float64
}

// MeanDistance returns the mean distance over all pairs (u, v) with u in a,
// v in b and u != v.
func MeanDistance(pos Positions, a, b []embed.Handle) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyGroup
	}
	var sum float64
	var pairs int
	for _, u := range a {
		pu, ok := pos[u]
		if !ok {
			return 0, fmt.Errorf("MeanDistance: %s: %w", u, ErrUnknownHandle)
		}
		for _, v := range b {
			if u == v {
				continue
			}
			pv, ok := pos[v]
			if !ok {
				return 0, fmt.Errorf("MeanDistance: %s: %w", v, ErrUnknownHandle)
			}
			d, err := pu.DistanceTo(pv)
			if err != nil {
				return 0, fmt.Errorf("MeanDistance: %s–%s: %w", u, v, err)
			}
			sum += d
			pairs++
		}
	}
	if pairs == 0 {
		return 0, ErrNoPairs
	}

	return sum / float64(pairs), nil
}

// EquilibriumCost is the dijkstra cost under which an edge of weight w spans
// eq/w, the rest length relaxation drives it toward. Unweighted edges span eq.
func EquilibriumCost(eq float64) dijkstra.CostFunc {
	return func(e *core.Edge) float64 {
		if e.Weight > 0 {
			return eq / e.Weight
		}
		return eq
	}
}

// Stress returns Σ (geo_ij − path_ij)² / Σ path_ij² over vertex pairs i < j
// connected in g, with path lengths measured by EquilibriumCost(eq).
// Zero means every pair sits exactly at its expected distance.
func Stress(pos Positions, g *core.Graph, eq float64) (float64, error) {
	if g == nil {
		return 0, ErrNilInput
	}
	order := g.Vertices()
	geo, err := DistanceMatrix(pos, handles(order))
	if err != nil {
		return 0, fmt.Errorf("Stress: %w", err)
	}
	path, err := PathMatrix(g, order, EquilibriumCost(eq))
	if err != nil {
		return 0, fmt.Errorf("Stress: %w", err)
	}

	var num, den float64
	n := len(order)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := path.At(i, j)
			if math.IsInf(p, 1) {
				continue
			}
			diff := geo.At(i, j) - p
			num += diff * diff
			den += p * p
		}
	}
	if den == 0 {
		return 0, ErrNoPairs
	}

	return num / den, nil
}

// Correlation returns the Pearson correlation between BFS hop distance and
// geometric distance over every connected pair i < j. A faithful layout
// scores close to 1.
func Correlation(pos Positions, g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrNilInput
	}
	order := g.Vertices()
	var hops, geo []float64
	for i, u := range order {
		depth, err := bfs.HopDistances(g, u)
		if err != nil {
			return 0, fmt.Errorf("Correlation: %w", err)
		}
		pu, ok := pos[embed.Handle(u)]
		if !ok {
			return 0, fmt.Errorf("Correlation: %s: %w", u, ErrUnknownHandle)
		}
		for _, v := range order[i+1:] {
			h, ok := depth[v]
			if !ok {
				continue
			}
			pv, ok := pos[embed.Handle(v)]
			if !ok {
				return 0, fmt.Errorf("Correlation: %s: %w", v, ErrUnknownHandle)
			}
			d, err := pu.DistanceTo(pv)
			if err != nil {
				return 0, fmt.Errorf("Correlation: %s–%s: %w", u, v, err)
			}
			hops = append(hops, float64(h))
			geo = append(geo, d)
		}
	}
	if len(hops) < 2 {
		return 0, ErrNoPairs
	}

	return stat.Correlation(hops, geo, nil), nil
}

// MeanEdgeLength returns the mean geometric length of g's non-loop edges.
func MeanEdgeLength(pos Positions, g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrNilInput
	}
	var lengths []float64
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		pu, ok := pos[embed.Handle(e.From)]
		if !ok {
			return 0, fmt.Errorf("MeanEdgeLength: %s: %w", e.From, ErrUnknownHandle)
		}
		pv, ok := pos[embed.Handle(e.To)]
		if !ok {
			return 0, fmt.Errorf("MeanEdgeLength: %s: %w", e.To, ErrUnknownHandle)
		}
		d, err := pu.DistanceTo(pv)
		if err != nil {
			return 0, fmt.Errorf("MeanEdgeLength: %s: %w", e.ID, err)
		}
		lengths = append(lengths, d)
	}
	if len(lengths) == 0 {
		return 0, ErrNoPairs
	}

	return stat.Mean(lengths, nil), nil
}

// Evaluate computes a Report for e laid out from g.
// Stress and Correlation are left at NaN when g has too few connected pairs.
func Evaluate(e *embed.Embedding, g *core.Graph) (Report, error) {
	if e == nil || g == nil {
		return Report{}, ErrNilInput
	}
	pos := e.Positions()
	r := Report{Nodes: len(pos), Stress: math.NaN(), Correlation: math.NaN(), MeanEdgeLength: math.NaN()}
	n := g.VertexCount()
	r.Pairs = n * (n - 1) / 2

	comps, err := dfs.Components(g)
	if err != nil {
		return Report{}, fmt.Errorf("Evaluate: %w", err)
	}
	r.Components = len(comps)

	if r.Stress, err = Stress(pos, g, e.EquilibriumDistance()); err != nil {
		if !errors.Is(err, ErrNoPairs) {
			return Report{}, fmt.Errorf("Evaluate: %w", err)
		}
		r.Stress = math.NaN()
	}
	if r.Correlation, err = Correlation(pos, g); err != nil {
		if !errors.Is(err, ErrNoPairs) {
			return Report{}, fmt.Errorf("Evaluate: %w", err)
		}
		r.Correlation = math.NaN()
	}
	if r.MeanEdgeLength, err = MeanEdgeLength(pos, g); err != nil {
		if !errors.Is(err, ErrNoPairs) {
			return Report{}, fmt.Errorf("Evaluate: %w", err)
		}
		r.MeanEdgeLength = math.NaN()
	}

	return r, nil
}

// SortedHandles returns the keys of pos in ascending order.
func SortedHandles(pos Positions) []embed.Handle {
	hs := make([]embed.Handle, 0, len(pos))
	for h := range pos {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })

	return hs
}

func handles(ids []string) []embed.Handle {
	hs := make([]embed.Handle, len(ids))
	for i, id := range ids {
		hs[i] = embed.Handle(id)
	}

	return hs
}
