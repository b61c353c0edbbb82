// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap uses lazy decrease-key and may hold duplicates.
//
// Notes on implementation choices:
//
//   - All edge costs are evaluated once up front to fail fast on negative or NaN costs.
//   - A cost of +Inf makes an edge impassable.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hyperlayout/core"
)

// Dijkstra computes shortest distances from Options.Source to all vertices of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath is set (nil otherwise);
//     prev[v] == "" for the source and unreachable vertices.
//   - err:  ErrEmptySource, ErrNilGraph, ErrVertexNotFound or ErrNegativeWeight.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// Pre-evaluate costs once: fail fast and avoid re-calling Cost per relaxation.
	edges := g.Edges()
	cost := make(map[string]float64, len(edges))
	for _, e := range edges {
		c := cfg.Cost(e)
		if c < 0 || math.IsNaN(c) {
			return nil, nil, fmt.Errorf("%w: edge %s→%s cost=%g", ErrNegativeWeight, e.From, e.To, c)
		}
		cost[e.ID] = c
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		cost:    cost,
		dist:    make(map[string]float64, len(vertices)),
		prev:    make(map[string]string, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		pq:      make(nodePQ, 0, len(vertices)),
	}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	cost    map[string]float64 // edge ID → cost
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets every distance to +Inf and pushes the source at distance 0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unvisited vertex and relaxes its edges until the
// heap is empty or MaxDistance is exceeded.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves distances to the neighbors of u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, e := range neighbors {
		if e.Directed && e.From != u {
			continue
		}
		w := r.cost[e.ID]
		if math.IsInf(w, 1) {
			continue
		}
		v := e.Other(u)
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// PathTo walks prev back from dest and returns the source→dest vertex sequence.
// Returns nil when dest is unreachable.
func PathTo(prev map[string]string, source, dest string) []string {
	if dest == source {
		return []string{source}
	}
	if prev[dest] == "" {
		return nil
	}
	var path []string
	for cur := dest; cur != ""; cur = prev[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by ID for determinism.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].id < pq[j].id
	}

	return pq[i].dist < pq[j].dist
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
