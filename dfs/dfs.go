// Package dfs implements depth-first search (single tree or forest) and
// connected components on core.Graph.
//
// Complexity:
//
//   - Time:   O(V + E), neighbor lists are sorted so traversal order is deterministic.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Errors:
//
//   - ErrGraphNil, ErrStartVertexNotFound.
//   - context.Canceled / DeadlineExceeded if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hyperlayout/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph   *core.Graph
	opts    DFSOptions
	res     *DFSResult
	visited map[string]bool
	// reverse holds incoming neighbors when traversing a directed graph undirected.
	reverse map[string][]string
}

// DFS performs depth-first search on g from startID, or over every vertex
// with WithFullTraversal (startID is then ignored).
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	w := &walker{
		graph: g,
		opts:  o,
		res: &DFSResult{
			Order:  make([]string, 0, len(vertices)),
			Depth:  make(map[string]int, len(vertices)),
			Parent: make(map[string]string, len(vertices)),
		},
		visited: make(map[string]bool, len(vertices)),
	}
	if o.Undirected && g.Directed() {
		w.reverse = make(map[string][]string)
		for _, e := range g.Edges() {
			w.reverse[e.To] = append(w.reverse[e.To], e.From)
		}
	}

	roots := []string{startID}
	if o.FullTraversal {
		roots = vertices
	}
	for _, r := range roots {
		if w.visited[r] {
			continue
		}
		w.res.Roots = append(w.res.Roots, r)
		if err := w.traverse(r, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// neighbors returns the sorted, de-duplicated IDs reachable from id in one step.
func (w *walker) neighbors(id string) ([]string, error) {
	out, err := w.graph.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	if w.reverse == nil || len(w.reverse[id]) == 0 {
		return out, nil
	}
	seen := make(map[string]struct{}, len(out)+len(w.reverse[id]))
	for _, v := range out {
		seen[v] = struct{}{}
	}
	for _, v := range w.reverse[id] {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out, nil
}

// traverse visits id at depth and recurses into unvisited neighbors.
func (w *walker) traverse(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	for _, nid := range nbs {
		if w.visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}

// Components returns the weakly connected components of g, each sorted, in
// order of their smallest vertex ID. An embedding lays out each component
// independently; only repulsion acts between them.
func Components(g *core.Graph) ([][]string, error) {
	var preorder []string
	res, err := DFS(g, "", WithFullTraversal(), WithUndirected(),
		WithOnVisit(func(id string) error {
			preorder = append(preorder, id)
			return nil
		}))
	if err != nil {
		return nil, err
	}
	// Pre-order visits a tree contiguously, starting at its root (depth 0).
	comps := make([][]string, 0, len(res.Roots))
	for _, id := range preorder {
		if res.Depth[id] == 0 {
			comps = append(comps, nil)
		}
		comps[len(comps)-1] = append(comps[len(comps)-1], id)
	}
	for _, c := range comps {
		sort.Strings(c)
	}

	return comps, nil
}
