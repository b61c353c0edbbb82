package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/hyperlayout/bfs"
	"github.com/katalvlaran/hyperlayout/builder"
	"github.com/katalvlaran/hyperlayout/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_WeightedGraphUsesHops checks that association weights do not change hop counts.
func TestBFS_WeightedGraphUsesHops(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("B", "C", 0.1)

	d, err := bfs.HopDistances(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := map[string]int{"A": 0, "B": 1, "C": 2}; !reflect.DeepEqual(d, want) {
		t.Errorf("depths = %v; want %v", d, want)
	}
}

// TestBFS_LayeredDepths checks that layer l of a layered graph sits l hops from layer 0.
func TestBFS_LayeredDepths(t *testing.T) {
	sizes := []int{2, 3, 3, 2}
	g, err := builder.BuildGraph(nil, nil, builder.Layered(sizes...))
	if err != nil {
		t.Fatal(err)
	}
	d, err := bfs.HopDistances(g, builder.LayerID(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	for l := range sizes {
		for _, id := range builder.LayerMembers(sizes, l) {
			want := l
			if l == 0 && id != builder.LayerID(0, 0) {
				want = 2 // sibling in layer 0 is reached through layer 1
			}
			if d[id] != want {
				t.Errorf("depth[%s] = %d; want %d", id, d[id], want)
			}
		}
	}
}

// TestBFS_PathAndLimits covers PathTo, MaxDepth and filtering.
func TestBFS_PathAndLimits(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)}, builder.Path(5))
	if err != nil {
		t.Fatal(err)
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo("E")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C", "D", "E"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(E) = %v; want %v", path, want)
	}

	res, err = bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth(2) order = %v; want %v", res.Order, want)
	}
	if _, err := res.PathTo("E"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(E) beyond MaxDepth: want ErrNoPath, got %v", err)
	}

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, n string) bool { return n != "C" }))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 2 {
		t.Errorf("filtered order = %v; want [A B]", res.Order)
	}
}

// TestBFS_HooksAndCancel verifies OnVisit errors and context cancellation.
func TestBFS_HooksAndCancel(t *testing.T) {
	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(6))
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "0", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "3" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want hook error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "0", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_UndirectedAndLayers walks a directed chain against its edges and
// groups the result by hop count.
func TestBFS_UndirectedAndLayers(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("B", "A", 0)
	_, _ = g.AddEdge("C", "B", 0)
	_, _ = g.AddEdge("C", "D", 0)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("directed order = %v; want %v", res.Order, want)
	}

	d, err := bfs.HopDistances(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}; !reflect.DeepEqual(d, want) {
		t.Errorf("undirected depths = %v; want %v", d, want)
	}

	res, err = bfs.BFS(g, "B", bfs.WithUndirected())
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]string{{"B"}, {"A", "C"}, {"D"}}; !reflect.DeepEqual(res.Layers(), want) {
		t.Errorf("Layers() = %v; want %v", res.Layers(), want)
	}
}
