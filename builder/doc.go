// Package builder provides deterministic topology constructors that populate a
// core.Graph, the graph provider consumed by embed.FromGraph.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.Layered(4, 6, 6, 4),
//	)
//
// Constructors:
//
//	Path(n)            P_n, n ≥ 2
//	Cycle(n)           C_n, n ≥ 3
//	Star(n)            center "Center" + n-1 leaves, n ≥ 2
//	Complete(n)        K_n, n ≥ 1
//	Grid(rows, cols)   4-neighborhood grid, IDs "r,c"
//	Layered(sizes...)  consecutive layers fully associated, IDs "L<layer>.<i>"
//	RandomSparse(n, p) Erdős–Rényi G(n, p), needs WithSeed/WithRand for 0<p<1
//
// Determinism: same options, seed and constructor order ⇒ identical graphs.
// Weights: if the core graph is weighted, every edge takes cfg.weightFn(cfg.rng)
// (default constant 1); otherwise weight 0.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed) wrapped with the constructor name; branch with errors.Is.
package builder
