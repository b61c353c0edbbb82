// Package hyperlayout embeds weighted graphs into N-dimensional space by
// iterative force relaxation, so that graph distance ends up approximating
// geometric distance.
//
// What is in the box?
//
//   - hyperpoint/ – immutable N-dimensional points with Cartesian and hyperspherical views
//   - embed/      – the Embedding coordinator: nodes, associations, rounds
//   - pool/       – bounded fork/join worker pool that runs one task per node
//   - core/       – thread-safe weighted graph used as the topology provider
//   - builder/    – Path, Cycle, Star, Complete, Grid, Layered, RandomSparse
//   - bfs/, dfs/, dijkstra/ – hop counts, components and weighted distances
//   - quality/    – stress, correlation and group distances of a layout
//   - cmd/hyperlayout – driver: build, embed, report
//
// One round snapshots every position, relaxes all nodes in parallel against
// that snapshot, commits the results and recenters the layout on the origin.
// Neighbors are pulled or pushed toward eq/w; everything else repels.
//
//	A───B            A·····B
//	│   │    ==>     ·     ·     (after rounds: edges ≈ eq apart)
//	C───D            C·····D
//
// The number of rounds is the caller's choice:
//
//	e, _ := embed.FromGraph(g, 3, embed.WithSeed(1))
//	_ = e.Run(ctx, 500)
//
//	go get github.com/katalvlaran/hyperlayout
package hyperlayout
