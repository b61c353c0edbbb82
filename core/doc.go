// Package core provides the thread-safe, float64-weighted Graph that acts as the
// topology provider for the embedding engine.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); in an embedding, the weight of an
//     edge is the association strength between its endpoints
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices(), Edges(), Neighbors() and NeighborIDs() return
// sorted results, so layouts seeded from a Graph are reproducible.
//
// Core Methods:
//
//	AddVertex(id string) error                                  // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	RemoveVertex(id string) error                               // O(E)
//	AddEdge(from, to string, weight float64) (string, error)    // O(1)
//	RemoveEdge(edgeID string) error                             // O(1)
//	HasEdge(from, to string) bool                               // O(1)
//	Neighbors(id string) ([]*Edge, error)                       // O(d·log d)
//	NeighborIDs(id string) ([]string, error)                    // O(d·log d)
//	Vertices() []string                                         // O(V·log V)
//	Edges() []*Edge                                             // O(E·log E)
//	VertexCount(), EdgeCount() int                              // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph, or NaN/Inf weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
