// Package builder: internal helpers shared by the impl_*.go constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlayout/core"
)

// addVertices inserts every id into g, wrapping the first failure with method context.
func addVertices(method string, g *core.Graph, ids []string) error {
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// indexedIDs returns cfg.idFn(offset) .. cfg.idFn(offset+n-1).
func indexedIDs(cfg builderConfig, offset, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(offset + i)
	}

	return ids
}

// link adds u→v with a weight drawn from cfg. When mirror is set and the graph
// is directed, v→u is added with the same weight so the neighborhood stays symmetric.
func link(method string, g *core.Graph, cfg builderConfig, u, v string, mirror bool) error {
	w := cfg.weight(g.Weighted())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if mirror && g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}
