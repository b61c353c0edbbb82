// SPDX-License-Identifier: MIT

package embed_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hyperlayout/builder"
	"github.com/katalvlaran/hyperlayout/embed"
	"github.com/katalvlaran/hyperlayout/hyperpoint"
)

// ExampleEmbedding_Step relaxes two associated nodes toward their
// equilibrium distance.
func ExampleEmbedding_Step() {
	e, _ := embed.New(2)
	a, _ := hyperpoint.New(0, 0)
	b, _ := hyperpoint.New(3, 0)
	_ = e.AddNode("a", a)
	_ = e.AddNode("b", b)
	_ = e.AssociateMutual("a", "b", 1)

	ctx := context.Background()
	for i := 0; i < 2000; i++ {
		if err := e.Step(ctx); err != nil {
			fmt.Println(err)
			return
		}
	}

	pa, _ := e.PositionOf("a")
	pb, _ := e.PositionOf("b")
	d, _ := pa.DistanceTo(pb)
	fmt.Printf("rounds=%d distance=%.2f\n", e.Rounds(), d)
	// Output: rounds=2000 distance=1.00
}

// ExampleEmbedding_AddNode shows that positions of the wrong dimension are
// rejected up front.
func ExampleEmbedding_AddNode() {
	e, _ := embed.New(3)
	p, _ := hyperpoint.New(1, 2)
	err := e.AddNode("x", p)
	fmt.Println(errors.Is(err, hyperpoint.ErrDimensionMismatch))
	// Output: true
}

// ExampleFromGraph lays out a three-layer graph.
func ExampleFromGraph() {
	g, _ := builder.BuildGraph(nil, nil, builder.Layered(2, 3, 2))
	e, err := embed.FromGraph(g, 3, embed.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := e.Run(context.Background(), 100); err != nil {
		fmt.Println(err)
		return
	}
	n, _ := e.Neighbors(embed.Handle(builder.LayerID(1, 0)))
	fmt.Println(e.Len(), e.Rounds(), len(n))
	// Output: 7 100 4
}
