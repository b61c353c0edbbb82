package hyperpoint_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hyperlayout/hyperpoint"
)

// benchmarkRelaxKernel runs the RelativeTo → WithMagnitude → Add chain that a
// single pairwise force evaluation performs, in dim dimensions.
func benchmarkRelaxKernel(b *testing.B, dim int) {
	rng := rand.New(rand.NewSource(1))
	a, _ := hyperpoint.Random(dim, rng)
	c, _ := hyperpoint.Random(dim, rng)
	acc, _ := hyperpoint.Zero(dim)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rel, err := c.RelativeTo(a)
		if err != nil {
			b.Fatalf("RelativeTo failed: %v", err)
		}
		if acc, err = acc.Add(rel.WithMagnitude(0.5)); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

func BenchmarkKernel_2D(b *testing.B)  { benchmarkRelaxKernel(b, 2) }
func BenchmarkKernel_3D(b *testing.B)  { benchmarkRelaxKernel(b, 3) }
func BenchmarkKernel_16D(b *testing.B) { benchmarkRelaxKernel(b, 16) }
