// SPDX-License-Identifier: MIT
//
// File: relax.go
// Role: Round snapshot (arena) and the per-node force computation.
//
// Determinism:
//   - Slots follow sorted handle order; neighbor lists are sorted by slot,
//     so every task sums its forces in a fixed order.

package embed

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/hyperlayout/hyperpoint"
)

// link is one outgoing association resolved to a slot.
type link struct {
	slot   int
	weight float64
}

// arena is the immutable state one round relaxes against.
type arena struct {
	dim     int
	handles []Handle
	pos     []hyperpoint.Point
	out     [][]link
	// assoc[s] holds every slot associated with s in either direction.
	assoc []map[int]struct{}
	eq    []float64
	lr    []float64
}

// snapshot copies the registry into a fresh arena. Caller holds mu.
func (e *Embedding) snapshot() *arena {
	handles := e.sortedHandles()
	slot := make(map[Handle]int, len(handles))
	for i, h := range handles {
		slot[h] = i
	}

	a := &arena{
		dim:     e.dim,
		handles: handles,
		pos:     make([]hyperpoint.Point, len(handles)),
		out:     make([][]link, len(handles)),
		assoc:   make([]map[int]struct{}, len(handles)),
		eq:      make([]float64, len(handles)),
		lr:      make([]float64, len(handles)),
	}
	for i, h := range handles {
		n := e.nodes[h]
		a.pos[i] = n.pos
		a.eq[i], a.lr[i] = e.eq, e.lr
		if n.eq > 0 {
			a.eq[i] = n.eq
		}
		if n.lr > 0 {
			a.lr[i] = n.lr
		}

		links := make([]link, 0, len(n.out))
		assoc := make(map[int]struct{}, len(n.out)+len(n.in))
		for to, w := range n.out {
			links = append(links, link{slot: slot[to], weight: w})
			assoc[slot[to]] = struct{}{}
		}
		for from := range n.in {
			assoc[slot[from]] = struct{}{}
		}
		sort.Slice(links, func(x, y int) bool { return links[x].slot < links[y].slot })
		a.out[i] = links
		a.assoc[i] = assoc
	}

	return a
}

// relax computes the next position of the node in slot self.
func (a *arena) relax(self int) (hyperpoint.Point, error) {
	here := a.pos[self]
	eq := a.eq[self]
	delta, err := hyperpoint.Zero(a.dim)
	if err != nil {
		return hyperpoint.Point{}, err
	}

	for _, l := range a.out[self] {
		toward, err := a.pos[l.slot].RelativeTo(here)
		if err != nil {
			return hyperpoint.Point{}, err
		}
		m := neighborForce(toward.Magnitude(), eq/l.weight)
		if toward.IsZero() {
			toward = a.axis(self, l.slot)
		}
		if delta, err = delta.Add(toward.WithMagnitude(m)); err != nil {
			return hyperpoint.Point{}, err
		}
	}

	for other := range a.pos {
		if other == self {
			continue
		}
		if _, ok := a.assoc[self][other]; ok {
			continue
		}
		away, err := a.pos[other].RelativeTo(here)
		if err != nil {
			return hyperpoint.Point{}, err
		}
		m := repulsion(away.Magnitude(), eq)
		if away.IsZero() {
			away = a.axis(self, other)
		}
		if delta, err = delta.Add(away.WithMagnitude(m)); err != nil {
			return hyperpoint.Point{}, err
		}
	}

	delta = delta.WithMagnitude(delta.Magnitude() * a.lr[self])

	return here.Add(delta)
}

// neighborForce is the signed correction toward a neighbor at distance d whose
// rest distance is target: positive pulls closer, negative pushes away.
// Both branches are clamped by |d-target|, which also bounds d == 0 to -target.
func neighborForce(d, target float64) float64 {
	if d > target {
		return math.Min((d-target)*(d-target), d-target)
	}

	return -math.Min(atanh((target-d)/target), target-d)
}

// repulsion is the signed correction from an unassociated node at distance d,
// clamped to -eq; d == 0 yields exactly -eq.
func repulsion(d, eq float64) float64 {
	return math.Max(-1/(d*d), -eq)
}

// atanh is 0.5·ln|(x+1)/(1-x)|, +Inf at x == 1.
func atanh(x float64) float64 {
	return 0.5 * math.Log(math.Abs((x+1)/(1-x)))
}

// axis returns a unit vector for the pair (self, other) when they coincide.
// It depends only on the two handles, and axis(a, b) == -axis(b, a), so the
// two nodes of a coincident pair are pushed in opposite directions.
func (a *arena) axis(self, other int) hyperpoint.Point {
	lo, hi := a.handles[self], a.handles[other]
	sign := 1.0
	if lo > hi {
		lo, hi = hi, lo
		sign = -1
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(lo))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(hi))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	coords := make([]float64, a.dim)
	for i := range coords {
		coords[i] = rng.NormFloat64()
	}
	v, err := hyperpoint.New(coords...)
	if err != nil || v.IsZero() {
		coords = make([]float64, a.dim)
		coords[0] = 1
		v, _ = hyperpoint.New(coords...)
	}

	return v.WithMagnitude(sign)
}
