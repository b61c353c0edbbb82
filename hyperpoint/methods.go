// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Pure arithmetic and hyperspherical accessors on Point.
// Policy:
//   - Every method allocates a fresh coordinate slice for its result.
//   - Vector kernels delegate to gonum/floats.

package hyperpoint

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Magnitude returns the Euclidean norm |p|.
func (p Point) Magnitude() float64 {
	return floats.Norm(p.coords, 2)
}

// IsZero reports whether every coordinate is exactly zero.
func (p Point) IsZero() bool {
	for _, c := range p.coords {
		if c != 0 {
			return false
		}
	}

	return true
}

// AngularComponent returns the i-th hyperspherical angle, i in [1, D-1].
//
// For i < D-1 the angle is acos(x_i / r_i) where r_i is the norm of the tail
// x_i..x_D; a zero tail yields 0. The last angle is atan2(x_D, x_{D-1}), which
// keeps the sign of the final coordinate.
func (p Point) AngularComponent(i int) (float64, error) {
	d := len(p.coords)
	if i < 1 || i > d-1 {
		return 0, fmt.Errorf("AngularComponent: i=%d, dim=%d: %w", i, d, ErrAngleIndex)
	}
	// 0-based view of the 1-based formula.
	k := i - 1
	if i == d-1 {
		return math.Atan2(p.coords[d-1], p.coords[d-2]), nil
	}
	r := floats.Norm(p.coords[k:], 2)
	if r == 0 {
		return 0, nil
	}
	// Clamp against rounding so acos never sees |x| > 1.
	c := p.coords[k] / r
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}

	return math.Acos(c), nil
}

// Angles returns all D-1 angular components in order.
func (p Point) Angles() []float64 {
	d := len(p.coords)
	if d < 2 {
		return nil
	}
	out := make([]float64, d-1)
	for i := 1; i < d; i++ {
		out[i-1], _ = p.AngularComponent(i)
	}

	return out
}

// RelativeTo returns p - o: the displacement that leads from o to p.
func (p Point) RelativeTo(o Point) (Point, error) {
	if err := sameDimension("RelativeTo", p, o); err != nil {
		return Point{}, err
	}
	out := make([]float64, len(p.coords))
	floats.SubTo(out, p.coords, o.coords)

	return Point{coords: out}, nil
}

// Add returns the coordinate-wise sum p + o.
func (p Point) Add(o Point) (Point, error) {
	if err := sameDimension("Add", p, o); err != nil {
		return Point{}, err
	}
	out := make([]float64, len(p.coords))
	floats.AddTo(out, p.coords, o.coords)

	return Point{coords: out}, nil
}

// Scale returns k·p.
func (p Point) Scale(k float64) Point {
	out := make([]float64, len(p.coords))
	floats.ScaleTo(out, k, p.coords)

	return Point{coords: out}
}

// WithMagnitude returns a point with the direction of p and norm |m|.
// A negative m points the result the opposite way. The zero vector has no
// direction and is returned unchanged (as a fresh zero vector).
func (p Point) WithMagnitude(m float64) Point {
	n := p.Magnitude()
	if n == 0 {
		return Point{coords: make([]float64, len(p.coords))}
	}

	return p.Scale(m / n)
}

// DistanceTo returns |p - o|.
func (p Point) DistanceTo(o Point) (float64, error) {
	if err := sameDimension("DistanceTo", p, o); err != nil {
		return 0, err
	}

	return floats.Distance(p.coords, o.coords, 2), nil
}

// Equal reports whether p and o have the same dimension and every coordinate
// pair differs by at most tol (absolute or relative).
func (p Point) Equal(o Point, tol float64) bool {
	if len(p.coords) != len(o.coords) {
		return false
	}

	return floats.EqualApprox(p.coords, o.coords, tol)
}

// Centroid returns the coordinate-wise mean of points.
// Returns ErrEmptySet for no points and ErrDimensionMismatch if dimensions differ.
func Centroid(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrEmptySet
	}
	sum := make([]float64, len(points[0].coords))
	for i, p := range points {
		if len(p.coords) != len(sum) {
			return Point{}, fmt.Errorf("Centroid: point %d has dim %d, want %d: %w",
				i, len(p.coords), len(sum), ErrDimensionMismatch)
		}
		floats.Add(sum, p.coords)
	}
	floats.Scale(1/float64(len(points)), sum)

	return Point{coords: sum}, nil
}
