// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Point type, sentinel errors and constructors.
// Policy:
//   - Points are immutable: constructors copy caller slices, accessors return copies.
//   - Constructors validate (dimension ≥ 1, finite coordinates); methods never panic.

package hyperpoint

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Sentinel errors for point construction and arithmetic.
var (
	// ErrZeroDimension indicates a Point with no coordinates was requested.
	ErrZeroDimension = errors.New("hyperpoint: dimension must be at least 1")

	// ErrDimensionMismatch indicates two Points of different dimension were combined.
	ErrDimensionMismatch = errors.New("hyperpoint: dimension mismatch")

	// ErrNonFinite indicates a NaN or ±Inf coordinate was supplied.
	ErrNonFinite = errors.New("hyperpoint: coordinate is not finite")

	// ErrAngleIndex indicates AngularComponent was asked for an index outside [1, D-1].
	ErrAngleIndex = errors.New("hyperpoint: angular index out of range")

	// ErrCoordinateIndex indicates Coordinate was asked for an index outside [0, D).
	ErrCoordinateIndex = errors.New("hyperpoint: coordinate index out of range")

	// ErrEmptySet indicates Centroid was called without points.
	ErrEmptySet = errors.New("hyperpoint: empty point set")
)

// Point is an immutable position in D-dimensional Euclidean space.
// The zero value is not a valid Point; use New, Zero or Random.
type Point struct {
	coords []float64
}

// New returns a Point holding a copy of coords.
// Returns ErrZeroDimension for an empty slice and ErrNonFinite for NaN/Inf values.
func New(coords ...float64) (Point, error) {
	if len(coords) == 0 {
		return Point{}, ErrZeroDimension
	}
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Point{}, fmt.Errorf("New: coordinate %d = %v: %w", i, c, ErrNonFinite)
		}
	}
	cp := make([]float64, len(coords))
	copy(cp, coords)

	return Point{coords: cp}, nil
}

// Zero returns the origin of a dim-dimensional space.
func Zero(dim int) (Point, error) {
	if dim < 1 {
		return Point{}, fmt.Errorf("Zero: dim=%d: %w", dim, ErrZeroDimension)
	}

	return Point{coords: make([]float64, dim)}, nil
}

// Random returns a Point whose coordinates are drawn uniformly from [-1, 1).
// rng must be non-nil; callers own its seeding (and its synchronization).
func Random(dim int, rng *rand.Rand) (Point, error) {
	if dim < 1 {
		return Point{}, fmt.Errorf("Random: dim=%d: %w", dim, ErrZeroDimension)
	}
	if rng == nil {
		panic("hyperpoint: Random(nil rng)")
	}
	coords := make([]float64, dim)
	for i := range coords {
		coords[i] = rng.Float64()*2 - 1
	}

	return Point{coords: coords}, nil
}

// Dimension reports D, the number of coordinates.
func (p Point) Dimension() int {
	return len(p.coords)
}

// Coordinate returns the i-th (0-based) Cartesian coordinate.
func (p Point) Coordinate(i int) (float64, error) {
	if i < 0 || i >= len(p.coords) {
		return 0, fmt.Errorf("Coordinate: i=%d, dim=%d: %w", i, len(p.coords), ErrCoordinateIndex)
	}

	return p.coords[i], nil
}

// Coordinates returns a copy of all Cartesian coordinates.
func (p Point) Coordinates() []float64 {
	out := make([]float64, len(p.coords))
	copy(out, p.coords)

	return out
}

// String renders the point as "(x1, x2, …)".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', 6, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}

// sameDimension is the shared guard for binary operations.
func sameDimension(method string, a, b Point) error {
	if len(a.coords) != len(b.coords) {
		return fmt.Errorf("%s: %d vs %d: %w", method, len(a.coords), len(b.coords), ErrDimensionMismatch)
	}

	return nil
}
