// Package hyperpoint provides Point, an immutable N-dimensional vector used as the
// position primitive of the embedding engine.
//
// A Point exposes two views of the same coordinates:
//
//   - Cartesian: Coordinate(i), Coordinates(), Dimension().
//   - Hyperspherical: Magnitude() and AngularComponent(i) for i in [1, D-1],
//     computed on demand from the Cartesian coordinates.
//
// Angular convention (1-based, D = dimension):
//
//	r_i     = sqrt(x_i² + x_{i+1}² + … + x_D²)
//	angle_i = acos(x_i / r_i)          for i < D-1   (0 when r_i == 0)
//	angle_i = atan2(x_D, x_{D-1})      for i = D-1
//
// All operations are pure: every method returns a new Point and never mutates its
// receiver or argument. Binary operations (RelativeTo, Add, DistanceTo) require equal
// dimensions and return ErrDimensionMismatch otherwise; nothing is padded or truncated.
//
// Degenerate direction: WithMagnitude on the zero vector has no direction to preserve.
// It returns the zero vector of the same dimension instead of NaN coordinates.
//
// Complexity: every operation is O(D) time and allocates one D-length slice.
package hyperpoint
