// Package gridgraph treats a rectangular grid of cells as a graph: it owns
// the geometry shared by the wave solver (bounds, row-major indexing,
// neighbour and kernel offsets) and labels connected regions of a
// resolved output.
//
// What:
//
//   - GridGraph describes a Width×Height lattice with Conn4 or Conn8
//     neighbourhoods. It holds no cell values.
//   - KernelOffsets enumerates every relative offset of a K×K kernel in the
//     fixed order used by propagation (dx outer, dy inner).
//   - Dimensions validates a [y][x] value grid (non-empty, rectangular).
//   - ConnectedComponents groups cells of equal value into regions.
//
// Why:
//
//   - Wave solving: constant-time bounds checks and index arithmetic.
//   - Output inspection: count rooms, lakes or any contiguous tile region
//     after a wave has fully collapsed.
//
// Complexity:
//
//   - InBounds, Index, Coordinate: O(1).
//   - KernelOffsets:       O(K²).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid:      a dimension is zero or negative.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrSizeMismatch:   a value grid does not match the GridGraph dimensions.
package gridgraph
