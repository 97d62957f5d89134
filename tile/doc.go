// Package tile defines the adjacency ruleset a wave is solved against:
// per-tile weights, caller-defined payloads and K×K forbid-masks.
//
// What:
//
//   - Tile[T] bundles a selection Weight, an opaque Payload (e.g. a pixel)
//     and a Mask of forbidden neighbours.
//   - Mask is a flat, dynamically sized K×K grid of bit rows; row (dx,dy)
//     holds one bit per pallet id. A set bit means "this id is forbidden at
//     relative offset (dx,dy) from the owning tile".
//   - K (the kernel) is a runtime-validated odd integer; it is 3 for
//     hand-authored pallets and 2W-1 for pallets synthesized from W×W windows.
//
// Construction helpers:
//
//   - AllowAll:       no neighbour is forbidden.
//   - DisallowAll:    every neighbour is forbidden; relax it afterwards.
//   - Disallow:       forbid an id at every offset.
//   - DisallowDirect: forbid an id at the four orthogonal unit offsets only.
//   - ClearCenter:    allow every id at offset (0,0). Required after
//     DisallowAll, otherwise the tile is incompatible with itself.
//
// A pallet is an ordered []Tile[T]; the tile id is the slice index.
// ValidatePallet checks that every mask matches the pallet size and that
// all tiles share one kernel.
//
// Errors:
//
//   - ErrEvenKernel:     kernel is not a positive odd integer.
//   - ErrMaskSize:       mask width is not positive or does not match the pallet.
//   - ErrTileID:         id outside [0, size).
//   - ErrOffset:         offset outside the kernel radius.
//   - ErrEmptyPallet:    pallet has no tiles.
//   - ErrKernelMismatch: tiles of one pallet use different kernels.
package tile
