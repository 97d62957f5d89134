// Package overlap synthesizes a WFC pallet from a sample grid (the
// "overlapping model").
//
// What:
//
//	Every W×W window of the sample becomes a pattern. Identical windows
//	are merged and counted, optionally mirrored, and every ordered pair of
//	patterns is tested at every displacement of the (2W-1)×(2W-1) kernel:
//	the pair is compatible at (dx,dy) when all cells covered by both
//	windows hold equal values. Each pattern then becomes one tile:
//
//	  - Weight  = number of occurrences (mirrors and duplicates included)
//	  - Payload = the pattern's centre value
//	  - Mask    = forbid everything, allow all at the centre, then allow
//	    each compatible (offset, pattern) pair
//
//	A wave solved over this pallet only contains W×W neighbourhoods found
//	in the sample (or its mirrors), in roughly the sample's proportions.
//
// Pipeline:
//
//  1. Extract: one pattern per top-left position, x outer, y inner; no
//     wraparound, so pad the sample for seamless output.
//  2. Dedup:   structural equality, first occurrence kept, +1 per duplicate.
//  3. Mirror:  append the vertical mirror of every pattern, then the
//     horizontal mirror of every pattern so far (covering the combined
//     flip), each inheriting its source's count; dedup again.
//  4. Compat:  O(P²·K²·W²), fanned out one pattern per goroutine.
//  5. Tiles:   see above.
//
// Usage:
//
//	opts := overlap.DefaultOptions()
//	opts.Mirror = true
//	w, err := overlap.New(sample, 48, 48, seed, opts)
//	if err != nil {
//	  // ErrEvenWindow, ErrSampleTooSmall, gridgraph.ErrNonRectangular, ...
//	}
//	_, _ = w.CollapseWithin(100_000)
//	pixels, err := w.Payloads()
//
// Rotations are not generated; only the two mirror axes are.
package overlap
