// Package wfc is a Wave Function Collapse toolkit: a deterministic,
// seedable constraint-propagation engine plus an overlapping-model pallet
// synthesizer that learns adjacency rules from a sample grid.
//
// 🚀 What is Wave Function Collapse?
//
//	Every output cell starts as a superposition of all tiles. The solver
//	repeatedly resolves the least-determined cell by a weighted random
//	draw and propagates the consequence through the tiles' adjacency
//	masks until no cell is left open: success when every cell holds exactly
//	one tile, failure when some cell holds none.
//
// ✨ Why this module?
//
//   - Reproducible – same seed, pallet and size give the same grid
//   - Generic payloads – tiles carry any T (pixels, sprite names, runes)
//   - Arbitrary kernels – masks reach any odd K×K neighbourhood
//   - Backtracking – contradicted steps roll back via an undo log or snapshots
//   - Observable – read-only per-step hooks for progress and animation
//
// Under the hood, everything is organized under these subpackages:
//
//	bitset/    — dense fixed-width bit vectors (superpositions, mask rows)
//	tile/      — Tile[T], K×K forbid-masks and ruleset helpers
//	gridgraph/ — grid geometry, kernel offsets, region labelling
//	wave/      — the propagation engine (entropy, collapse, rollback)
//	overlap/   — pallet synthesis from W×W windows of a sample
//	sample/    — image.Image ⇄ payload grid adapters
//	observe/   — logging, recording and fan-out observers
//
// Quick example (a sea/coast/land map):
//
//	sea, _ := tile.AllowAll(3, 3, "~")
//	coast, _ := tile.AllowAll(3, 3, ".")
//	land, _ := tile.AllowAll(3, 3, "#")
//	_ = sea.Disallow(2)
//	_ = land.Disallow(0)
//	w, _ := wave.New([]tile.Tile[string]{sea, coast, land}, 40, 20, 7)
//	_, _ = w.CollapseWithin(10_000)
//	grid, err := w.Payloads()
//
//	go get github.com/katalvlaran/wfc
package wfc
