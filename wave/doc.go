// Package wave implements the Wave Function Collapse propagation engine.
//
// 🚀 What is a wave?
//
//	A Width×Height grid whose every cell holds a superposition: one bit per
//	pallet tile, set while that tile is still possible there. Solving
//	repeatedly picks the least-determined cell, resolves it by a weighted
//	random draw and propagates the consequence until no cell is left open.
//	The run succeeded (Collapsed) when every cell holds exactly one tile and
//	failed (Contradiction) when some cell holds none.
//
// ✨ Key features:
//   - entropy ranking 1 - 1/c with a deterministic first-found tie-break
//     (x outer, y inner), so runs are reproducible from the seed alone
//   - roulette-wheel selection over tile weights
//   - worklist propagation to a fixed point: every dirty cell projects the
//     AND of its candidates' masks onto its kernel neighbourhood
//   - checkpoint/retry backtracking on contradiction, with an undo log
//     (default) or full-grid snapshots
//   - optional read-only Observer notified after every step
//
// ⚙️ Usage:
//
//	w, err := wave.New(pallet, 32, 32, 42)
//	if err != nil {
//	  // ErrGridTooSmall, tile.ErrEmptyPallet, ...
//	}
//	steps, err := w.CollapseWithin(10_000)
//	if w.IsContradiction() {
//	  // the run failed; inspect w.TileAt / w.Partial
//	}
//	tiles, err := w.Tiles()
//
// Termination:
//
//	Collapse has no built-in step bound. With backtracking enabled and no
//	retry limit, a ruleset that keeps contradicting loops forever; use
//	CollapseWithin or WithRetryLimit when latency must be bounded.
//
// Concurrency:
//
//	A Wave owns its grid and random generator; it is not safe for
//	concurrent use.
//
// Complexity (per step, N cells, P tiles, K kernel side):
//
//   - selection:   O(N·P/64)
//   - propagation: O(D·K²·P·P/64) for D cells touched
//   - rollback:    O(changes) with the undo log, O(N·P/64) with snapshots
package wave
