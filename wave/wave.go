// SPDX-License-Identifier: MIT
package wave

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wfc/bitset"
	"github.com/katalvlaran/wfc/gridgraph"
	"github.com/katalvlaran/wfc/tile"
)

// Wave is a WFC solver over a pallet of tiles carrying payloads of type T.
//
// The grid is stored as one flat []uint64: cell i (row-major, see
// gridgraph.Index) owns words [i*words, (i+1)*words). Every superposition
// therefore has exactly PalletSize bits for the whole lifetime of the wave.
type Wave[T any] struct {
	pallet []tile.Tile[T]
	size   int // pallet size
	words  int // uint64 words per cell
	radius int // kernel radius

	grid    *gridgraph.GridGraph
	offsets [][2]int // kernel offsets, dx outer, dy inner
	cells   []uint64

	seed      uint64
	rng       *rand.Rand
	steps     int
	rollbacks int

	cfg config

	// scratch reused across steps
	combined  []uint64 // one forbid row per kernel offset
	queue     []int
	queued    []bool
	recording bool
	undo      []undoEntry
	snapshot  []uint64
}

// New builds a wave of width×height cells, every cell in full
// superposition, over a deep copy of pallet.
//
// Returns ErrGridTooSmall if width or height is ≤1, tile.ErrEmptyPallet,
// tile.ErrMaskSize or tile.ErrKernelMismatch for an inconsistent pallet,
// ErrBadOption for invalid options.
// Complexity: O(N·P/64 + P·K²·P/64) time and memory.
func New[T any](pallet []tile.Tile[T], width, height int, seed uint64, opts ...Option) (*Wave[T], error) {
	if width <= 1 || height <= 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrGridTooSmall, width, height)
	}
	kernel, err := tile.ValidatePallet(pallet)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err = cfg.validate(); err != nil {
		return nil, err
	}
	grid, err := gridgraph.New(width, height, gridgraph.Conn4)
	if err != nil {
		return nil, err
	}

	// Deep copy to keep the pallet immutable for the solver's lifetime
	own := make([]tile.Tile[T], len(pallet))
	for i := range pallet {
		own[i] = pallet[i].Clone()
	}

	w := &Wave[T]{
		pallet:   own,
		size:     len(own),
		words:    bitset.Words(len(own)),
		radius:   kernel / 2,
		grid:     grid,
		offsets:  gridgraph.KernelOffsets(kernel / 2),
		seed:     seed,
		cfg:      cfg,
		queued:   make([]bool, grid.Cells()),
		combined: make([]uint64, kernel*kernel*bitset.Words(len(own))),
	}
	w.cells = make([]uint64, grid.Cells()*w.words)
	w.Reset()

	return w, nil
}

// Reset restores full superposition everywhere, clears the step and
// rollback counters and reseeds the generator, so the next run replays
// the previous one exactly.
// Complexity: O(N·P/64).
func (w *Wave[T]) Reset() {
	for i := 0; i < w.grid.Cells(); i++ {
		w.cell(i).Fill(w.size)
	}
	w.rng = rngFromSeed(w.seed)
	w.steps = 0
	w.rollbacks = 0
	w.undo = w.undo[:0]
	w.queue = w.queue[:0]
	for i := range w.queued {
		w.queued[i] = false
	}
}

// cell returns the superposition of cell i as a view into the grid.
func (w *Wave[T]) cell(i int) bitset.Set {
	return bitset.Set(w.cells[i*w.words : (i+1)*w.words])
}

// Width returns the number of columns.
func (w *Wave[T]) Width() int { return w.grid.Width }

// Height returns the number of rows.
func (w *Wave[T]) Height() int { return w.grid.Height }

// PalletSize returns the number of tiles.
func (w *Wave[T]) PalletSize() int { return w.size }

// Kernel returns the side of the propagation kernel.
func (w *Wave[T]) Kernel() int { return 2*w.radius + 1 }

// Seed returns the seed the wave was built with.
func (w *Wave[T]) Seed() uint64 { return w.seed }

// Steps returns the number of steps taken since construction or Reset,
// rolled-back steps included.
func (w *Wave[T]) Steps() int { return w.steps }

// Rollbacks returns the number of contradicted steps that were undone.
func (w *Wave[T]) Rollbacks() int { return w.rollbacks }

// Tile returns pallet entry id. The mask shares storage with the wave and
// must not be modified.
func (w *Wave[T]) Tile(id int) (tile.Tile[T], error) {
	if id < 0 || id >= w.size {
		return tile.Tile[T]{}, fmt.Errorf("%w: %d", ErrTileID, id)
	}

	return w.pallet[id], nil
}

// State classifies the grid. Contradiction takes precedence over Open.
// Complexity: O(N·P/64).
func (w *Wave[T]) State() State {
	open := false
	for i := 0; i < w.grid.Cells(); i++ {
		switch c := w.cell(i).Count(); {
		case c == 0:
			return Contradiction
		case c > 1:
			open = true
		}
	}
	if open {
		return Open
	}

	return Collapsed
}

// IsDone reports whether no cell is left open, i.e. every cell holds one
// candidate or none. A wave with an empty cell is not done while other
// cells still hold several candidates; check IsContradiction to tell
// success from failure.
// Complexity: O(N·P/64).
func (w *Wave[T]) IsDone() bool {
	for i := 0; i < w.grid.Cells(); i++ {
		if w.cell(i).Count() > 1 {
			return false
		}
	}

	return true
}

// IsContradiction reports whether some cell has no candidate left.
func (w *Wave[T]) IsContradiction() bool {
	return w.State() == Contradiction
}

// view exposes only the View methods of a Wave, so observers cannot type
// assert their way back to the engine.
type view[T any] struct{ w *Wave[T] }

func (v view[T]) Width() int                        { return v.w.Width() }
func (v view[T]) Height() int                       { return v.w.Height() }
func (v view[T]) PalletSize() int                   { return v.w.PalletSize() }
func (v view[T]) CandidateCount(x, y int) int       { return v.w.CandidateCount(x, y) }
func (v view[T]) TileAt(x, y int) (int, CellStatus) { return v.w.TileAt(x, y) }
func (v view[T]) State() State                      { return v.w.State() }
func (v view[T]) IsDone() bool                      { return v.w.IsDone() }
func (v view[T]) Steps() int                        { return v.w.Steps() }
func (v view[T]) Rollbacks() int                    { return v.w.Rollbacks() }
