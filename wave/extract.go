package wave

import (
	"github.com/katalvlaran/wfc/gridgraph"
	"github.com/katalvlaran/wfc/tile"
)

// TileAt returns the resolved tile id of cell (x,y) with CellResolved, or
// -1 with CellOpen, CellContradicted or CellOutside.
func (w *Wave[T]) TileAt(x, y int) (int, CellStatus) {
	if !w.grid.InBounds(x, y) {
		return -1, CellOutside
	}
	sp := w.cell(w.grid.Index(x, y))
	switch sp.Count() {
	case 0:
		return -1, CellContradicted
	case 1:
		return sp.First(), CellResolved
	default:
		return -1, CellOpen
	}
}

// CandidateCount returns how many tiles remain possible at (x,y), or -1
// outside the grid.
func (w *Wave[T]) CandidateCount(x, y int) int {
	if !w.grid.InBounds(x, y) {
		return -1
	}

	return w.cell(w.grid.Index(x, y)).Count()
}

// Candidates returns the ids still possible at (x,y) in pallet order, or
// nil outside the grid.
func (w *Wave[T]) Candidates(x, y int) []int {
	if !w.grid.InBounds(x, y) {
		return nil
	}

	return w.cell(w.grid.Index(x, y)).Indices()
}

// Partial returns the [y][x] grid of resolved tile ids at any point of
// solving; unresolved and contradicted cells hold -1.
func (w *Wave[T]) Partial() [][]int {
	out := make([][]int, w.grid.Height)
	for y := range out {
		out[y] = make([]int, w.grid.Width)
		for x := range out[y] {
			out[y][x], _ = w.TileAt(x, y)
		}
	}

	return out
}

// Tiles returns the [y][x] grid of tile ids of a collapsed wave.
// Returns ErrContradiction or ErrIncomplete otherwise.
func (w *Wave[T]) Tiles() ([][]int, error) {
	if err := w.requireCollapsed(); err != nil {
		return nil, err
	}

	return w.Partial(), nil
}

// Payloads returns the [y][x] grid of payloads of a collapsed wave.
// Returns ErrContradiction or ErrIncomplete otherwise.
func (w *Wave[T]) Payloads() ([][]T, error) {
	if err := w.requireCollapsed(); err != nil {
		return nil, err
	}
	out := make([][]T, w.grid.Height)
	for y := range out {
		out[y] = make([]T, w.grid.Width)
		for x := range out[y] {
			id, _ := w.TileAt(x, y)
			out[y][x] = w.pallet[id].Payload
		}
	}

	return out, nil
}

func (w *Wave[T]) requireCollapsed() error {
	switch w.State() {
	case Contradiction:
		return ErrContradiction
	case Open:
		return ErrIncomplete
	default:
		return nil
	}
}

// Violations re-checks every pair of resolved cells within the kernel
// against the masks and returns each (tile, offset, neighbour) triple the
// tile forbids. A wave collapsed by this package yields none.
// Complexity: O(N·K²).
func (w *Wave[T]) Violations() []Violation {
	var out []Violation
	for x := 0; x < w.grid.Width; x++ {
		for y := 0; y < w.grid.Height; y++ {
			a, st := w.TileAt(x, y)
			if st != CellResolved {
				continue
			}
			for _, d := range w.offsets {
				b, nst := w.TileAt(x+d[0], y+d[1])
				if nst != CellResolved {
					continue
				}
				if w.pallet[a].Forbids(d[0], d[1], b) {
					out = append(out, Violation{X: x, Y: y, DX: d[0], DY: d[1], Tile: a, Neighbor: b})
				}
			}
		}
	}

	return out
}

// Compatible reports whether tile a at the origin and tile b at (dx,dy)
// satisfy both tiles' masks.
func (w *Wave[T]) Compatible(a, b, dx, dy int) bool {
	if a < 0 || a >= w.size || b < 0 || b >= w.size {
		return false
	}

	return tile.Compatible(w.pallet, a, b, dx, dy)
}

// Regions labels connected regions of equal resolved tile ids in the
// current grid; unresolved cells belong to no region. Each region is a
// list of row-major cell indices (see gridgraph.GridGraph.Coordinate).
func (w *Wave[T]) Regions(conn gridgraph.Connectivity) ([][]int, error) {
	gg, err := gridgraph.New(w.grid.Width, w.grid.Height, conn)
	if err != nil {
		return nil, err
	}

	return gg.ConnectedComponents(w.Partial())
}
