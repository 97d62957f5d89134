package wave

import "github.com/katalvlaran/wfc/bitset"

// propagate closes the grid under the pallet's rules, starting from cell
// start, and reports false as soon as some cell runs out of candidates.
//
// Algorithm:
//  1. Queue start.
//  2. Pop a cell c and build its combined mask: for every kernel offset,
//     the AND of the forbid rows of all tiles still possible at c. An id
//     forbidden by every candidate cannot sit at that offset whatever c
//     becomes.
//  3. Clear the combined row from every in-bounds neighbour (c itself
//     included at offset 0). A neighbour that lost a bit is queued unless
//     already queued; a neighbour left empty aborts with false.
//  4. Repeat until the queue drains.
//
// On completion no single cell can narrow any neighbour further, i.e.
// the grid is at the fixed point of the rule.
func (w *Wave[T]) propagate(start int) bool {
	w.queue = append(w.queue[:0], start)
	w.queued[start] = true

	for head := 0; head < len(w.queue); head++ {
		c := w.queue[head]
		w.queued[c] = false

		sp := w.cell(c)
		if sp.Empty() {
			w.drain(head + 1)
			return false
		}
		w.combine(sp)

		cx, cy := w.grid.Coordinate(c)
		for o, d := range w.offsets {
			nx, ny := cx+d[0], cy+d[1]
			if !w.grid.InBounds(nx, ny) {
				continue
			}
			n := w.grid.Index(nx, ny)
			if !w.restrict(n, w.combinedRow(o)) {
				continue
			}
			if w.cell(n).Empty() {
				w.drain(head + 1)
				return false
			}
			if !w.queued[n] {
				w.queued[n] = true
				w.queue = append(w.queue, n)
			}
		}
	}
	w.queue = w.queue[:0]

	return true
}

// drain clears the queued flags of everything still waiting from index from.
func (w *Wave[T]) drain(from int) {
	for _, c := range w.queue[from:] {
		w.queued[c] = false
	}
	w.queue = w.queue[:0]
}

// combine fills w.combined with the AND of the masks of all tiles in sp.
func (w *Wave[T]) combine(sp bitset.Set) {
	for o := range w.offsets {
		w.combinedRow(o).Fill(w.size)
	}
	for id := sp.First(); id >= 0; id = sp.Next(id + 1) {
		m := w.pallet[id].Mask
		for o, d := range w.offsets {
			w.combinedRow(o).And(m.Row(d[0], d[1]))
		}
	}
}

func (w *Wave[T]) combinedRow(o int) bitset.Set {
	return bitset.Set(w.combined[o*w.words : (o+1)*w.words])
}

// restrict clears the bits of forbid from cell n and reports whether any
// bit was actually cleared.
func (w *Wave[T]) restrict(n int, forbid bitset.Set) bool {
	base := n * w.words
	changed := false
	for k, f := range forbid {
		old := w.cells[base+k]
		if nw := old &^ f; nw != old {
			w.write(base+k, nw)
			changed = true
		}
	}

	return changed
}
