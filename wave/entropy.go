package wave

// Entropy returns the ranking entropy of cell (x,y): 1 - 1/c for c ≥ 2
// candidates, MaxEntropy for resolved, contradicted or out-of-bounds cells.
// It is strictly increasing in c and only meaningful for comparisons.
// Complexity: O(P/64).
func (w *Wave[T]) Entropy(x, y int) float64 {
	if !w.grid.InBounds(x, y) {
		return MaxEntropy
	}

	return entropyOf(w.cell(w.grid.Index(x, y)).Count())
}

func entropyOf(c int) float64 {
	if c <= 1 {
		return MaxEntropy
	}

	return 1 - 1/float64(c)
}

// LowestEntropy returns the open cell with the lowest entropy.
// Cells are scanned x outer, y inner and only a strictly lower value
// replaces the current best, so the first cell found wins ties.
// ok is false when no cell is open.
// Complexity: O(N·P/64).
func (w *Wave[T]) LowestEntropy() (x, y int, ok bool) {
	best := MaxEntropy
	for cx := 0; cx < w.grid.Width; cx++ {
		for cy := 0; cy < w.grid.Height; cy++ {
			e := entropyOf(w.cell(w.grid.Index(cx, cy)).Count())
			if e < best {
				best, x, y = e, cx, cy
			}
		}
	}

	return x, y, best < MaxEntropy
}
