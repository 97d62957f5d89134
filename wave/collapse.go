package wave

import "fmt"

// Step resolves the lowest-entropy cell and propagates the consequence.
//
// Behavior:
//  1. Refuse with ErrFinished once IsDone. A kept contradiction does not
//     stop stepping; the remaining open cells are still resolved.
//  2. Select the cell with LowestEntropy.
//  3. Draw one tile among its candidates with probability proportional
//     to weight; ErrZeroWeight if the candidates weigh nothing.
//  4. Checkpoint, assign the tile and propagate to a fixed point.
//  5. On contradiction roll back to the checkpoint unless backtracking is
//     disabled or the retry limit is exhausted.
//  6. Notify the observer.
func (w *Wave[T]) Step() (StepResult, error) {
	if w.IsDone() {
		return StepResult{}, ErrFinished
	}
	x, y, _ := w.LowestEntropy()

	return w.collapseCell(x, y)
}

// CollapseAt forces a weighted collapse of the open cell (x,y), bypassing
// entropy selection. It counts as a step.
func (w *Wave[T]) CollapseAt(x, y int) (StepResult, error) {
	if !w.grid.InBounds(x, y) {
		return StepResult{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if w.IsDone() {
		return StepResult{}, ErrFinished
	}
	if w.cell(w.grid.Index(x, y)).Count() < 2 {
		return StepResult{}, fmt.Errorf("%w: (%d,%d)", ErrCellNotOpen, x, y)
	}

	return w.collapseCell(x, y)
}

// Collapse steps until no cell is open and returns the number of steps
// taken by this call. It has no step bound; see CollapseWithin.
// A contradiction kept with backtracking off (or the retry limit spent)
// does not end the run early: every other open cell is still resolved, so
// callers must check IsContradiction afterwards.
func (w *Wave[T]) Collapse() (int, error) {
	return w.run(0)
}

// CollapseWithin is Collapse with a caller-imposed budget of maxSteps
// steps. It returns ErrStepBudget, leaving the wave Open, when the budget
// runs out first.
func (w *Wave[T]) CollapseWithin(maxSteps int) (int, error) {
	if maxSteps <= 0 {
		return 0, fmt.Errorf("%w: step budget %d", ErrBadOption, maxSteps)
	}

	return w.run(maxSteps)
}

func (w *Wave[T]) run(limit int) (int, error) {
	count := 0
	for !w.IsDone() {
		if limit > 0 && count >= limit {
			return count, ErrStepBudget
		}
		if _, err := w.Step(); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// Ban removes tile id from the candidates of cell (x,y) and propagates.
// Banning an absent candidate is a no-op. If propagation empties a cell
// the ban is rolled back (when backtracking is enabled) and
// ErrContradiction is returned. Bans are not counted as steps.
func (w *Wave[T]) Ban(x, y, id int) error {
	if !w.grid.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if id < 0 || id >= w.size {
		return fmt.Errorf("%w: %d", ErrTileID, id)
	}
	i := w.grid.Index(x, y)
	if !w.cell(i).Has(id) {
		return nil
	}

	w.begin()
	defer w.end()
	pos := i*w.words + id/64
	w.write(pos, w.cells[pos]&^(uint64(1)<<(uint(id)%64)))
	if !w.cell(i).Empty() && w.propagate(i) {
		return nil
	}
	if w.cfg.backtrack {
		w.restore()
	}

	return fmt.Errorf("%w: banning %d at (%d,%d)", ErrContradiction, id, x, y)
}

// collapseCell runs steps 3-6 of Step for cell (x,y).
func (w *Wave[T]) collapseCell(x, y int) (StepResult, error) {
	i := w.grid.Index(x, y)
	id, err := w.pick(i)
	if err != nil {
		return StepResult{}, fmt.Errorf("cell (%d,%d): %w", x, y, err)
	}

	w.begin()
	w.assign(i, id)
	ok := w.propagate(i)
	w.steps++
	res := StepResult{Step: w.steps, X: x, Y: y, Tile: id}
	if !ok {
		res.Contradiction = true
		if w.canRetry() {
			w.restore()
			w.rollbacks++
			res.RolledBack = true
		}
	}
	w.end()

	if w.cfg.observer != nil {
		w.cfg.observer.OnStep(view[T]{w}, res)
	}

	return res, nil
}

// pick draws one candidate of cell i by roulette-wheel selection: a single
// uniform draw r in [0, total) selects the first id, in pallet order, whose
// cumulative weight exceeds r.
// Complexity: O(P).
func (w *Wave[T]) pick(i int) (int, error) {
	sp := w.cell(i)
	var total uint64
	for id := sp.First(); id >= 0; id = sp.Next(id + 1) {
		total += uint64(w.pallet[id].Weight)
	}
	if total == 0 {
		return -1, ErrZeroWeight
	}

	r := uint64(w.rng.Int63n(int64(total)))
	var acc uint64
	for id := sp.First(); id >= 0; id = sp.Next(id + 1) {
		acc += uint64(w.pallet[id].Weight)
		if acc > r {
			return id, nil
		}
	}

	return -1, ErrZeroWeight // unreachable: acc reaches total > r
}

// assign narrows cell i to the single tile id.
func (w *Wave[T]) assign(i, id int) {
	base := i * w.words
	for k := 0; k < w.words; k++ {
		var v uint64
		if k == id/64 {
			v = uint64(1) << (uint(id) % 64)
		}
		if w.cells[base+k] != v {
			w.write(base+k, v)
		}
	}
}

func (w *Wave[T]) canRetry() bool {
	if !w.cfg.backtrack {
		return false
	}

	return w.cfg.retryLimit == 0 || w.rollbacks < w.cfg.retryLimit
}
