package wave

// undoEntry remembers the previous value of one grid word.
type undoEntry struct {
	pos int
	old uint64
}

// begin opens a checkpoint. Nothing is recorded when backtracking is off.
func (w *Wave[T]) begin() {
	w.undo = w.undo[:0]
	w.recording = w.cfg.backtrack
	if w.recording && w.cfg.rollback == RollbackSnapshot {
		w.snapshot = append(w.snapshot[:0], w.cells...)
	}
}

// write stores v at grid word pos, logging the old value when an undo log
// checkpoint is open.
func (w *Wave[T]) write(pos int, v uint64) {
	if w.recording && w.cfg.rollback == RollbackUndoLog {
		w.undo = append(w.undo, undoEntry{pos: pos, old: w.cells[pos]})
	}
	w.cells[pos] = v
}

// restore returns the grid to the state captured by begin.
func (w *Wave[T]) restore() {
	if !w.recording {
		return
	}
	switch w.cfg.rollback {
	case RollbackSnapshot:
		copy(w.cells, w.snapshot)
	default:
		for i := len(w.undo) - 1; i >= 0; i-- {
			e := w.undo[i]
			w.cells[e.pos] = e.old
		}
	}
	w.undo = w.undo[:0]
}

// end closes the checkpoint and discards its log.
func (w *Wave[T]) end() {
	w.recording = false
	w.undo = w.undo[:0]
}
