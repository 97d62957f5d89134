// Package wave defines states, step results, observer hooks and options.
package wave

import (
	"fmt"
	"math"
)

// MaxEntropy is the sentinel entropy of resolved and contradicted cells.
// It is never selected by LowestEntropy.
const MaxEntropy = math.MaxFloat64

// State classifies the whole grid.
type State int

const (
	// Open: at least one cell has several candidates and none has zero.
	Open State = iota
	// Collapsed: every cell has exactly one candidate.
	Collapsed
	// Contradiction: at least one cell has zero candidates.
	Contradiction
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Collapsed:
		return "collapsed"
	case Contradiction:
		return "contradiction"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// CellStatus classifies a single cell.
type CellStatus int

const (
	// CellOpen: two or more candidates remain.
	CellOpen CellStatus = iota
	// CellResolved: exactly one candidate remains.
	CellResolved
	// CellContradicted: no candidate remains.
	CellContradicted
	// CellOutside: the coordinates lie outside the grid.
	CellOutside
)

// String implements fmt.Stringer.
func (c CellStatus) String() string {
	switch c {
	case CellOpen:
		return "open"
	case CellResolved:
		return "resolved"
	case CellContradicted:
		return "contradicted"
	case CellOutside:
		return "outside"
	default:
		return fmt.Sprintf("CellStatus(%d)", int(c))
	}
}

// StepResult describes one collapse step.
type StepResult struct {
	// Step is the 1-based step number since construction or Reset.
	Step int
	// X, Y locate the collapsed cell.
	X, Y int
	// Tile is the id drawn for the cell.
	Tile int
	// Contradiction reports that propagation emptied some cell.
	Contradiction bool
	// RolledBack reports that the grid was restored to its pre-step state.
	RolledBack bool
}

// Violation is a pair of resolved cells whose tiles are incompatible.
// Tile at (X,Y) forbids Neighbor at (X+DX, Y+DY).
type Violation struct {
	X, Y     int
	DX, DY   int
	Tile     int
	Neighbor int
}

// View is the read-only face of a Wave handed to observers.
type View interface {
	Width() int
	Height() int
	PalletSize() int
	CandidateCount(x, y int) int
	TileAt(x, y int) (int, CellStatus)
	State() State
	IsDone() bool
	Steps() int
	Rollbacks() int
}

// Observer is notified synchronously after every step.
// Implementations must not retain or mutate the wave.
type Observer interface {
	OnStep(v View, r StepResult)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(v View, r StepResult)

// OnStep calls f(v, r).
func (f ObserverFunc) OnStep(v View, r StepResult) { f(v, r) }

// RollbackMode selects how a contradicted step is undone.
type RollbackMode int

const (
	// RollbackUndoLog records every word changed during a step and replays
	// the log in reverse. Memory is proportional to the changes.
	RollbackUndoLog RollbackMode = iota
	// RollbackSnapshot copies the whole grid before each step.
	RollbackSnapshot
)

// Option configures a Wave at construction.
type Option func(c *config)

// config collects option values before they are validated by New.
type config struct {
	observer   Observer
	rollback   RollbackMode
	backtrack  bool
	retryLimit int
}

func defaultConfig() config {
	return config{rollback: RollbackUndoLog, backtrack: true}
}

// WithObserver installs o to be called after every step. nil removes it.
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}

// WithRollback selects the rollback strategy.
func WithRollback(m RollbackMode) Option {
	return func(c *config) { c.rollback = m }
}

// WithBacktracking enables or disables checkpoint rollback on contradiction.
// When disabled the first contradiction is kept and the wave is done.
func WithBacktracking(enabled bool) Option {
	return func(c *config) { c.backtrack = enabled }
}

// WithRetryLimit caps the total number of rollbacks; 0 means unlimited.
// Once the cap is reached the next contradiction is kept.
func WithRetryLimit(n int) Option {
	return func(c *config) { c.retryLimit = n }
}

func (c config) validate() error {
	if c.rollback != RollbackUndoLog && c.rollback != RollbackSnapshot {
		return fmt.Errorf("%w: rollback mode %d", ErrBadOption, int(c.rollback))
	}
	if c.retryLimit < 0 {
		return fmt.Errorf("%w: retry limit %d", ErrBadOption, c.retryLimit)
	}

	return nil
}
