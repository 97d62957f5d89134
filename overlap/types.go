// Package overlap defines synthesizer options and the Pattern type.
package overlap

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/wfc/wave"
)

// DefaultWindow is the window side used by DefaultOptions.
const DefaultWindow = 3

// Options configures pattern synthesis.
//
// Fields:
//   - Window  — odd side W of the extracted windows; the tile kernel is 2W-1.
//   - Mirror  — also learn the vertical and horizontal mirrors of every window.
//   - Workers — goroutines used by the compatibility test; ≤0 means GOMAXPROCS.
//     The pallet is identical for any value.
//   - Logger  — receives Debug events with pipeline counts; nil disables logging.
//   - Engine  — options forwarded to wave.New by New.
type Options struct {
	Window  int
	Mirror  bool
	Workers int
	Logger  *zerolog.Logger
	Engine  []wave.Option
}

// DefaultOptions returns 3×3 windows, no mirroring, GOMAXPROCS workers and
// no logging.
func DefaultOptions() Options {
	return Options{Window: DefaultWindow}
}

// Pattern is one distinct W×W window of the sample.
type Pattern[T comparable] struct {
	// Size is the window side W.
	Size int
	// Cells holds the W×W values row by row: Cells[y*Size+x].
	Cells []T
	// Count is the number of occurrences, used as the tile weight.
	Count int

	ids []int // Cells interned to small ints
}

// At returns the value at column x, row y of the window.
func (p Pattern[T]) At(x, y int) T {
	return p.Cells[y*p.Size+x]
}

// Center returns the value at the middle of the window.
func (p Pattern[T]) Center() T {
	return p.At(p.Size/2, p.Size/2)
}
