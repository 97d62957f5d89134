package wave

import (
	"errors"

	"github.com/katalvlaran/wfc/tile"
)

// Sentinel errors for wave operations.
var (
	// ErrGridTooSmall indicates a width or height of 1 or less.
	ErrGridTooSmall = errors.New("wave: grid width and height must both exceed 1")
	// ErrEmptyPallet indicates a pallet without tiles.
	ErrEmptyPallet = tile.ErrEmptyPallet
	// ErrZeroWeight indicates the candidates of the selected cell weigh 0 in total.
	ErrZeroWeight = errors.New("wave: total weight of candidates is zero")
	// ErrFinished indicates a step was requested while no cell is open.
	ErrFinished = errors.New("wave: no open cell left")
	// ErrOutOfBounds indicates cell coordinates outside the grid.
	ErrOutOfBounds = errors.New("wave: cell out of bounds")
	// ErrCellNotOpen indicates a forced collapse of a cell that is not open.
	ErrCellNotOpen = errors.New("wave: cell has fewer than two candidates")
	// ErrTileID indicates a tile id outside the pallet.
	ErrTileID = errors.New("wave: tile id out of range")
	// ErrContradiction indicates the grid holds a cell without candidates.
	ErrContradiction = errors.New("wave: contradiction")
	// ErrIncomplete indicates the grid still holds cells with several candidates.
	ErrIncomplete = errors.New("wave: wave is not fully collapsed")
	// ErrStepBudget indicates CollapseWithin ran out of steps.
	ErrStepBudget = errors.New("wave: step budget exhausted")
	// ErrBadOption indicates an invalid functional option value.
	ErrBadOption = errors.New("wave: invalid option")
)
