package tile

import "errors"

var (
	// ErrEvenKernel indicates a kernel size that is not a positive odd integer.
	ErrEvenKernel = errors.New("tile: kernel size must be a positive odd integer")
	// ErrMaskSize indicates a mask width that is not positive or does not match the pallet size.
	ErrMaskSize = errors.New("tile: mask size does not match pallet size")
	// ErrTileID indicates a tile id outside [0, size).
	ErrTileID = errors.New("tile: tile id out of range")
	// ErrOffset indicates a relative offset outside the kernel radius.
	ErrOffset = errors.New("tile: offset outside kernel")
	// ErrEmptyPallet indicates a pallet without tiles.
	ErrEmptyPallet = errors.New("tile: pallet must contain at least one tile")
	// ErrKernelMismatch indicates tiles of one pallet built with different kernels.
	ErrKernelMismatch = errors.New("tile: all tiles in a pallet must share one kernel size")
)
