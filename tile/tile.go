package tile

import "fmt"

// DefaultWeight is the weight assigned by AllowAll and DisallowAll.
const DefaultWeight = 1

// Tile is one entry of a pallet.
//
// Weight is the relative selection frequency; Payload is opaque caller data
// (a pixel value, a sprite name, ...). Mask lists which ids are forbidden
// around this tile.
type Tile[T any] struct {
	Weight  uint32
	Payload T
	Mask    Mask
}

// AllowAll returns a tile of weight 1 whose mask forbids nothing.
// size is the pallet size; kernel is the odd mask side.
func AllowAll[T any](size, kernel int, payload T) (Tile[T], error) {
	m, err := NewMask(size, kernel, false)
	if err != nil {
		return Tile[T]{}, err
	}

	return Tile[T]{Weight: DefaultWeight, Payload: payload, Mask: m}, nil
}

// DisallowAll returns a tile of weight 1 whose mask forbids every id at
// every offset, including the centre. Call ClearCenter before installing
// real rules.
func DisallowAll[T any](size, kernel int, payload T) (Tile[T], error) {
	m, err := NewMask(size, kernel, true)
	if err != nil {
		return Tile[T]{}, err
	}

	return Tile[T]{Weight: DefaultWeight, Payload: payload, Mask: m}, nil
}

// Disallow forbids id at every kernel offset, centre included.
func (t *Tile[T]) Disallow(id int) error {
	r := t.Mask.Radius()
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			if err := t.Mask.set(dx, dy, id, true); err != nil {
				return err
			}
		}
	}

	return nil
}

// DisallowDirect forbids id at (±1,0) and (0,±1) only; diagonal and
// farther offsets keep their current value.
// A kernel of 1 has no orthogonal neighbours and returns ErrOffset.
func (t *Tile[T]) DisallowDirect(id int) error {
	for _, d := range directOffsets {
		if err := t.Mask.set(d[0], d[1], id, true); err != nil {
			return err
		}
	}

	return nil
}

// DisallowAt forbids id at the single offset (dx,dy).
func (t *Tile[T]) DisallowAt(dx, dy, id int) error {
	return t.Mask.set(dx, dy, id, true)
}

// AllowAt clears the forbid bit of id at offset (dx,dy).
func (t *Tile[T]) AllowAt(dx, dy, id int) error {
	return t.Mask.set(dx, dy, id, false)
}

// ClearCenter allows every id at offset (0,0).
func (t *Tile[T]) ClearCenter() {
	t.Mask.Row(0, 0).Reset()
}

// Forbids reports whether this tile forbids id at offset (dx,dy).
func (t Tile[T]) Forbids(dx, dy, id int) bool {
	return t.Mask.Forbids(dx, dy, id)
}

// Clone returns a copy of t with an independent mask.
func (t Tile[T]) Clone() Tile[T] {
	t.Mask = t.Mask.Clone()

	return t
}

// directOffsets are the four orthogonal unit offsets: W, E, N, S.
var directOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// KernelForWindow returns the kernel side 2w-1 needed to relate two w×w
// windows at every overlapping displacement.
func KernelForWindow(w int) int {
	return 2*w - 1
}

// ValidatePallet checks that pallet is non-empty, that every mask covers
// exactly len(pallet) ids and that all tiles share one kernel.
// It returns the common kernel size.
// Complexity: O(P).
func ValidatePallet[T any](pallet []Tile[T]) (int, error) {
	if len(pallet) == 0 {
		return 0, ErrEmptyPallet
	}
	kernel := pallet[0].Mask.Kernel()
	for id, t := range pallet {
		if t.Mask.Size() != len(pallet) {
			return 0, fmt.Errorf("%w: tile %d covers %d ids, pallet has %d",
				ErrMaskSize, id, t.Mask.Size(), len(pallet))
		}
		if t.Mask.Kernel() != kernel {
			return 0, fmt.Errorf("%w: tile %d uses %d, tile 0 uses %d",
				ErrKernelMismatch, id, t.Mask.Kernel(), kernel)
		}
	}

	return kernel, nil
}

// Compatible reports whether tile a may sit at the origin while tile b sits
// at offset (dx,dy): a must not forbid b there and b must not forbid a at
// the mirrored offset.
func Compatible[T any](pallet []Tile[T], a, b, dx, dy int) bool {
	return !pallet[a].Forbids(dx, dy, b) && !pallet[b].Forbids(-dx, -dy, a)
}
