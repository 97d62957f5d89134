// SPDX-License-Identifier: MIT
package tile

import (
	"fmt"

	"github.com/katalvlaran/wfc/bitset"
)

// Mask is a K×K grid of forbid rows, one bit per pallet id.
//
// Storage is a single flat []uint64: row (dx,dy) starts at word
// ((dx+r)*K + (dy+r)) * words, where r = K/2 and words = bitset.Words(size).
// The zero Mask is unusable; build one with NewMask.
type Mask struct {
	kernel int
	radius int
	size   int
	words  int
	bits   []uint64
}

// NewMask allocates a mask for a pallet of size ids over a kernel×kernel
// neighbourhood. When forbidAll is true every bit starts set.
// Returns ErrEvenKernel for an even or non-positive kernel and ErrMaskSize
// for a non-positive size.
// Complexity: O(K²·size/64).
func NewMask(size, kernel int, forbidAll bool) (Mask, error) {
	if kernel < 1 || kernel%2 == 0 {
		return Mask{}, fmt.Errorf("%w: got %d", ErrEvenKernel, kernel)
	}
	if size < 1 {
		return Mask{}, fmt.Errorf("%w: got %d", ErrMaskSize, size)
	}
	words := bitset.Words(size)
	m := Mask{
		kernel: kernel,
		radius: kernel / 2,
		size:   size,
		words:  words,
		bits:   make([]uint64, kernel*kernel*words),
	}
	if forbidAll {
		for o := 0; o < kernel*kernel; o++ {
			m.row(o).Fill(size)
		}
	}

	return m, nil
}

// Kernel returns K, the side of the neighbourhood.
func (m Mask) Kernel() int { return m.kernel }

// Radius returns K/2, the largest absolute offset covered.
func (m Mask) Radius() int { return m.radius }

// Size returns the number of ids each row covers.
func (m Mask) Size() int { return m.size }

// offsetIndex maps a relative offset to a flat row index, or -1 when the
// offset lies outside the kernel.
func (m Mask) offsetIndex(dx, dy int) int {
	if dx < -m.radius || dx > m.radius || dy < -m.radius || dy > m.radius {
		return -1
	}

	return (dx+m.radius)*m.kernel + (dy + m.radius)
}

func (m Mask) row(o int) bitset.Set {
	return bitset.Set(m.bits[o*m.words : (o+1)*m.words])
}

// Row returns the forbid row at offset (dx,dy) as a view sharing storage
// with the mask. It returns nil for an offset outside the kernel.
// Callers must treat the result as read-only.
func (m Mask) Row(dx, dy int) bitset.Set {
	o := m.offsetIndex(dx, dy)
	if o < 0 {
		return nil
	}

	return m.row(o)
}

// Forbids reports whether id is forbidden at offset (dx,dy).
// Offsets outside the kernel and unknown ids are never forbidden.
func (m Mask) Forbids(dx, dy, id int) bool {
	o := m.offsetIndex(dx, dy)
	if o < 0 || id < 0 || id >= m.size {
		return false
	}

	return m.row(o).Has(id)
}

// set flips one bit after validating offset and id.
func (m Mask) set(dx, dy, id int, forbid bool) error {
	if id < 0 || id >= m.size {
		return fmt.Errorf("%w: id %d, size %d", ErrTileID, id, m.size)
	}
	o := m.offsetIndex(dx, dy)
	if o < 0 {
		return fmt.Errorf("%w: (%d,%d), radius %d", ErrOffset, dx, dy, m.radius)
	}
	if forbid {
		m.row(o).Add(id)
	} else {
		m.row(o).Remove(id)
	}

	return nil
}

// Clone returns a deep copy of m.
func (m Mask) Clone() Mask {
	c := m
	c.bits = make([]uint64, len(m.bits))
	copy(c.bits, m.bits)

	return c
}
