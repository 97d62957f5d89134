// Package bitset provides a dense, fixed-width bit vector used for cell
// superpositions and tile mask rows.
//
// A Set is a plain []uint64; bit i lives in word i/64 at position i%64.
// Sets never grow: the caller sizes them once with New or Full and all
// binary operations assume both operands have the same number of words.
//
// Complexity:
//
//   - Has, Add, Remove:     O(1).
//   - Count, Fill, AndNot:  O(n/64).
package bitset

import "math/bits"

// wordBits is the number of bits stored per word.
const wordBits = 64

// Set is a fixed-width bit vector.
type Set []uint64

// Words returns how many uint64 words are needed to hold n bits.
func Words(n int) int {
	return (n + wordBits - 1) / wordBits
}

// New returns an empty Set able to hold n bits.
func New(n int) Set {
	return make(Set, Words(n))
}

// Full returns a Set of n bits with every bit set.
func Full(n int) Set {
	s := New(n)
	s.Fill(n)

	return s
}

// Has reports whether bit i is set.
func (s Set) Has(i int) bool {
	return s[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Add sets bit i.
func (s Set) Add(i int) {
	s[i/wordBits] |= 1 << (uint(i) % wordBits)
}

// Remove clears bit i and reports whether it was set before.
func (s Set) Remove(i int) bool {
	w, m := i/wordBits, uint64(1)<<(uint(i)%wordBits)
	had := s[w]&m != 0
	s[w] &^= m

	return had
}

// Fill sets bits [0, n) and clears everything above n.
func (s Set) Fill(n int) {
	for i := range s {
		s[i] = ^uint64(0)
	}
	if tail := uint(n) % wordBits; tail != 0 && len(s) > 0 {
		s[len(s)-1] = (uint64(1) << tail) - 1
	}
}

// Reset clears every bit.
func (s Set) Reset() {
	for i := range s {
		s[i] = 0
	}
}

// Count returns the number of set bits.
func (s Set) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}

	return n
}

// Empty reports whether no bit is set.
func (s Set) Empty() bool {
	for _, w := range s {
		if w != 0 {
			return false
		}
	}

	return true
}

// First returns the lowest set bit, or -1 if the set is empty.
func (s Set) First() int {
	return s.Next(0)
}

// Next returns the lowest set bit at or above i, or -1 if there is none.
func (s Set) Next(i int) int {
	if i < 0 {
		i = 0
	}
	w := i / wordBits
	if w >= len(s) {
		return -1
	}
	word := s[w] >> (uint(i) % wordBits)
	if word != 0 {
		return i + bits.TrailingZeros64(word)
	}
	for w++; w < len(s); w++ {
		if s[w] != 0 {
			return w*wordBits + bits.TrailingZeros64(s[w])
		}
	}

	return -1
}

// And intersects s with o in place.
func (s Set) And(o Set) {
	for i := range s {
		s[i] &= o[i]
	}
}

// AndNot clears from s every bit set in o and reports whether s changed.
func (s Set) AndNot(o Set) bool {
	changed := false
	for i := range s {
		nw := s[i] &^ o[i]
		if nw != s[i] {
			s[i] = nw
			changed = true
		}
	}

	return changed
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	copy(c, s)

	return c
}

// Equal reports whether s and o hold the same bits.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// Indices returns the set bits in ascending order.
func (s Set) Indices() []int {
	out := make([]int, 0, s.Count())
	for i := s.First(); i >= 0; i = s.Next(i + 1) {
		out = append(out, i)
	}

	return out
}
