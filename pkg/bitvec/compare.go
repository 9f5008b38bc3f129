package bitvec

import "bitvecgo/internal/bitmath"

// Equal reports whether v and other hold the same bits below the width.
// Bits above the width never participate. Widths must match.
func (v *BitVector) Equal(other *BitVector) bool {
	checkSameWidth("Equal", v, other)
	if v.width == 0 {
		return true
	}
	n := v.NumWords()
	for i := uint64(0); i < n-1; i++ {
		if *v.word(i) != *other.word(i) {
			return false
		}
	}
	mask := bitmath.TopMask(v.width)
	return *v.word(n-1)&mask == *other.word(n-1)&mask
}

// Less reports whether v is below other in unsigned order. The masked top
// words are compared first, then lower words from most significant down.
// Widths must match.
func (v *BitVector) Less(other *BitVector) bool {
	checkSameWidth("Less", v, other)
	if v.width == 0 {
		return false
	}
	n := v.NumWords()
	mask := bitmath.TopMask(v.width)
	a, b := *v.word(n-1)&mask, *other.word(n-1)&mask
	if a != b {
		return a < b
	}
	for i := n - 1; i > 0; i-- {
		a, b = *v.word(i-1), *other.word(i-1)
		if a != b {
			return a < b
		}
	}
	return false
}

// LessEq reports v <= other, defined as !(other < v).
func (v *BitVector) LessEq(other *BitVector) bool {
	return !other.Less(v)
}

// Greater reports v > other, defined as other < v.
func (v *BitVector) Greater(other *BitVector) bool {
	return other.Less(v)
}

// GreaterEq reports v >= other, defined as !(v < other).
func (v *BitVector) GreaterEq(other *BitVector) bool {
	return !v.Less(other)
}
