// Package bitvec implements a fixed-width bit vector with two's-complement
// arithmetic, bitwise logic, unsigned ordering, and byte-aligned left
// shifting.
//
// Storage is an array of 64-bit words. Widths up to InlineBits live entirely
// inside the struct; wider vectors spill the excess words to a heap slice
// owned exclusively by the vector, so a vector at or below the threshold
// costs a single allocation. Every operation addresses words through one
// seam, so the inline/heap split never leaks into the arithmetic.
//
// The zero value is a usable width-0 vector. A BitVector is not safe for
// concurrent mutation; callers synchronize.
package bitvec

import (
	"fmt"

	"bitvecgo/internal/bitmath"
)

const (
	// WordBits is the number of bits per storage word.
	WordBits = bitmath.WordBits

	// InlineBits is the largest width stored without a heap extension.
	InlineBits = 256

	inlineWords = InlineBits / WordBits
)

// BitVector is a fixed-width vector of bits. Arithmetic treats it as an
// unsigned integer mod 2^width; bit positions count from the least
// significant bit.
type BitVector struct {
	width  uint64
	inline [inlineWords]uint64
	ext    []uint64
}

// New creates a zeroed vector of the given width.
func New(width uint64) *BitVector {
	v := &BitVector{width: width}
	if n := bitmath.WordsForBits(width); n > inlineWords {
		v.ext = make([]uint64, n-inlineWords)
	}
	return v
}

// Width returns the number of bits the vector holds.
func (v *BitVector) Width() uint64 {
	return v.width
}

// NumWords returns the number of words addressed by the current width.
func (v *BitVector) NumWords() uint64 {
	return bitmath.WordsForBits(v.width)
}

// HeapWords returns the length of the heap extension. It is zero whenever
// the width fits inline, which makes the allocation behavior observable in
// tests.
func (v *BitVector) HeapWords() int {
	return len(v.ext)
}

// word returns a pointer to storage word i, resolving the inline/extension
// split. Callers keep i below NumWords.
func (v *BitVector) word(i uint64) *uint64 {
	if i < inlineWords {
		return &v.inline[i]
	}
	return &v.ext[i-inlineWords]
}

// Get reports whether bit pos is set.
func (v *BitVector) Get(pos uint64) bool {
	if pos >= v.width {
		panic(fmt.Sprintf("BitVector.Get: position %d out of bounds (width %d)", pos, v.width))
	}
	return *v.word(bitmath.WordIndex(pos))&bitmath.BitMask(pos) != 0
}

// Set sets bit pos to value.
func (v *BitVector) Set(pos uint64, value bool) {
	if pos >= v.width {
		panic(fmt.Sprintf("BitVector.Set: position %d out of bounds (width %d)", pos, v.width))
	}
	w := v.word(bitmath.WordIndex(pos))
	if value {
		*w |= bitmath.BitMask(pos)
	} else {
		*w &^= bitmath.BitMask(pos)
	}
}

// Flip inverts bit pos.
func (v *BitVector) Flip(pos uint64) {
	if pos >= v.width {
		panic(fmt.Sprintf("BitVector.Flip: position %d out of bounds (width %d)", pos, v.width))
	}
	*v.word(bitmath.WordIndex(pos)) ^= bitmath.BitMask(pos)
}

// Resize sets a new width and reshapes the extension to cover it. Shrinking
// below the inline threshold drops the extension; growing past the current
// extension reallocates it, preserving existing words. A width that the
// current extension already covers reuses the allocation without copying or
// clearing, so bits between an old and a new width can hold stale values
// after a shrink and regrow cycle. References from At refuse access while
// the width differs from the width they were created under.
func (v *BitVector) Resize(newWidth uint64) {
	total := bitmath.WordsForBits(newWidth)
	if total <= inlineWords {
		v.ext = nil
	} else if need := total - inlineWords; need > uint64(len(v.ext)) {
		ext := make([]uint64, need)
		copy(ext, v.ext)
		v.ext = ext
	}
	v.width = newWidth
}

// CopyFrom makes v a deep copy of other. The two never share storage
// afterwards. Copying a vector into itself is a no-op.
func (v *BitVector) CopyFrom(other *BitVector) {
	if v == other {
		return
	}
	v.Resize(other.width)
	v.inline = other.inline
	if n := bitmath.WordsForBits(other.width); n > inlineWords {
		copy(v.ext, other.ext[:n-inlineWords])
	}
}

// Clone returns a deep copy of v.
func (v *BitVector) Clone() *BitVector {
	c := New(v.width)
	c.CopyFrom(v)
	return c
}
