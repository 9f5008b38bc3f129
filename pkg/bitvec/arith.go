package bitvec

import (
	"fmt"
	"math/bits"

	"bitvecgo/internal/bitmath"
)

// checkSameWidth panics unless a and b have equal widths. Binary operations
// never truncate or extend.
func checkSameWidth(op string, a, b *BitVector) {
	if a.width != b.width {
		panic(fmt.Sprintf("BitVector.%s: width mismatch (%d vs %d)", op, a.width, b.width))
	}
}

// --- In-place bitwise logic ---

// And replaces v with v AND other.
func (v *BitVector) And(other *BitVector) {
	checkSameWidth("And", v, other)
	for i, n := uint64(0), v.NumWords(); i < n; i++ {
		*v.word(i) &= *other.word(i)
	}
}

// Or replaces v with v OR other.
func (v *BitVector) Or(other *BitVector) {
	checkSameWidth("Or", v, other)
	for i, n := uint64(0), v.NumWords(); i < n; i++ {
		*v.word(i) |= *other.word(i)
	}
}

// Xor replaces v with v XOR other.
func (v *BitVector) Xor(other *BitVector) {
	checkSameWidth("Xor", v, other)
	for i, n := uint64(0), v.NumWords(); i < n; i++ {
		*v.word(i) ^= *other.word(i)
	}
}

// Not replaces v with its one's complement. Whole words are flipped,
// including bits above the width; observers mask those out.
func (v *BitVector) Not() {
	for i, n := uint64(0), v.NumWords(); i < n; i++ {
		*v.word(i) = ^*v.word(i)
	}
}

// --- In-place arithmetic ---

// Inc adds one, wrapping to zero past the top of the width.
func (v *BitVector) Inc() {
	for i, n := uint64(0), v.NumWords(); i < n; i++ {
		w := v.word(i)
		*w++
		if *w != 0 {
			return
		}
	}
}

// Dec subtracts one. Zero wraps to the all-ones value of the width.
func (v *BitVector) Dec() {
	for i, n := uint64(0), v.NumWords(); i < n; i++ {
		w := v.word(i)
		wasZero := *w == 0
		*w--
		if !wasZero {
			return
		}
	}
}

// PostInc returns a copy of v's value, then increments v.
func (v *BitVector) PostInc() *BitVector {
	prev := v.Clone()
	v.Inc()
	return prev
}

// PostDec returns a copy of v's value, then decrements v.
func (v *BitVector) PostDec() *BitVector {
	prev := v.Clone()
	v.Dec()
	return prev
}

// Add adds other into v with ripple carry, discarding the carry out of the
// top word. The result is v+other mod 2^width.
func (v *BitVector) Add(other *BitVector) {
	checkSameWidth("Add", v, other)
	var carry uint64
	for i, n := uint64(0), v.NumWords(); i < n; i++ {
		w := v.word(i)
		*w, carry = bits.Add64(*w, *other.word(i), carry)
	}
}

// Sub subtracts other from v. The result is v-other mod 2^width.
func (v *BitVector) Sub(other *BitVector) {
	checkSameWidth("Sub", v, other)
	var borrow uint64
	for i, n := uint64(0), v.NumWords(); i < n; i++ {
		w := v.word(i)
		*w, borrow = bits.Sub64(*w, *other.word(i), borrow)
	}
}

// Neg replaces v with its two's complement, complement then increment.
// The negation of zero is zero.
func (v *BitVector) Neg() {
	v.Not()
	v.Inc()
}

// --- Value-returning forms ---

// And returns a new vector holding a AND b.
func And(a, b *BitVector) *BitVector {
	r := a.Clone()
	r.And(b)
	return r
}

// Or returns a new vector holding a OR b.
func Or(a, b *BitVector) *BitVector {
	r := a.Clone()
	r.Or(b)
	return r
}

// Xor returns a new vector holding a XOR b.
func Xor(a, b *BitVector) *BitVector {
	r := a.Clone()
	r.Xor(b)
	return r
}

// Add returns a new vector holding a+b mod 2^width.
func Add(a, b *BitVector) *BitVector {
	r := a.Clone()
	r.Add(b)
	return r
}

// Sub returns a new vector holding a-b mod 2^width.
func Sub(a, b *BitVector) *BitVector {
	r := a.Clone()
	r.Sub(b)
	return r
}

// Not returns a new vector holding the one's complement of a.
func Not(a *BitVector) *BitVector {
	r := a.Clone()
	r.Not()
	return r
}

// Neg returns a new vector holding the two's complement of a.
func Neg(a *BitVector) *BitVector {
	r := a.Clone()
	r.Neg()
	return r
}

// --- Observers ---

// OnesCount returns the number of set bits below the width.
func (v *BitVector) OnesCount() uint64 {
	if v.width == 0 {
		return 0
	}
	n := v.NumWords()
	count := 0
	for i := uint64(0); i < n-1; i++ {
		count += bits.OnesCount64(*v.word(i))
	}
	count += bits.OnesCount64(*v.word(n-1) & bitmath.TopMask(v.width))
	return uint64(count)
}
