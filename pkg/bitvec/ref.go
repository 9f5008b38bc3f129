package bitvec

import "fmt"

// BitRef is a reference to one bit of a vector, usable in place of repeated
// Get/Set calls on the same position. Every access compares the owning
// vector's width against the width recorded at creation and panics on a
// mismatch; once the vector is back at the recorded width the reference
// works again.
type BitRef struct {
	v     *BitVector
	pos   uint64
	width uint64
}

// At returns a reference to bit pos.
func (v *BitVector) At(pos uint64) BitRef {
	if pos >= v.width {
		panic(fmt.Sprintf("BitVector.At: position %d out of bounds (width %d)", pos, v.width))
	}
	return BitRef{v: v, pos: pos, width: v.width}
}

func (r BitRef) check() {
	if r.v.width != r.width {
		panic(fmt.Sprintf("BitRef: stale reference, vector width changed from %d to %d", r.width, r.v.width))
	}
}

// Get reports whether the referenced bit is set.
func (r BitRef) Get() bool {
	r.check()
	return r.v.Get(r.pos)
}

// Set sets the referenced bit to value.
func (r BitRef) Set(value bool) {
	r.check()
	r.v.Set(r.pos, value)
}

// Flip inverts the referenced bit.
func (r BitRef) Flip() {
	r.check()
	r.v.Flip(r.pos)
}
