package bitvec

import "fmt"

// ShiftLeft shifts v toward the most significant bit by n bits. n must be a
// multiple of 8; anything else panics. Bits pushed past the width are
// discarded and the vacated low bits are zero. Shifts of at least the width
// clear the vector.
func (v *BitVector) ShiftLeft(n uint64) {
	if n%8 != 0 {
		panic(fmt.Sprintf("BitVector.ShiftLeft: shift %d is not byte aligned", n))
	}
	if n == 0 || v.width == 0 {
		return
	}
	words := v.NumWords()
	wordShift := n / WordBits
	bitShift := n % WordBits

	// Top down, so every source word is read before it is overwritten.
	for i := words; i > 0; i-- {
		idx := i - 1
		var w uint64
		if idx >= wordShift {
			w = *v.word(idx-wordShift) << bitShift
			if bitShift > 0 && idx > wordShift {
				w |= *v.word(idx-wordShift-1) >> (WordBits - bitShift)
			}
		}
		*v.word(idx) = w
	}
}
