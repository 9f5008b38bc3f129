package bitvec

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"bitvecgo/internal/bitmath"
)

// Bitmap returns the positions of all set bits below the width as a roaring
// bitmap. The result is a snapshot; later mutations of v do not affect it.
func (v *BitVector) Bitmap() *roaring64.Bitmap {
	bm := roaring64.New()
	if v.width == 0 {
		return bm
	}
	n := v.NumWords()
	for i := uint64(0); i < n; i++ {
		w := *v.word(i)
		if i == n-1 {
			w &= bitmath.TopMask(v.width)
		}
		for w != 0 {
			bm.Add(i*WordBits + uint64(bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
	return bm
}

// FromBitmap builds a vector of the given width with the bitmap's positions
// set. A position at or beyond the width panics.
func FromBitmap(width uint64, bm *roaring64.Bitmap) *BitVector {
	v := New(width)
	it := bm.Iterator()
	for it.HasNext() {
		pos := it.Next()
		if pos >= width {
			panic(fmt.Sprintf("bitvec.FromBitmap: position %d out of bounds (width %d)", pos, width))
		}
		v.Set(pos, true)
	}
	return v
}
