package bitvec

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"bitvecgo/internal/bitmath"
)

// Hash64 returns a 64-bit content hash of the vector under the given seed.
// The digest covers the seed, the width, and the bits below the width, so
// vectors that compare Equal hash equal no matter what their stale storage
// holds, and distinct seeds give independent hash families.
func (v *BitVector) Hash64(seed uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], v.width)
	d.Write(buf[:])
	if v.width > 0 {
		n := v.NumWords()
		for i := uint64(0); i < n-1; i++ {
			binary.LittleEndian.PutUint64(buf[:], *v.word(i))
			d.Write(buf[:])
		}
		binary.LittleEndian.PutUint64(buf[:], *v.word(n-1)&bitmath.TopMask(v.width))
		d.Write(buf[:])
	}
	return d.Sum64()
}
