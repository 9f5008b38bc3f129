// Package bitmath provides word and mask arithmetic for bit-addressed
// storage.
package bitmath

// WordBits is the number of bits in one storage word.
const WordBits = 64

// CeilDiv returns ceil(n/d). d must be non-zero.
func CeilDiv(n, d uint64) uint64 {
	return (n + d - 1) / d
}

// WordsForBits returns the number of words needed to hold n bits.
func WordsForBits(n uint64) uint64 {
	return CeilDiv(n, WordBits)
}

// BytesForBits returns the number of bytes needed to hold n bits.
func BytesForBits(n uint64) uint64 {
	return CeilDiv(n, 8)
}

// WordIndex returns the index of the word holding bit i.
func WordIndex(i uint64) uint64 {
	return i / WordBits
}

// BitOffset returns the position of bit i within its word.
func BitOffset(i uint64) uint64 {
	return i % WordBits
}

// BitMask returns a word with only bit i's in-word position set.
func BitMask(i uint64) uint64 {
	return 1 << BitOffset(i)
}

// LowMask returns a word with the n lowest bits set. Values of n at or
// above WordBits select the whole word.
func LowMask(n uint64) uint64 {
	if n >= WordBits {
		return ^uint64(0)
	}
	return (1 << n) - 1
}

// TopMask returns the mask selecting the live bits of the highest word of
// a vector of the given width. Widths that are a multiple of WordBits use
// the whole word.
func TopMask(width uint64) uint64 {
	if r := width % WordBits; r != 0 {
		return LowMask(r)
	}
	return ^uint64(0)
}
