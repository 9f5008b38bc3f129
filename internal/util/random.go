package util

import (
	"math/rand"
	"time"
)

// RandomSeed returns a time-derived seed for hashing and randomized tests.
func RandomSeed() uint64 {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return r.Uint64()
}

// RandomWords returns n words drawn from a generator seeded with seed.
// The same seed always yields the same words.
func RandomWords(n int, seed uint64) []uint64 {
	rng := rand.New(rand.NewSource(int64(seed)))
	words := make([]uint64, n)
	for i := range words {
		words[i] = rng.Uint64()
	}
	return words
}
