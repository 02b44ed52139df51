package game

import (
	"crypto/rand"
	"encoding/binary"
	"math"
)

const gamma = 0x9e3779b97f4a7c15

// Generator is a counter-based pseudo-random generator. Output i is a
// SplitMix64 mix of Seed + i*gamma, so the pair (Seed, Counter) fully
// determines every future value. It is a plain value: copy it to fork the
// sequence, store it to resume it.
type Generator struct {
	Seed    int64  `json:"seed"`
	Counter uint64 `json:"counter"`
}

// NewGenerator returns a generator positioned at the start of seed's sequence.
func NewGenerator(seed int64) Generator {
	return Generator{Seed: seed}
}

// RandomSeed returns a non-negative seed from crypto/rand.
func RandomSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]) & math.MaxInt64)
}

// Uint64 returns the next value and advances the counter.
func (g *Generator) Uint64() uint64 {
	g.Counter++
	z := uint64(g.Seed) + g.Counter*gamma
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Intn returns a uniform value in [0, n). It panics if n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		panic("game: Intn called with n <= 0")
	}
	bound := uint64(n)
	// values below threshold would bias the modulo
	threshold := -bound % bound
	for {
		if v := g.Uint64(); v >= threshold {
			return int(v % bound)
		}
	}
}

// Sample draws n items uniformly with replacement from deck and returns them
// together with the advanced generator. g itself is not modified.
func Sample[T any](g Generator, deck []T, n int) ([]T, Generator) {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, deck[g.Intn(len(deck))])
	}
	return out, g
}
