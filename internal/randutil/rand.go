// Package randutil centralises how the game derives its random sources.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15

	// CodeMin and CodeMax bound the four digit code used in result filenames.
	CodeMin = 1000
	CodeMax = 9999
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG seeds are derived from the one value so a single --seed flag
// reproduces a whole session.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewFromTime seeds from the wall clock and returns the seed alongside the
// source so callers can log it.
func NewFromTime() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return New(seed), seed
}

// Sample draws k distinct values uniformly from 1..n without replacement.
// It panics if k is outside [0, n].
func Sample(r *rand.Rand, n, k int) []int {
	if k < 0 || k > n {
		panic("randutil: sample size out of range")
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i + 1
	}
	// Partial Fisher-Yates: the first k slots end up as the sample.
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}

// Code returns a value in [CodeMin, CodeMax].
func Code(r *rand.Rand) int {
	return CodeMin + r.IntN(CodeMax-CodeMin+1)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
