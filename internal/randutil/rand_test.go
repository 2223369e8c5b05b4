package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestSample(t *testing.T) {
	t.Run("distinct values within range", func(t *testing.T) {
		for seed := int64(0); seed < 200; seed++ {
			got := Sample(New(seed), 25, 12)
			require.Len(t, got, 12)

			seen := make(map[int]bool, len(got))
			for _, v := range got {
				assert.GreaterOrEqual(t, v, 1)
				assert.LessOrEqual(t, v, 25)
				assert.False(t, seen[v], "duplicate %d for seed %d", v, seed)
				seen[v] = true
			}
		}
	})

	t.Run("full sample is a permutation", func(t *testing.T) {
		got := Sample(New(7), 9, 9)
		assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	})

	t.Run("empty sample", func(t *testing.T) {
		assert.Empty(t, Sample(New(7), 9, 0))
	})

	t.Run("oversized sample panics", func(t *testing.T) {
		assert.Panics(t, func() { Sample(New(7), 3, 4) })
	})

	t.Run("different seeds give different samples", func(t *testing.T) {
		first := Sample(New(1), 25, 5)
		differs := false
		for seed := int64(2); seed < 20; seed++ {
			if !assert.ObjectsAreEqual(first, Sample(New(seed), 25, 5)) {
				differs = true
				break
			}
		}
		assert.True(t, differs)
	})
}

func TestCode(t *testing.T) {
	r := New(99)
	for i := 0; i < 5000; i++ {
		c := Code(r)
		assert.GreaterOrEqual(t, c, CodeMin)
		assert.LessOrEqual(t, c, CodeMax)
	}
}
