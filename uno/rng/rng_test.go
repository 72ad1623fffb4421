package rng_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shuffled(seed int64) []int {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng.Shuffle(rng.New(seed), len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	return values
}

func TestShuffle(t *testing.T) {
	t.Run("same_seed_same_order", func(t *testing.T) {
		require.Equal(t, shuffled(42), shuffled(42))
	})

	t.Run("keeps_every_element", func(t *testing.T) {
		require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, shuffled(7))
	})
}

func TestChoice(t *testing.T) {
	a := assert.New(t)

	gen := rng.New(1)
	found := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		found[rng.Choice(gen, 4)] = true
	}

	a.True(found[0])
	a.True(found[1])
	a.True(found[2])
	a.True(found[3])
	a.False(found[4])
	a.Panics(func() { rng.Choice(gen, 0) })
}
