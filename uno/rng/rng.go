// Package rng provides the single random source a game draws from. Seeding it is
// the only way to reproduce a game.
package rng

import (
	"math/rand"
	"time"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// New returns a generator seeded with seed. A zero seed picks one from the clock.
func New(seed int64) Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Shuffle permutes n elements in place with a Fisher-Yates pass.
func Shuffle(gen Generator, n int, swap func(i, j int)) {
	for j := n - 1; j > 0; j-- {
		i := gen.Intn(j + 1)
		swap(i, j)
	}
}

// Choice returns a random index into a collection of size n.
func Choice(gen Generator, n int) int {
	if n <= 0 {
		panic("rng: choice from an empty collection")
	}
	return gen.Intn(n)
}
