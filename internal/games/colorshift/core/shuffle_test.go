package core_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/colorshift/internal/games/colorshift/core"
)

func TestShuffleIsPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 64} {
		input := make([]int, n)
		for i := range input {
			input[i] = i % 5
		}
		original := slices.Clone(input)

		for seed := int64(1); seed <= 20; seed++ {
			out := core.Shuffle(rand.New(rand.NewSource(seed)), input)

			if len(out) != n {
				t.Fatalf("n=%d seed=%d: got length %d", n, seed, len(out))
			}
			a, b := slices.Clone(out), slices.Clone(original)
			slices.Sort(a)
			slices.Sort(b)
			if !slices.Equal(a, b) {
				t.Fatalf("n=%d seed=%d: %v is not a permutation of %v", n, seed, out, original)
			}
		}

		if !slices.Equal(input, original) {
			t.Errorf("n=%d: Shuffle modified its input", n)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	input := []string{"a", "b", "c", "d", "e", "f"}

	a := core.Shuffle(rand.New(rand.NewSource(42)), input)
	b := core.Shuffle(rand.New(rand.NewSource(42)), input)

	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestShufflePositionSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	input := []int{0, 1, 2, 3}

	const rounds = 4000
	var counts [4][4]int
	for range rounds {
		for pos, v := range core.Shuffle(rng, input) {
			counts[pos][v]++
		}
	}

	// Expected 1000 per slot; allow a wide margin.
	for pos := range counts {
		for v, n := range counts[pos] {
			if n < 800 || n > 1200 {
				t.Errorf("value %d landed at position %d %d times out of %d", v, pos, n, rounds)
			}
		}
	}
}
