package core

import (
	"cmp"
	"math/rand"
	"slices"
)

// Shuffle returns a random permutation of items. Every element gets an
// independent uniform weight and the result is ordered by weight.
// The input slice is left untouched.
func Shuffle[T any](rng *rand.Rand, items []T) []T {
	if len(items) < 2 {
		return slices.Clone(items)
	}

	type weighted struct {
		value  T
		weight float64
	}

	ws := make([]weighted, len(items))
	for i, v := range items {
		ws[i] = weighted{value: v, weight: rng.Float64()}
	}
	slices.SortStableFunc(ws, func(a, b weighted) int {
		return cmp.Compare(a.weight, b.weight)
	})

	out := make([]T, len(ws))
	for i, w := range ws {
		out[i] = w.value
	}
	return out
}
