package dataset

import "math/rand"

// Order returns the sample visiting order for one epoch. A nil rng keeps the
// dataset order; otherwise the order is a shuffle drawn from rng.
func Order(n int, rng *rand.Rand) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if rng != nil {
		rng.Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order
}
