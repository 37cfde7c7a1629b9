package style

import (
	"math/rand"
	"sort"
)

// Pick draws one key from a weight map, treating the weights as an
// unnormalized probability distribution. All-zero weights degrade to a
// uniform pick; the map iteration order is made stable by sorting keys, so a
// seeded rng always reproduces the same draw. Panics only on an empty map.
func Pick[K ~string](rng *rand.Rand, weights map[K]float64) K {
	keys := make([]K, 0, len(weights))
	total := 0.0
	for k, w := range weights {
		keys = append(keys, k)
		if w > 0 {
			total += w
		}
	}
	if len(keys) == 0 {
		panic("style: pick from empty weight map")
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	if total <= 0 {
		return keys[rng.Intn(len(keys))]
	}

	target := rng.Float64() * total
	acc := 0.0
	last := keys[0]
	for _, k := range keys {
		if w := weights[k]; w > 0 {
			acc += w
			last = k
			if target < acc {
				return k
			}
		}
	}
	// float accumulation can land exactly on total
	return last
}
