package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/navyranks/internal/ranks"
)

// MaxOptions is the number of choices shown per question when the rank
// list is large enough.
const MaxOptions = 4

// Shuffle returns a uniformly shuffled copy of entries.
func Shuffle(rng *rand.Rand, entries []ranks.Entry) []ranks.Entry {
	out := append([]ranks.Entry(nil), entries...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// GenerateOptions picks up to MaxOptions-1 distractors uniformly without
// replacement from names other than correct, adds correct, and returns
// them in random order. With fewer than MaxOptions names every name is
// returned.
func GenerateOptions(rng *rand.Rand, names []string, correct string) []string {
	pool := make([]string, 0, len(names))
	for _, n := range names {
		if n != correct {
			pool = append(pool, n)
		}
	}

	want := MaxOptions - 1
	if want > len(pool) {
		want = len(pool)
	}
	// Partial Fisher-Yates: the first want slots end up a uniform sample.
	for i := 0; i < want; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	options := append(pool[:want:want], correct)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
