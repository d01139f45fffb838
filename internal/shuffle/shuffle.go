package shuffle

import (
	"math/rand"
	"time"
)

// Shuffler provides uniform shuffling for choice option lists
type Shuffler struct {
	random *rand.Rand
}

// Config for the shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new shuffler
func New(cfg *Config) *Shuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Shuffler{
		random: random,
	}
}

// Strings shuffles the given options in place with a uniform
// Fisher-Yates permutation.
func (s *Shuffler) Strings(options []string) {
	s.random.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
}
