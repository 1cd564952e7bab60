// internal/benchmark/determinism.go
package benchmark

import "math/rand"

// Controller owns the pseudo-random stream handed to in-process snippets.
// Reseeding it before every repetition keeps later repetitions on the same
// deterministic sequence as earlier ones, even when the snippet itself
// consumes randomness.
type Controller struct {
	rng *rand.Rand
}

// NewController creates a controller seeded with the given value.
func NewController(seed int64) *Controller {
	return &Controller{rng: rand.New(rand.NewSource(seed))}
}

// Reset rewinds the stream to the start of the sequence for seed. The
// sampler calls this immediately before each repetition.
func (c *Controller) Reset(seed int64) {
	c.rng.Seed(seed)
}

// Rand exposes the controlled stream so the snippet loader can bind it
// into units of work.
func (c *Controller) Rand() *rand.Rand {
	return c.rng
}
