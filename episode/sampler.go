// Package episode simulates stochastic-demand trajectories under a solved
// replenishment policy.
package episode

import (
	"math"
	"math/rand"
)

//go:generate mockgen -destination "mock_episode_test.go" -package episode -write_package_comment=false github.com/stocklab/restock/episode Sampler

// A Sampler draws one demand level per simulated period.
type Sampler interface {
	Sample() int
}

// A NormalSampler draws Normal demand rounded to the nearest integer and
// clamped at zero. Draws are independent across calls.
type NormalSampler struct {
	mean float64
	std  float64
	rng  *rand.Rand
}

// NewNormalSampler creates a sampler with its own deterministic random
// source, so simulation runs are reproducible per seed.
func NewNormalSampler(mean, std float64, seed int64) *NormalSampler {
	return &NormalSampler{
		mean: mean,
		std:  std,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Sample returns the next demand level.
func (s *NormalSampler) Sample() int {
	d := int(math.Round(s.rng.NormFloat64()*s.std + s.mean))

	return max(0, d)
}
