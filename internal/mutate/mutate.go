// Package mutate proposes perturbed configs for the next generation.
package mutate

import (
	"math/rand"
	"time"

	"github.com/danielpatrickdp/metamorph/internal/confblock"
)

// #region policy
// Policy owns a seeded RNG so mutation sequences are reproducible in replay.
type Policy struct {
	rng *rand.Rand
}

// NewPolicy creates a policy. seed 0 means seed from the clock.
func NewPolicy(seed int64) *Policy {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Policy{rng: rand.New(rand.NewSource(seed))}
}

// #endregion policy

// #region propose
// Propose perturbs each field independently: one uniform gate per field
// against mutationProb, so a single draw never compounds into all three
// fields at once. Perturbations are clamped: the learning rate stays
// strictly positive, the mutation probability stays in [0.01, 0.99], and the
// recompile interval stays >= 1. Fields whose current value is out of range
// are perturbed from their default instead.
func (p *Policy) Propose(defaults, current confblock.Config, mutationProb float64) confblock.Config {
	next := current

	if p.rng.Float64() < mutationProb {
		base := current.LearningRate
		if base < confblock.MinLearningRate {
			base = defaults.LearningRate
		}
		// Multiplicative jitter in [0.75, 1.25).
		next.LearningRate = base * (0.75 + 0.5*p.rng.Float64())
		if next.LearningRate < confblock.MinLearningRate {
			next.LearningRate = confblock.MinLearningRate
		}
	}

	if p.rng.Float64() < mutationProb {
		base := current.MutationProb
		if base < confblock.MinMutationProb || base > confblock.MaxMutationProb {
			base = defaults.MutationProb
		}
		// Additive jitter in [-0.1, 0.1).
		next.MutationProb = clamp(base+0.2*p.rng.Float64()-0.1,
			confblock.MinMutationProb, confblock.MaxMutationProb)
	}

	if p.rng.Float64() < mutationProb {
		base := current.RecompileInterval
		if base < confblock.MinRecompileInterval {
			base = defaults.RecompileInterval
		}
		// Integer jitter in [-2, 2].
		next.RecompileInterval = base + p.rng.Intn(5) - 2
		if next.RecompileInterval < confblock.MinRecompileInterval {
			next.RecompileInterval = confblock.MinRecompileInterval
		}
	}

	return next
}

// #endregion propose

// #region helpers
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion helpers
