package core

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// RNG is a thin wrapper around a seeded source shared by object placement,
// velocity draws and background noise, so a single seed reproduces a run.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(uint64(seed)))}
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int { return r.r.Intn(n) }

// IntRange returns a random int in [lo, hi] inclusive.
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Intn(hi-lo+1)
}

// Normal returns a sampler for Normal(mu, sigma) driven by this source.
func (r *RNG) Normal(mu, sigma float64) distuv.Normal {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r.r}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
