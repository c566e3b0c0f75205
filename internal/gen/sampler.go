package gen

import (
	"math/rand"
	"time"
)

// Sampler owns the run's randomness. A non-zero seed makes a run
// reproducible, which the statistical tests rely on.
type Sampler struct {
	rnd *rand.Rand
}

func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rnd: rand.New(rand.NewSource(seed))}
}

// Chance reports true with probability p.
func (s *Sampler) Chance(p float64) bool {
	return s.rnd.Float64() < p
}

// IntBetween returns a uniform integer in [lo, hi].
func (s *Sampler) IntBetween(lo, hi int) int {
	return lo + s.rnd.Intn(hi-lo+1)
}

// FloatBetween returns a uniform float in [lo, hi).
func (s *Sampler) FloatBetween(lo, hi float64) float64 {
	return lo + s.rnd.Float64()*(hi-lo)
}

// Index returns a uniform index into a pool of size n.
func (s *Sampler) Index(n int) int {
	return s.rnd.Intn(n)
}

// Weighted returns an index drawn with the given relative weights.
func (s *Sampler) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	x := s.rnd.Float64() * total
	for i, w := range weights {
		x -= w
		if x < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// UnixBetween returns a uniform epoch-second instant in [from, to].
func (s *Sampler) UnixBetween(from, to time.Time) int64 {
	lo, hi := from.Unix(), to.Unix()
	if hi <= lo {
		return lo
	}
	return lo + s.rnd.Int63n(hi-lo+1)
}

// DistinctIndexes samples k distinct indexes from [0, n) without
// replacement. k is clamped to n.
func (s *Sampler) DistinctIndexes(n, k int) []int {
	if k > n {
		k = n
	}
	perm := s.rnd.Perm(n)
	return perm[:k]
}
