package dist

import (
	"golang.org/x/exp/rand"
)

// Sampler draws variates from a Beta distribution by inverse-transform
// sampling: a uniform deviate pushed through the quantile function. It
// satisfies distuv.Rander, so it drops into any pipeline that consumes
// one. A nil source uses the shared global source.
type Sampler struct {
	dist *Beta
	rnd  *rand.Rand
}

// Sampler returns a sampler for this distribution backed by src.
func (bd *Beta) Sampler(src rand.Source) *Sampler {
	sampler := &Sampler{
		dist: bd,
	}
	if src != nil {
		sampler.rnd = rand.New(src)
	}
	return sampler
}

// Rand returns a single variate in [0, 1).
func (s *Sampler) Rand() float64 {
	var u float64
	if s.rnd != nil {
		u = s.rnd.Float64()
	} else {
		u = rand.Float64()
	}
	x, invErr := s.dist.InverseCumulativeProbability(u)
	if invErr != nil {
		// u is strictly inside [0, 1) and the CDF is monotone, so the
		// solver converging is part of its contract
		panic("dist: inverse transform sampling failed: " + invErr.Error())
	}
	return x
}

// Sample fills a slice with n variates.
func (s *Sampler) Sample(n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = s.Rand()
	}
	return samples
}
