package coeff

import (
	"math/cmplx"
	"math/rand"
)

// Random returns a deterministic pseudo-random coefficient vector of
// length L^2 for the given seed, suitable for tests and examples.
//
// With spin != 0 the first spin^2 entries (all degrees el < |spin|) are
// zero: spin-weighted harmonics vanish there.
//
// With reality=true the vector satisfies the real-signal constraint
// flm[el,-m] = (-1)^m * conj(flm[el,m]), and the m=0 entries are real.
func Random(L, spin int, reality bool, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	flm := make([]complex128, Total(L))
	s := spin
	if s < 0 {
		s = -s
	}

	if !reality {
		for i := s * s; i < len(flm); i++ {
			flm[i] = complex(rng.Float64(), rng.Float64())
		}

		return flm
	}

	for el := s; el < L; el++ {
		flm[Index(el, 0)] = complex(rng.Float64(), 0)
		for m := 1; m <= el; m++ {
			v := complex(rng.Float64(), rng.Float64())
			flm[Index(el, m)] = v
			flm[Index(el, -m)] = complex(parity(m), 0) * cmplx.Conj(v)
		}
	}

	return flm
}
