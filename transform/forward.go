package transform

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/spharm/coeff"
	"github.com/katalvlaran/spharm/sampling"
	"github.com/katalvlaran/spharm/wigner"
)

// ForwardDirect evaluates the forward transform — angular samples to
// harmonic coefficients — as the quadrature-weighted adjoint of
// InverseDirect:
//
//	flm[el,m] += w(theta_t) * (-1)^s * sqrt((2el+1)/4pi)
//	             * e^(-i m phi_p) * d^el[m,-s] * f[t,p]
//
// summed over rings and azimuthal samples, with the per-ring weight
// w(theta) = QuadratureWeightDH(theta, L) * 2pi/(2L-1).
//
// Only the Driscoll-Healy scheme carries the explicit quadrature
// weights this sum needs; any other scheme fails with
// ErrUnsupportedSampling before any computation. A grid whose shape is
// not 2L x (2L-1) fails with ErrBadGrid.
//
// Complexity: O(L^4 · nphi) time, O(L^2) scratch per ring.
func ForwardDirect(f *Grid, L, spin int, scheme sampling.Scheme) ([]complex128, error) {
	if scheme != sampling.DH {
		return nil, fmt.Errorf("transform: forward transform needs quadrature weights, scheme %v has none: %w",
			scheme, ErrUnsupportedSampling)
	}
	ntheta, err := sampling.RingCount(L, scheme)
	if err != nil {
		return nil, err
	}
	nphi, err := sampling.AzimuthCount(L, scheme)
	if err != nil {
		return nil, err
	}
	if f == nil || f.Rings() != ntheta || f.Nphi() != nphi {
		return nil, fmt.Errorf("transform: forward grid must be %dx%d: %w", ntheta, nphi, ErrBadGrid)
	}

	thetas, err := sampling.RingAngles(L, scheme)
	if err != nil {
		return nil, err
	}
	phis, err := sampling.AzimuthAngles(L, scheme)
	if err != nil {
		return nil, err
	}

	flm := make([]complex128, coeff.Total(L))
	sgn := signParity(spin)
	for t, theta := range thetas {
		weight := sampling.QuadratureWeightDH(theta, L) * 2 * math.Pi / float64(2*L-1)
		for el := abs(spin); el < L; el++ {
			dl, derr := wigner.ComputeFull(theta, el, L)
			if derr != nil {
				return nil, derr
			}
			elfactor := math.Sqrt(float64(2*el+1) / (4 * math.Pi))
			for m := -el; m <= el; m++ {
				d := weight * sgn * elfactor * dl.At(m+L-1, -spin+L-1)
				i := coeff.Index(el, m)
				var acc complex128
				for p, phi := range phis {
					acc += cmplx.Rect(1, -float64(m)*phi) * f.At(t, p)
				}
				flm[i] += complex(d, 0) * acc
			}
		}
	}

	return flm, nil
}
