package transform

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/spharm/coeff"
	"github.com/katalvlaran/spharm/sampling"
	"github.com/katalvlaran/spharm/wigner"
)

// HEALPix variants of the direct transforms. The pixelization is not a
// rectangular grid — ring lengths and azimuthal phases vary — so these
// operate on the flat RING-ordered pixel vector instead of a Grid.

// InverseDirectHealpix evaluates the inverse transform onto the
// 12*nside^2 HEALPix pixels in RING order. The sum is the same as
// InverseDirect, with each ring carrying its own pixel count and
// azimuthal phase.
//
// Complexity: O(L^3 · nside^2 / ring) loosely; memory O(npix) output.
func InverseDirectHealpix(flm []complex128, L, nside int, opts ...Option) ([]complex128, error) {
	o := applyOptions(opts)
	if nside < 1 {
		return nil, sampling.ErrInvalidNside
	}
	if len(flm) != coeff.Total(L) {
		return nil, fmt.Errorf("transform: len(flm)=%d, want %d: %w",
			len(flm), coeff.Total(L), ErrBadCoefficients)
	}

	thetas, err := sampling.RingAnglesHealpix(nside)
	if err != nil {
		return nil, err
	}
	f := make([]complex128, sampling.HealpixPixelCount(nside))

	err = forEachRing(len(thetas), o.workers, func(t int) error {
		start := sampling.HealpixRingStart(t, nside)
		nphi := sampling.HealpixRingLength(t, nside)
		for el := 0; el < L; el++ {
			dl, derr := wigner.ComputeFull(thetas[t], el, L)
			if derr != nil {
				return derr
			}
			elfactor := math.Sqrt(float64(2*el+1) / (4 * math.Pi))
			for m := -el; m <= el; m++ {
				c := complex(elfactor*dl.At(m+L-1, L-1), 0) * flm[coeff.Index(el, m)]
				for p := 0; p < nphi; p++ {
					phi := sampling.HealpixRingPhi(t, p, nside)
					f[start+p] += c * cmplx.Rect(1, float64(m)*phi)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return f, nil
}

// ForwardDirectHealpix evaluates the forward transform from a RING
// ordered HEALPix pixel vector using the equal-area weight
// 4pi/(12*nside^2) per pixel.
//
// HEALPix carries no exact quadrature: the pixel centres are not nodes
// of a bandlimited sampling theorem, so the recovered coefficients are
// approximate — accurate to roughly 1e-2 relative for L well below
// nside. Use the DH forward transform when exactness matters.
func ForwardDirectHealpix(f []complex128, L, nside int) ([]complex128, error) {
	if nside < 1 {
		return nil, sampling.ErrInvalidNside
	}
	npix := sampling.HealpixPixelCount(nside)
	if len(f) != npix {
		return nil, fmt.Errorf("transform: len(f)=%d, want %d pixels: %w", len(f), npix, ErrBadGrid)
	}

	thetas, err := sampling.RingAnglesHealpix(nside)
	if err != nil {
		return nil, err
	}

	flm := make([]complex128, coeff.Total(L))
	weight := 4 * math.Pi / float64(npix)
	for t, theta := range thetas {
		start := sampling.HealpixRingStart(t, nside)
		nphi := sampling.HealpixRingLength(t, nside)
		for el := 0; el < L; el++ {
			dl, derr := wigner.ComputeFull(theta, el, L)
			if derr != nil {
				return nil, derr
			}
			elfactor := math.Sqrt(float64(2*el+1) / (4 * math.Pi))
			for m := -el; m <= el; m++ {
				d := weight * elfactor * dl.At(m+L-1, L-1)
				i := coeff.Index(el, m)
				var acc complex128
				for p := 0; p < nphi; p++ {
					phi := sampling.HealpixRingPhi(t, p, nside)
					acc += cmplx.Rect(1, -float64(m)*phi) * f[start+p]
				}
				flm[i] += complex(d, 0) * acc
			}
		}
	}

	return flm, nil
}
