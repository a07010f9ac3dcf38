package transform

import (
	"fmt"
	"math"
	"math/cmplx"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/spharm/coeff"
	"github.com/katalvlaran/spharm/sampling"
	"github.com/katalvlaran/spharm/wigner"
)

// Inverse transforms: harmonic coefficients flm -> angular samples f.
//
// Three algorithmically distinct but numerically equivalent variants:
//
//	InverseDirect  — O(L^4 · samples): the defining double sum, with the
//	                 azimuthal exponential inside the degree loop.
//	InverseSOV     — O(L^3): separation of variables; accumulate per-order
//	                 ring sums first, synthesize azimuth afterwards.
//	InverseSOVFFT  — O(L^2 log L): same accumulation, synthesis replaced
//	                 by an unnormalised inverse DFT per ring.
//
// All variants skip degrees el < |spin| (the spin-weighted harmonic
// vanishes there) and share the ring/degree accumulation plumbing; only
// the synthesis stage differs.

// InverseDirect evaluates the inverse transform by direct summation:
// for every ring, degree, order and azimuthal sample accumulate
//
//	f[t,p] += (-1)^s * sqrt((2el+1)/4pi) * e^(i m phi_p) * d^el[m,-s] * flm[el,m]
//
// Stage 1 (Validate): scheme and coefficient shape.
// Stage 2 (Accumulate): per-ring Wigner-d construction and summation.
//
// Complexity: O(L^2) per (ring, degree) pair including the recursion,
// O(L^4 · nphi) overall. Memory: O(L^2) per ring.
func InverseDirect(flm []complex128, L, spin int, scheme sampling.Scheme, opts ...Option) (*Grid, error) {
	o := applyOptions(opts)
	g, thetas, phis, err := inverseSetup(flm, L, scheme)
	if err != nil {
		return nil, err
	}

	sgn := signParity(spin)
	err = forEachRing(len(thetas), o.workers, func(t int) error {
		row := g.Row(t)
		for el := abs(spin); el < L; el++ {
			dl, derr := wigner.ComputeFull(thetas[t], el, L)
			if derr != nil {
				return derr
			}
			elfactor := math.Sqrt(float64(2*el+1) / (4 * math.Pi))
			for m := -el; m <= el; m++ {
				d := sgn * elfactor * dl.At(m+L-1, -spin+L-1)
				c := complex(d, 0) * flm[coeff.Index(el, m)]
				for p, phi := range phis {
					row[p] += c * cmplx.Rect(1, float64(m)*phi)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// InverseSOV evaluates the inverse transform by separation of
// variables: the degree sums are collapsed into per-order ring
// coefficients fmth[m,t] first, then the azimuthal synthesis
//
//	f[t,p] = sum_m fmth[m,t] * e^(i m phi_p)
//
// runs without revisiting the degree loop. Identical output to
// InverseDirect. Complexity: O(L^3) accumulation + O(L^2 · nphi)
// synthesis.
func InverseSOV(flm []complex128, L, spin int, scheme sampling.Scheme, opts ...Option) (*Grid, error) {
	o := applyOptions(opts)
	g, thetas, phis, err := inverseSetup(flm, L, scheme)
	if err != nil {
		return nil, err
	}

	fmth, err := accumulateOrders(flm, L, spin, thetas, o.workers)
	if err != nil {
		return nil, err
	}

	err = forEachRing(len(thetas), o.workers, func(t int) error {
		row := g.Row(t)
		for p, phi := range phis {
			var acc complex128
			for m := -(L - 1); m <= L-1; m++ {
				acc += fmth[m+L-1][t] * cmplx.Rect(1, float64(m)*phi)
			}
			row[p] = acc
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// InverseSOVFFT evaluates the inverse transform with the same
// separation-of-variables accumulation as InverseSOV, but synthesizes
// each ring with a length-nphi inverse DFT: the centered orders
// m in [-(L-1), L-1] are reindexed into the standard frequency layout
// (non-negative orders first, then negative orders at the top), and the
// unnormalised inverse transform (the convention under which an
// all-ones spectrum sums rather than averages) reproduces the explicit
// centered sum exactly. For the MWSS grid (nphi = 2L) the unused
// Nyquist bin stays zero, which is again exact.
//
// Complexity: O(L^3) accumulation + O(L^2 log L) synthesis.
func InverseSOVFFT(flm []complex128, L, spin int, scheme sampling.Scheme, opts ...Option) (*Grid, error) {
	o := applyOptions(opts)
	g, thetas, _, err := inverseSetup(flm, L, scheme)
	if err != nil {
		return nil, err
	}

	fmth, err := accumulateOrders(flm, L, spin, thetas, o.workers)
	if err != nil {
		return nil, err
	}

	n := g.Nphi()
	err = forEachRing(len(thetas), o.workers, func(t int) error {
		// Reindex centered orders into zero-based frequency order:
		// 0..L-1, then negative orders wrapped to the top of the band.
		shift := make([]complex128, n)
		for m := 0; m <= L-1; m++ {
			shift[m] = fmth[m+L-1][t]
		}
		for m := -(L - 1); m < 0; m++ {
			shift[m+n] = fmth[m+L-1][t]
		}

		cfft := fourier.NewCmplxFFT(n)
		cfft.Sequence(g.Row(t), shift)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// inverseSetup validates the inverse-transform arguments and resolves
// the grid geometry for the scheme.
func inverseSetup(flm []complex128, L int, scheme sampling.Scheme) (*Grid, []float64, []float64, error) {
	if scheme == sampling.HEALPix {
		return nil, nil, nil, fmt.Errorf("transform: use the Healpix variants for pixelized grids: %w",
			ErrUnsupportedSampling)
	}
	ntheta, err := sampling.RingCount(L, scheme)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(flm) != coeff.Total(L) {
		return nil, nil, nil, fmt.Errorf("transform: len(flm)=%d, want %d: %w",
			len(flm), coeff.Total(L), ErrBadCoefficients)
	}
	nphi, err := sampling.AzimuthCount(L, scheme)
	if err != nil {
		return nil, nil, nil, err
	}
	thetas, err := sampling.RingAngles(L, scheme)
	if err != nil {
		return nil, nil, nil, err
	}
	phis, err := sampling.AzimuthAngles(L, scheme)
	if err != nil {
		return nil, nil, nil, err
	}

	return NewGrid(ntheta, nphi), thetas, phis, nil
}

// accumulateOrders computes the separation-of-variables intermediate
// fmth[m+L-1][t]: the degree sums per order and ring, the O(L^3) stage
// shared by InverseSOV and InverseSOVFFT.
func accumulateOrders(flm []complex128, L, spin int, thetas []float64, workers int) ([][]complex128, error) {
	fmth := make([][]complex128, 2*L-1)
	for i := range fmth {
		fmth[i] = make([]complex128, len(thetas))
	}

	sgn := signParity(spin)
	err := forEachRing(len(thetas), workers, func(t int) error {
		for el := abs(spin); el < L; el++ {
			dl, derr := wigner.ComputeFull(thetas[t], el, L)
			if derr != nil {
				return derr
			}
			elfactor := math.Sqrt(float64(2*el+1) / (4 * math.Pi))
			for m := -el; m <= el; m++ {
				d := sgn * elfactor * dl.At(m+L-1, -spin+L-1)
				fmth[m+L-1][t] += complex(d, 0) * flm[coeff.Index(el, m)]
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return fmth, nil
}

// forEachRing runs fn over every ring index, sequentially by default or
// across up to workers goroutines. Each fn(t) writes only ring-t data.
func forEachRing(n, workers int, fn func(t int) error) error {
	if workers <= 1 {
		for t := 0; t < n; t++ {
			if err := fn(t); err != nil {
				return err
			}
		}

		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for t := 0; t < n; t++ {
		t := t
		g.Go(func() error { return fn(t) })
	}

	return g.Wait()
}

// signParity returns (-1)^n.
func signParity(n int) float64 {
	if n&1 == 1 {
		return -1.0
	}

	return 1.0
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
