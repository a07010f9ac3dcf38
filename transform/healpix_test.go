package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spharm/coeff"
	"github.com/katalvlaran/spharm/sampling"
	"github.com/katalvlaran/spharm/transform"
)

// TestInverseHealpix_ConstantScenario: only the degree-0 coefficient
// set means every pixel equals sqrt(1/4pi) exactly, whatever the ring
// layout.
func TestInverseHealpix_ConstantScenario(t *testing.T) {
	const (
		L     = 3
		nside = 4
	)
	flm := make([]complex128, coeff.Total(L))
	flm[coeff.Index(0, 0)] = 1

	f, err := transform.InverseDirectHealpix(flm, L, nside)
	require.NoError(t, err)
	require.Len(t, f, sampling.HealpixPixelCount(nside))

	want := math.Sqrt(1.0 / (4.0 * math.Pi))
	for p, v := range f {
		assert.InDelta(t, want, real(v), 1e-14, "pixel %d", p)
		assert.InDelta(t, 0, imag(v), 1e-14, "pixel %d", p)
	}
}

// TestInverseHealpix_ParallelMatchesSequential: rings write disjoint
// pixel ranges, so the fan-out must be bit-identical.
func TestInverseHealpix_ParallelMatchesSequential(t *testing.T) {
	const (
		L     = 4
		nside = 2
	)
	flm := coeff.Random(L, 0, true, 5)

	seq, err := transform.InverseDirectHealpix(flm, L, nside)
	require.NoError(t, err)
	par, err := transform.InverseDirectHealpix(flm, L, nside, transform.WithParallel(3))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

// TestForwardHealpix_ConstantMap: integrating a constant map recovers
// the degree-0 coefficient exactly (pixel areas sum to 4pi); nonzero
// orders vanish by the uniform azimuthal spacing within each ring, and
// the remaining m=0 terms see only the approximate iso-latitude
// quadrature.
func TestForwardHealpix_ConstantMap(t *testing.T) {
	const (
		L     = 3
		nside = 8
	)
	f := make([]complex128, sampling.HealpixPixelCount(nside))
	val := math.Sqrt(1.0 / (4.0 * math.Pi))
	for p := range f {
		f[p] = complex(val, 0)
	}

	flm, err := transform.ForwardDirectHealpix(f, L, nside)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, real(flm[coeff.Index(0, 0)]), 1e-12, "degree-0 recovery")
	assert.InDelta(t, 0, imag(flm[coeff.Index(0, 0)]), 1e-12)

	// Degree 1, order 0 cancels exactly between mirrored rings.
	assert.InDelta(t, 0, real(flm[coeff.Index(1, 0)]), 1e-8, "odd zonal mode")

	for el := 1; el < L; el++ {
		for m := -el; m <= el; m++ {
			v := flm[coeff.Index(el, m)]
			assert.Less(t, math.Hypot(real(v), imag(v)), 1e-2,
				"el=%d m=%d should be quadrature noise only", el, m)
		}
	}
}

// TestHealpix_Validation covers resolution and shape rejection.
func TestHealpix_Validation(t *testing.T) {
	const L = 3
	flm := make([]complex128, coeff.Total(L))

	_, err := transform.InverseDirectHealpix(flm, L, 0)
	assert.ErrorIs(t, err, sampling.ErrInvalidNside)

	_, err = transform.InverseDirectHealpix(flm[:2], L, 2)
	assert.ErrorIs(t, err, transform.ErrBadCoefficients)

	_, err = transform.ForwardDirectHealpix(make([]complex128, 7), L, 2)
	assert.ErrorIs(t, err, transform.ErrBadGrid)

	_, err = transform.ForwardDirectHealpix(nil, L, 0)
	assert.ErrorIs(t, err, sampling.ErrInvalidNside)
}
