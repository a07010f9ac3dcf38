package sampling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spharm/sampling"
)

// TestRingCount verifies the per-scheme ring counts and the validation
// failures.
func TestRingCount(t *testing.T) {
	const L = 7
	cases := map[sampling.Scheme]int{
		sampling.MW:   L,
		sampling.MWSS: L + 1,
		sampling.DH:   2 * L,
		sampling.GL:   L,
	}
	for scheme, want := range cases {
		n, err := sampling.RingCount(L, scheme)
		require.NoError(t, err, scheme)
		assert.Equal(t, want, n, "scheme %v", scheme)
	}

	_, err := sampling.RingCount(0, sampling.MW)
	assert.ErrorIs(t, err, sampling.ErrInvalidBandlimit)

	_, err = sampling.RingCount(L, sampling.HEALPix)
	assert.ErrorIs(t, err, sampling.ErrSchemeNeedsNside)

	_, err = sampling.RingCount(L, sampling.Scheme(99))
	assert.ErrorIs(t, err, sampling.ErrUnsupportedScheme)
}

// TestRingAngles verifies the closed-form ring positions of the
// equiangular schemes and the shared ordering contract.
func TestRingAngles(t *testing.T) {
	const L = 5

	mw, err := sampling.RingAngles(L, sampling.MW)
	require.NoError(t, err)
	require.Len(t, mw, L)
	assert.InDelta(t, math.Pi/float64(2*L-1), mw[0], 1e-15)
	assert.InDelta(t, float64(2*L-1)*math.Pi/float64(2*L-1), mw[L-1], 1e-15)

	mwss, err := sampling.RingAngles(L, sampling.MWSS)
	require.NoError(t, err)
	require.Len(t, mwss, L+1)
	assert.Zero(t, mwss[0], "MWSS starts at the north pole")
	assert.InDelta(t, math.Pi, mwss[L], 1e-15, "MWSS ends at the south pole")

	dh, err := sampling.RingAngles(L, sampling.DH)
	require.NoError(t, err)
	require.Len(t, dh, 2*L)
	assert.InDelta(t, math.Pi/float64(4*L), dh[0], 1e-15)

	// Every scheme orders rings north to south.
	for _, thetas := range [][]float64{mw, mwss, dh} {
		for i := 1; i < len(thetas); i++ {
			assert.Greater(t, thetas[i], thetas[i-1], "ring %d out of order", i)
		}
	}
}

// TestRingAngles_GaussLegendre verifies the GL nodes: inside (0, pi),
// increasing, and symmetric about the equator.
func TestRingAngles_GaussLegendre(t *testing.T) {
	const L = 8
	thetas, err := sampling.RingAngles(L, sampling.GL)
	require.NoError(t, err)
	require.Len(t, thetas, L)

	for i, theta := range thetas {
		assert.Greater(t, theta, 0.0, "node %d", i)
		assert.Less(t, theta, math.Pi, "node %d", i)
		if i > 0 {
			assert.Greater(t, theta, thetas[i-1], "node %d out of order", i)
		}
		assert.InDelta(t, math.Pi, theta+thetas[L-1-i], 1e-12,
			"nodes must mirror about the equator")
	}

	// Degree 2 has the closed-form nodes x = +-1/sqrt(3); the first ring
	// must sit in the northern hemisphere at arccos(+1/sqrt(3)).
	two, err := sampling.RingAngles(2, sampling.GL)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.InDelta(t, math.Acos(1/math.Sqrt(3)), two[0], 1e-13)
	assert.InDelta(t, math.Acos(-1/math.Sqrt(3)), two[1], 1e-13)
}

// TestQuadratureWeightsGL verifies the Legendre weights: positive and
// summing to the measure of [-1, 1].
func TestQuadratureWeightsGL(t *testing.T) {
	const L = 8
	thetas, weights, err := sampling.QuadratureWeightsGL(L)
	require.NoError(t, err)
	require.Len(t, thetas, L)
	require.Len(t, weights, L)

	var sum float64
	for i, w := range weights {
		assert.Greater(t, w, 0.0, "weight %d", i)
		sum += w
	}
	assert.InDelta(t, 2.0, sum, 1e-13, "weights integrate the constant 1 over [-1,1]")

	_, _, err = sampling.QuadratureWeightsGL(0)
	assert.ErrorIs(t, err, sampling.ErrInvalidBandlimit)
}

// TestAzimuth verifies counts and uniform spacing of the equiangular
// azimuthal samples.
func TestAzimuth(t *testing.T) {
	const L = 4
	for scheme, want := range map[sampling.Scheme]int{
		sampling.MW:   2*L - 1,
		sampling.DH:   2*L - 1,
		sampling.GL:   2*L - 1,
		sampling.MWSS: 2 * L,
	} {
		n, err := sampling.AzimuthCount(L, scheme)
		require.NoError(t, err)
		assert.Equal(t, want, n, "scheme %v", scheme)

		phis, err := sampling.AzimuthAngles(L, scheme)
		require.NoError(t, err)
		require.Len(t, phis, n)
		assert.Zero(t, phis[0])
		for p := 1; p < n; p++ {
			assert.InDelta(t, 2*math.Pi/float64(n), phis[p]-phis[p-1], 1e-15,
				"scheme %v spacing at %d", scheme, p)
		}
	}
}

// TestQuadratureWeightDH verifies that the Driscoll-Healy ring weights
// integrate the constant function exactly: summed over the 2L rings
// they equal the measure of sin(theta) d(theta), i.e. 2.
func TestQuadratureWeightDH(t *testing.T) {
	const L = 6
	thetas, err := sampling.RingAngles(L, sampling.DH)
	require.NoError(t, err)

	var sum float64
	for _, theta := range thetas {
		sum += sampling.QuadratureWeightDH(theta, L)
	}
	assert.InDelta(t, 2.0, sum, 1e-12)
}

// TestParseScheme round-trips every tag and rejects unknown ones.
func TestParseScheme(t *testing.T) {
	for _, scheme := range []sampling.Scheme{
		sampling.MW, sampling.MWSS, sampling.DH, sampling.GL, sampling.HEALPix,
	} {
		got, err := sampling.ParseScheme(scheme.String())
		require.NoError(t, err, scheme)
		assert.Equal(t, scheme, got)
	}

	_, err := sampling.ParseScheme("equirectangular")
	assert.ErrorIs(t, err, sampling.ErrUnsupportedScheme)
	assert.Equal(t, "unknown", sampling.Scheme(42).String())
}
