package sampling

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// RingCount returns the number of polar rings for bandlimit L under the
// given scheme.
//
// Per scheme: MW→L, MWSS→L+1, DH→2L, GL→L.
// HEALPix geometry depends on nside, not L; use RingCountHealpix.
//
// Errors: ErrInvalidBandlimit if L < 1; ErrSchemeNeedsNside for HEALPix;
// ErrUnsupportedScheme otherwise.
func RingCount(L int, scheme Scheme) (int, error) {
	if L < 1 {
		return 0, ErrInvalidBandlimit
	}
	switch scheme {
	case MW:
		return L, nil
	case MWSS:
		return L + 1, nil
	case DH:
		return 2 * L, nil
	case GL:
		return L, nil
	case HEALPix:
		return 0, ErrSchemeNeedsNside
	default:
		return 0, ErrUnsupportedScheme
	}
}

// AzimuthCount returns the number of equiangular azimuthal samples per
// ring for bandlimit L under the given scheme: 2L-1 for MW, DH and GL,
// 2L for MWSS. HEALPix ring lengths vary per ring; use HealpixRingLength.
func AzimuthCount(L int, scheme Scheme) (int, error) {
	if L < 1 {
		return 0, ErrInvalidBandlimit
	}
	switch scheme {
	case MW, DH, GL:
		return 2*L - 1, nil
	case MWSS:
		return 2 * L, nil
	case HEALPix:
		return 0, ErrSchemeNeedsNside
	default:
		return 0, ErrUnsupportedScheme
	}
}

// RingAngles returns the polar angles theta of every ring, in
// increasing order from the north pole.
//
//	MW:   theta_t = (2t+1)*pi / (2L-1),  t = 0..L-1
//	MWSS: theta_t = 2t*pi / (2L),        t = 0..L   (includes both poles)
//	DH:   theta_t = (2t+1)*pi / (4L),    t = 0..2L-1
//	GL:   theta_t = arccos(x_t) for the degree-L Legendre nodes x_t
//
// Complexity: O(rings); GL additionally computes the Legendre nodes.
func RingAngles(L int, scheme Scheme) ([]float64, error) {
	n, err := RingCount(L, scheme)
	if err != nil {
		return nil, err
	}
	thetas := make([]float64, n)
	switch scheme {
	case MW:
		for t := 0; t < n; t++ {
			thetas[t] = float64(2*t+1) * math.Pi / float64(2*L-1)
		}
	case MWSS:
		for t := 0; t < n; t++ {
			thetas[t] = float64(2*t) * math.Pi / float64(2*L)
		}
	case DH:
		for t := 0; t < n; t++ {
			thetas[t] = float64(2*t+1) * math.Pi / float64(4*L)
		}
	case GL:
		thetas, _ = legendreAngles(L)
	}

	return thetas, nil
}

// AzimuthAngles returns the azimuthal angles phi of every equiangular
// sample within a ring: phi_p = 2*pi*p / AzimuthCount(L, scheme).
func AzimuthAngles(L int, scheme Scheme) ([]float64, error) {
	n, err := AzimuthCount(L, scheme)
	if err != nil {
		return nil, err
	}
	phis := make([]float64, n)
	for p := 0; p < n; p++ {
		phis[p] = float64(2*p) * math.Pi / float64(n)
	}

	return phis, nil
}

// QuadratureWeightDH returns the Driscoll-Healy quadrature weight of a
// ring at polar angle theta for bandlimit L:
//
//	w(theta) = (2/L) * sin(theta) * sum_{k=0}^{L-1} sin((2k+1)theta)/(2k+1)
//
// The weight is exact for signals bandlimited at L. Complexity: O(L).
func QuadratureWeightDH(theta float64, L int) float64 {
	var w float64
	for k := 0; k < L; k++ {
		w += math.Sin(float64(2*k+1)*theta) / float64(2*k+1)
	}
	w *= 2.0 / float64(L) * math.Sin(theta)

	return w
}

// QuadratureWeightsGL returns the Gauss-Legendre ring angles together
// with their quadrature weights on [-1, 1], ordered to match RingAngles
// (theta increasing). The weights integrate polynomials in cos(theta)
// up to degree 2L-1 exactly.
func QuadratureWeightsGL(L int) ([]float64, []float64, error) {
	if L < 1 {
		return nil, nil, ErrInvalidBandlimit
	}
	thetas, weights := legendreAngles(L)

	return thetas, weights, nil
}

// legendreAngles computes the degree-L Legendre nodes and weights via
// gonum and maps nodes to polar angles, reordered so theta increases.
func legendreAngles(L int) (thetas, weights []float64) {
	x := make([]float64, L)
	w := make([]float64, L)
	var rule quad.Legendre
	rule.FixedLocations(x, w, -1, 1)

	// Nodes descend in x = cos(theta), so theta already ascends.
	thetas = make([]float64, L)
	weights = make([]float64, L)
	for t := 0; t < L; t++ {
		thetas[t] = math.Acos(x[t])
		weights[t] = w[t]
	}

	return thetas, weights
}
