package coeff

import "math"

// Flat triangular layout: coefficients ordered by increasing degree el,
// and within a degree by increasing order m:
//
//	[ (0,0), (1,-1), (1,0), (1,1), (2,-2), ... ]
//
// The bijection below is the index map every transform uses; it is pure
// arithmetic and performs no validation (degree/order ranges are the
// caller's contract).

// Total returns the number of coefficients below bandlimit L: L^2.
func Total(L int) int {
	return L * L
}

// Index returns the flat offset of the (el, m) coefficient:
// el^2 + el + m, valid for 0 <= el and -el <= m <= el.
func Index(el, m int) int {
	return el*el + el + m
}

// Elm inverts Index, recovering (el, m) from a flat offset.
func Elm(i int) (el, m int) {
	el = int(math.Sqrt(float64(i)))
	m = i - el*el - el

	return el, m
}

// HealpixTotal returns the length of the HEALPix-style packed layout
// for bandlimit L: L*(L+1)/2 + L + 1. The packing stores only m >= 0
// (conjugate symmetry of a real signal is implicit) ordered by m-major
// runs, with room for degrees up to L inclusive.
func HealpixTotal(L int) int {
	return L*(L+1)/2 + L + 1
}

// HealpixIndex returns the offset of (el, m) with m >= 0 in the
// HEALPix-style packed layout: m*(2L+1-m)/2 + el.
func HealpixIndex(L, el, m int) int {
	return m*(2*L+1-m)/2 + el
}
