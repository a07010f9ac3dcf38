package coeff

import "math/cmplx"

// Layout conversions between the flat triangular vector, the dense
// L x (2L-1) grid (unused entries zero, order m stored at column
// L-1+m), and the HEALPix-style m >= 0 packing.
//
// Grid convention for L = 3:
//
//	row el=0: [ 0      0      (0,0)  0     0     ]
//	row el=1: [ 0      (1,-1) (1,0)  (1,1) 0     ]
//	row el=2: [ (2,-2) (2,-1) (2,0)  (2,1) (2,2) ]

// FlatToGrid unpacks a flat triangular coefficient vector into a dense
// L x (2L-1) grid. Errors with ErrBadShape if len(flm) != L^2.
func FlatToGrid(flm []complex128, L int) ([][]complex128, error) {
	if L < 1 {
		return nil, ErrInvalidBandlimit
	}
	if len(flm) != Total(L) {
		return nil, ErrBadShape
	}
	grid := make([][]complex128, L)
	for el := 0; el < L; el++ {
		grid[el] = make([]complex128, 2*L-1)
		for m := -el; m <= el; m++ {
			grid[el][L-1+m] = flm[Index(el, m)]
		}
	}

	return grid, nil
}

// GridToFlat packs a dense L x (2L-1) grid into the flat triangular
// layout, discarding the zero padding outside |m| <= el.
// Errors with ErrBadShape on a ragged or mis-sized grid.
func GridToFlat(grid [][]complex128, L int) ([]complex128, error) {
	if L < 1 {
		return nil, ErrInvalidBandlimit
	}
	if len(grid) != L {
		return nil, ErrBadShape
	}
	flm := make([]complex128, Total(L))
	for el := 0; el < L; el++ {
		if len(grid[el]) != 2*L-1 {
			return nil, ErrBadShape
		}
		for m := -el; m <= el; m++ {
			flm[Index(el, m)] = grid[el][L-1+m]
		}
	}

	return flm, nil
}

// HealpixToFlat expands a HEALPix-style m >= 0 packing into the flat
// triangular layout of an explicitly real signal, reconstructing the
// negative orders from conjugate symmetry:
//
//	flm[el, -m] = (-1)^m * conj(flm[el, m])
func HealpixToFlat(hp []complex128, L int) ([]complex128, error) {
	if L < 1 {
		return nil, ErrInvalidBandlimit
	}
	if len(hp) != HealpixTotal(L) {
		return nil, ErrBadShape
	}
	flm := make([]complex128, Total(L))
	for el := 0; el < L; el++ {
		flm[Index(el, 0)] = hp[HealpixIndex(L, el, 0)]
		for m := 1; m <= el; m++ {
			v := hp[HealpixIndex(L, el, m)]
			flm[Index(el, m)] = v
			flm[Index(el, -m)] = complex(parity(m), 0) * cmplx.Conj(v)
		}
	}

	return flm, nil
}

// FlatToHealpix packs a flat triangular vector into the HEALPix-style
// m >= 0 layout, discarding negative orders. Lossy unless the input
// satisfies the reality constraint.
func FlatToHealpix(flm []complex128, L int) ([]complex128, error) {
	if L < 1 {
		return nil, ErrInvalidBandlimit
	}
	if len(flm) != Total(L) {
		return nil, ErrBadShape
	}
	hp := make([]complex128, HealpixTotal(L))
	for el := 0; el < L; el++ {
		for m := 0; m <= el; m++ {
			hp[HealpixIndex(L, el, m)] = flm[Index(el, m)]
		}
	}

	return hp, nil
}

// parity returns (-1)^n.
func parity(n int) float64 {
	if n&1 == 1 {
		return -1
	}

	return 1
}
