// Package coeff defines errors for harmonic coefficient indexing and
// layout conversions.
package coeff

import "errors"

var (
	// ErrInvalidBandlimit indicates a bandlimit L < 1.
	ErrInvalidBandlimit = errors.New("coeff: bandlimit must be at least 1")

	// ErrBadShape indicates a coefficient container whose length does not
	// match the expected layout for the given bandlimit.
	ErrBadShape = errors.New("coeff: coefficient shape inconsistent with bandlimit")
)
