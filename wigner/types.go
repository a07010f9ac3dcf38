// Package wigner defines errors for the Wigner-d rotation matrix
// recursion engine.
package wigner

import "errors"

var (
	// ErrInvalidBandlimit indicates a requested degree el outside
	// 0 <= el < L.
	ErrInvalidBandlimit = errors.New("wigner: degree must satisfy 0 <= el < L")

	// ErrSpinExceedsDegree indicates a spin-column request with
	// el < |spin|: the slice is undefined below the spin weight.
	ErrSpinExceedsDegree = errors.New("wigner: degree below |spin| for spin slice")

	// ErrAcceleratedPath indicates a request for the reflection-shortcut
	// spin recursion, which is numerically unstable and rejected.
	ErrAcceleratedPath = errors.New("wigner: accelerated reflection path is unstable and disabled")
)
