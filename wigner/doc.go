// Package wigner computes Wigner-d rotation matrices — the real-valued
// coefficients relating spherical harmonic coefficients before and
// after a polar rotation — via the Turok recursion.
//
// 🚀 Why a dedicated recursion?
//
//	Direct evaluation of d^el(beta) overflows or underflows well before
//	moderate degree: individual terms grow and shrink by hundreds of
//	orders of magnitude. The Turok recursion fills one numerically
//	stable quarter of the matrix, renormalising each row in log space
//	against a fixed threshold, and recovers the rest from exact
//	symmetries of d^el:
//	  d[m,m'] = (-1)^(m-m') d[m',m] = (-1)^(m-m') d[-m,-m']
//
// ✨ Entry points:
//
//   - ComputeFull(beta, el, L)          — the (2L-1)x(2L-1) matrix with
//     the degree-el block centred; the transform engine consumes this
//     ring by ring.
//   - ComputeSpinSlice(beta, el, L, s)  — the single slice a fixed-spin
//     transform needs, at a fraction of the recurrence work.
//
// Guarantees (verified by the test suite):
//
//   - orthogonality of the populated block to 1e-12 across degrees
//   - closed forms at the singular angles: identity at beta=0, signed
//     anti-diagonal at beta=pi
//   - slice/full agreement at every valid (el, spin)
//
// Errors (sentinel):
//
//	– ErrInvalidBandlimit  if el < 0 or el >= L
//	– ErrSpinExceedsDegree if el < |spin| for a slice
//	– ErrAcceleratedPath   if the unstable reflection shortcut is requested
//
// Complexity: O(el^2) time per matrix, O(L^2) memory for the result.
// All state is scoped to a single call; the engine is safe for
// concurrent use from multiple goroutines.
package wigner
