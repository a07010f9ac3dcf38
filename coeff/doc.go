// Package coeff maps spherical harmonic coefficients between storage
// layouts and supplies the (el, m) ↔ flat-offset bijection used by the
// transform engine.
//
// Layouts:
//
//   - flat     — one complex value per valid (el, m), 0 <= el < L,
//     -el <= m <= el, at offset el^2 + el + m (length L^2)
//   - grid     — dense L x (2L-1) table, order m at column L-1+m,
//     entries outside |m| <= el held at zero
//   - healpix  — m >= 0 packing of an implicitly real signal
//
// All conversions are pure reindexing; HealpixToFlat additionally
// expands the conjugate symmetry flm[el,-m] = (-1)^m conj(flm[el,m]).
//
// Random produces seeded coefficient vectors honouring the spin and
// reality constraints, for tests and examples.
package coeff
