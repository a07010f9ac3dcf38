// Package sampling supplies the angular grid geometry consumed by the
// spherical harmonic transforms: ring counts, ring and azimuth angles,
// and quadrature weights, for each supported sampling scheme.
//
// 🚀 What is a sampling scheme?
//
//	A bandlimit L alone does not fix where on the sphere a function is
//	sampled. A scheme names that convention:
//	  • MW      — equiangular, L rings, the compact choice
//	  • MWSS    — equiangular with explicit samples at both poles
//	  • DH      — Driscoll-Healy, 2L rings + exact quadrature weights
//	  • GL      — Gauss-Legendre nodes in cos(theta)
//	  • HEALPix — equal-area iso-latitude pixelization (nside-based)
//
// ✨ Design:
//
//   - Pure formulas, no state: every accessor recomputes from (L, scheme)
//     or (t, nside) and returns fresh slices.
//   - The transform engine consumes these values and never re-derives
//     them.
//   - HEALPix geometry is keyed by nside rather than L, so it has its
//     own accessor family (RingCountHealpix, HealpixRingLength, ...).
//
// Errors (sentinel):
//
//	– ErrInvalidBandlimit  if L < 1.
//	– ErrUnsupportedScheme for tags outside the closed enumeration.
//	– ErrInvalidNside      if nside < 1.
//	– ErrSchemeNeedsNside  when HEALPix geometry is requested via a
//	  bandlimit-only accessor.
//
// Example:
//
//	thetas, _ := sampling.RingAngles(64, sampling.DH)
//	w := sampling.QuadratureWeightDH(thetas[0], 64)
package sampling
