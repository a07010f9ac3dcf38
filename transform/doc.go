// Package transform computes spin-weighted spherical harmonic
// transforms: harmonic coefficients to angular samples (inverse) and
// back (forward), over the sampling schemes of package sampling.
//
// 🚀 What lives here?
//
//	Three inverse algorithms that must agree to floating-point
//	tolerance while occupying different complexity classes:
//	  • InverseDirect  — the defining double sum, O(L^4·samples)
//	  • InverseSOV     — separation of variables, O(L^3)
//	  • InverseSOVFFT  — SOV with per-ring inverse FFT, O(L^2 log L)
//	plus the quadrature-weighted adjoint ForwardDirect (Driscoll-Healy
//	scheme only), and a HEALPix pair operating on RING-ordered pixel
//	vectors for spin-0 signals.
//
// ✨ Design:
//
//   - Every operation is a pure function over immutable inputs and a
//     freshly allocated output; nothing is cached across calls.
//   - Each polar ring asks package wigner for the degree-el rotation
//     matrix at its angle and combines the spin column with the
//     coefficients; rings are mutually independent.
//   - WithParallel(n) fans the ring loop across goroutines; each ring
//     writes a disjoint output region, so results are bit-identical to
//     the sequential run.
//   - Degrees below |spin| contribute nothing and are skipped.
//
// Coefficient vectors use the flat triangular layout of package coeff
// (length L^2, offset el^2+el+m); grids are dense (ring, azimuth)
// containers, complex-valued.
//
// Errors (sentinel):
//
//	– ErrUnsupportedSampling  forward without quadrature weights, or an
//	  equiangular entry point asked for a HEALPix grid
//	– ErrBadCoefficients      len(flm) != L^2
//	– ErrBadGrid              grid shape mismatch
//
// Example:
//
//	flm := coeff.Random(16, 0, false, 1)
//	f, err := transform.InverseSOVFFT(flm, 16, 0, sampling.MW)
//	if err != nil { ... }
//	_ = f.At(0, 0)
package transform
