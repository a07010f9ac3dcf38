// Package sampling defines scheme tags and configuration errors for
// angular sampling grids on the sphere.
package sampling

import "errors"

// Scheme identifies a named sampling convention on the sphere.
// A scheme fixes, for a given bandlimit L, the number and position of
// polar rings, the azimuthal sample count, and (where defined) the
// per-ring quadrature weights.
//
//   - MW      — equiangular McEwen-Wiaux: L rings, no polar samples.
//   - MWSS    — equiangular with both poles sampled: L+1 rings.
//   - DH      — Driscoll-Healy: 2L rings with explicit quadrature weights.
//   - GL      — Gauss-Legendre: L rings at Legendre nodes.
//   - HEALPix — iso-latitude pixelization, parameterised by nside;
//     ring lengths vary, so the HEALPix helpers take nside explicitly.
type Scheme int

const (
	// MW is the equiangular scheme with rings at theta = (2t+1)*pi/(2L-1).
	MW Scheme = iota

	// MWSS is the equiangular scheme with symmetric pole samples,
	// rings at theta = 2t*pi/(2L).
	MWSS

	// DH is the Driscoll-Healy scheme, rings at theta = (2t+1)*pi/(4L),
	// the only scheme with explicit quadrature weights for the forward
	// transform.
	DH

	// GL is the Gauss-Legendre scheme with rings at the arccosine of the
	// degree-L Legendre nodes.
	GL

	// HEALPix is the iso-latitude equal-area pixelization; its geometry
	// is parameterised by nside, not by L.
	HEALPix
)

// String returns the canonical lower-case tag for the scheme.
func (s Scheme) String() string {
	switch s {
	case MW:
		return "mw"
	case MWSS:
		return "mwss"
	case DH:
		return "dh"
	case GL:
		return "gl"
	case HEALPix:
		return "healpix"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidBandlimit indicates a bandlimit L < 1.
	ErrInvalidBandlimit = errors.New("sampling: bandlimit must be at least 1")

	// ErrUnsupportedScheme indicates a scheme tag outside the closed
	// enumeration above.
	ErrUnsupportedScheme = errors.New("sampling: unsupported sampling scheme")

	// ErrInvalidNside indicates a HEALPix resolution nside < 1.
	ErrInvalidNside = errors.New("sampling: nside must be at least 1")

	// ErrSchemeNeedsNside indicates that HEALPix geometry was requested
	// through a bandlimit-only accessor; use the *Healpix helpers instead.
	ErrSchemeNeedsNside = errors.New("sampling: HEALPix geometry requires nside")
)

// ParseScheme maps a lower-case tag ("mw", "mwss", "dh", "gl",
// "healpix") to its Scheme. Unknown tags return ErrUnsupportedScheme.
func ParseScheme(tag string) (Scheme, error) {
	switch tag {
	case "mw":
		return MW, nil
	case "mwss":
		return MWSS, nil
	case "dh":
		return DH, nil
	case "gl":
		return GL, nil
	case "healpix":
		return HEALPix, nil
	default:
		return 0, ErrUnsupportedScheme
	}
}
