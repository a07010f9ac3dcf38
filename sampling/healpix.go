package sampling

import "math"

// HEALPix ring geometry in RING pixel ordering.
//
// For resolution nside there are 4*nside-1 iso-latitude rings:
// a north polar cap of nside-1 rings with 4, 8, ..., 4(nside-1) pixels,
// an equatorial belt of 2*nside+1 rings with 4*nside pixels each, and a
// mirrored south polar cap. Pixels within a ring are equally spaced in
// azimuth; belt rings alternate a half-pixel phase shift.

// HealpixPixelCount returns the total pixel count 12*nside^2.
func HealpixPixelCount(nside int) int {
	return 12 * nside * nside
}

// RingCountHealpix returns the number of iso-latitude rings, 4*nside-1.
// Errors: ErrInvalidNside if nside < 1.
func RingCountHealpix(nside int) (int, error) {
	if nside < 1 {
		return 0, ErrInvalidNside
	}

	return 4*nside - 1, nil
}

// RingAnglesHealpix returns the polar angle of every ring, increasing
// from the north pole. Ring t (0-based) sits at theta = arccos(z) with
//
//	z = 1 - (t+1)^2 / (3*nside^2)        north cap,  t+1 < nside
//	z = 4/3 - 2(t+1) / (3*nside)         belt,       nside <= t+1 <= 3*nside
//	z = -1 + (4*nside-1-t)^2/(3*nside^2) south cap,  t+1 > 3*nside
func RingAnglesHealpix(nside int) ([]float64, error) {
	n, err := RingCountHealpix(nside)
	if err != nil {
		return nil, err
	}
	thetas := make([]float64, n)
	ns2 := 3 * float64(nside) * float64(nside)
	for t := 0; t < n; t++ {
		i := t + 1
		var z float64
		switch {
		case i < nside:
			z = 1 - float64(i*i)/ns2
		case i <= 3*nside:
			z = 4.0/3.0 - 2.0*float64(i)/(3.0*float64(nside))
		default:
			j := 4*nside - 1 - t
			z = -1 + float64(j*j)/ns2
		}
		thetas[t] = math.Acos(z)
	}

	return thetas, nil
}

// HealpixRingLength returns the pixel count of ring t (0-based):
// 4(t+1) in the north cap, 4*nside in the belt, mirrored in the south.
func HealpixRingLength(t, nside int) int {
	switch {
	case t < nside-1:
		return 4 * (t + 1)
	case t <= 3*nside-1:
		return 4 * nside
	default:
		return 4 * (4*nside - 1 - t)
	}
}

// HealpixRingStart returns the RING-ordered flat offset of the first
// pixel of ring t. Closed form per region; O(1).
func HealpixRingStart(t, nside int) int {
	switch {
	case t < nside-1:
		return 2 * t * (t + 1)
	case t <= 3*nside-1:
		return 2*nside*(nside-1) + (t-(nside-1))*4*nside
	default:
		j := 4*nside - 1 - t
		return 12*nside*nside - 2*j*(j+1)
	}
}

// HealpixRingPhi returns the azimuth of pixel p within ring t.
// Cap rings of length 4i place pixels at phi = (pi/(2i))*(p + 1/2);
// belt rings at phi = (pi/(2*nside))*(p + s/2) where the phase s
// alternates between rings.
func HealpixRingPhi(t, p, nside int) float64 {
	switch {
	case t < nside-1:
		i := t + 1
		return math.Pi / (2 * float64(i)) * (float64(p) + 0.5)
	case t <= 3*nside-1:
		s := float64((t - nside) & 1)
		return math.Pi / (2 * float64(nside)) * (float64(p) + 0.5*s)
	default:
		i := 4*nside - 1 - t
		return math.Pi / (2 * float64(i)) * (float64(p) + 0.5)
	}
}
