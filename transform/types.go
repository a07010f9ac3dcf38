// Package transform defines the sample grid container, configuration
// options and sentinel errors of the spherical harmonic transform
// engine.
package transform

import (
	"errors"
	"runtime"
)

var (
	// ErrUnsupportedSampling indicates an operation requested under a
	// sampling scheme for which it is not defined (for example a forward
	// transform without quadrature weights, or an equiangular transform
	// asked to produce a HEALPix grid).
	ErrUnsupportedSampling = errors.New("transform: sampling scheme not supported for this operation")

	// ErrBadCoefficients indicates a coefficient vector whose length is
	// not L^2 for the requested bandlimit L.
	ErrBadCoefficients = errors.New("transform: coefficient vector length inconsistent with bandlimit")

	// ErrBadGrid indicates a sample grid whose shape does not match the
	// bandlimit and sampling scheme.
	ErrBadGrid = errors.New("transform: sample grid shape inconsistent with bandlimit and scheme")
)

// Grid holds complex angular samples over a dense (ring, azimuth)
// layout, row-major: one row per polar ring, one column per azimuthal
// sample.
type Grid struct {
	rings int
	nphi  int
	data  []complex128
}

// NewGrid allocates a zeroed rings x nphi sample grid.
func NewGrid(rings, nphi int) *Grid {
	return &Grid{rings: rings, nphi: nphi, data: make([]complex128, rings*nphi)}
}

// Rings returns the number of polar rings.
func (g *Grid) Rings() int { return g.rings }

// Nphi returns the number of azimuthal samples per ring.
func (g *Grid) Nphi() int { return g.nphi }

// At returns the sample on ring t at azimuthal index p.
func (g *Grid) At(t, p int) complex128 { return g.data[t*g.nphi+p] }

// Set stores a sample on ring t at azimuthal index p.
func (g *Grid) Set(t, p int, v complex128) { g.data[t*g.nphi+p] = v }

// Row returns the backing slice of ring t. Mutating it mutates the grid.
func (g *Grid) Row(t int) []complex128 { return g.data[t*g.nphi : (t+1)*g.nphi] }

// Data returns the row-major backing slice of the whole grid.
func (g *Grid) Data() []complex128 { return g.data }

// Option configures a transform invocation.
type Option func(*options)

type options struct {
	workers int
}

// WithParallel dispatches the polar-ring loop across up to workers
// goroutines. Rings are mutually independent and each writes a disjoint
// region of the output, so the result is identical to the sequential
// one. workers < 1 selects GOMAXPROCS.
func WithParallel(workers int) Option {
	return func(o *options) {
		if workers < 1 {
			workers = runtime.GOMAXPROCS(0)
		}
		o.workers = workers
	}
}

func applyOptions(opts []Option) options {
	o := options{workers: 1}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
