package wigner

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Turok recursion for the Wigner-d rotation matrix d^el(beta).
//
// The raw three-term recurrence is only stable when stepping away from
// the first row toward the diagonal, so the engine fills one quarter of
// the (2el+1)x(2el+1) block (diagonal to anti-diagonal, two octants)
// and completes the matrix through three symmetry reflections.
// Intermediate magnitudes span an enormous dynamic range at high
// degree; each row therefore carries a cumulative log-renormalisation
// exponent that is unwound only once the row is complete.

// Renormalisation constants: whenever a freshly computed entry exceeds
// bigConst, every entry so far in that row is scaled by bigInv and the
// row's exponent tally is decremented by logBig.
const bigConst = 1e10

var (
	bigInv = 1.0 / bigConst
	logBig = math.Log(bigConst)
)

// Option configures a spin-slice computation.
type Option func(*config)

type config struct {
	accelerate bool
}

// WithAcceleratedReflections requests the reflection-shortcut indexing
// for the spin slice. The shortcut is numerically unstable and the
// engine rejects it with ErrAcceleratedPath; it exists so callers can
// probe for the optimisation without silently receiving bad values.
func WithAcceleratedReflections() Option {
	return func(c *config) { c.accelerate = true }
}

// ComputeFull builds the degree-el Wigner-d matrix at polar angle beta
// for overall bandlimit L.
//
// The result is (2L-1)x(2L-1) with the (2el+1)x(2el+1) block centred at
// (L-1, L-1) populated and everything outside it zero; logical indices
// are m, m' in [-(L-1), L-1] with m stored at row L-1+m.
//
// Stage 1 (Validate): 0 <= el < L, else ErrInvalidBandlimit.
// Stage 2 (Quarter):  Turok recursion over one quarter of the block.
// Stage 3 (Complete): symmetry reflections fill the remaining quarters.
//
// Complexity: O(el^2) time, O(L^2) memory for the returned matrix.
func ComputeFull(beta float64, el, L int) (*mat.Dense, error) {
	if L < 1 || el < 0 || el >= L {
		return nil, fmt.Errorf("wigner: el=%d with L=%d: %w", el, L, ErrInvalidBandlimit)
	}

	block := turokQuarter(beta, el)
	turokFill(block, el)

	full := mat.NewDense(2*L-1, 2*L-1, nil)
	off := L - 1 - el
	for i := range block {
		for j := range block[i] {
			full.Set(off+i, off+j, block[i][j])
		}
	}

	return full, nil
}

// ComputeSpinSlice builds the single row of the degree-el Wigner-d
// matrix that a spin-s transform consumes: the slice at fixed index
// spin, returned as a vector of length 2L-1 indexed like a matrix row
// of ComputeFull (entry k corresponds to logical order k-(L-1)).
//
// Preconditions: 0 <= el < L (ErrInvalidBandlimit) and el >= |spin|
// (ErrSpinExceedsDegree) — spin-weighted harmonics vanish below the
// spin weight, so the slice is undefined there.
//
// The reflection-shortcut path (WithAcceleratedReflections) is
// documented upstream as numerically unstable and is always rejected
// with ErrAcceleratedPath.
//
// Complexity: O(el^2) — the recurrence runs over the handful of rows
// around the spin index, but the symmetry completion touches the block.
func ComputeSpinSlice(beta float64, el, L, spin int, opts ...Option) ([]float64, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	as := spin
	if as < 0 {
		as = -as
	}
	if el < as {
		return nil, fmt.Errorf("wigner: el=%d below |spin|=%d: %w", el, as, ErrSpinExceedsDegree)
	}
	if cfg.accelerate {
		return nil, ErrAcceleratedPath
	}
	if L < 1 || el >= L {
		return nil, fmt.Errorf("wigner: el=%d with L=%d: %w", el, L, ErrInvalidBandlimit)
	}

	slice := make([]float64, 2*L-1)
	copy(slice[L-1-el:L+el], turokQuarterSpin(beta, el, spin))

	return slice, nil
}

// scratch holds the per-degree working vectors of one quarter fill.
// It is allocated at the start of a matrix construction and never
// escapes the call.
type scratch struct {
	lrenorm     []float64 // per-row accumulated renormalisation exponent
	cpi         []float64 // recursion coefficients 2/sqrt(l(l+1)-m(m+1))
	cp2         []float64 // ratio cpi[m]/cpi[m-1]
	logFirstRow []float64 // log-magnitude of the analytic first row
	sign        []float64 // sign pattern of the first row
}

// newScratch seeds the working vectors for degree l at angle beta.
// The first row of the quarter is known in closed form: its magnitude
// is cos(beta/2)^(2l) stepped by sqrt((m+l+1)/(l-m)) ratios, its sign
// alternates with tan(-beta/2). Both are tracked in log space.
func newScratch(beta float64, l int) *scratch {
	n := 2*l + 1
	sc := &scratch{
		lrenorm:     make([]float64, n),
		cpi:         make([]float64, n),
		cp2:         make([]float64, n),
		logFirstRow: make([]float64, n),
		sign:        make([]float64, n),
	}

	t := math.Tan(-beta / 2.0)
	c2 := math.Cos(beta / 2.0)

	sc.logFirstRow[0] = 2.0 * float64(l) * math.Log(math.Abs(c2))
	sc.sign[0] = 1.0
	for i := 2; i <= 2*l+1; i++ {
		m := l + 1 - i
		ratio := math.Sqrt(float64(m+l+1) / float64(l-m))
		sc.logFirstRow[i-1] = sc.logFirstRow[i-2] + math.Log(ratio) + math.Log(math.Abs(t))
		sc.sign[i-1] = sc.sign[i-2] * t / math.Abs(t)
	}

	for m := 1; m <= l+1; m++ {
		xm := l - m
		sc.cpi[m-1] = 2.0 / math.Sqrt(float64(l*(l+1)-xm*(xm+1)))
	}
	for m := 2; m <= l+1; m++ {
		sc.cp2[m-1] = sc.cpi[m-1] / sc.cpi[m-2]
	}

	return sc
}

// fillRow runs the three-term recurrence along row index (1-based),
// writing columns 0..mEnd. Whenever an entry exceeds bigConst the row
// computed so far is rescaled by bigInv and the exponent tally updated.
func (sc *scratch) fillRow(dl [][]float64, l, index, mEnd int, c, s, omc float64) {
	row := dl[index-1]
	row[0] = 1.0
	lamb := (float64(l+1)*omc - float64(index) + c) / s
	row[1] = lamb * row[0] * sc.cpi[0]
	for m := 2; m <= mEnd; m++ {
		lamb = (float64(l+1)*omc - float64(index) + float64(m)*c) / s
		row[m] = lamb*sc.cpi[m-1]*row[m-1] - sc.cp2[m-1]*row[m-2]
		if row[m] > bigConst {
			sc.lrenorm[index-1] -= logBig
			for im := 0; im <= m; im++ {
				row[im] *= bigInv
			}
		}
	}
}

// renormRow restores the true magnitude of row index (1-based) over its
// first width columns: sign * exp(log first-row value - exponent tally).
func (sc *scratch) renormRow(dl [][]float64, index, width int) {
	r := sc.sign[index-1] * math.Exp(sc.logFirstRow[index-1]-sc.lrenorm[index-1])
	row := dl[index-1]
	for j := 0; j < width; j++ {
		row[j] *= r
	}
}

// turokQuarter evaluates the lower-left quarter of the degree-l
// Wigner-d block at angle beta. Singular angles and degree zero are
// returned complete in closed form; turokFill leaves them intact.
func turokQuarter(beta float64, l int) [][]float64 {
	// Analytically evaluate singularities.
	if math.Abs(beta) <= 0 {
		dl := newSquare(2*l + 1)
		for i := range dl {
			dl[i][i] = 1.0
		}

		return dl
	}
	if math.Abs(beta) >= math.Pi {
		// Rotation by pi reverses orders up to an alternating sign.
		dl := newSquare(2*l + 1)
		for m := -l; m <= l; m++ {
			dl[l-m][l+m] = signParity(l + m)
		}

		return dl
	}
	if l == 0 {
		return [][]float64{{1.0}}
	}

	dl := newSquare(2*l + 1)
	c := math.Cos(beta)
	s := math.Sin(beta)
	omc := 1.0 - c
	sc := newScratch(beta, l)

	dl[0][0] = 1.0
	dl[2*l][0] = 1.0

	// Diagonal to horizontal: rows of growing width.
	for index := 2; index <= l+1; index++ {
		sc.fillRow(dl, l, index, index-1, c, s, omc)
	}
	// Horizontal to anti-diagonal: rows of shrinking width.
	for index := l + 2; index <= 2*l; index++ {
		sc.fillRow(dl, l, index, 2*l+1-index, c, s, omc)
	}

	for i := 1; i <= l+1; i++ {
		sc.renormRow(dl, i, i)
	}
	for i := l + 2; i <= 2*l+1; i++ {
		sc.renormRow(dl, i, 2*l+2-i)
	}

	return dl
}

// turokQuarterSpin evaluates only the rows of the quarter that feed the
// slice at index spin, completes the block symmetries, and returns the
// row l-spin of the resulting (2l+1)x(2l+1) block.
func turokQuarterSpin(beta float64, l, spin int) []float64 {
	as := spin
	if as < 0 {
		as = -as
	}

	// Analytically evaluate singularities.
	if math.Abs(beta) <= 0 {
		v := make([]float64, 2*l+1)
		v[l-spin] = 1.0

		return v
	}
	if math.Abs(beta) >= math.Pi {
		v := make([]float64, 2*l+1)
		v[l+spin] = signParity(l + spin)

		return v
	}
	if l == 0 {
		return []float64{1.0}
	}

	dl := newSquare(2*l + 1)
	c := math.Cos(beta)
	s := math.Sin(beta)
	omc := 1.0 - c
	sc := newScratch(beta, l)

	dl[0][0] = 1.0
	dl[2*l][0] = 1.0

	// Only rows within |spin| of the horizontal contribute to the
	// requested slice once the symmetries are applied.
	for index := l - as + 1; index <= l+1; index++ {
		sc.fillRow(dl, l, index, index-1, c, s, omc)
	}
	for index := l + 2; index <= l+as+1; index++ {
		sc.fillRow(dl, l, index, 2*l+1-index, c, s, omc)
	}

	for i := l - as + 1; i <= l+1; i++ {
		sc.renormRow(dl, i, i)
	}
	for i := l + 2; i <= l+as+1; i++ {
		sc.renormRow(dl, i, 2*l+2-i)
	}

	turokFill(dl, l)

	return dl[l-spin]
}

// turokFill completes a quarter-populated degree-l block in place by
// three reflections: across the anti-diagonal, across the main diagonal
// with alternating sign, and by signed point symmetry for the remaining
// right-hand region.
func turokFill(dl [][]float64, l int) {
	// Reflect across the anti-diagonal.
	for i := 1; i <= l; i++ {
		for j := l + 1; j <= 2*l+1-i; j++ {
			dl[2*l+1-i][2*l+1-j] = dl[j-1][i-1]
		}
	}

	// Reflect across the diagonal with alternating sign.
	for i := 1; i <= l+1; i++ {
		sgn := -1.0
		for j := i + 1; j <= l+1; j++ {
			dl[i-1][j-1] = dl[j-1][i-1] * sgn
			sgn = -sgn
		}
	}

	// Fill the right half: signed transpose of the bottom rows, then
	// point-symmetric copies of the anti-diagonal reflection.
	for i := l + 2; i <= 2*l+1; i++ {
		sgn := signParity(i + 1)
		for j := 1; j <= 2*l+2-i; j++ {
			dl[j-1][i-1] = dl[i-1][j-1] * sgn
			sgn = -sgn
		}
		for j := i; j <= 2*l+1; j++ {
			dl[j-1][i-1] = dl[2*l+1-i][2*l+1-j]
		}
	}
	for i := l + 2; i <= 2*l+1; i++ {
		for j := 2*l + 3 - i; j <= i-1; j++ {
			dl[j-1][i-1] = dl[2*l+1-i][2*l+1-j]
		}
	}
}

// newSquare allocates an n x n zero matrix as row slices.
func newSquare(n int) [][]float64 {
	backing := make([]float64, n*n)
	dl := make([][]float64, n)
	for i := range dl {
		dl[i] = backing[i*n : (i+1)*n]
	}

	return dl
}

// signParity returns (-1)^n.
func signParity(n int) float64 {
	if n&1 == 1 {
		return -1.0
	}

	return 1.0
}
