package metric

import (
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-imgmetric/pix"
)

// fastPathTolerance is how close p must be to 3.0 for the vectorized
// repeated-multiplication path to be numerically equivalent to the general
// exponentiation path.
const fastPathTolerance = 1e-6

// slowPathWarned guards the one-time diagnostic for the general-exponent
// path. Exchange semantics guarantee the warning fires at most once across
// all goroutines.
var slowPathWarned atomic.Bool

// NormMetric reduces a non-negative distortion map into a single scalar.
//
// Three norms of increasing order are derived from the exponent p: the
// accumulated sums of d^p, d^2p and d^4p over the retained region are each
// normalized by the retained pixel count, raised to the 1/p, 1/2p and 1/4p
// power respectively, then averaged. The result is bounded, comparable
// across image sizes and emphasizes outliers progressively more strongly
// across the three terms.
//
// When cfg.ApproximateBorder is set and the map is large enough, an 8-pixel
// band is excluded from every edge (see Config). Exponents within 1e-6 of
// 3.0 take a vectorized repeated-multiplication path; any other exponent
// falls back to a slower generic exponentiation path and emits a one-time
// process-wide warning.
//
// Fails with ErrInvalidExponent for non-positive or non-finite p, with
// ErrInvalidDimensions for a degenerate map, and with ErrEmptyRegion should
// border exclusion leave nothing to aggregate.
func NormMetric(distmap *pix.Plane, cfg Config, p float64) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return 0, fmt.Errorf("metric: exponent %v: %w", p, ErrInvalidExponent)
	}
	if distmap == nil || distmap.Width() <= 0 || distmap.Height() <= 0 {
		return 0, fmt.Errorf("metric: degenerate distortion map: %w", ErrInvalidDimensions)
	}

	width := distmap.Width()
	height := distmap.Height()
	border := cfg.border(width, height)

	retainedW := width - 2*border
	retainedH := height - 2*border
	if retainedW <= 0 || retainedH <= 0 {
		return 0, ErrEmptyRegion
	}

	var sums [3]float64
	if math.Abs(p-3.0) < fastPathTolerance {
		powSumsInitOnce.Do(initPowSumsKernel)
		for y := border; y < height-border; y++ {
			row := distmap.Row(y)[border : width-border]
			s3, s6, s12 := powSumsImpl(row)
			sums[0] += s3
			sums[1] += s6
			sums[2] += s12
		}
	} else {
		if slowPathWarned.CompareAndSwap(false, true) {
			slog.Warn("metric: using slow general-exponent norm path", "p", p)
		}
		sums = powSumsGeneral(distmap, border, p)
	}

	onePerPixel := 1.0 / (float64(retainedW) * float64(retainedH))
	v := 0.0
	for i := range sums {
		v += math.Pow(onePerPixel*sums[i], 1.0/(p*float64(int(1)<<i)))
	}
	return v / 3.0, nil
}

// powSumsGeneral accumulates the p, 2p and 4p power sums for arbitrary
// exponents. Each row's d^p values are computed once via math.Pow; the higher
// orders follow by elementwise squaring.
func powSumsGeneral(distmap *pix.Plane, border int, p float64) [3]float64 {
	width := distmap.Width()
	height := distmap.Height()
	n := width - 2*border

	pow1 := make([]float64, n)
	pow2 := make([]float64, n)
	pow4 := make([]float64, n)

	var sums [3]float64
	for y := border; y < height-border; y++ {
		row := distmap.Row(y)[border : width-border]
		for x, v := range row {
			pow1[x] = math.Pow(float64(v), p)
		}
		vecmath.MulBlock(pow2, pow1, pow1)
		vecmath.MulBlock(pow4, pow2, pow2)
		for x := range pow1 {
			sums[0] += pow1[x]
			sums[1] += pow2[x]
			sums[2] += pow4[x]
		}
	}
	return sums
}
