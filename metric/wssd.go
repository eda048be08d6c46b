package metric

import (
	"fmt"

	"github.com/cwbudde/algo-imgmetric/colorspace"
	"github.com/cwbudde/algo-imgmetric/pix"
)

// channelWeights approximate perceptual luma/chroma sensitivity for
// YCbCr-ordered channels: chroma counts 1/8, luma 6/8. The weight is applied
// linearly rather than squared, which would over-penalize chroma.
var channelWeights = [3]float64{1.0 / 8, 6.0 / 8, 1.0 / 8}

// WeightedSSD computes a chroma-weighted sum of squared pixel differences
// between two same-sized color images.
//
// Both inputs are normalized to the sRGB reference encoding before
// comparison; inputs already in sRGB are used as-is, others are converted
// into temporary copies that are discarded after the call. The inputs are
// never mutated. The result is a raw weighted sum: it scales with image size
// and is intentionally not normalized by pixel count, so callers can derive
// per-pixel or decibel values themselves.
//
// Fails with ErrInvalidDimensions when the images' width or height differ or
// are degenerate, and propagates conversion failures unchanged.
func WeightedSSD(a, b *pix.Image3) (float64, error) {
	if a == nil || b == nil || a.Width() <= 0 || a.Height() <= 0 {
		return 0, fmt.Errorf("metric: degenerate image: %w", ErrInvalidDimensions)
	}
	if !pix.SameSize(a, b) {
		return 0, fmt.Errorf("metric: image sizes %dx%d vs %dx%d: %w",
			a.Width(), a.Height(), b.Width(), b.Height(), ErrInvalidDimensions)
	}

	srgbA, err := colorspace.ToSRGB(a)
	if err != nil {
		return 0, fmt.Errorf("metric: normalizing first image: %w", err)
	}
	srgbB, err := colorspace.ToSRGB(b)
	if err != nil {
		return 0, fmt.Errorf("metric: normalizing second image: %w", err)
	}

	weightedSSDInitOnce.Do(initWeightedSSDKernel)

	var sum float64
	for c := 0; c < 3; c++ {
		weight := channelWeights[c]
		for y := 0; y < srgbA.Height(); y++ {
			sum += weightedSSDImpl(srgbA.Planes[c].Row(y), srgbB.Planes[c].Row(y), weight)
		}
	}
	return sum, nil
}
