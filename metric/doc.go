// Package metric computes scalar perceptual-distance summaries between
// images or between an image and a per-pixel error map.
//
// Two reductions are provided:
//
//   - NormMetric: a generalized p-norm over a single-plane distortion map,
//     combining norms of order p, 2p and 4p into one bounded scalar that
//     weights outliers progressively more strongly.
//   - WeightedSSD: a chroma-weighted sum of squared differences between two
//     color images, compared in the sRGB reference encoding with YCbCr-style
//     channel weights.
//
// Both reductions stream over pixel rows through kernels selected at first
// use from the variants registered for the executing CPU (SSE2, AVX2, NEON or
// the portable scalar fallback). Selection is cached for the process lifetime
// and is safe under concurrent first use; when no specialized variant matches
// the hardware, the scalar fallback is substituted transparently.
//
// # Usage
//
//	distmap := pix.NewPlane(256, 256)
//	// ... fill distmap with non-negative error magnitudes ...
//	v, err := metric.NormMetric(distmap, metric.Config{ApproximateBorder: true}, 3.0)
package metric
