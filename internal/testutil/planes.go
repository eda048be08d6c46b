// Package testutil provides deterministic pixel-plane builders and tolerance
// helpers shared by the metric tests.
package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-imgmetric/pix"
)

// UniformPlane returns a width x height plane filled with v.
func UniformPlane(width, height int, v float32) *pix.Plane {
	p := pix.NewPlane(width, height)
	p.Fill(v)
	return p
}

// GradientPlane returns a plane whose samples ramp linearly from 0 at the
// top-left to span at the bottom-right. Values are non-negative.
func GradientPlane(width, height int, span float32) *pix.Plane {
	p := pix.NewPlane(width, height)
	denom := float32(width*height - 1)
	if denom <= 0 {
		denom = 1
	}
	for y := 0; y < height; y++ {
		row := p.Row(y)
		for x := range row {
			row[x] = span * float32(y*width+x) / denom
		}
	}
	return p
}

// NoisePlane returns a plane of deterministic pseudo-random samples in
// [0, amplitude), reproducible for a given seed.
func NoisePlane(seed int64, width, height int, amplitude float32) *pix.Plane {
	p := pix.NewPlane(width, height)
	rng := rand.New(rand.NewSource(seed))
	for y := 0; y < height; y++ {
		row := p.Row(y)
		for x := range row {
			row[x] = rng.Float32() * amplitude
		}
	}
	return p
}

// UniformImage3 returns an image whose three channels are filled with r, g, b
// and carry the given encoding.
func UniformImage3(width, height int, r, g, b float32, enc pix.Encoding) *pix.Image3 {
	im := pix.NewImage3(width, height)
	im.Encoding = enc
	im.Planes[0].Fill(r)
	im.Planes[1].Fill(g)
	im.Planes[2].Fill(b)
	return im
}

// NoiseImage3 returns an image of deterministic pseudo-random samples in
// [0, 1), reproducible for a given seed.
func NoiseImage3(seed int64, width, height int, enc pix.Encoding) *pix.Image3 {
	im := pix.NewImage3(width, height)
	im.Encoding = enc
	rng := rand.New(rand.NewSource(seed))
	for c := 0; c < 3; c++ {
		for y := 0; y < height; y++ {
			row := im.Planes[c].Row(y)
			for x := range row {
				row[x] = rng.Float32()
			}
		}
	}
	return im
}

// OffsetImage3 returns a copy of im with offset added to every sample of
// every channel. The copy keeps im's encoding and gray flag.
func OffsetImage3(im *pix.Image3, offset float32) *pix.Image3 {
	out := pix.NewImage3(im.Width(), im.Height())
	out.Encoding = im.Encoding
	out.Gray = im.Gray
	for c := 0; c < 3; c++ {
		for y := 0; y < im.Height(); y++ {
			src := im.Planes[c].Row(y)
			dst := out.Planes[c].Row(y)
			for x := range src {
				dst[x] = src[x] + offset
			}
		}
	}
	return out
}
