// Package colorspace converts pixel planes between linear-light and sRGB
// encodings.
//
// The difference metric compares images in sRGB, which is closer to
// perception than linear light. ToSRGB normalizes an arbitrary input image to
// that reference encoding; inputs already in sRGB pass through untouched.
package colorspace

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-imgmetric/pix"
)

// ErrUnsupportedEncoding is returned when an image carries an encoding the
// converter does not know how to normalize.
var ErrUnsupportedEncoding = errors.New("colorspace: unsupported source encoding")

// LinearToSRGB applies the piecewise sRGB transfer function to one
// linear-light sample.
func LinearToSRGB(v float32) float32 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*float32(math.Pow(float64(v), 1.0/2.4)) - 0.055
}

// SRGBToLinear inverts the sRGB transfer function for one encoded sample.
func SRGBToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return float32(math.Pow(float64(v+0.055)/1.055, 2.4))
}

// ToSRGB returns im in the sRGB reference encoding.
//
// If im is already sRGB it is returned unchanged (no copy). Otherwise a new
// image is allocated and converted; im is never mutated. Grayscale images
// convert a single plane and replicate it across all three channels.
func ToSRGB(im *pix.Image3) (*pix.Image3, error) {
	if im.IsSRGB() {
		return im, nil
	}
	return convert(im, pix.EncodingSRGB, LinearToSRGB)
}

// ToLinear returns im in linear-light encoding, converting from sRGB when
// necessary. Inputs already linear are returned unchanged.
func ToLinear(im *pix.Image3) (*pix.Image3, error) {
	if im.Encoding == pix.EncodingLinear {
		return im, nil
	}
	return convert(im, pix.EncodingLinear, SRGBToLinear)
}

func convert(im *pix.Image3, target pix.Encoding, transfer func(float32) float32) (*pix.Image3, error) {
	switch im.Encoding {
	case pix.EncodingLinear, pix.EncodingSRGB:
	default:
		return nil, ErrUnsupportedEncoding
	}

	out := pix.NewImage3(im.Width(), im.Height())
	out.Encoding = target
	out.Gray = im.Gray

	if im.Gray {
		// All source planes carry identical data: convert one, replicate.
		convertPlane(out.Planes[0], im.Planes[0], transfer)
		for c := 1; c < 3; c++ {
			for y := 0; y < out.Height(); y++ {
				copy(out.Planes[c].Row(y), out.Planes[0].Row(y))
			}
		}
		return out, nil
	}

	for c := 0; c < 3; c++ {
		convertPlane(out.Planes[c], im.Planes[c], transfer)
	}
	return out, nil
}

func convertPlane(dst, src *pix.Plane, transfer func(float32) float32) {
	for y := 0; y < src.Height(); y++ {
		in := src.Row(y)
		out := dst.Row(y)
		for x := range in {
			out[x] = transfer(in[x])
		}
	}
}
