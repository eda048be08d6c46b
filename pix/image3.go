package pix

// Encoding identifies the color encoding of an Image3's sample values.
type Encoding int

const (
	// EncodingLinear marks samples as linear-light RGB.
	EncodingLinear Encoding = iota

	// EncodingSRGB marks samples as sRGB-encoded, the reference encoding
	// the difference metric compares in.
	EncodingSRGB
)

// String returns a human-readable name for the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingLinear:
		return "linear"
	case EncodingSRGB:
		return "sRGB"
	default:
		return "unknown"
	}
}

// Image3 is an ordered triple of same-sized planes plus a descriptor of how
// the sample values are encoded. For grayscale content all three planes carry
// identical data and Gray is set.
type Image3 struct {
	Planes [3]*Plane

	// Encoding describes the color encoding of the sample values.
	Encoding Encoding

	// Gray marks grayscale content (all three planes identical).
	Gray bool
}

// NewImage3 allocates a three-plane image of the given dimensions with all
// samples zero and linear encoding.
func NewImage3(width, height int) *Image3 {
	return &Image3{
		Planes: [3]*Plane{
			NewPlane(width, height),
			NewPlane(width, height),
			NewPlane(width, height),
		},
	}
}

// Width returns the shared plane width.
func (im *Image3) Width() int { return im.Planes[0].Width() }

// Height returns the shared plane height.
func (im *Image3) Height() int { return im.Planes[0].Height() }

// IsSRGB reports whether the sample values are already sRGB-encoded.
func (im *Image3) IsSRGB() bool { return im.Encoding == EncodingSRGB }

// SameSize reports whether a and b share identical width and height.
func SameSize(a, b *Image3) bool {
	return a.Width() == b.Width() && a.Height() == b.Height()
}
