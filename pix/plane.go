// Package pix provides the float32 pixel-plane containers consumed by the
// metric reductions.
//
// A Plane is a single rectangular, row-major grid of float32 samples with an
// explicit row stride. An Image3 bundles three same-sized planes together with
// a color-encoding descriptor. Both are plain value containers: they own their
// backing storage but carry no behavior beyond row access, and the metric
// package only ever reads them.
package pix

// Plane is a single-channel, row-major float32 sample grid.
//
// Rows are stored contiguously; Row(y) returns a slice aliasing the backing
// storage, so writes through Row are visible in the plane.
type Plane struct {
	width  int
	height int
	stride int
	pix    []float32
}

// NewPlane allocates a zero-filled plane of the given dimensions.
// Negative dimensions are clamped to zero.
func NewPlane(width, height int) *Plane {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Plane{
		width:  width,
		height: height,
		stride: width,
		pix:    make([]float32, width*height),
	}
}

// Width returns the plane width in samples.
func (p *Plane) Width() int { return p.width }

// Height returns the plane height in rows.
func (p *Plane) Height() int { return p.height }

// Stride returns the backing-storage distance between row starts.
func (p *Plane) Stride() int { return p.stride }

// Row returns row y as a slice of length Width aliasing the backing storage.
func (p *Plane) Row(y int) []float32 {
	off := y * p.stride
	return p.pix[off : off+p.width]
}

// At returns the sample at (x, y).
func (p *Plane) At(x, y int) float32 {
	return p.pix[y*p.stride+x]
}

// Set stores v at (x, y).
func (p *Plane) Set(x, y int, v float32) {
	p.pix[y*p.stride+x] = v
}

// Fill sets every sample to v.
func (p *Plane) Fill(v float32) {
	for i := range p.pix {
		p.pix[i] = v
	}
}

// Clone returns a deep copy of the plane.
func (p *Plane) Clone() *Plane {
	out := NewPlane(p.width, p.height)
	for y := 0; y < p.height; y++ {
		copy(out.Row(y), p.Row(y))
	}
	return out
}
