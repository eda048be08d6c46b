package metric

// approxBorderWidth is the edge band excluded from the distortion map in
// approximate-border mode. It is less than half the largest-diameter
// smoothing kernel used upstream and chosen to be vector-aligned.
const approxBorderWidth = 8

// Config holds the border-handling parameters for the p-norm reduction.
type Config struct {
	// ApproximateBorder excludes an 8-pixel band from every edge of the
	// distortion map. The map may have been produced by a smoothing pass
	// whose zero-padded edge behavior leaves artifacts unrepresentative of
	// interior distortion. The band is ignored for maps no larger than
	// twice its width in either dimension.
	ApproximateBorder bool
}

// border returns the effective border width for a map of the given size.
func (c Config) border(width, height int) int {
	if !c.ApproximateBorder {
		return 0
	}
	if width <= 2*approxBorderWidth || height <= 2*approxBorderWidth {
		return 0
	}
	return approxBorderWidth
}
