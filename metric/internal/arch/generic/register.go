// Package generic provides the portable scalar kernels used when no SIMD
// variant matches the executing CPU.
package generic

import (
	"github.com/cwbudde/algo-imgmetric/internal/cpu"
	"github.com/cwbudde/algo-imgmetric/metric/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:        "generic",
		SIMDLevel:   cpu.SIMDNone,
		Priority:    0,
		PowSums:     PowSums,
		WeightedSSD: WeightedSSD,
	})
}

// PowSums accumulates sum(d^3), sum(d^6), sum(d^12) over row, promoting each
// sample to float64 before multiplying.
func PowSums(row []float32) (s3, s6, s12 float64) {
	for _, v := range row {
		d := float64(v)
		p := d * d * d
		s3 += p
		p *= p
		s6 += p
		p *= p
		s12 += p
	}
	return s3, s6, s12
}

// WeightedSSD accumulates weight * (a[i]-b[i])^2 over the row pair.
func WeightedSSD(a, b []float32, weight float64) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d * weight
	}
	return sum
}
