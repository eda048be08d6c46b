//go:build arm64 && !purego

// Package neon provides kernels selected on ARM64 CPUs with Advanced SIMD.
package neon

import (
	"github.com/cwbudde/algo-imgmetric/internal/cpu"
	"github.com/cwbudde/algo-imgmetric/metric/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:        "neon",
		SIMDLevel:   cpu.SIMDNEON,
		Priority:    15,
		PowSums:     powSums,
		WeightedSSD: weightedSSD,
	})
}

// powSums is a 4x-unrolled kernel matching a 128-bit float32 load whose four
// lanes are promoted to float64 before multiplying, so the accumulators keep
// double precision even though NEON loads narrow lanes.
func powSums(row []float32) (s3, s6, s12 float64) {
	var a0, a1, a2, a3 float64
	var b0, b1, b2, b3 float64
	var c0, c1, c2, c3 float64

	i := 0
	n := len(row)
	for ; i+3 < n; i += 4 {
		d0 := float64(row[i])
		d1 := float64(row[i+1])
		d2 := float64(row[i+2])
		d3 := float64(row[i+3])

		p0 := d0 * d0 * d0
		p1 := d1 * d1 * d1
		p2 := d2 * d2 * d2
		p3 := d3 * d3 * d3
		a0 += p0
		a1 += p1
		a2 += p2
		a3 += p3

		q0 := p0 * p0
		q1 := p1 * p1
		q2 := p2 * p2
		q3 := p3 * p3
		b0 += q0
		b1 += q1
		b2 += q2
		b3 += q3

		c0 += q0 * q0
		c1 += q1 * q1
		c2 += q2 * q2
		c3 += q3 * q3
	}

	for ; i < n; i++ {
		d := float64(row[i])
		p := d * d * d
		a0 += p
		p *= p
		b0 += p
		c0 += p * p
	}

	return a0 + a1 + a2 + a3, b0 + b1 + b2 + b3, c0 + c1 + c2 + c3
}

func weightedSSD(a, b []float32, weight float64) float64 {
	var s0, s1, s2, s3 float64

	i := 0
	n := len(a)
	for ; i+3 < n; i += 4 {
		d0 := float64(a[i]) - float64(b[i])
		d1 := float64(a[i+1]) - float64(b[i+1])
		d2 := float64(a[i+2]) - float64(b[i+2])
		d3 := float64(a[i+3]) - float64(b[i+3])
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}

	for ; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		s0 += d * d
	}

	return weight * (s0 + s1 + s2 + s3)
}
