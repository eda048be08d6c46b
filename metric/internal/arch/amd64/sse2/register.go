//go:build amd64 && !purego

// Package sse2 provides kernels selected on baseline amd64 CPUs without AVX2.
package sse2

import (
	"github.com/cwbudde/algo-imgmetric/internal/cpu"
	"github.com/cwbudde/algo-imgmetric/metric/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:        "sse2",
		SIMDLevel:   cpu.SIMDSSE2,
		Priority:    10,
		PowSums:     powSums,
		WeightedSSD: weightedSSD,
	})
}

// powSums is a 2x-unrolled kernel modeling the two float64 lanes of a
// 128-bit vector, with a scalar tail for odd-length rows.
func powSums(row []float32) (s3, s6, s12 float64) {
	var a0, a1, b0, b1, c0, c1 float64

	i := 0
	n := len(row)
	for ; i+1 < n; i += 2 {
		d0 := float64(row[i])
		d1 := float64(row[i+1])

		p0 := d0 * d0 * d0
		p1 := d1 * d1 * d1
		a0 += p0
		a1 += p1

		q0 := p0 * p0
		q1 := p1 * p1
		b0 += q0
		b1 += q1

		c0 += q0 * q0
		c1 += q1 * q1
	}

	if i < n {
		d := float64(row[i])
		p := d * d * d
		a0 += p
		p *= p
		b0 += p
		c0 += p * p
	}

	return a0 + a1, b0 + b1, c0 + c1
}

func weightedSSD(a, b []float32, weight float64) float64 {
	var s0, s1 float64

	i := 0
	n := len(a)
	for ; i+1 < n; i += 2 {
		d0 := float64(a[i]) - float64(b[i])
		d1 := float64(a[i+1]) - float64(b[i+1])
		s0 += d0 * d0
		s1 += d1 * d1
	}

	if i < n {
		d := float64(a[i]) - float64(b[i])
		s0 += d * d
	}

	return weight * (s0 + s1)
}
