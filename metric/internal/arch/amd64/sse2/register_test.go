//go:build amd64 && !purego

package sse2

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-imgmetric/metric/internal/arch/generic"
)

func testRows(n int) (a, b []float32) {
	a = make([]float32, n)
	b = make([]float32, n)
	for i := range a {
		a[i] = float32((i*13)%7)/4 + 0.125
		b[i] = float32((i*5)%11) / 8
	}
	return a, b
}

func TestPowSumsParityWithGeneric(t *testing.T) {
	// Sizes straddle the 2-lane unroll boundary to exercise the tail.
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 63, 64, 65, 100}
	for _, n := range sizes {
		t.Run(fmt.Sprintf("n%d", n), func(t *testing.T) {
			row, _ := testRows(n)

			s3, s6, s12 := powSums(row)
			r3, r6, r12 := generic.PowSums(row)

			for _, pair := range [][2]float64{{s3, r3}, {s6, r6}, {s12, r12}} {
				got, want := pair[0], pair[1]
				if want == 0 {
					if got != 0 {
						t.Fatalf("got %v, want exactly 0", got)
					}
					continue
				}
				if rel := math.Abs(got-want) / math.Abs(want); rel > 1e-12 {
					t.Fatalf("got %v, want %v (rel %v)", got, want, rel)
				}
			}
		})
	}
}

func TestWeightedSSDParityWithGeneric(t *testing.T) {
	sizes := []int{0, 1, 3, 4, 5, 8, 9, 31, 32, 33, 100}
	for _, n := range sizes {
		t.Run(fmt.Sprintf("n%d", n), func(t *testing.T) {
			a, b := testRows(n)

			got := weightedSSD(a, b, 0.75)
			want := generic.WeightedSSD(a, b, 0.75)

			if want == 0 {
				if got != 0 {
					t.Fatalf("got %v, want exactly 0", got)
				}
				return
			}
			if rel := math.Abs(got-want) / math.Abs(want); rel > 1e-12 {
				t.Fatalf("got %v, want %v (rel %v)", got, want, rel)
			}
		})
	}
}
