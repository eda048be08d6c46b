package metric

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-imgmetric/internal/testutil"
)

func BenchmarkNormMetric(b *testing.B) {
	sizes := []int{64, 256, 1024}
	for _, size := range sizes {
		distmap := testutil.NoisePlane(1, size, size, 2)

		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			b.SetBytes(int64(size * size * 4))
			for i := 0; i < b.N; i++ {
				if _, err := NormMetric(distmap, Config{ApproximateBorder: true}, 3.0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNormMetricGeneralPath(b *testing.B) {
	sizes := []int{64, 256}
	for _, size := range sizes {
		distmap := testutil.NoisePlane(1, size, size, 2)

		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			b.SetBytes(int64(size * size * 4))
			for i := 0; i < b.N; i++ {
				if _, err := NormMetric(distmap, Config{}, 2.5); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
