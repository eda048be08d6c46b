package metric_test

import (
	"fmt"

	"github.com/cwbudde/algo-imgmetric/metric"
	"github.com/cwbudde/algo-imgmetric/pix"
)

func ExampleNormMetric() {
	distmap := pix.NewPlane(16, 16)
	distmap.Fill(2.0)

	v, err := metric.NormMetric(distmap, metric.Config{}, 3.0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", v)
	// Output: 2.00
}

func ExampleWeightedSSD() {
	a := pix.NewImage3(8, 8)
	a.Encoding = pix.EncodingSRGB
	b := pix.NewImage3(8, 8)
	b.Encoding = pix.EncodingSRGB
	b.Planes[1].Fill(0.5) // luma channel differs by 0.5 everywhere

	v, err := metric.WeightedSSD(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.1f\n", v)
	// Output: 12.0
}
