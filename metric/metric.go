package metric

import (
	"errors"
	"sync"

	"github.com/cwbudde/algo-imgmetric/internal/cpu"
	"github.com/cwbudde/algo-imgmetric/metric/internal/arch/registry"
)

// Errors returned by the metric reductions.
var (
	ErrInvalidDimensions = errors.New("metric: invalid or mismatched image dimensions")
	ErrInvalidExponent   = errors.New("metric: exponent must be positive and finite")
	ErrEmptyRegion       = errors.New("metric: retained region is empty")
)

var (
	powSumsImpl     registry.PowSumsFn
	powSumsInitOnce sync.Once

	weightedSSDImpl     registry.WeightedSSDFn
	weightedSSDInitOnce sync.Once
)

func initPowSumsKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("metric: no power-sum kernel registered (missing generic fallback?)")
	}
	if entry.PowSums == nil {
		panic("metric: selected kernel missing power-sum operation")
	}
	powSumsImpl = entry.PowSums
}

func initWeightedSSDKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("metric: no weighted-SSD kernel registered (missing generic fallback?)")
	}
	if entry.WeightedSSD == nil {
		panic("metric: selected kernel missing weighted-SSD operation")
	}
	weightedSSDImpl = entry.WeightedSSD
}

// KernelName reports which kernel variant dispatch selects for the current
// CPU. Intended for diagnostics and tests.
func KernelName() string {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		return "none"
	}
	return entry.Name
}
