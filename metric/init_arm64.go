//go:build arm64 && !purego

package metric

import (
	_ "github.com/cwbudde/algo-imgmetric/metric/internal/arch/arm64/neon" // register NEON kernels
	_ "github.com/cwbudde/algo-imgmetric/metric/internal/arch/generic"    // register scalar fallback
	_ "github.com/cwbudde/algo-imgmetric/metric/internal/arch/registry"   // initialize kernel registry
)
