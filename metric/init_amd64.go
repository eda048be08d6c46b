//go:build amd64 && !purego

package metric

import (
	_ "github.com/cwbudde/algo-imgmetric/metric/internal/arch/amd64/avx2" // register AVX2 kernels
	_ "github.com/cwbudde/algo-imgmetric/metric/internal/arch/amd64/sse2" // register SSE2 kernels
	_ "github.com/cwbudde/algo-imgmetric/metric/internal/arch/generic"    // register scalar fallback
	_ "github.com/cwbudde/algo-imgmetric/metric/internal/arch/registry"   // initialize kernel registry
)
