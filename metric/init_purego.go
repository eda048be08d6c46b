//go:build purego

package metric

import (
	_ "github.com/cwbudde/algo-imgmetric/metric/internal/arch/generic"  // register scalar fallback
	_ "github.com/cwbudde/algo-imgmetric/metric/internal/arch/registry" // initialize kernel registry
)
