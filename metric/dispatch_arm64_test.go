//go:build arm64 && !purego

package metric

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-imgmetric/internal/cpu"
	"github.com/cwbudde/algo-imgmetric/internal/testutil"
	"github.com/cwbudde/algo-imgmetric/metric/internal/arch/registry"
)

func resetKernelDispatchForTest() {
	powSumsImpl = nil
	powSumsInitOnce = sync.Once{}
	weightedSSDImpl = nil
	weightedSSDInitOnce = sync.Once{}
}

func TestKernelDispatch_ARM64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name: "generic-forced",
			features: cpu.Features{
				ForceGeneric: true,
				Architecture: "arm64",
			},
			wantImpl: "generic",
		},
		{
			name: "neon",
			features: cpu.Features{
				HasNEON:      true,
				Architecture: "arm64",
			},
			wantImpl: "neon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)

			defer cpu.ResetDetection()

			resetKernelDispatchForTest()

			entry := registry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}

			if entry.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, entry.Name)
			}

			distmap := testutil.UniformPlane(17, 13, 2.0)
			got, err := NormMetric(distmap, Config{}, 3.0)
			testutil.RequireNoError(t, err)
			testutil.RequireNear(t, got, 2.0, 1e-5)
		})
	}
}
