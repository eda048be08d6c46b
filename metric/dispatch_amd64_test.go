//go:build amd64 && !purego

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

func TestKernelDispatch_AMD64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name: "generic-forced",
			features: cpu.Features{
				ForceGeneric: true,
				Architecture: "amd64",
			},
			wantImpl: "generic",
		},
		{
			name: "sse2",
			features: cpu.Features{
				HasSSE2:      true,
				HasAVX2:      false,
				Architecture: "amd64",
			},
			wantImpl: "sse2",
		},
		{
			name: "avx2",
			features: cpu.Features{
				HasSSE2:      true,
				HasAVX2:      true,
				Architecture: "amd64",
			},
			wantImpl: "avx2",
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
			if got := KernelName(); got != tt.wantImpl {
				t.Fatalf("KernelName() = %q, want %q", got, tt.wantImpl)
			}

			// Every variant must agree with the known uniform-map result.
			distmap := testutil.UniformPlane(17, 13, 2.0)
			got, err := NormMetric(distmap, Config{}, 3.0)
			testutil.RequireNoError(t, err)
			testutil.RequireNear(t, got, 2.0, 1e-5)
		})
	}
}
