package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t if got and want differ by more than eps (absolute).
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("got non-finite value %v, want %v", got, want)
	}
	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireNearRel fails t if got and want differ by more than eps relative to
// max(|got|, |want|). Exact zero matches exact zero.
func RequireNearRel(t *testing.T, got, want, eps float64) {
	t.Helper()
	if got == want {
		return
	}
	scale := math.Max(math.Abs(got), math.Abs(want))
	if diff := math.Abs(got - want); diff > eps*scale {
		t.Fatalf("got %v, want %v (rel diff %v > eps %v)", got, want, diff/scale, eps)
	}
}

// RequireNoError fails t if err is non-nil.
func RequireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
