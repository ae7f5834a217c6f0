// Package testutil carries small assertion helpers shared by the package
// tests. The outputs under test are dense float sequences, so everything
// here is tolerance-based rather than byte-exact.
package testutil

import (
	"math"
	"testing"
)

// InDelta fails the test when got is NaN or further than tol from want.
func InDelta(t *testing.T, name string, want, got, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(want-got) > tol {
		t.Fatalf("%s: want %v, got %v (tol %v)", name, want, got, tol)
	}
}

// AllNonNegative fails when any element is negative or NaN.
func AllNonNegative(t *testing.T, name string, xs []float64) {
	t.Helper()
	for i, x := range xs {
		if math.IsNaN(x) || x < 0 {
			t.Fatalf("%s[%d]: expected non-negative finite value, got %v", name, i, x)
		}
	}
}

// NonDecreasing fails when the sequence decreases by more than tol
// anywhere. tol absorbs float noise in sequences that are monotone in
// exact arithmetic.
func NonDecreasing(t *testing.T, name string, xs []float64, tol float64) {
	t.Helper()
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1]-tol {
			t.Fatalf("%s: decreased at index %d: %v -> %v", name, i, xs[i-1], xs[i])
		}
	}
}

// NonIncreasing is the mirror of NonDecreasing.
func NonIncreasing(t *testing.T, name string, xs []float64, tol float64) {
	t.Helper()
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[i-1]+tol {
			t.Fatalf("%s: increased at index %d: %v -> %v", name, i, xs[i-1], xs[i])
		}
	}
}
