package facematch

import (
	"math"
	"testing"
)

func TestVerify_Decisions(t *testing.T) {
	tests := []struct {
		name      string
		reference []float64
		candidate []float64
		threshold float64
		expected  Decision
	}{
		{"identical vectors", []float64{0.1, 0.2, 0.3}, []float64{0.1, 0.2, 0.3}, 0.6, Accept},
		{"within threshold", []float64{0, 0, 0}, []float64{0.3, 0.4, 0}, 0.6, Accept},
		{"exactly at threshold", []float64{0, 0}, []float64{0.6, 0}, 0.6, Accept},
		{"just over threshold", []float64{0, 0}, []float64{0.6000001, 0}, 0.6, Reject},
		{"far apart", []float64{0, 0, 0}, []float64{1, 1, 1}, 0.6, Reject},
		{"shorter candidate", []float64{0.1, 0.2, 0.3}, []float64{0.1, 0.2}, 0.6, DimensionMismatch},
		{"longer candidate", []float64{0.1, 0.2}, []float64{0.1, 0.2, 0.3}, 0.6, DimensionMismatch},
		{"empty vs non-empty", []float64{}, []float64{0.1}, 0.6, DimensionMismatch},
		{"zero threshold identical", []float64{0.5}, []float64{0.5}, 0, Accept},
		{"zero threshold different", []float64{0.5}, []float64{0.6}, 0, Reject},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Verify(tc.reference, tc.candidate, tc.threshold)
			if got != tc.expected {
				t.Errorf("Verify() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestDistance_KnownValues(t *testing.T) {
	// 3-4-5 triangle
	a := []float64{0, 0}
	b := []float64{3, 4}
	if d := Distance(a, b); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := []float64{0.12, -0.44, 0.91, 0.03}
	b := []float64{-0.08, 0.27, 0.65, -0.19}

	if Distance(a, b) != Distance(b, a) {
		t.Errorf("Distance is not symmetric: %v vs %v", Distance(a, b), Distance(b, a))
	}
}

func TestDistance_ZeroForEqual(t *testing.T) {
	a := []float64{0.1, 0.2, 0.3}
	if d := Distance(a, a); d != 0 {
		t.Errorf("Distance(a, a) = %v, want 0", d)
	}
}

func TestVerify_BoundaryEpsilon(t *testing.T) {
	ref := []float64{0}
	tau := 0.6

	if got := Verify(ref, []float64{tau}, tau); got != Accept {
		t.Errorf("distance == threshold must accept, got %v", got)
	}

	over := math.Nextafter(tau, 1)
	if got := Verify(ref, []float64{over}, tau); got != Reject {
		t.Errorf("distance just over threshold must reject, got %v", got)
	}
}
