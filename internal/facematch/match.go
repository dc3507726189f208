// Package facematch decides whether a live face embedding matches an
// enrolled reference. It is a pure comparison under a Euclidean distance
// threshold; feature extraction happens on the capture client.
package facematch

import "math"

type Decision int

const (
	Reject Decision = iota
	Accept
	DimensionMismatch
)

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case DimensionMismatch:
		return "dimension_mismatch"
	default:
		return "unknown"
	}
}

// Verify compares a candidate embedding against the enrolled reference.
// The boundary is inclusive: a distance exactly at the threshold accepts.
// Vectors of different lengths are a structural client error and are
// reported as DimensionMismatch without computing a partial distance.
func Verify(reference, candidate []float64, threshold float64) Decision {
	if len(reference) != len(candidate) {
		return DimensionMismatch
	}
	if Distance(reference, candidate) <= threshold {
		return Accept
	}
	return Reject
}

// Distance is the Euclidean norm of the element-wise difference. Callers
// must pass equal-length vectors; Verify checks that first.
func Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
