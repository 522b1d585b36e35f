// Package testutil provides shared helpers for synth package tests.
package testutil

import (
	"math"
	"testing"
)

// ReferenceSine is the straightforward sampler definition used to cross-check
// generated curves: amplitude * sin(2*pi*freqHz*i/sampleRate).
func ReferenceSine(freqHz, amplitude float64, samples int, sampleRate float64) []float64 {
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// ReferenceCombine is the straightforward combiner definition: the pointwise
// sum of all curves scaled by gain.
func ReferenceCombine(curves [][]float64, gain float64) []float64 {
	if len(curves) == 0 {
		return []float64{}
	}
	out := make([]float64, len(curves[0]))
	for _, c := range curves {
		for i, v := range c {
			out[i] += v
		}
	}
	for i := range out {
		out[i] *= gain
	}
	return out
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if any
// element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireSameBacking fails t unless a and b are views of the same backing
// array, i.e. the slice was shared rather than resampled.
func RequireSameBacking(t *testing.T, a, b []float64) {
	t.Helper()
	if len(a) == 0 || len(b) == 0 {
		t.Fatalf("cannot compare backing of empty slices")
	}
	if &a[0] != &b[0] {
		t.Fatalf("slices do not share a backing array")
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices of
// equal length.
func MaxAbsDiff(t *testing.T, a, b []float64) float64 {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
