package tfidf

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestVector_DotSymmetric(t *testing.T) {
	a := Vector{"drama": 0.6, "revenge": 0.8}
	b := Vector{"drama": 0.3, "romance": 0.9}

	if ab, ba := a.Dot(b), b.Dot(a); !almostEqual(ab, ba) {
		t.Errorf("Dot not symmetric: %v vs %v", ab, ba)
	}
}

func TestVector_DotDisjointTermsIsZero(t *testing.T) {
	a := Vector{"drama": 1}
	b := Vector{"romance": 1}

	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot() = %v, want 0 for disjoint terms", got)
	}
}

func TestVector_DotWithZeroVector(t *testing.T) {
	a := Vector{"drama": 0.5}
	var zero Vector

	if got := a.Dot(zero); got != 0 {
		t.Errorf("Dot(zero) = %v, want 0", got)
	}
	if got := zero.Dot(a); got != 0 {
		t.Errorf("zero.Dot() = %v, want 0", got)
	}
}

func TestVector_Norm(t *testing.T) {
	v := Vector{"a": 3, "b": 4}
	if got := v.Norm(); !almostEqual(got, 5) {
		t.Errorf("Norm() = %v, want 5", got)
	}
}

func TestVector_NormalizeYieldsUnitNorm(t *testing.T) {
	v := Vector{"drama": 2, "life": 7, "family": 1}
	v.normalize()

	if got := v.Norm(); !almostEqual(got, 1) {
		t.Errorf("norm after normalize = %v, want 1", got)
	}
}

func TestVector_NormalizeZeroVectorStaysZero(t *testing.T) {
	v := Vector{}
	v.normalize()

	if !v.IsZero() {
		t.Errorf("zero vector changed by normalize: %v", v)
	}
}

func TestVector_IsZero(t *testing.T) {
	if (Vector{"drama": 0.1}).IsZero() {
		t.Error("IsZero() = true for non-empty vector")
	}
	if !(Vector{}).IsZero() {
		t.Error("IsZero() = false for empty vector")
	}
	var nilVec Vector
	if !nilVec.IsZero() {
		t.Error("IsZero() = false for nil vector")
	}
}
