package tfidf

import (
	"math"
	"sort"
)

// Vector is a sparse TF-IDF vector keyed by vocabulary term. Absent terms
// have implicit weight zero.
type Vector map[string]float64

// Dot returns the inner product over shared non-zero terms. For two
// L2-normalized vectors this is their cosine similarity.
func (v Vector) Dot(other Vector) float64 {
	// Iterate the smaller side; the product is zero everywhere else.
	a, b := v, other
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for term, w := range a {
		dot += w * b[term]
	}
	return dot
}

// Norm returns the Euclidean norm. Terms are folded in sorted order so the
// same weights always produce the same bits, keeping transformed vectors
// comparable with ==.
func (v Vector) Norm() float64 {
	terms := make([]string, 0, len(v))
	for term := range v {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	sum := 0.0
	for _, term := range terms {
		sum += v[term] * v[term]
	}
	return math.Sqrt(sum)
}

// IsZero reports whether the vector has no non-zero terms.
func (v Vector) IsZero() bool { return len(v) == 0 }

// normalize scales v to unit norm in place. A zero vector stays zero; it is
// a valid state for records or queries with no usable tokens.
func (v Vector) normalize() {
	norm := v.Norm()
	if norm == 0 {
		return
	}
	for term, w := range v {
		v[term] = w / norm
	}
}
