package tfidf

import "math"

// Vocabulary is the closed term set learned at index build. Every term maps
// to a stable column index in first-seen corpus order, with its document
// frequency. Terms never enter the vocabulary after the build; query terms
// outside it are dropped, not added.
type Vocabulary struct {
	index map[string]int
	terms []string
	df    map[string]int
	docs  int
}

func newVocabulary() *Vocabulary {
	return &Vocabulary{
		index: make(map[string]int),
		df:    make(map[string]int),
	}
}

// add registers a term on first sighting and returns its column index.
func (v *Vocabulary) add(term string) int {
	if i, ok := v.index[term]; ok {
		return i
	}
	i := len(v.terms)
	v.index[term] = i
	v.terms = append(v.terms, term)
	return i
}

// Index returns the term's column index and whether the term is known.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// Has reports whether the term was seen at build time.
func (v *Vocabulary) Has(term string) bool {
	_, ok := v.index[term]
	return ok
}

// Len returns the number of distinct terms.
func (v *Vocabulary) Len() int { return len(v.terms) }

// Docs returns the number of documents the vocabulary was built from.
func (v *Vocabulary) Docs() int { return v.docs }

// DF returns how many documents contain the term.
func (v *Vocabulary) DF(term string) int { return v.df[term] }

// IDF returns the smoothed inverse document frequency
// log((1 + N) / (1 + df)). The smoothing keeps the weight finite for any
// df and non-negative for terms present in every document.
func (v *Vocabulary) IDF(term string) float64 {
	return math.Log(float64(1+v.docs) / float64(1+v.df[term]))
}
