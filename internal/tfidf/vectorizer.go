// Package tfidf builds sparse TF-IDF vectors over a fixed catalog corpus
// and scores cosine similarity between them. Documents and queries share
// one vocabulary and one weighting, so similarity stays symmetric.
package tfidf

// Vectorizer converts token lists into L2-normalized TF-IDF vectors using
// the vocabulary and document frequencies learned by Fit. It is immutable
// after Fit and safe for concurrent Transform calls.
type Vectorizer struct {
	vocab *Vocabulary
}

// Fit learns the vocabulary and per-term document frequencies from the
// tokenized corpus. Column indices follow first-seen order, which makes
// rebuilds over the same corpus reproducible.
func Fit(docs [][]string) *Vectorizer {
	vocab := newVocabulary()
	vocab.docs = len(docs)

	for _, tokens := range docs {
		seen := make(map[string]bool, len(tokens))
		for _, term := range tokens {
			vocab.add(term)
			if !seen[term] {
				vocab.df[term]++
				seen[term] = true
			}
		}
	}
	return &Vectorizer{vocab: vocab}
}

// Vocabulary returns the learned term set.
func (vz *Vectorizer) Vocabulary() *Vocabulary { return vz.vocab }

// Transform maps tokens to a unit-norm TF-IDF vector: raw term counts
// weighted by the smoothed IDF, then L2-normalized. Tokens outside the
// vocabulary are dropped (the vocabulary is closed); a token list with no
// known terms yields a zero vector, which is a valid degenerate result.
func (vz *Vectorizer) Transform(tokens []string) Vector {
	tf := make(map[string]int, len(tokens))
	for _, term := range tokens {
		if vz.vocab.Has(term) {
			tf[term]++
		}
	}

	vec := make(Vector, len(tf))
	for term, count := range tf {
		// A term present in every document has IDF 0; keeping it out of the
		// map preserves the invariant that stored weights are non-zero.
		if w := float64(count) * vz.vocab.IDF(term); w > 0 {
			vec[term] = w
		}
	}
	vec.normalize()
	return vec
}
