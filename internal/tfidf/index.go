package tfidf

import "sort"

// Index holds one normalized document vector per catalog record, in record
// id order. Built once from the catalog snapshot; scoring is read-only and
// safe for concurrent use. There is no incremental update: a changed
// catalog means a full rebuild, vocabulary included.
type Index struct {
	vectorizer *Vectorizer
	vectors    []Vector
}

// BuildIndex fits a vectorizer on the tokenized catalog and transforms
// every document with it. docs[i] must be the token list of the record
// with id i; empty token lists produce zero vectors that are retained so
// ids keep lining up with catalog positions.
func BuildIndex(docs [][]string) *Index {
	vz := Fit(docs)
	vectors := make([]Vector, len(docs))
	for i, tokens := range docs {
		vectors[i] = vz.Transform(tokens)
	}
	return &Index{vectorizer: vz, vectors: vectors}
}

// Len returns the number of indexed documents.
func (idx *Index) Len() int { return len(idx.vectors) }

// Vocabulary returns the term set the index was built with.
func (idx *Index) Vocabulary() *Vocabulary { return idx.vectorizer.Vocabulary() }

// QueryVector transforms query tokens with the index's own vectorizer, so
// query and document weights come from identical statistics.
func (idx *Index) QueryVector(tokens []string) Vector {
	return idx.vectorizer.Transform(tokens)
}

// Vector returns the document vector for a record id. The caller must not
// mutate it.
func (idx *Index) Vector(id int) Vector { return idx.vectors[id] }

// Scores returns the cosine similarity of the query against every document,
// indexed by record id, unsorted. Both sides are unit vectors, so each
// score is a plain sparse dot product in [0,1]; an all-zero query scores 0
// everywhere. Terms are folded in sorted order: float addition is not
// associative, and map-order sums could differ in the last bit between
// calls, breaking the identical-rankings guarantee for repeated queries.
func (idx *Index) Scores(query Vector) []float64 {
	scores := make([]float64, len(idx.vectors))
	if query.IsZero() {
		return scores
	}

	terms := make([]string, 0, len(query))
	for term := range query {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	for i, doc := range idx.vectors {
		dot := 0.0
		for _, term := range terms {
			dot += query[term] * doc[term]
		}
		scores[i] = dot
	}
	return scores
}
