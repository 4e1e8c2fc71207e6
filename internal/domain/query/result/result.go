package result

import (
	"github.com/hallyulab/dramarec/internal/domain/query/mode"
	"github.com/hallyulab/dramarec/internal/domain/record"
)

// Result is a single recommendation hit.
type Result struct {
	rec    record.Record
	score  float64
	scored bool
}

// New creates a similarity-scored hit.
func New(rec record.Record, score float64) Result {
	return Result{rec: rec, score: score, scored: true}
}

// NewUnscored creates a hit for modes ordered by rating rather than
// similarity (year and genre listings carry no score).
func NewUnscored(rec record.Record) Result {
	return Result{rec: rec}
}

// Record returns the matched catalog record.
func (r *Result) Record() record.Record { return r.rec }

// Score returns the cosine similarity. Meaningful only when Scored is true.
func (r *Result) Score() float64 { return r.score }

// Scored reports whether the hit carries a similarity score.
func (r *Result) Scored() bool { return r.scored }

// Recommendation is a complete answer to one query: the mode that served it,
// the catalog title it resolved to (title mode only) and the ranked hits.
type Recommendation struct {
	servedMode   mode.Mode
	matchedTitle string
	results      []Result
}

// NewRecommendation creates a recommendation envelope.
func NewRecommendation(m mode.Mode, matchedTitle string, results []Result) Recommendation {
	return Recommendation{servedMode: m, matchedTitle: matchedTitle, results: results}
}

// Mode returns the mode that actually served the query (never mode.Auto).
func (r *Recommendation) Mode() mode.Mode { return r.servedMode }

// MatchedTitle returns the resolved catalog title; empty outside title mode.
func (r *Recommendation) MatchedTitle() string { return r.matchedTitle }

// Results returns the ranked hits.
func (r *Recommendation) Results() []Result { return r.results }

// IsEmpty reports whether the query matched nothing. Callers surface this
// as "no similar titles found", not as an error.
func (r *Recommendation) IsEmpty() bool { return len(r.results) == 0 }
