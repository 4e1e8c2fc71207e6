// Package recommend implements the recommendation engine: it indexes the
// catalog snapshot once at construction and serves title, year, genre and
// free-text queries against it.
package recommend

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hallyulab/dramarec/internal/domain"
	"github.com/hallyulab/dramarec/internal/domain/query/mode"
	"github.com/hallyulab/dramarec/internal/domain/query/request"
	"github.com/hallyulab/dramarec/internal/domain/query/result"
	"github.com/hallyulab/dramarec/internal/domain/record"
	"github.com/hallyulab/dramarec/internal/text"
	"github.com/hallyulab/dramarec/internal/tfidf"
)

// defaultFuzzyCutoff is the minimum Ratio an explicit-title query must clear
// to resolve against a near-miss catalog title.
const defaultFuzzyCutoff = 0.6

// Stats summarizes the indexed snapshot.
type Stats struct {
	Records         int
	VocabularyTerms int
	GenreTags       int
	YearMin         int
	YearMax         int
}

// Service answers recommendation queries over an immutable catalog snapshot.
// Everything is derived once in New; all query paths are read-only, so one
// Service is safe for concurrent use.
type Service struct {
	records []record.Record
	norm    Normalizer
	idx     *tfidf.Index

	// titleByKey resolves a lowercased title to its record id; when several
	// records share a title the earliest one wins. titleKeys holds the same
	// keys in catalog order for fuzzy resolution.
	titleByKey map[string]int
	titleKeys  []string

	fuzzyCutoff float64
	stats       Stats
}

// New builds the engine over records: it normalizes every record's feature
// text, fits the TF-IDF index and prepares the title lookup. Record ids
// must equal catalog positions (the loader guarantees this).
func New(records []record.Record, norm Normalizer) *Service {
	docs := make([][]string, len(records))
	titleByKey := make(map[string]int, len(records))
	titleKeys := make([]string, 0, len(records))

	for i := range records {
		rec := &records[i]
		docs[i] = norm.Normalize(rec.FeatureText())

		key := strings.ToLower(rec.Title())
		if _, seen := titleByKey[key]; !seen {
			titleByKey[key] = rec.ID()
			titleKeys = append(titleKeys, key)
		}
	}

	idx := tfidf.BuildIndex(docs)

	return &Service{
		records:     records,
		norm:        norm,
		idx:         idx,
		titleByKey:  titleByKey,
		titleKeys:   titleKeys,
		fuzzyCutoff: defaultFuzzyCutoff,
		stats:       computeStats(records, idx.Vocabulary().Len()),
	}
}

// WithFuzzyCutoff overrides the fuzzy title resolution threshold, in [0,1].
// Values outside that range leave the default in place.
func (s *Service) WithFuzzyCutoff(cutoff float64) *Service {
	if cutoff >= 0 && cutoff <= 1 {
		s.fuzzyCutoff = cutoff
	}
	return s
}

// Recommend routes the query to its mode handler. An empty recommendation
// is a valid answer (the catalog shares nothing with the query), never an
// error; errors mean the query itself could not be served.
func (s *Service) Recommend(ctx context.Context, req *request.Request) (result.Recommendation, error) {
	switch req.Mode() {
	case mode.Auto:
		return s.route(req)
	case mode.Title:
		return s.byTitle(req)
	case mode.Year:
		return s.byYear(req)
	case mode.Genre:
		return s.byGenre(req), nil
	case mode.Text:
		return s.byText(req), nil
	default:
		return result.Recommendation{}, fmt.Errorf("%w: %q", domain.ErrInvalidMode, req.Mode())
	}
}

// Records returns the catalog snapshot in id order. Callers must not
// mutate it.
func (s *Service) Records() []record.Record { return s.records }

// Stats returns snapshot summary counters.
func (s *Service) Stats() Stats { return s.stats }

// RecordCount reports the snapshot size.
func (s *Service) RecordCount() int { return s.stats.Records }

// VocabularyTerms reports how many distinct terms the index holds.
func (s *Service) VocabularyTerms() int { return s.stats.VocabularyTerms }

// route implements auto mode: an exact case-insensitive title wins, then a
// query that parses as an integer lists that year, everything else is
// free text. Fuzzy title resolution never happens here, only in explicit
// title mode, so a typo cannot hijack a free-text query.
func (s *Service) route(req *request.Request) (result.Recommendation, error) {
	if id, ok := s.titleByKey[strings.ToLower(req.Query())]; ok {
		return s.similarTo(id, req.TopK()), nil
	}
	if year, err := strconv.Atoi(req.Query()); err == nil {
		return s.listYear(year, req.TopK()), nil
	}
	return s.byText(req), nil
}

// byTitle serves explicit title mode: exact case-insensitive match first,
// then the closest catalog title over the fuzzy cutoff.
func (s *Service) byTitle(req *request.Request) (result.Recommendation, error) {
	key := strings.ToLower(req.Query())
	id, ok := s.titleByKey[key]
	if !ok {
		match, found := text.ClosestMatch(key, s.titleKeys, s.fuzzyCutoff)
		if !found {
			return result.Recommendation{}, fmt.Errorf("%w: %q", domain.ErrTitleNotFound, req.Query())
		}
		id = s.titleByKey[match]
	}
	return s.similarTo(id, req.TopK()), nil
}

// similarTo scores every record against the matched record's own document
// vector and ranks the rest. Reusing the stored vector is identical to
// re-transforming the record's feature text, minus the repeated work.
func (s *Service) similarTo(id, topK int) result.Recommendation {
	scores := s.idx.Scores(s.idx.Vector(id))
	hits := rankScored(scores, s.records, id, topK)
	return result.NewRecommendation(mode.Title, s.records[id].Title(), hits)
}

// byText normalizes the query with the catalog's own pipeline and scores
// it against every document. A query with no vocabulary overlap yields an
// empty recommendation.
func (s *Service) byText(req *request.Request) result.Recommendation {
	qv := s.idx.QueryVector(s.norm.Normalize(req.Query()))
	hits := rankScored(s.idx.Scores(qv), s.records, -1, req.TopK())
	return result.NewRecommendation(mode.Text, "", hits)
}

// byYear serves explicit year mode; unlike auto routing, a query that is
// not an integer is rejected instead of falling through to text.
func (s *Service) byYear(req *request.Request) (result.Recommendation, error) {
	year, err := strconv.Atoi(req.Query())
	if err != nil {
		return result.Recommendation{}, fmt.Errorf("%w: %q", domain.ErrInvalidYear, req.Query())
	}
	return s.listYear(year, req.TopK()), nil
}

func (s *Service) listYear(year, topK int) result.Recommendation {
	var matches []record.Record
	for i := range s.records {
		if y, ok := s.records[i].Year(); ok && y == year {
			matches = append(matches, s.records[i])
		}
	}
	return result.NewRecommendation(mode.Year, "", rankByRating(matches, topK))
}

// byGenre lists records whose genre cell contains the query,
// case-insensitively, ordered by rating.
func (s *Service) byGenre(req *request.Request) result.Recommendation {
	needle := strings.ToLower(req.Query())
	var matches []record.Record
	for i := range s.records {
		if strings.Contains(strings.ToLower(s.records[i].Genre()), needle) {
			matches = append(matches, s.records[i])
		}
	}
	return result.NewRecommendation(mode.Genre, "", rankByRating(matches, req.TopK()))
}

func computeStats(records []record.Record, vocabTerms int) Stats {
	st := Stats{Records: len(records), VocabularyTerms: vocabTerms}

	genres := make(map[string]struct{})
	first := true
	for i := range records {
		rec := &records[i]
		for _, tag := range strings.Split(rec.Genre(), ",") {
			if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
				genres[tag] = struct{}{}
			}
		}
		if year, ok := rec.Year(); ok {
			if first || year < st.YearMin {
				st.YearMin = year
			}
			if first || year > st.YearMax {
				st.YearMax = year
			}
			first = false
		}
	}
	st.GenreTags = len(genres)
	return st
}
