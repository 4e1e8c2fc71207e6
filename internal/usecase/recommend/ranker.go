package recommend

import (
	"sort"

	"github.com/hallyulab/dramarec/internal/domain/query/result"
	"github.com/hallyulab/dramarec/internal/domain/record"
)

// rankScored turns the per-record similarity scores into ordered hits:
// score descending, catalog order ascending among equals, truncated to topK.
// Zero scores are dropped, a record sharing no weighted term with the query
// is not a recommendation. exclude removes the query's own record id from
// title-mode results (-1 for none).
func rankScored(scores []float64, records []record.Record, exclude, topK int) []result.Result {
	hits := make([]result.Result, 0, len(scores))
	for id, score := range scores {
		if id == exclude || score <= 0 {
			continue
		}
		hits = append(hits, result.New(records[id], score))
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score() != hits[j].Score() {
			return hits[i].Score() > hits[j].Score()
		}
		ri, rj := hits[i].Record(), hits[j].Record()
		return ri.ID() < rj.ID()
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}

// rankByRating orders year and genre listings: rated records first by rating
// descending, unrated ones after, catalog order among equals. The hits carry
// no similarity score.
func rankByRating(matches []record.Record, topK int) []result.Result {
	sorted := make([]record.Record, len(matches))
	copy(sorted, matches)

	sort.Slice(sorted, func(i, j int) bool {
		ri, iRated := sorted[i].Rating()
		rj, jRated := sorted[j].Rating()
		if iRated != jRated {
			return iRated
		}
		if iRated && ri != rj {
			return ri > rj
		}
		return sorted[i].ID() < sorted[j].ID()
	})

	if len(sorted) > topK {
		sorted = sorted[:topK]
	}

	hits := make([]result.Result, len(sorted))
	for i := range sorted {
		hits[i] = result.NewUnscored(sorted[i])
	}
	return hits
}
