package recommend

import (
	"testing"

	"github.com/hallyulab/dramarec/internal/domain/query/mode"
	"github.com/hallyulab/dramarec/internal/domain/query/request"
	"github.com/hallyulab/dramarec/internal/domain/query/result"
	"github.com/hallyulab/dramarec/internal/domain/record"
	"github.com/hallyulab/dramarec/internal/text"
)

// testCatalog builds a small snapshot with known term overlap: Move to
// Heaven and My Mister share grief/healing/drama vocabulary while Squid
// Game shares none of it, so similarity outcomes are fully predictable.
func testCatalog() []record.Record {
	return []record.Record{
		record.Reconstruct(0, "Move to Heaven",
			"A trauma cleaner uncovers grief and healing in abandoned rooms.",
			"Tang Jun-sang", "Drama, Family", 2021, true, 9.1, true),
		record.Reconstruct(1, "My Mister",
			"Weary office workers share grief and slow healing.",
			"Park Ho-san", "Drama", 2018, true, 9.0, true),
		record.Reconstruct(2, "Squid Game",
			"Indebted players gamble their lives on deadly childhood contests.",
			"Jung Ho-yeon", "Thriller, Survival", 2021, true, 8.0, true),
	}
}

func newTestService() *Service {
	return New(testCatalog(), text.NewNormalizer())
}

func makeRequest(t *testing.T, query string, m mode.Mode, topK int) *request.Request {
	t.Helper()
	r, err := request.New(query, m, topK)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &r
}

// titlesOf flattens a hit list to titles for order assertions.
func titlesOf(hits []result.Result) []string {
	titles := make([]string, len(hits))
	for i := range hits {
		rec := hits[i].Record()
		titles[i] = rec.Title()
	}
	return titles
}
