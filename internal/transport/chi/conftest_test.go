package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hallyulab/dramarec/internal/domain/record"
	"github.com/hallyulab/dramarec/internal/text"
	healthuc "github.com/hallyulab/dramarec/internal/usecase/health"
	recommenduc "github.com/hallyulab/dramarec/internal/usecase/recommend"
)

// testRecords mirrors the engine test snapshot: two dramas with shared
// grief/healing vocabulary and one unrelated thriller.
func testRecords() []record.Record {
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

// newTestRouter assembles a router around a real engine over records.
func newTestRouter(records []record.Record) http.Handler {
	engine := recommenduc.New(records, text.NewNormalizer())
	srv := NewServer(engine, healthuc.New(engine), 10, zap.NewNop())

	r := chi.NewRouter()
	srv.Routes(r)
	return r
}
