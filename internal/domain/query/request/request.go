package request

import (
	"fmt"
	"strings"

	"github.com/hallyulab/dramarec/internal/domain"
	"github.com/hallyulab/dramarec/internal/domain/query/mode"
)

// MaxQueryLength is the maximum allowed query length.
const MaxQueryLength = 4096

// Request is a validated recommendation query.
type Request struct {
	query     string
	queryMode mode.Mode
	topK      int
}

// New validates and normalizes query parameters. The query is trimmed
// before any check; mode "" means auto routing. TopK is never defaulted
// here: callers resolve an absent value to their configured default before
// constructing the request, so a non-positive value is always caller error.
func New(query string, m mode.Mode, topK int) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, domain.ErrEmptyQuery
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w (max %d chars)", domain.ErrQueryTooLong, MaxQueryLength)
	}
	if m == "" {
		m = mode.Auto
	}
	if !m.IsValid() {
		return Request{}, fmt.Errorf("%w: %q", domain.ErrInvalidMode, m)
	}
	if topK <= 0 {
		return Request{}, fmt.Errorf("%w, got %d", domain.ErrInvalidTopK, topK)
	}

	return Request{query: query, queryMode: m, topK: topK}, nil
}

// Query returns the trimmed query text.
func (r *Request) Query() string { return r.query }

// Mode returns the requested strategy (mode.Auto when the caller left routing
// to the engine).
func (r *Request) Mode() mode.Mode { return r.queryMode }

// TopK returns the number of results to return.
func (r *Request) TopK() int { return r.topK }
