package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyQuery signals an empty or whitespace-only query.
	ErrEmptyQuery = errors.New("query is empty")
	// ErrQueryTooLong signals a query over the length limit.
	ErrQueryTooLong = errors.New("query too long")
	// ErrInvalidTopK signals a non-positive result count.
	ErrInvalidTopK = errors.New("top_k must be positive")
	// ErrInvalidMode signals an unknown query mode.
	ErrInvalidMode = errors.New("invalid query mode")
	// ErrInvalidYear signals a year-mode query that is not an integer.
	ErrInvalidYear = errors.New("year must be an integer")
	// ErrTitleNotFound signals that a title query resolved to nothing in the catalog.
	ErrTitleNotFound = errors.New("title not found")

	// ErrCatalogSource signals a missing or unreadable catalog source.
	ErrCatalogSource = errors.New("catalog source unavailable")
	// ErrMissingColumn signals required catalog columns absent from the header.
	ErrMissingColumn = errors.New("missing required column")
	// ErrMalformedRow signals a catalog row that cannot be converted to a record.
	ErrMalformedRow = errors.New("malformed catalog row")
)

// MissingColumnError wraps ErrMissingColumn with every absent column name,
// so a broken header is reported once instead of column by column.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumn.Error(), strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }

// NewMissingColumn creates a missing column error.
func NewMissingColumn(columns []string) error {
	return &MissingColumnError{Columns: columns}
}

// MalformedRowError wraps ErrMalformedRow with the source line number.
type MalformedRowError struct {
	Line   int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", ErrMalformedRow.Error(), e.Line, e.Reason)
}

func (e *MalformedRowError) Unwrap() error { return ErrMalformedRow }

// NewMalformedRow creates a malformed row error.
func NewMalformedRow(line int, reason string) error {
	return &MalformedRowError{Line: line, Reason: reason}
}

// IsInputError reports whether err belongs to the caller-input error class:
// bad query parameters or a broken catalog source, as opposed to an internal
// failure. Transports map this class to client-error responses.
func IsInputError(err error) bool {
	for _, target := range []error{
		ErrEmptyQuery, ErrQueryTooLong, ErrInvalidTopK, ErrInvalidMode,
		ErrInvalidYear, ErrCatalogSource, ErrMissingColumn, ErrMalformedRow,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
