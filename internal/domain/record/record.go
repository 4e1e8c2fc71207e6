package record

import (
	"fmt"
	"strings"
)

// Record is a single catalog entry (immutable value object).
// The id is the record's position in catalog load order; ranking uses it
// as the deterministic tiebreak, so it never changes after load.
type Record struct {
	id        int
	title     string
	synopsis  string
	cast      string
	genre     string
	year      int
	hasYear   bool
	rating    float64
	hasRating bool
}

// New validates and creates a Record.
// Title: non-blank. Synopsis, cast and genre may be empty (they contribute
// no feature text). Year and rating start absent; see WithYear/WithRating.
func New(id int, title, synopsis, cast, genre string) (Record, error) {
	if id < 0 {
		return Record{}, fmt.Errorf("record id must be non-negative, got %d", id)
	}
	if strings.TrimSpace(title) == "" {
		return Record{}, fmt.Errorf("record title is required")
	}

	return Record{
		id:       id,
		title:    title,
		synopsis: synopsis,
		cast:     cast,
		genre:    genre,
	}, nil
}

// Reconstruct creates a Record without validation (test and snapshot hydration).
func Reconstruct(
	id int, title, synopsis, cast, genre string,
	year int, hasYear bool, rating float64, hasRating bool,
) Record {
	return Record{
		id: id, title: title, synopsis: synopsis, cast: cast, genre: genre,
		year: year, hasYear: hasYear, rating: rating, hasRating: hasRating,
	}
}

// ID returns the record's catalog insertion index.
func (r *Record) ID() int { return r.id }

// Title returns the display title.
func (r *Record) Title() string { return r.title }

// Synopsis returns the plot summary text.
func (r *Record) Synopsis() string { return r.synopsis }

// Cast returns the cast listing text.
func (r *Record) Cast() string { return r.cast }

// Genre returns the genre tag text.
func (r *Record) Genre() string { return r.genre }

// Year returns the release year and whether it is present.
func (r *Record) Year() (int, bool) { return r.year, r.hasYear }

// Rating returns the aggregate rating and whether it is present.
func (r *Record) Rating() (float64, bool) { return r.rating, r.hasRating }

// WithYear returns a copy with the release year set.
func (r *Record) WithYear(year int) Record {
	c := *r
	c.year = year
	c.hasYear = true
	return c
}

// WithRating returns a copy with the rating set.
func (r *Record) WithRating(rating float64) Record {
	c := *r
	c.rating = rating
	c.hasRating = true
	return c
}

// FeatureText returns the text blob that feeds similarity: synopsis, genre
// and cast joined by spaces. Title and numeric fields stay out of it.
func (r *Record) FeatureText() string {
	return r.synopsis + " " + r.genre + " " + r.cast
}
