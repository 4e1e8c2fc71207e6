// Package catalog loads drama records from their CSV source into the
// immutable in-memory snapshot the engine indexes. The loader validates the
// whole source up front: a broken header or row fails the load before any
// record is handed out.
package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hallyulab/dramarec/data"
	"github.com/hallyulab/dramarec/internal/domain"
	"github.com/hallyulab/dramarec/internal/domain/record"
)

// Source header columns, located by name so column order never matters.
const (
	colName     = "Name"
	colSynopsis = "Synopsis"
	colCast     = "Cast"
	colYear     = "Year of release"
	colGenre    = "Genre"
	colRating   = "Rating"
)

var requiredColumns = []string{colName, colSynopsis, colCast, colYear, colGenre, colRating}

// Load reads the catalog CSV at path. Record ids follow row order.
func Load(path string) ([]record.Record, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrCatalogSource, path, err)
	}
	defer func() { _ = f.Close() }()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return records, nil
}

// LoadSample parses the sample catalog bundled with the binary.
func LoadSample() ([]record.Record, error) {
	records, err := Read(bytes.NewReader(data.SampleCatalog))
	if err != nil {
		return nil, fmt.Errorf("read sample catalog: %w", err)
	}
	return records, nil
}

// Read parses catalog rows from r into records. The header must carry every
// required column; absent ones are reported together in a single error.
// Empty Year of release / Rating cells become absent values, while non-empty
// cells that do not parse reject the row with its line number.
func Read(r io.Reader) ([]record.Record, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", domain.ErrCatalogSource)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %w", domain.ErrCatalogSource, err)
	}

	cols, missing := locateColumns(header)
	if len(missing) > 0 {
		return nil, domain.NewMissingColumn(missing)
	}

	var records []record.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, domain.NewMalformedRow(pe.Line, pe.Err.Error())
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrCatalogSource, err)
		}

		line, _ := cr.FieldPos(0)
		rec, err := rowToRecord(len(records), row, cols, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// columnMap holds the field index of each required column in the source.
type columnMap struct {
	name, synopsis, cast, year, genre, rating int
}

func locateColumns(header []string) (columnMap, []string) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return columnMap{}, missing
	}

	return columnMap{
		name:     idx[colName],
		synopsis: idx[colSynopsis],
		cast:     idx[colCast],
		year:     idx[colYear],
		genre:    idx[colGenre],
		rating:   idx[colRating],
	}, nil
}

func rowToRecord(id int, row []string, cols columnMap, line int) (record.Record, error) {
	title := strings.TrimSpace(row[cols.name])
	if title == "" {
		return record.Record{}, domain.NewMalformedRow(line, "Name is empty")
	}

	rec, err := record.New(id, title, row[cols.synopsis], row[cols.cast], row[cols.genre])
	if err != nil {
		return record.Record{}, domain.NewMalformedRow(line, err.Error())
	}

	if raw := strings.TrimSpace(row[cols.year]); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return record.Record{}, domain.NewMalformedRow(line,
				fmt.Sprintf("Year of release %q is not an integer", raw))
		}
		rec = rec.WithYear(year)
	}

	if raw := strings.TrimSpace(row[cols.rating]); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return record.Record{}, domain.NewMalformedRow(line,
				fmt.Sprintf("Rating %q is not a number", raw))
		}
		rec = rec.WithRating(rating)
	}

	return rec, nil
}
