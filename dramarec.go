// Package dramarec recommends K-drama titles from a CSV catalog.
//
// The engine tokenizes each show's synopsis, genre and cast into a TF-IDF
// vector space built once at load time, and answers queries by cosine
// similarity over that closed vocabulary. Queries route by shape: an exact
// title finds shows similar to it, an integer lists that year's releases
// best rated first, and anything else is matched as free text.
//
//	client, _ := dramarec.Open(dramarec.WithCatalogPath("kdramas.csv"))
//	rec, _ := client.Recommend(ctx, "Move to Heaven", nil)
//	for _, hit := range rec.Results {
//	    fmt.Printf("%.3f  %s\n", hit.Score, hit.Title)
//	}
package dramarec

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/hallyulab/dramarec/internal/domain"
	"github.com/hallyulab/dramarec/internal/domain/query/mode"
	"github.com/hallyulab/dramarec/internal/domain/query/request"
	"github.com/hallyulab/dramarec/internal/domain/query/result"
	"github.com/hallyulab/dramarec/internal/domain/record"
	"github.com/hallyulab/dramarec/internal/repository/catalog"
	"github.com/hallyulab/dramarec/internal/text"
	recommenduc "github.com/hallyulab/dramarec/internal/usecase/recommend"
)

const defaultTopK = 10

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrEmptyQuery    = domain.ErrEmptyQuery
	ErrQueryTooLong  = domain.ErrQueryTooLong
	ErrInvalidTopK   = domain.ErrInvalidTopK
	ErrInvalidMode   = domain.ErrInvalidMode
	ErrInvalidYear   = domain.ErrInvalidYear
	ErrTitleNotFound = domain.ErrTitleNotFound
	ErrCatalogSource = domain.ErrCatalogSource
	ErrMissingColumn = domain.ErrMissingColumn
	ErrMalformedRow  = domain.ErrMalformedRow
)

// Mode selects the recommendation strategy.
type Mode string

// Mode constants. Empty or ModeAuto lets the engine route by query shape.
const (
	ModeAuto  Mode = "auto"
	ModeTitle Mode = "title"
	ModeYear  Mode = "year"
	ModeGenre Mode = "genre"
	ModeText  Mode = "text"
)

// QueryOptions configures a single Recommend call.
// A nil *QueryOptions means auto routing with the client's default top-K.
type QueryOptions struct {
	Mode Mode // force a strategy; empty = auto routing
	TopK int  // results to return; non-positive = client default
}

// Result is one recommendation hit.
type Result struct {
	Title  string
	Year   int     // 0 when the catalog has no year for this show
	Genre  string
	Rating float64 // 0 when unrated
	Score  float64 // cosine similarity; meaningful only when Scored
	Scored bool    // false in year and genre listings
}

// Recommendation is the complete answer to one query.
type Recommendation struct {
	Mode         Mode   // the mode that actually served the query
	MatchedTitle string // resolved catalog title; set in title mode only
	Results      []Result
}

// TitleEntry is one catalog row in a title listing.
type TitleEntry struct {
	ID    int
	Title string
	Year  int // 0 when unknown
	Genre string
}

// Stats are catalog and index counters.
type Stats struct {
	Records         int
	VocabularyTerms int
	GenreTags       int
	YearMin         int
	YearMax         int
}

// Client is the embeddable recommendation engine. It is immutable after
// Open and safe for concurrent use.
type Client struct {
	engine *recommenduc.Service
	topK   int
	logger *zap.Logger
}

// Open loads a catalog, builds the TF-IDF index and returns a ready Client.
// Without a catalog option it indexes the bundled sample catalog.
func Open(opts ...Option) (*Client, error) {
	cfg := &clientConfig{topK: defaultTopK, fuzzyCutoff: -1}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	records, err := loadRecords(cfg)
	if err != nil {
		return nil, fmt.Errorf("dramarec: %w", err)
	}

	norm := text.NewNormalizer()
	if cfg.stopwords != nil {
		norm = text.NewNormalizerWith(cfg.stopwords)
	}

	engine := recommenduc.New(records, norm)
	if cfg.fuzzyCutoff >= 0 {
		engine = engine.WithFuzzyCutoff(cfg.fuzzyCutoff)
	}

	stats := engine.Stats()
	cfg.logger.Info("Catalog indexed",
		zap.Int("records", stats.Records),
		zap.Int("vocabulary_terms", stats.VocabularyTerms),
	)

	return &Client{engine: engine, topK: cfg.topK, logger: cfg.logger}, nil
}

func loadRecords(cfg *clientConfig) ([]record.Record, error) {
	switch {
	case cfg.catalogReader != nil:
		return catalog.Read(cfg.catalogReader)
	case cfg.catalogPath != "":
		return catalog.Load(cfg.catalogPath)
	default:
		return catalog.LoadSample()
	}
}

// Recommend answers a query, routing by query shape unless opts force a mode.
func (c *Client) Recommend(ctx context.Context, query string, opts *QueryOptions) (Recommendation, error) {
	if opts == nil {
		opts = &QueryOptions{}
	}
	topK := opts.TopK
	if topK <= 0 {
		topK = c.topK
	}

	req, err := request.New(query, mode.Mode(opts.Mode), topK)
	if err != nil {
		return Recommendation{}, fmt.Errorf("recommend: %w", err)
	}

	rec, err := c.engine.Recommend(ctx, &req)
	if err != nil {
		return Recommendation{}, fmt.Errorf("recommend: %w", err)
	}

	c.logger.Debug("Query served",
		zap.String("mode", string(rec.Mode())),
		zap.Int("results", len(rec.Results())),
	)
	return fromRecommendation(&rec), nil
}

// SimilarToTitle recommends shows similar to a catalog title, resolving
// near-miss spellings. The answer reports the title it actually matched.
func (c *Client) SimilarToTitle(ctx context.Context, title string, topK int) (Recommendation, error) {
	return c.Recommend(ctx, title, &QueryOptions{Mode: ModeTitle, TopK: topK})
}

// ByGenre lists shows whose genre contains the given text
// (case-insensitive), best rated first.
func (c *Client) ByGenre(ctx context.Context, genre string, topK int) ([]Result, error) {
	rec, err := c.Recommend(ctx, genre, &QueryOptions{Mode: ModeGenre, TopK: topK})
	if err != nil {
		return nil, err
	}
	return rec.Results, nil
}

// ByYear lists shows released in the given year, best rated first.
func (c *Client) ByYear(ctx context.Context, year, topK int) ([]Result, error) {
	rec, err := c.Recommend(ctx, strconv.Itoa(year), &QueryOptions{Mode: ModeYear, TopK: topK})
	if err != nil {
		return nil, err
	}
	return rec.Results, nil
}

// Titles lists every catalog entry in load order.
func (c *Client) Titles() []TitleEntry {
	records := c.engine.Records()
	entries := make([]TitleEntry, len(records))
	for i := range records {
		rec := &records[i]
		entries[i] = TitleEntry{ID: rec.ID(), Title: rec.Title(), Genre: rec.Genre()}
		if year, ok := rec.Year(); ok {
			entries[i].Year = year
		}
	}
	return entries
}

// Stats returns catalog and index counters.
func (c *Client) Stats() Stats {
	s := c.engine.Stats()
	return Stats{
		Records:         s.Records,
		VocabularyTerms: s.VocabularyTerms,
		GenreTags:       s.GenreTags,
		YearMin:         s.YearMin,
		YearMax:         s.YearMax,
	}
}

func fromRecommendation(rec *result.Recommendation) Recommendation {
	return Recommendation{
		Mode:         Mode(rec.Mode()),
		MatchedTitle: rec.MatchedTitle(),
		Results:      fromResults(rec.Results()),
	}
}

func fromResults(hits []result.Result) []Result {
	out := make([]Result, len(hits))
	for i := range hits {
		out[i] = fromResult(&hits[i])
	}
	return out
}

func fromResult(hit *result.Result) Result {
	rec := hit.Record()
	r := Result{
		Title:  rec.Title(),
		Genre:  rec.Genre(),
		Score:  hit.Score(),
		Scored: hit.Scored(),
	}
	if year, ok := rec.Year(); ok {
		r.Year = year
	}
	if rating, ok := rec.Rating(); ok {
		r.Rating = rating
	}
	return r
}
