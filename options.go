package dramarec

import (
	"io"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	catalogPath   string
	catalogReader io.Reader

	topK        int
	fuzzyCutoff float64
	stopwords   []string

	logger *zap.Logger
}

// WithCatalogPath loads the catalog from a CSV file on disk.
// Without a catalog option the client indexes the bundled sample catalog.
func WithCatalogPath(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogPath = path
	})
}

// WithCatalogReader loads the catalog from an in-memory CSV stream.
// Takes precedence over WithCatalogPath.
func WithCatalogReader(r io.Reader) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogReader = r
	})
}

// WithTopK sets the default number of results per query. Default: 10.
// Non-positive values keep the default.
func WithTopK(n int) Option {
	return optionFunc(func(c *clientConfig) {
		if n > 0 {
			c.topK = n
		}
	})
}

// WithFuzzyCutoff sets the minimum similarity ratio for near-miss title
// resolution in title mode. Default: 0.6. Values outside [0, 1] keep
// the default.
func WithFuzzyCutoff(cutoff float64) Option {
	return optionFunc(func(c *clientConfig) {
		c.fuzzyCutoff = cutoff
	})
}

// WithStopwords replaces the built-in English stopword list.
// An empty non-nil list disables stopword filtering entirely.
func WithStopwords(words []string) Option {
	return optionFunc(func(c *clientConfig) {
		if words == nil {
			words = []string{}
		}
		c.stopwords = words
	})
}

// WithLogger enables structured logging of catalog loads and served
// queries. Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
