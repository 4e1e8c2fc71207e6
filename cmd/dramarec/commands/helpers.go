package commands

import (
	"github.com/hallyulab/dramarec"
	"github.com/hallyulab/dramarec/internal/repository/catalog"
)

// openClient builds a library client from the one-shot command flags.
func openClient(dataPath, stopwordsPath string) (*dramarec.Client, error) {
	var opts []dramarec.Option
	if dataPath != "" {
		opts = append(opts, dramarec.WithCatalogPath(dataPath))
	}
	if stopwordsPath != "" {
		words, err := catalog.LoadStopwords(stopwordsPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dramarec.WithStopwords(words))
	}
	return dramarec.Open(opts...)
}
