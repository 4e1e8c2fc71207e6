package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadStopwords reads a custom stopword list from path: one word per line.
// Blank lines and #-prefixed comments are skipped. The words replace the
// built-in English list wholesale, they are not merged into it.
func LoadStopwords(path string) ([]string, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read stopwords %s: %w", path, err)
	}

	var words []string
	for _, line := range strings.Split(string(raw), "\n") {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}
	return words, nil
}
