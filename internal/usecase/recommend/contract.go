package recommend

// Normalizer tokenizes free text into the canonical form shared by index
// build and query time. Catalog features and queries must go through the
// same implementation or vocabulary lookups silently degrade.
type Normalizer interface {
	Normalize(s string) []string
}
