package mode

// Mode is the recommendation strategy.
type Mode string

// Query mode constants.
const (
	// Auto routes by query shape: exact title, then integer year, then free text.
	Auto  Mode = "auto"
	Title Mode = "title"
	Year  Mode = "year"
	Genre Mode = "genre"
	Text  Mode = "text"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Auto || m == Title || m == Year || m == Genre || m == Text
}

// Scored reports whether results in this mode carry a similarity score.
// Year and genre listings are ordered by rating, not similarity.
func (m Mode) Scored() bool {
	return m == Title || m == Text
}
