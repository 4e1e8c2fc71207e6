package mode

import "testing"

func TestIsValid(t *testing.T) {
	valid := []Mode{Auto, Title, Year, Genre, Text}
	for _, m := range valid {
		if !m.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", m)
		}
	}

	invalid := []Mode{"", "fuzzy", "rating", "TITLE"}
	for _, m := range invalid {
		if m.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", m)
		}
	}
}

func TestScored(t *testing.T) {
	scored := []Mode{Title, Text}
	for _, m := range scored {
		if !m.Scored() {
			t.Errorf("%q.Scored() = false, want true", m)
		}
	}

	unscored := []Mode{Year, Genre, Auto}
	for _, m := range unscored {
		if m.Scored() {
			t.Errorf("%q.Scored() = true, want false", m)
		}
	}
}
