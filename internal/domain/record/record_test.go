package record

import (
	"strings"
	"testing"
)

func TestNew_Valid(t *testing.T) {
	r, err := New(0, "Move to Heaven", "trauma cleaning", "Lee Je-hoon", "Drama")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ID() != 0 {
		t.Errorf("ID() = %d", r.ID())
	}
	if r.Title() != "Move to Heaven" {
		t.Errorf("Title() = %q", r.Title())
	}
	if _, ok := r.Year(); ok {
		t.Error("Year() present on fresh record")
	}
	if _, ok := r.Rating(); ok {
		t.Error("Rating() present on fresh record")
	}
}

func TestNew_EmptyTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		if _, err := New(0, title, "s", "c", "g"); err == nil {
			t.Errorf("expected error for title %q", title)
		}
	}
}

func TestNew_NegativeID(t *testing.T) {
	if _, err := New(-1, "Signal", "", "", ""); err == nil {
		t.Fatal("expected error")
	}
}

func TestNew_EmptyOptionalFields(t *testing.T) {
	r, err := New(3, "Signal", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(r.FeatureText()); got != "" {
		t.Errorf("FeatureText() = %q, want blank", got)
	}
}

func TestWithYear(t *testing.T) {
	r, _ := New(1, "Signal", "", "", "")
	r2 := r.WithYear(2016)

	y, ok := r2.Year()
	if !ok || y != 2016 {
		t.Errorf("Year() = %d, %v", y, ok)
	}
	if _, ok := r.Year(); ok {
		t.Error("WithYear mutated the receiver")
	}
}

func TestWithRating(t *testing.T) {
	r, _ := New(1, "Signal", "", "", "")
	r2 := r.WithRating(9.1)

	v, ok := r2.Rating()
	if !ok || v != 9.1 {
		t.Errorf("Rating() = %f, %v", v, ok)
	}
	if _, ok := r.Rating(); ok {
		t.Error("WithRating mutated the receiver")
	}
}

func TestFeatureText(t *testing.T) {
	r, _ := New(0, "Move to Heaven", "trauma cleaners uncover stories", "Lee Je-hoon", "Drama")
	got := r.FeatureText()

	for _, want := range []string{"trauma cleaners", "Drama", "Lee Je-hoon"} {
		if !strings.Contains(got, want) {
			t.Errorf("FeatureText() = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "Move to Heaven") {
		t.Error("FeatureText() contains the title")
	}
}

func TestReconstruct(t *testing.T) {
	r := Reconstruct(7, "Signal", "s", "c", "g", 2016, true, 9.1, true)

	if r.ID() != 7 {
		t.Errorf("ID() = %d", r.ID())
	}
	if y, ok := r.Year(); !ok || y != 2016 {
		t.Errorf("Year() = %d, %v", y, ok)
	}
	if v, ok := r.Rating(); !ok || v != 9.1 {
		t.Errorf("Rating() = %f, %v", v, ok)
	}
}
