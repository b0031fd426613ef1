package keyword

import (
	"strings"
	"testing"
)

type lowerFolder struct{}

func (lowerFolder) Fold(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func TestSet_First(t *testing.T) {
	s := NewSet([]string{"Jade", "Pearl", "", "J2", "jade", "News"}, lowerFolder{})

	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (blank and repeated keywords skipped)", s.Len())
	}

	tests := []struct {
		name    string
		text    string
		wantPos int
		wantKw  string
		wantOK  bool
	}{
		{"single match", "TVB Pearl HD", 1, "pearl", true},
		{"case-insensitive", "JADE", 0, "jade", true},
		{"lowest position wins regardless of text order", "News on Jade", 0, "jade", true},
		{"position refers to original list", "J2 channel", 3, "j2", true},
		{"later keyword only", "World News", 5, "news", true},
		{"no match", "ViuTV", 0, "", false},
		{"empty text", "", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, kw, ok := s.First(tt.text)
			if ok != tt.wantOK || pos != tt.wantPos || kw != tt.wantKw {
				t.Errorf("First(%q) = (%d, %q, %v), want (%d, %q, %v)",
					tt.text, pos, kw, ok, tt.wantPos, tt.wantKw, tt.wantOK)
			}
		})
	}
}

func TestSet_Empty(t *testing.T) {
	s := NewSet(nil, lowerFolder{})
	if s.Contains("anything") {
		t.Error("empty set should match nothing")
	}

	s = NewSet([]string{" ", ""}, lowerFolder{})
	if s.Contains("anything") {
		t.Error("set of blank keywords should match nothing")
	}
}

func TestSet_OverlappingKeywords(t *testing.T) {
	s := NewSet([]string{"now news", "news", "now"}, lowerFolder{})

	pos, kw, ok := s.First("now news 332")
	if !ok || pos != 0 || kw != "now news" {
		t.Errorf("First() = (%d, %q, %v), want (0, %q, true)", pos, kw, ok, "now news")
	}

	pos, _, ok = s.First("breaking news")
	if !ok || pos != 1 {
		t.Errorf("First() = (%d, %v), want (1, true)", pos, ok)
	}
}
