// Package keyword builds Aho-Corasick automata over normalized keyword lists.
package keyword

import (
	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Folder maps text to the form keywords are compared in.
type Folder interface {
	Fold(s string) string
}

// Set matches folded text against an ordered keyword list in one pass.
// It is not safe for concurrent use.
type Set struct {
	folder   Folder
	matcher  *ahocorasick.Matcher
	keywords []string
	// positions maps an automaton index back to the keyword's index in the
	// list the Set was built from.
	positions []int
}

// NewSet builds a Set. Blank keywords are skipped and repeated keywords keep
// their first position.
func NewSet(keywords []string, folder Folder) *Set {
	s := &Set{folder: folder}
	seen := make(map[string]bool, len(keywords))

	for i, kw := range keywords {
		folded := folder.Fold(kw)
		if folded == "" || seen[folded] {
			continue
		}
		seen[folded] = true
		s.keywords = append(s.keywords, folded)
		s.positions = append(s.positions, i)
	}

	if len(s.keywords) > 0 {
		s.matcher = ahocorasick.NewStringMatcher(s.keywords)
	}
	return s
}

// Len returns the number of distinct keywords in the Set.
func (s *Set) Len() int {
	return len(s.keywords)
}

// First returns the lowest list position among keywords contained in text,
// and the folded keyword found there. ok is false when nothing matches.
func (s *Set) First(text string) (position int, kw string, ok bool) {
	if s.matcher == nil {
		return 0, "", false
	}

	hits := s.matcher.Match([]byte(s.folder.Fold(text)))
	best := -1
	for _, hit := range hits {
		if hit < 0 || hit >= len(s.keywords) {
			continue
		}
		if best < 0 || s.positions[hit] < s.positions[best] {
			best = hit
		}
	}
	if best < 0 {
		return 0, "", false
	}
	return s.positions[best], s.keywords[best], true
}

// Contains reports whether text contains any keyword of the Set.
func (s *Set) Contains(text string) bool {
	_, _, ok := s.First(text)
	return ok
}
