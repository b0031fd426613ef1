// Package classifier decides which parsed candidates belong in the playlist
// using inclusion and exclusion keyword rules over normalized names.
package classifier

import (
	"github.com/alorle/iptv-curator/internal/channel"
	"github.com/alorle/iptv-curator/internal/keyword"
)

// Normalizer converts names to canonical script form and to the folded form
// used for matching.
type Normalizer interface {
	Normalize(s string) string
	Fold(s string) string
}

// Outcome is the classification result for a single candidate.
type Outcome int

const (
	// Rejected means no inclusion keyword matched.
	Rejected Outcome = iota
	// Excluded means an exclusion keyword matched; inclusion was not consulted.
	Excluded
	// Kept means an inclusion keyword matched and no exclusion keyword did.
	Kept
)

func (o Outcome) String() string {
	switch o {
	case Kept:
		return "kept"
	case Excluded:
		return "excluded"
	default:
		return "no_match"
	}
}

// Decision carries the outcome and the folded keyword responsible for it.
type Decision struct {
	Outcome Outcome
	Keyword string
}

// Kept reports whether the candidate survives classification.
func (d Decision) Kept() bool {
	return d.Outcome == Kept
}

// Classifier applies the keyword rules. It is not safe for concurrent use.
type Classifier struct {
	normalizer Normalizer
	include    *keyword.Set
	exclude    *keyword.Set
}

// New creates a Classifier. Keywords are normalized with the same
// Normalizer as candidate names before comparison.
func New(include, exclude []string, normalizer Normalizer) *Classifier {
	return &Classifier{
		normalizer: normalizer,
		include:    keyword.NewSet(include, normalizer),
		exclude:    keyword.NewSet(exclude, normalizer),
	}
}

// Classify normalizes the candidate's name in place, then checks exclusion
// before inclusion. Exclusion always wins.
func (c *Classifier) Classify(ch *channel.Channel) Decision {
	if normalized := c.normalizer.Normalize(ch.Name()); normalized != "" {
		// Rename only fails on blank names or static channels; both keep the old name.
		_ = ch.Rename(normalized)
	}

	if _, kw, ok := c.exclude.First(ch.Name()); ok {
		return Decision{Outcome: Excluded, Keyword: kw}
	}

	if _, kw, ok := c.include.First(ch.Name()); ok {
		return Decision{Outcome: Kept, Keyword: kw}
	}

	return Decision{Outcome: Rejected}
}
