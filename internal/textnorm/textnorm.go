// Package textnorm maps channel names to a canonical script form so that
// simplified and traditional spellings, full-width letters and glyph
// variants compare equal.
package textnorm

import (
	"cmp"
	"maps"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// DefaultSubstitutions maps glyph variants to the form used in Hong Kong
// channel names.
var DefaultSubstitutions = map[string]string{
	"臺": "台",
	"綫": "線",
}

// Normalizer converts text to its canonical form. It is safe for concurrent use.
type Normalizer struct {
	replacer *strings.Replacer
}

// New creates a Normalizer applying the given glyph substitutions after
// script conversion. Substitutions with an empty key are ignored.
func New(substitutions map[string]string) *Normalizer {
	pairs := make([]string, 0, len(substitutions)*2)
	for _, from := range sortedKeys(substitutions) {
		if from == "" {
			continue
		}
		pairs = append(pairs, from, substitutions[from])
	}
	return &Normalizer{replacer: strings.NewReplacer(pairs...)}
}

// Normalize returns s in canonical script form: compatibility-composed,
// width-folded, converted to traditional characters, with substitutions
// applied, invisible format characters removed and whitespace collapsed.
func (n *Normalizer) Normalize(s string) string {
	t := transform.Chain(
		norm.NFKC,
		width.Fold,
		runes.Remove(runes.In(unicode.Cf)),
		runes.Map(toTraditional),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = n.replacer.Replace(out)
	return strings.Join(strings.Fields(out), " ")
}

// Fold returns the normalized, case-folded form of s used for keyword matching.
func (n *Normalizer) Fold(s string) string {
	return cases.Fold().String(n.Normalize(s))
}

func toTraditional(r rune) rune {
	if t, ok := simplifiedToTraditional[r]; ok {
		return t
	}
	return r
}

// sortedKeys orders keys longest first so multi-glyph substitutions win
// over their prefixes.
func sortedKeys(m map[string]string) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return keys
}
