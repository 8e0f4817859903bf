// Package textnorm provides the text normalization strategies applied to both
// indexed record text and incoming queries.
//
// Indexing and querying must use the same Normalizer, otherwise substring
// matching compares text from two different alphabets.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer rewrites text into its searchable form.
type Normalizer interface {
	Normalize(s string) string
}

// Func adapts an ordinary function to the Normalizer interface.
type Func func(s string) string

// Normalize calls f(s).
func (f Func) Normalize(s string) string { return f(s) }

var (
	// Simplify lower-cases the text, spells out "&" as "and", drops everything
	// except a-z, 0-9 and spaces, collapses runs of spaces and trims the result.
	Simplify Normalizer = Func(simplify)

	// Fold strips diacritics before applying Simplify, so "Café" becomes "cafe"
	// instead of "caf".
	Fold Normalizer = Func(fold)

	// Identity returns its input unchanged.
	Identity Normalizer = Func(func(s string) string { return s })
)

// Default is the normalizer used when none is configured.
var Default = Simplify

func simplify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "and")

	var b strings.Builder
	b.Grow(len(s))

	pendingSpace := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteByte(c)
		case c == ' ':
			pendingSpace = true
		}
	}
	return b.String()
}

func fold(s string) string {
	// transform.Chain keeps internal state, build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return simplify(folded)
}

// Chain applies the given normalizers left to right.
func Chain(normalizers ...Normalizer) Normalizer {
	return Func(func(s string) string {
		for _, n := range normalizers {
			s = n.Normalize(s)
		}
		return s
	})
}

// ByName returns a built-in normalizer by its stable name.
func ByName(name string) (Normalizer, bool) {
	switch name {
	case "", "simplify":
		return Simplify, true
	case "fold":
		return Fold, true
	case "identity", "none":
		return Identity, true
	default:
		return nil, false
	}
}
