// Package score computes relevance scores for records against a normalized
// query. Higher scores rank first.
package score

import (
	"strings"
	"unicode/utf8"

	"github.com/hupe1980/quickspot/record"
)

// Bonuses awarded by the Default scorer.
const (
	WordStartBonus  = 5
	KeySubstrBonus  = 10
	KeyPrefixBonus  = 25
	ExactMatchBonus = 10
)

// minOccurrenceQueryLen is the query length above which repeated occurrences
// add to the score. Counting one or two letter queries only adds noise.
const minOccurrenceQueryLen = 2

// Scorer computes the relevance of a record for a normalized query.
type Scorer interface {
	Score(r *record.Record, query string) int
}

// Func adapts an ordinary function to the Scorer interface.
type Func func(r *record.Record, query string) int

// Score calls f(r, query).
func (f Func) Score(r *record.Record, query string) int { return f(r, query) }

// Default is the built-in relevance scorer.
//
// The score adds up:
//   - one point per non-overlapping occurrence of the query in the search
//     text, for queries longer than two characters (unless disabled);
//   - WordStartBonus when the query starts a word of the search text;
//   - KeySubstrBonus when the key value contains the query;
//   - KeyPrefixBonus when the key value starts with the query;
//   - ExactMatchBonus when the key value equals the query.
type Default struct {
	DisableOccurrenceWeighting bool
}

// Score implements Scorer.
func (d Default) Score(r *record.Record, query string) int {
	sv, kv := r.SearchValues(), r.KeyValue()
	idx := strings.Index(kv, query)

	score := 0
	if !d.DisableOccurrenceWeighting && utf8.RuneCountInString(query) > minOccurrenceQueryLen {
		score += Occurrences(sv, query)
	}
	if strings.Contains(sv, " "+query) {
		score += WordStartBonus
	}
	if idx != -1 {
		score += KeySubstrBonus
	}
	if idx == 0 {
		score += KeyPrefixBonus
		if len(kv) == len(query) {
			score += ExactMatchBonus
		}
	}
	return score
}

// Occurrences counts the non-overlapping occurrences of needle in haystack,
// scanning left to right. An empty needle is found between every rune and at
// both ends.
func Occurrences(haystack, needle string) int {
	if needle == "" {
		return utf8.RuneCountInString(haystack) + 1
	}
	return strings.Count(haystack, needle)
}

// LengthDiff returns the absolute difference in runes between the record's key
// value and the query. It breaks ties between equal scores: closer lengths
// rank first.
func LengthDiff(r *record.Record, query string) int {
	d := utf8.RuneCountInString(r.KeyValue()) - utf8.RuneCountInString(query)
	if d < 0 {
		return -d
	}
	return d
}
