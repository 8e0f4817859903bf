// Package rank orders result sets: by relevance to a query, alphabetically by
// key value, or by a caller-supplied comparator.
//
// All sorts are stable and operate in place on the slice they are given.
package rank

import (
	"cmp"
	"slices"
	"strings"

	"github.com/hupe1980/quickspot/record"
	"github.com/hupe1980/quickspot/score"
)

// Comparator orders two records the way cmp.Compare orders two values.
type Comparator func(a, b *record.Record) int

// Spec selects how a result set is ordered.
type Spec struct {
	// Query ranks by relevance to this text. It is normalized by the caller.
	Query string
	// Compare, when set, is applied verbatim and overrides Query.
	Compare Comparator
	// Skip leaves the order untouched.
	Skip bool
}

// ByQuery ranks by relevance to q. An empty q requests the default listing order.
func ByQuery(q string) Spec { return Spec{Query: q} }

// ByFunc orders with cmp.
func ByFunc(cmp Comparator) Spec { return Spec{Compare: cmp} }

// None leaves results in their current order.
var None = Spec{Skip: true}

// Scored is a record together with the keys it was ranked by.
type Scored struct {
	Record     *record.Record
	Score      int
	LengthDiff int
}

// Score computes the ranking keys of every record. A nil scorer uses
// score.Default.
func Score(recs []*record.Record, query string, s score.Scorer) []Scored {
	if s == nil {
		s = score.Default{}
	}
	out := make([]Scored, len(recs))
	for i, r := range recs {
		out[i] = Scored{
			Record:     r,
			Score:      s.Score(r, query),
			LengthDiff: score.LengthDiff(r, query),
		}
	}
	return out
}

// CompareScored orders by score descending, then length difference ascending,
// then search text ascending.
func CompareScored(a, b Scored) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(a.LengthDiff, b.LengthDiff); c != 0 {
		return c
	}
	return strings.Compare(a.Record.SearchValues(), b.Record.SearchValues())
}

// SortScored sorts scored records with CompareScored.
func SortScored(s []Scored) {
	slices.SortStableFunc(s, CompareScored)
}

// ByMatch sorts recs by relevance to query.
func ByMatch(recs []*record.Record, query string, s score.Scorer) {
	scored := Score(recs, query, s)
	SortScored(scored)
	for i := range scored {
		recs[i] = scored[i].Record
	}
}

// CompareKeys orders records by key value.
func CompareKeys(a, b *record.Record) int {
	return strings.Compare(a.KeyValue(), b.KeyValue())
}

// Alphabetical sorts recs by key value.
func Alphabetical(recs []*record.Record) {
	slices.SortStableFunc(recs, CompareKeys)
}

// Sort sorts recs with cmp.
func Sort(recs []*record.Record, cmp Comparator) {
	slices.SortStableFunc(recs, cmp)
}
