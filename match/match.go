// Package match implements the substring find engine: order-preserving
// narrowing of a record set by a normalized query, a raw field value, or an
// arbitrary predicate.
//
// Queries are expected to be normalized already. An empty query matches every
// record, because every string contains the empty string; callers decide what
// an empty search means for them.
package match

import (
	"strings"

	"github.com/hupe1980/quickspot/record"
)

// Predicate reports whether a record belongs to a result set.
type Predicate func(r *record.Record) bool

// Contains matches records whose search text contains query.
func Contains(query string) Predicate {
	return func(r *record.Record) bool {
		return strings.Contains(r.SearchValues(), query)
	}
}

// FieldContains matches records whose raw field text contains query.
//
// The field text is not normalized, so the comparison is case-sensitive
// against the original value. Absent or non-scalar fields only match the
// empty query.
func FieldContains(field, query string) Predicate {
	return func(r *record.Record) bool {
		return strings.Contains(r.Text(field), query)
	}
}

// All matches when every predicate matches.
func All(preds ...Predicate) Predicate {
	return func(r *record.Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// FindFunc returns the records of recs for which pred is true, in order.
func FindFunc(pred Predicate, recs []*record.Record) []*record.Record {
	out := make([]*record.Record, 0, len(recs))
	for _, r := range recs {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// Find returns the records whose search text contains query.
func Find(query string, recs []*record.Record) []*record.Record {
	return FindFunc(Contains(query), recs)
}

// FindField returns the records whose raw field text contains query.
func FindField(field, query string, recs []*record.Record) []*record.Record {
	return FindFunc(FieldContains(field, query), recs)
}

// FindTerms splits query on spaces and narrows recs term by term, each term
// filtering the survivors of the previous one. An empty field matches against
// the search text, otherwise against the raw field value.
func FindTerms(query, field string, recs []*record.Record) []*record.Record {
	out := recs
	for _, term := range Terms(query) {
		if field == "" {
			out = Find(term, out)
		} else {
			out = FindField(field, term, out)
		}
	}
	return out
}

// Terms splits a normalized query into its space-separated terms. The empty
// query yields a single empty term.
func Terms(query string) []string {
	return strings.Split(query, " ")
}
