package quickspot

import (
	"github.com/hupe1980/quickspot/rank"
	"github.com/hupe1980/quickspot/record"
)

// EmptyQuery selects what a Lookup returns for blank input.
type EmptyQuery int

const (
	// EmptyShowsNothing returns no results for blank input.
	EmptyShowsNothing EmptyQuery = iota
	// EmptyShowsAll lists every filtered record for blank input.
	EmptyShowsAll
)

func (e EmptyQuery) String() string {
	switch e {
	case EmptyShowsNothing:
		return "nothing"
	case EmptyShowsAll:
		return "all"
	default:
		return "unknown"
	}
}

// Lookup drives a Store from keystroke-style input. It skips searches for
// blank input, reuses the previous results while neither the input nor the
// store changed, and caps how many results are handed back.
//
// Like Store, a Lookup is not safe for concurrent use.
type Lookup struct {
	store      *Store
	empty      EmptyQuery
	maxResults int
	noSearch   func()

	last        string
	lastVersion uint64
	hasLast     bool
	results     []*record.Record
}

// LookupOption configures a Lookup.
type LookupOption func(*Lookup)

// WithEmptyQuery sets the behavior for blank input.
//
// Default: EmptyShowsNothing.
func WithEmptyQuery(mode EmptyQuery) LookupOption {
	return func(l *Lookup) {
		l.empty = mode
	}
}

// WithMaxResults caps the number of results returned. Zero means unlimited.
func WithMaxResults(n int) LookupOption {
	return func(l *Lookup) {
		if n < 0 {
			n = 0
		}
		l.maxResults = n
	}
}

// WithNoSearchHandler registers fn to run whenever blank input is queried.
func WithNoSearchHandler(fn func()) LookupOption {
	return func(l *Lookup) {
		l.noSearch = fn
	}
}

// NewLookup returns a Lookup over store.
func NewLookup(store *Store, optFns ...LookupOption) *Lookup {
	l := &Lookup{store: store}
	for _, fn := range optFns {
		fn(l)
	}
	return l
}

// Store returns the underlying store.
func (l *Lookup) Store() *Store { return l.store }

// Query returns the results for text.
func (l *Lookup) Query(text string) []*record.Record {
	if text == "" {
		if l.noSearch != nil {
			l.noSearch()
		}
		l.Reset()
		if l.empty == EmptyShowsAll {
			return l.limit(l.store.All(false).Get())
		}
		return []*record.Record{}
	}

	if l.hasLast && l.last == text && l.lastVersion == l.store.Version() {
		return l.limit(l.results)
	}

	l.results = l.store.Search(text).Get()
	l.last = text
	l.lastVersion = l.store.Version()
	l.hasLast = true

	return l.limit(l.results)
}

// ShowAll lists every filtered record, or every record when unfiltered is
// true, ordered by spec. The next Query always searches again.
func (l *Lookup) ShowAll(unfiltered bool, spec rank.Spec) []*record.Record {
	l.Reset()
	return l.limit(l.store.AllBy(unfiltered, spec).Get())
}

// Reset forgets the previous query so the next one is searched again.
func (l *Lookup) Reset() {
	l.last = ""
	l.hasLast = false
	l.results = nil
}

func (l *Lookup) limit(recs []*record.Record) []*record.Record {
	if l.maxResults > 0 && len(recs) > l.maxResults {
		recs = recs[:l.maxResults]
	}
	out := make([]*record.Record, len(recs))
	copy(out, recs)
	return out
}
