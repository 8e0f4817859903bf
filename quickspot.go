package quickspot

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/hupe1980/quickspot/internal/bitmap"
	"github.com/hupe1980/quickspot/match"
	"github.com/hupe1980/quickspot/rank"
	"github.com/hupe1980/quickspot/record"
	"github.com/hupe1980/quickspot/score"
)

// Store is an in-memory record index.
//
// It owns three views over the same records:
//
//   - all: every indexed record, in insertion order;
//   - filtered: the records surviving the active persistent filters;
//   - results: the output of the latest query, replaced by each query.
//
// Query methods return the store so calls can be chained; Get returns the
// current results. Every accessor hands out a fresh slice, so reordering
// results never disturbs all or filtered.
//
// A Store is not safe for concurrent use. Callers sharing one must serialize
// access.
type Store struct {
	opts   options
	prep   record.Preprocessor
	scorer score.Scorer

	all      []*record.Record
	filtered *bitmap.Set
	filters  []match.Predicate
	view     []*record.Record // materialized filtered view, nil when stale
	results  []*record.Record
	version  uint64
}

// New indexes data and returns a store over it.
//
// data may be a slice of records, objects or maps, a keyed mapping of them
// (keys are discarded), a *record.Dataset, or raw JSON bytes decoded with the
// configured codec. Anything else fails with *ErrUnsupportedData.
func New(data any, optFns ...Option) (*Store, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	s := &Store{
		opts: o,
		prep: record.Preprocessor{
			KeyField:     o.keyField,
			SearchFields: o.searchFields,
			Normalizer:   o.normalizer,
		},
		scorer:  o.scorer,
		results: []*record.Record{},
	}
	if s.scorer == nil {
		s.scorer = score.Default{DisableOccurrenceWeighting: o.disableOccurrenceWeighting}
	}

	recs, err := s.collect(data)
	if err != nil {
		return nil, err
	}

	s.all = s.prep.ProcessAll(recs)
	s.filtered = bitmap.Range(len(s.all))
	s.opts.logger.LogIndex(len(s.all), o.keyField)

	return s, nil
}

func (s *Store) collect(data any) ([]*record.Record, error) {
	if s.opts.preParse != nil {
		var err error
		if data, err = s.opts.preParse(data); err != nil {
			return nil, err
		}
	}

	switch raw := data.(type) {
	case []byte:
		ds, err := s.decode(raw)
		if err != nil {
			return nil, err
		}
		data = ds
	case json.RawMessage:
		ds, err := s.decode(raw)
		if err != nil {
			return nil, err
		}
		data = ds
	}

	recs, err := record.Collect(data)
	if err != nil {
		return nil, translateError(err)
	}
	return recs, nil
}

func (s *Store) decode(raw []byte) (*record.Dataset, error) {
	ds := &record.Dataset{}
	if err := s.opts.codec.Unmarshal(raw, ds); err != nil {
		return nil, translateError(err)
	}
	return ds, nil
}

// Normalize applies the store's normalizer to text.
func (s *Store) Normalize(text string) string {
	return s.opts.normalizer.Normalize(text)
}

// Find sets the results to the filtered records whose search text contains
// query. With partial matching every word of query must appear, otherwise the
// whole phrase must.
//
// An empty query matches every filtered record. Typeahead callers usually
// short-circuit blank input before reaching the store (see Lookup).
func (s *Store) Find(query string) *Store {
	return s.find("find", query, "")
}

// FindField is Find against the raw, non-normalized text of one field. The
// query is normalized, the field value is not, so matching is case-sensitive.
func (s *Store) FindField(field, query string) *Store {
	return s.find("find", query, field)
}

func (s *Store) find(op, query, field string) *Store {
	start := time.Now()
	q := s.Normalize(query)
	candidates := s.filteredView()

	switch {
	case s.opts.partialMatches:
		s.results = match.FindTerms(q, field, candidates)
	case field == "":
		s.results = match.Find(q, candidates)
	default:
		s.results = match.FindField(field, q, candidates)
	}

	s.opts.logger.LogSearch(op, q, len(candidates), len(s.results))
	s.opts.metricsCollector.RecordSearch(len(s.results), time.Since(start))
	return s
}

// SortBy reorders the current results.
//
// A comparator is applied verbatim and rank.None leaves the order alone. A
// query that normalizes to empty text applies the default listing order
// (alphabetical by key value unless overridden or disabled). Any other query
// ranks by relevance.
func (s *Store) SortBy(spec rank.Spec) *Store {
	switch {
	case spec.Compare != nil:
		rank.Sort(s.results, spec.Compare)
	case spec.Skip:
	default:
		q := s.Normalize(spec.Query)
		if q == "" {
			s.sortDefault()
		} else {
			rank.ByMatch(s.results, q, s.scorer)
		}
	}
	return s
}

func (s *Store) sortDefault() {
	switch {
	case s.opts.disableDefaultSort:
	case s.opts.defaultSort != nil:
		rank.Sort(s.results, s.opts.defaultSort)
	default:
		rank.Alphabetical(s.results)
	}
}

// Search finds the records matching query and ranks them by relevance.
func (s *Store) Search(query string) *Store {
	return s.find("search", query, "").SortBy(rank.ByQuery(query))
}

// All sets the results to every filtered record, or every record when
// unfiltered is true, in the default listing order.
func (s *Store) All(unfiltered bool) *Store {
	return s.AllBy(unfiltered, rank.ByQuery(""))
}

// AllBy is All with an explicit ordering.
func (s *Store) AllBy(unfiltered bool, spec rank.Spec) *Store {
	if unfiltered {
		s.results = slices.Clone(s.all)
	} else {
		s.results = slices.Clone(s.filteredView())
	}
	return s.SortBy(spec)
}

// Filter persistently narrows the working set to records whose search text
// contains text as a whole phrase. Later queries only see surviving records
// until ClearFilters is called. The results are set to the narrowed set.
func (s *Store) Filter(text string) *Store {
	return s.applyFilter("text", match.Contains(s.Normalize(text)))
}

// FilterField is Filter against the raw text of one field.
func (s *Store) FilterField(field, text string) *Store {
	return s.applyFilter("field", match.FieldContains(field, s.Normalize(text)))
}

// FilterFunc persistently narrows the working set to records for which pred
// returns true.
func (s *Store) FilterFunc(pred match.Predicate) *Store {
	return s.applyFilter("func", pred)
}

func (s *Store) applyFilter(kind string, pred match.Predicate) *Store {
	start := time.Now()
	before := s.filtered.Cardinality()

	next := bitmap.New()
	for pos := range s.filtered.All() {
		if pred(s.all[pos]) {
			next.Add(pos)
		}
	}
	s.filtered = next
	s.filters = append(s.filters, pred)
	s.changed()
	s.results = slices.Clone(s.filteredView())

	s.opts.logger.LogFilter(kind, before, next.Cardinality())
	s.opts.metricsCollector.RecordFilter(next.Cardinality(), time.Since(start))
	return s
}

// ClearFilters drops every persistent filter. The results are left as they are.
func (s *Store) ClearFilters() *Store {
	s.filters = nil
	s.filtered = bitmap.Range(len(s.all))
	s.changed()
	return s
}

// Add indexes recs and appends them to the store.
//
// Active persistent filters stay in force: an added record joins the filtered
// set only if it passes all of them. The current results are not touched.
func (s *Store) Add(recs ...*record.Record) *Store {
	start := time.Now()
	added := 0
	for _, r := range recs {
		if r == nil {
			continue
		}
		s.prep.Process(r)
		s.all = append(s.all, r)
		if match.All(s.filters...)(r) {
			s.filtered.Add(len(s.all) - 1)
		}
		added++
	}
	s.changed()

	s.opts.logger.LogAdd(added, len(s.all), s.filtered.Cardinality())
	s.opts.metricsCollector.RecordAdd(added, time.Since(start))
	return s
}

// AddData is Add for raw data. A single map or object is added as one record;
// collections are accepted in every shape New accepts.
func (s *Store) AddData(data any) error {
	var recs []*record.Record
	switch t := data.(type) {
	case map[string]any:
		recs = []*record.Record{record.FromMap(t)}
	case *record.Object:
		recs = []*record.Record{record.New(t)}
	default:
		var err error
		if recs, err = s.collect(data); err != nil {
			return err
		}
	}
	s.Add(recs...)
	return nil
}

// Get returns the current results.
func (s *Store) Get() []*record.Record {
	return slices.Clone(s.results)
}

// Records returns every indexed record in insertion order.
func (s *Store) Records() []*record.Record {
	return slices.Clone(s.all)
}

// Filtered returns the records surviving the active persistent filters.
func (s *Store) Filtered() []*record.Record {
	return slices.Clone(s.filteredView())
}

// Len returns the number of indexed records.
func (s *Store) Len() int {
	return len(s.all)
}

// Filters returns the number of active persistent filters.
func (s *Store) Filters() int {
	return len(s.filters)
}

// Version changes whenever records are added or the filtered set changes.
func (s *Store) Version() uint64 {
	return s.version
}

// Explain scores the current results against query without reordering them
// and returns the ranking keys in relevance order.
func (s *Store) Explain(query string) []rank.Scored {
	scored := rank.Score(s.results, s.Normalize(query), s.scorer)
	rank.SortScored(scored)
	return scored
}

func (s *Store) filteredView() []*record.Record {
	if s.view == nil {
		view := make([]*record.Record, 0, s.filtered.Cardinality())
		for pos := range s.filtered.All() {
			view = append(view, s.all[pos])
		}
		s.view = view
	}
	return s.view
}

func (s *Store) changed() {
	s.view = nil
	s.version++
}
