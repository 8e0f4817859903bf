// Package quickspot provides an in-memory typeahead search index for small to
// medium JSON datasets.
//
// A Store holds records (JSON objects kept in their original field order)
// together with a normalized search text and key value per record. Queries
// narrow the persistently filtered working set by substring and rank the
// survivors by relevance.
//
// # Quick Start
//
//	s, _ := quickspot.New([]map[string]any{
//		{"name": "Apple", "category": "fruit"},
//		{"name": "Apple Pie", "category": "dessert"},
//	})
//	for _, r := range s.Search("apple").Get() {
//		fmt.Println(r.Text("name"))
//	}
//
// Datasets can also be loaded from files, HTTP, S3 or MinIO:
//
//	s, _ := quickspot.Open(ctx, nil, []string{"./people.json.zst", "https://example.com/more.json"})
//
// # Queries
//
// Find narrows without reordering, Search finds and ranks, All lists the
// filtered (or every) record in the default listing order. Query methods
// return the store, so calls chain:
//
//	s.Filter("fruit").Search("app").Get()
//
// Filter, FilterField and FilterFunc narrow the working set until
// ClearFilters. Records added with Add or AddData only join the filtered set
// when they pass every active filter.
//
// # Ranking
//
// The default scorer rewards, in increasing weight, repeated occurrences of
// the query, the query starting a word, the key value containing the query,
// the key value starting with it, and an exact key match. Ties go to the key
// value whose length is closest to the query, then to the alphabetically
// smaller search text. Use WithScorer to replace the scorer and rank.ByFunc to
// sort by an arbitrary comparator.
//
// # Typeahead
//
// Lookup wraps a Store for keystroke-driven callers: it decides what blank
// input shows, reuses results while neither the input nor the store changed,
// and caps how many results are returned.
//
// # Observability
//
// WithLogger installs a slog-based Logger and WithMetricsCollector a
// MetricsCollector; both default to no-ops.
package quickspot
