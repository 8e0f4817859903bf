package quickspot

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSearch is called after each find or search operation.
	// results is the size of the result set, duration the time taken.
	RecordSearch(results int, duration time.Duration)

	// RecordFilter is called after each persistent filter operation.
	// remaining is the size of the filtered set afterwards.
	RecordFilter(remaining int, duration time.Duration)

	// RecordAdd is called after records are appended to a store.
	RecordAdd(count int, duration time.Duration)

	// RecordLoad is called after a dataset load, err is nil if successful.
	RecordLoad(records int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, time.Duration)      {}
func (NoopMetricsCollector) RecordFilter(int, time.Duration)      {}
func (NoopMetricsCollector) RecordAdd(int, time.Duration)         {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchResults    atomic.Int64
	SearchTotalNanos atomic.Int64
	FilterCount      atomic.Int64
	AddCount         atomic.Int64
	AddedRecords     atomic.Int64
	LoadCount        atomic.Int64
	LoadErrors       atomic.Int64
	LoadedRecords    atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(results int, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchResults.Add(int64(results))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(int, time.Duration) {
	b.FilterCount.Add(1)
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(count int, _ time.Duration) {
	b.AddCount.Add(1)
	b.AddedRecords.Add(int64(count))
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(records int, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.LoadedRecords.Add(int64(records))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:    b.SearchCount.Load(),
		SearchResults:  b.SearchResults.Load(),
		SearchAvgNanos: b.getAvgSearchNanos(),
		FilterCount:    b.FilterCount.Load(),
		AddCount:       b.AddCount.Load(),
		AddedRecords:   b.AddedRecords.Load(),
		LoadCount:      b.LoadCount.Load(),
		LoadErrors:     b.LoadErrors.Load(),
		LoadedRecords:  b.LoadedRecords.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount    int64
	SearchResults  int64
	SearchAvgNanos int64
	FilterCount    int64
	AddCount       int64
	AddedRecords   int64
	LoadCount      int64
	LoadErrors     int64
	LoadedRecords  int64
}
