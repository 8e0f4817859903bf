package quickspot

import (
	"github.com/hupe1980/quickspot/codec"
	"github.com/hupe1980/quickspot/rank"
	"github.com/hupe1980/quickspot/record"
	"github.com/hupe1980/quickspot/score"
	"github.com/hupe1980/quickspot/textnorm"
)

type options struct {
	keyField                   string
	searchFields               []string
	normalizer                 textnorm.Normalizer
	disableOccurrenceWeighting bool
	partialMatches             bool
	scorer                     score.Scorer
	defaultSort                rank.Comparator
	disableDefaultSort         bool
	preParse                   func(data any) (any, error)
	codec                      codec.Codec
	logger                     *Logger
	metricsCollector           MetricsCollector
}

func defaultOptions() options {
	return options{
		keyField:         record.DefaultKeyField,
		normalizer:       textnorm.Default,
		partialMatches:   true,
		codec:            codec.Default,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Store.
type Option func(*options)

// WithKeyField sets the field (dot path) whose normalized value becomes each
// record's key value. The key value drives the title bonuses of the default
// scorer and the alphabetical listing order.
//
// Default: "name".
func WithKeyField(field string) Option {
	return func(o *options) {
		if field == "" {
			field = record.DefaultKeyField
		}
		o.keyField = field
	}
}

// WithSearchFields restricts the fields (dot paths) concatenated into each
// record's search text. Without it every scalar value is searchable, including
// values nested in objects and arrays.
func WithSearchFields(fields ...string) Option {
	return func(o *options) {
		o.searchFields = append([]string(nil), fields...)
	}
}

// WithNormalizer sets the normalizer applied to indexed text and queries.
//
// If nil is passed, textnorm.Default is used.
func WithNormalizer(n textnorm.Normalizer) Option {
	return func(o *options) {
		if n == nil {
			n = textnorm.Default
		}
		o.normalizer = n
	}
}

// WithoutOccurrenceWeighting stops the default scorer from rewarding repeated
// occurrences of the query. Useful for data whose values repeat a lot.
func WithoutOccurrenceWeighting() Option {
	return func(o *options) {
		o.disableOccurrenceWeighting = true
	}
}

// WithPartialMatches switches between per-word matching (every word of the
// query must appear somewhere, default) and whole-phrase matching.
func WithPartialMatches(enabled bool) Option {
	return func(o *options) {
		o.partialMatches = enabled
	}
}

// WithScorer replaces the default relevance scorer. Length-difference and
// alphabetical tie-breaking still apply to the scores it returns.
func WithScorer(s score.Scorer) Option {
	return func(o *options) {
		o.scorer = s
	}
}

// WithDefaultSort replaces the alphabetical order used for full listings and
// empty queries.
func WithDefaultSort(cmp rank.Comparator) Option {
	return func(o *options) {
		o.defaultSort = cmp
		o.disableDefaultSort = false
	}
}

// WithoutDefaultSort leaves full listings and empty-query results in store
// order.
func WithoutDefaultSort() Option {
	return func(o *options) {
		o.defaultSort = nil
		o.disableDefaultSort = true
	}
}

// WithPreParse registers a hook that rearranges raw data before it is turned
// into records. Errors it returns are passed through unchanged.
func WithPreParse(fn func(data any) (any, error)) Option {
	return func(o *options) {
		o.preParse = fn
	}
}

// WithCodec configures the codec used to decode raw JSON bytes.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures metrics collection.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metricsCollector = m
	}
}
