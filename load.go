package quickspot

import (
	"context"
	"strings"
	"time"

	"github.com/hupe1980/quickspot/record"
	"github.com/hupe1980/quickspot/source"
)

// Loader fetches datasets by URI. *source.Loader implements it.
type Loader interface {
	LoadAll(ctx context.Context, uris ...string) (*record.Dataset, error)
}

// Open loads the datasets behind uris, concatenated in order, and indexes them.
//
// A nil loader uses source.NewLoader with the codec configured by opts.
func Open(ctx context.Context, loader Loader, uris []string, optFns ...Option) (*Store, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	if len(uris) == 0 {
		return nil, ErrNoSource
	}
	if loader == nil {
		loader = source.NewLoader(source.WithCodec(o.codec), source.WithLogger(o.logger.Logger))
	}

	start := time.Now()
	ds, err := loader.LoadAll(ctx, uris...)
	o.metricsCollector.RecordLoad(ds.Len(), time.Since(start), err)
	o.logger.LogLoad(ctx, strings.Join(uris, ","), ds.Len(), err)
	if err != nil {
		return nil, err
	}

	return New(ds, optFns...)
}
