// Package source loads datasets from URIs.
//
// A URI's scheme selects a blob store:
//
//	people.json                  local file (also file:///abs/people.json)
//	mem://fixtures/people.json   a registered blobstore.MemoryStore
//	https://example.com/a.json   HTTP(S), rate limited
//	s3://bucket/key.json.zst     Amazon S3
//	minio://bucket/key.json      MinIO or another S3-compatible service
//
// Blobs compressed with zstd, gzip or lz4 are detected by their magic bytes
// and decompressed before decoding. The decoded dataset keeps the field order
// of the source document.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/quickspot/blobstore"
	"github.com/hupe1980/quickspot/blobstore/httpstore"
	"github.com/hupe1980/quickspot/codec"
	"github.com/hupe1980/quickspot/record"
)

// ErrUnknownScheme is returned for URIs whose scheme has no registered
// resolver.
var ErrUnknownScheme = errors.New("source: unknown scheme")

// Resolver maps a parsed URI to the store holding it and the blob name within
// that store.
type Resolver func(u *url.URL) (blobstore.BlobStore, string, error)

// DefaultConcurrency bounds the fetches LoadAll runs in parallel.
const DefaultConcurrency = 8

// DefaultMaxDecodedBytes caps the decompressed size of a single dataset.
const DefaultMaxDecodedBytes = 512 << 20

// Loader fetches and decodes datasets. It is safe for concurrent use.
type Loader struct {
	mu          sync.RWMutex
	resolvers   map[string]Resolver
	codec       codec.Codec
	logger      *slog.Logger
	concurrency int
	maxDecoded  int64
}

// Option configures a Loader.
type Option func(*Loader)

// WithCodec sets the codec datasets are decoded with. Default: codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(l *Loader) {
		if c != nil {
			l.codec = c
		}
	}
}

// WithLogger sets the logger for the loader.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithMaxDecodedBytes caps the decompressed size of each dataset. Zero or
// less removes the cap. Default: DefaultMaxDecodedBytes.
func WithMaxDecodedBytes(n int64) Option {
	return func(l *Loader) {
		l.maxDecoded = n
	}
}

// WithConcurrency bounds the parallel fetches of LoadAll.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// WithStore registers store for scheme. Names are the URI host joined with its
// path, without a leading slash.
func WithStore(scheme string, store blobstore.BlobStore) Option {
	return func(l *Loader) {
		l.resolvers[strings.ToLower(scheme)] = HostPath(store)
	}
}

// WithHTTPStore replaces the store used for http and https URIs.
func WithHTTPStore(store *httpstore.Store) Option {
	return func(l *Loader) {
		l.resolvers["http"] = FullURL(store)
		l.resolvers["https"] = FullURL(store)
	}
}

// WithBucketStores registers a resolver for scheme that picks a store per
// bucket, the bucket being the URI host. newStore is called once per bucket.
func WithBucketStores(scheme string, newStore func(bucket string) blobstore.BlobStore) Option {
	return func(l *Loader) {
		l.resolvers[strings.ToLower(scheme)] = Buckets(newStore)
	}
}

// NewLoader creates a Loader. Local files and HTTP(S) work out of the box;
// other schemes need a store registered with an option or Register.
func NewLoader(optFns ...Option) *Loader {
	local := blobstore.NewLocalStore("")
	web := httpstore.New("")

	l := &Loader{
		resolvers: map[string]Resolver{
			"":      LocalPath(local),
			"file":  LocalPath(local),
			"http":  FullURL(web),
			"https": FullURL(web),
		},
		codec:       codec.Default,
		concurrency: DefaultConcurrency,
		maxDecoded:  DefaultMaxDecodedBytes,
	}
	for _, fn := range optFns {
		fn(l)
	}
	return l
}

// Register adds or replaces the resolver for scheme.
func (l *Loader) Register(scheme string, r Resolver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resolvers[strings.ToLower(scheme)] = r
}

// Schemes returns the registered schemes.
func (l *Loader) Schemes() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]string, 0, len(l.resolvers))
	for s := range l.resolvers {
		out = append(out, s)
	}
	return out
}

// Resolve returns the store and blob name for uri.
func (l *Loader) Resolve(uri string) (blobstore.BlobStore, string, error) {
	u, err := parse(uri)
	if err != nil {
		return nil, "", err
	}

	l.mu.RLock()
	r, ok := l.resolvers[u.Scheme]
	l.mu.RUnlock()
	if !ok {
		return nil, "", fmt.Errorf("%w %q in %s", ErrUnknownScheme, u.Scheme, uri)
	}

	return r(u)
}

// Fetch returns the decompressed bytes behind uri.
func (l *Loader) Fetch(ctx context.Context, uri string) ([]byte, error) {
	store, name, err := l.Resolve(uri)
	if err != nil {
		return nil, err
	}

	raw, err := blobstore.Fetch(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", uri, err)
	}

	data, c, err := DecompressLimit(raw, l.maxDecoded)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", uri, err)
	}

	if l.logger != nil {
		l.logger.Debug("fetched dataset", "uri", uri, "bytes", len(raw), "compression", c.String())
	}
	return data, nil
}

// Load fetches and decodes the dataset behind uri.
func (l *Loader) Load(ctx context.Context, uri string) (*record.Dataset, error) {
	start := time.Now()

	data, err := l.Fetch(ctx, uri)
	if err != nil {
		return nil, err
	}

	ds := &record.Dataset{}
	if err := l.codec.Unmarshal(data, ds); err != nil {
		return nil, fmt.Errorf("decode %s: %w", uri, err)
	}

	if l.logger != nil {
		l.logger.Info("loaded dataset", "uri", uri, "records", ds.Len(), "duration", time.Since(start))
	}
	return ds, nil
}

// LoadAll loads every uri concurrently and concatenates the datasets in
// argument order. The first failure cancels the remaining fetches.
func (l *Loader) LoadAll(ctx context.Context, uris ...string) (*record.Dataset, error) {
	parts := make([]*record.Dataset, len(uris))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, uri := range uris {
		g.Go(func() error {
			ds, err := l.Load(ctx, uri)
			if err != nil {
				return err
			}
			parts[i] = ds
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &record.Dataset{}
	for _, ds := range parts {
		out.Append(ds)
	}
	return out, nil
}

func parse(uri string) (*url.URL, error) {
	// Windows drive letters parse as a one-letter scheme.
	if filepath.VolumeName(uri) != "" {
		return &url.URL{Path: uri}, nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("source: invalid uri %q: %w", uri, err)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	return u, nil
}

// LocalPath resolves file URIs and bare paths against store.
func LocalPath(store blobstore.BlobStore) Resolver {
	return func(u *url.URL) (blobstore.BlobStore, string, error) {
		name := u.Path
		if u.Scheme == "" && u.Opaque != "" {
			name = u.Opaque
		}
		if u.Scheme == "file" && u.Host != "" && u.Host != "localhost" {
			name = u.Host + u.Path
		}
		if name == "" {
			return nil, "", fmt.Errorf("source: empty path in %s", u)
		}
		return store, filepath.FromSlash(name), nil
	}
}

// FullURL hands the complete URI to store as the blob name.
func FullURL(store blobstore.BlobStore) Resolver {
	return func(u *url.URL) (blobstore.BlobStore, string, error) {
		return store, u.String(), nil
	}
}

// HostPath names blobs by the URI host joined with its path.
func HostPath(store blobstore.BlobStore) Resolver {
	return func(u *url.URL) (blobstore.BlobStore, string, error) {
		name := strings.TrimPrefix(u.Host+u.Path, "/")
		if name == "" {
			return nil, "", fmt.Errorf("source: empty name in %s", u)
		}
		return store, name, nil
	}
}

// Buckets resolves the URI host as a bucket and its path as the key.
func Buckets(newStore func(bucket string) blobstore.BlobStore) Resolver {
	var mu sync.Mutex
	stores := map[string]blobstore.BlobStore{}

	return func(u *url.URL) (blobstore.BlobStore, string, error) {
		bucket := u.Host
		key := strings.TrimPrefix(u.Path, "/")
		if bucket == "" || key == "" {
			return nil, "", fmt.Errorf("source: %s needs a bucket and a key", u)
		}

		mu.Lock()
		defer mu.Unlock()
		s, ok := stores[bucket]
		if !ok {
			s = newStore(bucket)
			stores[bucket] = s
		}
		return s, key, nil
	}
}
