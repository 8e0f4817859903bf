// Package httpstore provides a blobstore.BlobStore that fetches datasets over
// HTTP(S).
//
// Each Open issues one GET and buffers the body, so remote datasets are read
// once and decoded from memory. Requests share a token-bucket limiter, which
// keeps polling clients from hammering the origin.
package httpstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/quickspot/blobstore"
)

// DefaultTimeout bounds a single request when no client is supplied.
const DefaultTimeout = 30 * time.Second

// Options configures a Store.
type Options struct {
	// Client performs the requests. Default: an http.Client with DefaultTimeout.
	Client *http.Client
	// RequestsPerSecond limits request throughput. Zero disables limiting.
	RequestsPerSecond float64
	// Burst is the limiter bucket size. Default: 1.
	Burst int
	// Header is added to every request.
	Header http.Header
	// MaxBytes caps the accepted body size. Zero means unlimited.
	MaxBytes int64
}

// Store implements blobstore.BlobStore for HTTP(S) endpoints.
type Store struct {
	base     string
	client   *http.Client
	limiter  *rate.Limiter
	header   http.Header
	maxBytes int64
}

// New creates a Store. Names passed to Open are resolved against base; a name
// that is already an absolute URL is used as is. base may be empty.
func New(base string, optFns ...func(*Options)) *Store {
	opts := Options{Burst: 1}
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Store{
		base:     base,
		client:   opts.Client,
		header:   opts.Header,
		maxBytes: opts.MaxBytes,
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: DefaultTimeout}
	}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return s
}

func (s *Store) resolve(name string) (string, error) {
	if u, err := url.Parse(name); err == nil && u.IsAbs() {
		return name, nil
	}
	if s.base == "" {
		return "", fmt.Errorf("httpstore: relative name %q without base URL", name)
	}
	return strings.TrimSuffix(s.base, "/") + "/" + strings.TrimPrefix(name, "/"), nil
}

// Open fetches the named resource.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	target, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range s.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return nil, fmt.Errorf("GET %s: %w", target, blobstore.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("GET %s: unexpected status %s", target, resp.Status)
	}

	var body io.Reader = resp.Body
	if s.maxBytes > 0 {
		body = io.LimitReader(resp.Body, s.maxBytes+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", target, err)
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("GET %s: body exceeds %d bytes", target, s.maxBytes)
	}

	return &httpBlob{data: data}, nil
}

type httpBlob struct {
	data []byte
}

func (b *httpBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *httpBlob) Bytes() ([]byte, error) { return b.data, nil }

func (b *httpBlob) Close() error { return nil }

func (b *httpBlob) Size() int64 { return int64(len(b.data)) }
