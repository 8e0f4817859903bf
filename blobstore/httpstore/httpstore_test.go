package httpstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quickspot/blobstore"
)

const fruit = `[{"name":"Apple"}]`

func newServer(t *testing.T, hits *atomic.Int32, tokens *atomic.Value) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/data/fruit.json", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		tokens.Store(r.Header.Get("X-Token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fruit))
	})
	mux.HandleFunc("/data/broken.json", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestStore_Open(t *testing.T) {
	var hits atomic.Int32
	var token atomic.Value
	srv := newServer(t, &hits, &token)

	store := New(srv.URL+"/data/", func(o *Options) {
		o.Header = http.Header{"X-Token": []string{"secret"}}
	})
	ctx := context.Background()

	got, err := blobstore.Fetch(ctx, store, "fruit.json")
	require.NoError(t, err)
	assert.Equal(t, fruit, string(got))
	assert.Equal(t, "secret", token.Load())

	_, err = store.Open(ctx, "missing.json")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	_, err = store.Open(ctx, "broken.json")
	assert.ErrorContains(t, err, "500")
}

func TestStore_AbsoluteURL(t *testing.T) {
	var hits atomic.Int32
	var token atomic.Value
	srv := newServer(t, &hits, &token)

	got, err := blobstore.Fetch(context.Background(), New(""), srv.URL+"/data/fruit.json")
	require.NoError(t, err)
	assert.Equal(t, fruit, string(got))

	_, err = New("").Open(context.Background(), "fruit.json")
	assert.Error(t, err)
}

func TestStore_MaxBytes(t *testing.T) {
	var hits atomic.Int32
	var token atomic.Value
	srv := newServer(t, &hits, &token)

	store := New(srv.URL+"/data", func(o *Options) { o.MaxBytes = 4 })
	_, err := store.Open(context.Background(), "fruit.json")
	assert.ErrorContains(t, err, "exceeds")
}

func TestStore_RateLimit(t *testing.T) {
	var hits atomic.Int32
	var token atomic.Value
	srv := newServer(t, &hits, &token)

	store := New(srv.URL+"/data", func(o *Options) {
		o.RequestsPerSecond = 20
		o.Burst = 1
	})

	start := time.Now()
	for range 3 {
		_, err := blobstore.Fetch(context.Background(), store, "fruit.json")
		require.NoError(t, err)
	}

	// Two waits of 50ms each after the initial token.
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	assert.Equal(t, int32(3), hits.Load())
}

func TestStore_RateLimitCanceled(t *testing.T) {
	store := New("http://127.0.0.1:1", func(o *Options) {
		o.RequestsPerSecond = 0.001
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// The first request consumes the only token and fails to connect.
	_, _ = store.Open(ctx, "a.json")
	_, err := store.Open(ctx, "a.json")
	assert.Error(t, err)
}
