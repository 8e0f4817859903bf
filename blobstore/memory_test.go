package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	src := []byte(`{"a":{"name":"Apple"}}`)
	require.NoError(t, store.Put(ctx, "fruit.json", src))
	require.NoError(t, store.Put(ctx, "veg.json", []byte("[]")))

	// Put copies its input.
	src[0] = 'X'

	got, err := Fetch(ctx, store, "fruit.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"name":"Apple"}}`, string(got))

	blob, err := store.Open(ctx, "fruit.json")
	require.NoError(t, err)
	buf := make([]byte, 100)
	n, err := blob.ReadAt(ctx, buf, 0)
	assert.Equal(t, int(blob.Size()), n)
	assert.Equal(t, io.EOF, err)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"fruit.json", "veg.json"}, names)

	require.NoError(t, store.Delete(ctx, "fruit.json"))
	_, err = store.Open(ctx, "fruit.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

type chunkBlob struct {
	data []byte
}

func (b *chunkBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *chunkBlob) Close() error { return nil }
func (b *chunkBlob) Size() int64  { return int64(len(b.data)) }

func TestReadAll_PlainBlob(t *testing.T) {
	got, err := ReadAll(context.Background(), &chunkBlob{data: []byte("hello")})
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}
