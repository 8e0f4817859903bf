package quickspot

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal(line, &m))
		out = append(out, m)
	}
	return out
}

func TestLogger_StoreOperations(t *testing.T) {
	var buf bytes.Buffer
	s := newFruitStore(t, WithLogger(newBufferLogger(&buf)))
	s.Search("Apple").Filter("fruit")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "index built", lines[0]["msg"])
	assert.Equal(t, float64(6), lines[0]["records"])
	assert.Equal(t, "name", lines[0]["key_field"])

	assert.Equal(t, "search completed", lines[1]["msg"])
	assert.Equal(t, "apple", lines[1]["query"])
	assert.Equal(t, float64(4), lines[1]["results"])

	assert.Equal(t, "filter applied", lines[2]["msg"])
	assert.Equal(t, "text", lines[2]["kind"])
	assert.Equal(t, float64(6), lines[2]["before"])
	assert.Equal(t, float64(4), lines[2]["after"])
}

func TestLogger_LogLoad(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogLoad(context.Background(), "mem://a.json", 3, nil)
	l.LogLoad(context.Background(), "mem://b.json", 0, errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "mem://a.json", lines[0]["source"])
	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithQuery("q").WithSource("file.json").WithCount(2)
	l.Info("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "q", lines[0]["query"])
	assert.Equal(t, "file.json", lines[0]["source"])
	assert.Equal(t, float64(2), lines[0]["count"])
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() { l.LogIndex(1, "name") })
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	assert.Equal(t, int64(0), m.GetStats().SearchAvgNanos)

	m.RecordSearch(3, 10)
	m.RecordSearch(1, 30)
	m.RecordLoad(5, 0, nil)
	m.RecordLoad(0, 0, errors.New("x"))

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.SearchCount)
	assert.Equal(t, int64(4), stats.SearchResults)
	assert.Equal(t, int64(20), stats.SearchAvgNanos)
	assert.Equal(t, int64(2), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.Equal(t, int64(5), stats.LoadedRecords)

	var _ MetricsCollector = NoopMetricsCollector{}
}
