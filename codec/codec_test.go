package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quickspot/record"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"", "json", "go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		require.NotNil(t, c)
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)

	c, _ := ByName("")
	assert.Equal(t, "go-json", c.Name())
}

func TestCodecsKeepFieldOrder(t *testing.T) {
	data := []byte(`[{"name":"Zebra","age":3,"tags":["a","b"]},{"name":"Ant"}]`)

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var ds record.Dataset
			require.NoError(t, c.Unmarshal(data, &ds))
			require.Equal(t, 2, ds.Len())
			assert.Equal(t, []string{"name", "age", "tags"}, ds.Items[0].Keys())

			out, err := c.Marshal(&ds)
			require.NoError(t, err)
			assert.JSONEq(t, string(data), string(out))
		})
	}
}

func TestMustMarshal(t *testing.T) {
	assert.Equal(t, `{"a":1}`, string(MustMarshal(nil, map[string]int{"a": 1})))
	assert.Panics(t, func() { MustMarshal(JSON{}, make(chan int)) })
}
