package record

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hupe1980/quickspot/textnorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustObject(t *testing.T, s string) *Object {
	t.Helper()
	var o Object
	require.NoError(t, json.Unmarshal([]byte(s), &o))
	return &o
}

func TestPreprocessor_AllFields(t *testing.T) {
	r := New(mustObject(t, `{"name":"Apple Pie","price":3.5,"meta":{"origin":"UK","tags":["Sweet","Baked"]},"none":null,"fresh":true}`))

	Preprocessor{}.Process(r)

	assert.True(t, r.Indexed())
	assert.Equal(t, "apple pie 35 uk sweet baked true", r.SearchValues())
	assert.Equal(t, "apple pie", r.KeyValue())
}

func TestPreprocessor_SearchFields(t *testing.T) {
	r := New(mustObject(t, `{"name":"Apple","desc":"Crunchy","author":{"name":"Ann"},"other":"ignored"}`))

	Preprocessor{SearchFields: []string{"desc", "author.name", "missing", "author"}}.Process(r)

	assert.Equal(t, "crunchy ann", r.SearchValues())
	assert.Equal(t, "apple", r.KeyValue())
}

func TestPreprocessor_KeyField(t *testing.T) {
	r := New(mustObject(t, `{"title":{"en":"Hello World"},"name":"ignored"}`))

	Preprocessor{KeyField: "title.en"}.Process(r)
	assert.Equal(t, "hello world", r.KeyValue())
}

func TestPreprocessor_MissingKeyField(t *testing.T) {
	r := New(mustObject(t, `{"label":"Apple"}`))
	Preprocessor{}.Process(r)
	assert.Equal(t, "", r.KeyValue())
	assert.Equal(t, "apple", r.SearchValues())
}

func TestPreprocessor_Idempotent(t *testing.T) {
	r := FromMap(map[string]any{"name": "Fish & Chips", "kind": "Food"})
	Preprocessor{}.Process(r)
	sv, kv := r.SearchValues(), r.KeyValue()

	// A different configuration must not recompute an indexed record.
	Preprocessor{KeyField: "kind", Normalizer: textnorm.Func(strings.ToUpper)}.Process(r)

	assert.Equal(t, sv, r.SearchValues())
	assert.Equal(t, kv, r.KeyValue())
	assert.Equal(t, "fish and chips", r.KeyValue())
}

func TestPreprocessor_CustomNormalizer(t *testing.T) {
	r := FromMap(map[string]any{"name": "Café"})
	Preprocessor{Normalizer: textnorm.Fold}.Process(r)
	assert.Equal(t, "cafe", r.KeyValue())
}

func TestPreprocessor_ProcessAll(t *testing.T) {
	recs := []*Record{FromMap(map[string]any{"name": "A"}), FromMap(map[string]any{"name": "B"})}
	Preprocessor{}.ProcessAll(recs)
	for _, r := range recs {
		assert.True(t, r.Indexed())
	}
}

func TestPreprocessor_ExtremeNumbers(t *testing.T) {
	r := FromMap(map[string]any{"big": 1e21, "small": 1e-7})

	Preprocessor{}.Process(r)

	assert.Equal(t, "1e21 1e7", r.SearchValues())
}
