package record

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(recs []*Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Text("name")
	}
	return out
}

func TestCollect_Shapes(t *testing.T) {
	a := map[string]any{"name": "a"}
	b := map[string]any{"name": "b"}

	tests := []struct {
		name string
		data any
		want []string
	}{
		{"map slice", []map[string]any{b, a}, []string{"b", "a"}},
		{"any slice", []any{a, ObjectFromMap(b), FromMap(a)}, []string{"a", "b", "a"}},
		{"object slice", []*Object{ObjectFromMap(a)}, []string{"a"}},
		{"records", []*Record{FromMap(b)}, []string{"b"}},
		{"single record", FromMap(a), []string{"a"}},
		{"keyed map", map[string]any{"y": b, "x": a}, []string{"a", "b"}},
		{"keyed typed map", map[string]map[string]any{"2": b, "1": a}, []string{"a", "b"}},
		{"keyed object", NewObject().Set("k2", b).Set("k1", a), []string{"b", "a"}},
		{"dataset", &Dataset{Items: []*Object{ObjectFromMap(a)}}, []string{"a"}},
		{"empty", []any{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := Collect(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(recs))
		})
	}
}

func TestCollect_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		position string
	}{
		{"string", "nope", ""},
		{"nil", nil, ""},
		{"int slice", []int{1}, ""},
		{"scalar element", []any{map[string]any{}, 3}, "[1]"},
		{"scalar value", map[string]any{"k": "v"}, `["k"]`},
		{"nil record", []*Record{FromMap(map[string]any{"name": "a"}), nil}, "[1]"},
		{"nil object", []*Object{nil}, "[0]"},
		{"nil record pointer", (*Record)(nil), ""},
		{"nil record element", []any{(*Record)(nil)}, "[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Collect(tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupported))

			var te *TypeError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tt.position, te.Position)
		})
	}
}

func TestDataset_Unmarshal(t *testing.T) {
	var arr Dataset
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"a"},{"name":"b"}]`), &arr))
	assert.Equal(t, 2, arr.Len())

	var keyed Dataset
	require.NoError(t, json.Unmarshal([]byte(`{"z":{"name":"first"},"a":{"name":"second"}}`), &keyed))
	recs, err := Collect(&keyed)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, names(recs))

	var bad Dataset
	err = json.Unmarshal([]byte(`[{"name":"a"}, 5]`), &bad)
	var te *TypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "[1]", te.Position)

	err = json.Unmarshal([]byte(`"text"`), &bad)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestDataset_Append(t *testing.T) {
	d := &Dataset{Items: []*Object{NewObject()}}
	d.Append(&Dataset{Items: []*Object{NewObject(), NewObject()}})
	d.Append(nil)
	assert.Equal(t, 3, d.Len())
}
