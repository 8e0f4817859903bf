package score

import (
	"testing"

	"github.com/hupe1980/quickspot/record"
	"github.com/stretchr/testify/assert"
)

func rec(fields map[string]any) *record.Record {
	return record.Preprocessor{}.Process(record.FromMap(fields))
}

func TestOccurrences(t *testing.T) {
	tests := []struct {
		haystack, needle string
		want             int
	}{
		{"banana", "an", 2},
		{"aaaa", "aa", 2},
		{"aaa", "aa", 1},
		{"apple", "pear", 0},
		{"abc", "", 4},
		{"", "", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Occurrences(tt.haystack, tt.needle), "%q in %q", tt.needle, tt.haystack)
	}
}

func TestDefault_Bonuses(t *testing.T) {
	d := Default{}

	// key "apple": occurrences 1, substring 10, prefix 25, exact 10. The search
	// text is trimmed, so its first word earns no word-start bonus.
	assert.Equal(t, 46, d.Score(rec(map[string]any{"name": "Apple"}), "apple"))

	// key "apple pie": occurrences 1, substring 10, prefix 25.
	assert.Equal(t, 36, d.Score(rec(map[string]any{"name": "Apple Pie"}), "apple"))

	// key "green apple": occurrences 1, word start 5, substring 10.
	assert.Equal(t, 16, d.Score(rec(map[string]any{"name": "Green Apple"}), "apple"))

	// Mid-word substring in the key: occurrences 1, substring 10.
	assert.Equal(t, 11, d.Score(rec(map[string]any{"name": "Pineapple"}), "apple"))

	// Only in other fields: occurrences 2, word start 5.
	assert.Equal(t, 7, d.Score(rec(map[string]any{"name": "Pie", "a": "apple", "b": "apple"}), "apple"))
}

func TestDefault_ShortQueriesSkipOccurrences(t *testing.T) {
	r := rec(map[string]any{"name": "Banana"})
	// "an": no occurrence weighting, not a word start, substring only.
	assert.Equal(t, 10, Default{}.Score(r, "an"))
	// "ana": one non-overlapping occurrence plus substring.
	assert.Equal(t, 11, Default{}.Score(r, "ana"))
}

func TestDefault_DisableOccurrenceWeighting(t *testing.T) {
	r := rec(map[string]any{"name": "Apple", "alias": "apple apple"})
	assert.Equal(t, 53, Default{}.Score(r, "apple"))
	assert.Equal(t, 50, Default{DisableOccurrenceWeighting: true}.Score(r, "apple"))
}

func TestDefault_ExactBeatsSubstring(t *testing.T) {
	d := Default{}
	for _, q := range []string{"pie", "tart", "crumble"} {
		exact := rec(map[string]any{"name": q})
		inner := rec(map[string]any{"name": "x" + q + "x"})
		assert.Greater(t, d.Score(exact, q), d.Score(inner, q), q)
	}
}

func TestLengthDiff(t *testing.T) {
	r := rec(map[string]any{"name": "Apple Pie"})
	assert.Equal(t, 4, LengthDiff(r, "apple"))
	assert.Equal(t, 4, LengthDiff(r, "apple pie xyz"))
	assert.Equal(t, 0, LengthDiff(r, "apple pie"))
}

func TestFunc(t *testing.T) {
	s := Func(func(r *record.Record, q string) int { return len(r.KeyValue()) })
	assert.Equal(t, 5, s.Score(rec(map[string]any{"name": "Apple"}), "x"))
}
