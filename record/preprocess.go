package record

import (
	"strings"

	"github.com/hupe1980/quickspot/textnorm"
)

// DefaultKeyField is the key field used when none is configured.
const DefaultKeyField = "name"

// Preprocessor computes the derived search values of records.
type Preprocessor struct {
	// KeyField is the dot path normalized into KeyValue. Defaults to "name".
	KeyField string
	// SearchFields restricts which dot paths feed SearchValues. Empty means
	// every scalar value, including values nested in objects and arrays.
	SearchFields []string
	// Normalizer is applied to the collected text. Defaults to textnorm.Default.
	Normalizer textnorm.Normalizer
}

// Process indexes r in place and returns it. Indexed records are returned
// unchanged.
func (p Preprocessor) Process(r *Record) *Record {
	if r.indexed {
		return r
	}

	n := p.Normalizer
	if n == nil {
		n = textnorm.Default
	}
	keyField := p.KeyField
	if keyField == "" {
		keyField = DefaultKeyField
	}

	var b strings.Builder
	if len(p.SearchFields) > 0 {
		for _, f := range p.SearchFields {
			b.WriteByte(' ')
			b.WriteString(r.Text(f))
		}
	} else {
		for _, v := range r.fields.All() {
			appendValue(&b, v)
		}
	}

	r.searchValues = n.Normalize(b.String())
	r.keyValue = n.Normalize(r.Text(keyField))
	r.indexed = true
	return r
}

// ProcessAll indexes every record of recs.
func (p Preprocessor) ProcessAll(recs []*Record) []*Record {
	for i, r := range recs {
		recs[i] = p.Process(r)
	}
	return recs
}

func appendValue(b *strings.Builder, v any) {
	switch t := v.(type) {
	case *Object:
		for _, child := range t.All() {
			appendValue(b, child)
		}
	case []any:
		for _, e := range t {
			appendValue(b, e)
		}
	default:
		if s, ok := Text(v); ok {
			b.WriteByte(' ')
			b.WriteString(s)
		}
	}
}
