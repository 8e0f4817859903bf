package record

import (
	"fmt"
)

// Record is one searchable item.
type Record struct {
	fields       *Object
	searchValues string
	keyValue     string
	indexed      bool
}

// New wraps fields in a Record. A nil Object is treated as empty.
func New(fields *Object) *Record {
	if fields == nil {
		fields = NewObject()
	}
	return &Record{fields: fields}
}

// FromMap wraps a Go map in a Record. See ObjectFromMap for key order.
func FromMap(m map[string]any) *Record {
	return New(ObjectFromMap(m))
}

// Fields returns the raw fields. Derived values are not part of them.
func (r *Record) Fields() *Object { return r.fields }

// Get resolves a dot path against the raw fields.
func (r *Record) Get(path string) (any, bool) {
	return Lookup(r.fields, path)
}

// Text returns the raw text of the field at path, or "" when the path is
// absent or does not hold a scalar.
func (r *Record) Text(path string) string {
	v, ok := r.Get(path)
	if !ok {
		return ""
	}
	s, _ := Text(v)
	return s
}

// SearchValues returns the normalized search text.
func (r *Record) SearchValues() string { return r.searchValues }

// KeyValue returns the normalized key field text.
func (r *Record) KeyValue() string { return r.keyValue }

// Indexed reports whether the derived values have been computed.
func (r *Record) Indexed() bool { return r.indexed }

// MarshalJSON encodes the raw fields.
func (r *Record) MarshalJSON() ([]byte, error) {
	return r.fields.MarshalJSON()
}

func (r *Record) String() string {
	return fmt.Sprintf("Record(%q)", r.keyValue)
}
