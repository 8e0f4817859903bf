package record

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnsupported is the sentinel wrapped by every TypeError.
var ErrUnsupported = errors.New("record: unsupported data")

// TypeError reports raw data that cannot be turned into a record sequence.
type TypeError struct {
	// Type is the Go type of the offending value.
	Type string
	// Position locates the value: "" for the top level, "[3]" for an array
	// element and "[\"key\"]" for a mapping value.
	Position string
}

func (e *TypeError) Error() string {
	if e.Position == "" {
		return fmt.Sprintf("record: cannot collect records from %s", e.Type)
	}
	return fmt.Sprintf("record: element %s is %s, not an object", e.Position, e.Type)
}

func (e *TypeError) Unwrap() error { return ErrUnsupported }

// Collect turns raw data into a record sequence.
//
// Accepted shapes are slices of *Record, *Object, map[string]any or any (whose
// elements are one of those), a *Dataset, an *Object whose values are objects,
// and string-keyed maps of objects. Keys of keyed mappings are discarded; Go maps
// yield their values in sorted-key order.
func Collect(data any) ([]*Record, error) {
	switch t := data.(type) {
	case []*Record:
		for i, r := range t {
			if r == nil {
				return nil, &TypeError{Type: "nil", Position: fmt.Sprintf("[%d]", i)}
			}
		}
		return slices.Clone(t), nil
	case *Record:
		if t == nil {
			break
		}
		return []*Record{t}, nil
	case []*Object:
		out := make([]*Record, len(t))
		for i, o := range t {
			if o == nil {
				return nil, &TypeError{Type: "nil", Position: fmt.Sprintf("[%d]", i)}
			}
			out[i] = New(o)
		}
		return out, nil
	case *Dataset:
		if t == nil {
			break
		}
		return Collect(t.Items)
	case Dataset:
		return Collect(t.Items)
	case []map[string]any:
		out := make([]*Record, len(t))
		for i, m := range t {
			out[i] = FromMap(m)
		}
		return out, nil
	case []any:
		out := make([]*Record, 0, len(t))
		for i, e := range t {
			r, ok := element(e)
			if !ok {
				return nil, &TypeError{Type: typeName(e), Position: fmt.Sprintf("[%d]", i)}
			}
			out = append(out, r)
		}
		return out, nil
	case *Object:
		if t == nil {
			break
		}
		out := make([]*Record, 0, t.Len())
		for k, v := range t.All() {
			r, ok := element(v)
			if !ok {
				return nil, &TypeError{Type: typeName(v), Position: fmt.Sprintf("[%q]", k)}
			}
			out = append(out, r)
		}
		return out, nil
	case map[string]any:
		return collectMap(t)
	case map[string]map[string]any:
		m := make(map[string]any, len(t))
		for k, v := range t {
			m[k] = v
		}
		return collectMap(m)
	}
	return nil, &TypeError{Type: typeName(data)}
}

func collectMap(m map[string]any) ([]*Record, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]*Record, 0, len(keys))
	for _, k := range keys {
		r, ok := element(m[k])
		if !ok {
			return nil, &TypeError{Type: typeName(m[k]), Position: fmt.Sprintf("[%q]", k)}
		}
		out = append(out, r)
	}
	return out, nil
}

func element(v any) (*Record, bool) {
	switch t := v.(type) {
	case *Record:
		return t, t != nil
	case *Object:
		return New(t), t != nil
	case map[string]any:
		return FromMap(t), true
	default:
		return nil, false
	}
}

func typeName(v any) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case *Record:
		if t == nil {
			return "nil"
		}
	case *Object:
		if t == nil {
			return "nil"
		}
	}
	return fmt.Sprintf("%T", v)
}
