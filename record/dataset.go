package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Dataset is a decoded JSON collection: either an array of objects or an
// object of objects, whose keys are discarded.
type Dataset struct {
	Items []*Object
}

// Len returns the number of items. A nil dataset is empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Items)
}

// Append adds the items of other to d.
func (d *Dataset) Append(other *Dataset) {
	if other == nil {
		return
	}
	d.Items = append(d.Items, other.Items...)
}

// MarshalJSON encodes the dataset as an array.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	if d.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d.Items)
}

// UnmarshalJSON decodes an array of objects or an object of objects.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return &TypeError{Type: fmt.Sprintf("JSON %T", tok)}
	}

	var items []*Object
	switch delim {
	case '[':
		for i := 0; dec.More(); i++ {
			v, err := decodeValue(dec)
			if err != nil {
				return err
			}
			o, ok := v.(*Object)
			if !ok {
				return &TypeError{Type: jsonKind(v), Position: fmt.Sprintf("[%d]", i)}
			}
			items = append(items, o)
		}
	case '{':
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := tok.(string)
			v, err := decodeValue(dec)
			if err != nil {
				return err
			}
			o, ok := v.(*Object)
			if !ok {
				return &TypeError{Type: jsonKind(v), Position: fmt.Sprintf("[%q]", key)}
			}
			items = append(items, o)
		}
	default:
		return fmt.Errorf("record: unexpected delimiter %v", delim)
	}

	d.Items = items
	return nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "JSON null"
	case string:
		return "JSON string"
	case float64:
		return "JSON number"
	case bool:
		return "JSON bool"
	case []any:
		return "JSON array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
