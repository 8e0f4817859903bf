package record

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Lookup resolves a dot path such as "author.name" or "tags.0" inside o.
//
// A literal key that contains dots takes precedence over traversal. Array
// elements are addressed by their decimal index.
func Lookup(o *Object, path string) (any, bool) {
	if v, ok := o.Get(path); ok {
		return v, true
	}
	if !strings.Contains(path, ".") {
		return nil, false
	}

	var cur any = o
	for _, part := range strings.Split(path, ".") {
		switch c := cur.(type) {
		case *Object:
			v, ok := c.Get(part)
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(c) {
				return nil, false
			}
			cur = c[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Text renders a scalar value as text. It reports false for nil, nested
// structures and any other non-scalar value.
func Text(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return formatFloat(t, 64), true
	case float32:
		return formatFloat(float64(t), 32), true
	case int:
		return strconv.Itoa(t), true
	case int8:
		return strconv.FormatInt(int64(t), 10), true
	case int16:
		return strconv.FormatInt(int64(t), 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case uint8:
		return strconv.FormatUint(uint64(t), 10), true
	case uint16:
		return strconv.FormatUint(uint64(t), 10), true
	case uint32:
		return strconv.FormatUint(uint64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// formatFloat renders f in shortest form, switching to exponent notation
// (1e+21, 1.5e-7) outside [1e-6, 1e21) the way JavaScript number text does.
func formatFloat(f float64, bitSize int) string {
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) || math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}

	s := strconv.FormatFloat(f, 'e', -1, bitSize)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
