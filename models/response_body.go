package models

import (
	"encoding/json"
	"strconv"
)

// ResponseBody is an untyped JSON object returned by the backend. Numbers are
// kept as json.Number so identifiers survive unchanged.
type ResponseBody map[string]interface{}

// Has reports whether key holds a truthy value: present, not null, not false,
// not zero and not the empty string.
func (b ResponseBody) Has(key string) bool {
	return b.Text(key) != ""
}

// Text returns the value at key as display text, or "" when the value is
// absent or falsy. Objects and arrays are rendered as JSON.
func (b ResponseBody) Text(key string) string {
	value, ok := b[key]
	if !ok {
		return ""
	}

	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return ""
		}
		return v.String()
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

// Object returns the nested object at key, or nil when the value is not an
// object.
func (b ResponseBody) Object(key string) ResponseBody {
	nested, ok := b[key].(map[string]interface{})
	if !ok {
		return nil
	}
	return ResponseBody(nested)
}
