// Package attributes reads typed values out of the loosely typed property maps attached to geographic features.
//
// Every extractor reports whether the attribute was present separately from whether it could be
// converted, so callers decide for themselves what is required and what falls back to a default.
package attributes

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type TypeError struct {
	Name  string
	Value interface{}
	Want  string
	Err   error
}

func (e *TypeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("attribute %s: cannot use %v as %s: %s", e.Name, e.Value, e.Want, e.Err)
	}
	return fmt.Sprintf("attribute %s: cannot use %v (%T) as %s", e.Name, e.Value, e.Value, e.Want)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

// Lookup returns the raw value stored under name. A JSON null counts as absent.
func Lookup(attributes map[string]interface{}, name string) (interface{}, bool) {
	value, exists := attributes[name]
	if !exists || value == nil {
		return nil, false
	}

	return value, true
}

// String returns the attribute rendered as text. Numbers and booleans are formatted the way they appear in the source document.
func String(attributes map[string]interface{}, name string) (string, bool, error) {
	value, found := Lookup(attributes, name)
	if !found {
		return "", false, nil
	}

	switch v := value.(type) {
	case string:
		return v, true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case json.Number:
		return v.String(), true, nil
	case bool:
		return strconv.FormatBool(v), true, nil
	default:
		return "", true, &TypeError{Name: name, Value: value, Want: "string"}
	}
}

// Int returns the attribute as an integer. Text is trimmed before parsing and numbers must have no fractional part.
func Int(attributes map[string]interface{}, name string) (int, bool, error) {
	value, found := Lookup(attributes, name)
	if !found {
		return 0, false, nil
	}

	switch v := value.(type) {
	case int:
		return v, true, nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, true, &TypeError{Name: name, Value: value, Want: "integer"}
		}
		return int(v), true, nil
	case json.Number:
		parsed, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, true, &TypeError{Name: name, Value: value, Want: "integer", Err: err}
		}
		return parsed, true, nil
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, true, &TypeError{Name: name, Value: value, Want: "integer", Err: err}
		}
		return parsed, true, nil
	default:
		return 0, true, &TypeError{Name: name, Value: value, Want: "integer"}
	}
}

// Color returns the attribute as a packed 0xRRGGBB value, see ParseColor for the accepted notations
func Color(attributes map[string]interface{}, name string) (int, bool, error) {
	value, found := Lookup(attributes, name)
	if !found {
		return 0, false, nil
	}

	text, ok := value.(string)
	if !ok {
		return 0, true, &TypeError{Name: name, Value: value, Want: "color"}
	}

	color, err := ParseColor(text)
	if err != nil {
		return 0, true, &TypeError{Name: name, Value: value, Want: "color", Err: err}
	}

	return color, true, nil
}
