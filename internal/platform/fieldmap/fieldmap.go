// Package fieldmap reconciles loosely typed upstream records whose keys come in
// more than one casing convention.
//
// Each entity declares its fields once as a table of Field values; every
// lookup goes through Resolve so alias precedence lives in a single place.
package fieldmap

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is one decoded JSON object.
type Record map[string]any

// Field declares the candidate keys for one canonical value, in precedence
// order, and the value used when none of them yields anything.
type Field struct {
	Aliases []string
	Default any
}

// F is shorthand for declaring a Field in alias tables.
func F(def any, aliases ...string) Field {
	return Field{Aliases: aliases, Default: def}
}

// Resolve returns the first alias whose value is truthy, or def.
// Missing keys, nil, empty strings, numeric zero, false and empty
// collections all fall through to the next alias.
func Resolve(record Record, aliases []string, def any) any {
	for _, key := range aliases {
		value, ok := record[key]
		if !ok || IsFalsy(value) {
			continue
		}
		return value
	}
	return def
}

// Value resolves f against the record.
func (r Record) Value(f Field) any {
	return Resolve(r, f.Aliases, f.Default)
}

// String resolves f and renders it for display.
func (r Record) String(f Field) string {
	return String(r.Value(f))
}

// Float resolves f and converts it to a number; non-numeric values are 0.
func (r Record) Float(f Field) float64 {
	return Float(r.Value(f))
}

// IsFalsy reports whether v should be skipped during alias resolution.
func IsFalsy(v any) bool {
	switch typed := v.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case bool:
		return !typed
	case json.Number:
		f, err := typed.Float64()
		return err == nil && f == 0
	case float64:
		return typed == 0
	case float32:
		return typed == 0
	case int:
		return typed == 0
	case int64:
		return typed == 0
	case int32:
		return typed == 0
	case []any:
		return len(typed) == 0
	case map[string]any:
		return len(typed) == 0
	case Record:
		return len(typed) == 0
	default:
		return false
	}
}

// String renders a decoded JSON value the way report cells show it.
// Numbers keep their upstream textual form when decoded as json.Number.
func String(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		if typed {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return fmt.Sprint(typed)
	}
}

// Float converts a decoded JSON value to float64.
func Float(v any) float64 {
	switch typed := v.(type) {
	case json.Number:
		f, err := typed.Float64()
		if err != nil {
			return 0
		}
		return f
	case float64:
		return typed
	case float32:
		return float64(typed)
	case int:
		return float64(typed)
	case int64:
		return float64(typed)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Records converts a decoded JSON array into records, dropping entries that
// are not objects. The returned positions are 1-based offsets into the
// original array so callers can keep upstream numbering.
func Records(items []any) ([]Record, []int) {
	out := make([]Record, 0, len(items))
	positions := make([]int, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Record(obj))
		positions = append(positions, i+1)
	}
	return out, positions
}
