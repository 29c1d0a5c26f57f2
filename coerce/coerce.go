package coerce

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fieldgate/sdk/schema"
)

// Warning records a single value change made during coercion.
type Warning struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	OriginalValue any    `json:"originalValue"`
	CoercedValue  any    `json:"coercedValue"`
}

// nullTokens are string spellings a model commonly emits for "no value".
var nullTokens = map[string]bool{
	"null":      true,
	"none":      true,
	"n/a":       true,
	"na":        true,
	"undefined": true,
	"":          true,
}

// Apply coerces every declared field present in data toward its declared
// type and returns the coerced copy plus the warnings describing each
// change. Fields absent from data, or null, pass through untouched, as do
// keys not declared in the schema.
func Apply(data map[string]any, fields []schema.Field) (map[string]any, []Warning) {
	return applyFields(data, fields, "")
}

func applyFields(data map[string]any, fields []schema.Field, prefix string) (map[string]any, []Warning) {
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}

	var warnings []Warning
	for _, f := range fields {
		v, ok := out[f.Name]
		if !ok || v == nil {
			continue
		}
		coerced, ws := coerceValue(prefix+f.Name, v, f)
		out[f.Name] = coerced
		warnings = append(warnings, ws...)
	}
	return out, warnings
}

func coerceValue(path string, v any, f schema.Field) (any, []Warning) {
	// Null-like strings become null only on optional fields. Required
	// fields keep the string so validation can report it.
	if s, ok := v.(string); ok && f.Optional && nullTokens[strings.ToLower(strings.TrimSpace(s))] {
		return nil, warn(path, "null-like string treated as null", v, nil)
	}

	switch def := f.Def.(type) {
	case schema.NumberField:
		return coerceNumber(path, v)
	case schema.IntegerField:
		return coerceInteger(path, v)
	case schema.BooleanField:
		return coerceBoolean(path, v)
	case schema.StringField:
		return coerceString(path, v, def)
	case schema.ArrayField:
		arr, ok := v.([]any)
		if !ok {
			return v, nil
		}
		out := make([]any, len(arr))
		var ws []Warning
		for i, elem := range arr {
			obj, ok := elem.(map[string]any)
			if !ok {
				out[i] = elem
				continue
			}
			coerced, ews := applyFields(obj, def.Items, fmt.Sprintf("%s[%d].", path, i))
			out[i] = coerced
			ws = append(ws, ews...)
		}
		return out, ws
	case schema.ObjectField:
		obj, ok := v.(map[string]any)
		if !ok {
			return v, nil
		}
		return applyFields(obj, def.Properties, path+".")
	}
	return v, nil
}

func coerceNumber(path string, v any) (any, []Warning) {
	switch n := v.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return v, nil
		}
		return f, warn(path, "string parsed as number", v, f)
	case bool:
		f := 0.0
		if n {
			f = 1.0
		}
		return f, warn(path, "boolean converted to number", v, f)
	}
	if _, ok := toFloat(v); ok {
		return v, nil
	}
	return v, nil
}

func coerceInteger(path string, v any) (any, []Warning) {
	coerced, ws := coerceNumber(path, v)
	f, ok := toFloat(coerced)
	if !ok {
		return v, nil
	}
	if f == math.Trunc(f) {
		return coerced, ws
	}
	truncated := math.Trunc(f)
	ws = append(ws, Warning{
		Field:         path,
		Message:       "fractional value truncated to integer",
		OriginalValue: v,
		CoercedValue:  truncated,
	})
	return truncated, ws
}

func coerceBoolean(path string, v any) (any, []Warning) {
	switch b := v.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "1":
			return true, warn(path, "string converted to boolean", v, true)
		case "false", "no", "0":
			return false, warn(path, "string converted to boolean", v, false)
		}
		return v, nil
	}
	if f, ok := toFloat(v); ok {
		res := f != 0
		return res, warn(path, "number converted to boolean", v, res)
	}
	return v, nil
}

func coerceString(path string, v any, def schema.StringField) (any, []Warning) {
	var ws []Warning

	s, ok := v.(string)
	if !ok {
		s, ok = stringify(v)
		if !ok {
			return v, nil
		}
		ws = warn(path, "value converted to string", v, s)
	}

	if len(def.Enum) > 0 {
		if normalized, changed := normalizeEnum(s, def.Enum); changed {
			ws = append(ws, Warning{
				Field:         path,
				Message:       fmt.Sprintf("enum value normalized to %q", normalized),
				OriginalValue: v,
				CoercedValue:  normalized,
			})
			s = normalized
		}
	}

	if def.Format == schema.FormatDate || def.Format == schema.FormatDateTime {
		if normalized, ok, changed := normalizeDate(s); ok && changed {
			ws = append(ws, Warning{
				Field:         path,
				Message:       fmt.Sprintf("date normalized to %s", normalized),
				OriginalValue: v,
				CoercedValue:  normalized,
			})
			s = normalized
		}
	}

	return s, ws
}

// normalizeEnum matches a candidate against the allowed values, preferring
// an exact match. Case and separator differences are folded via the same
// normalization the schema applied when it rejected ambiguous enums; the
// first allowed value whose normalized form matches wins. A candidate
// matching nothing is returned unchanged for validation to reject.
func normalizeEnum(s string, enum []string) (string, bool) {
	for _, allowed := range enum {
		if s == allowed {
			return s, false
		}
	}
	norm := schema.NormalizeEnumToken(s)
	for _, allowed := range enum {
		if schema.NormalizeEnumToken(allowed) == norm {
			return allowed, true
		}
	}
	return s, false
}

func stringify(v any) (string, bool) {
	switch n := v.(type) {
	case bool:
		return strconv.FormatBool(n), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case int:
		return strconv.Itoa(n), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	}
	return "", false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func warn(path, message string, original, coerced any) []Warning {
	return []Warning{{
		Field:         path,
		Message:       message,
		OriginalValue: original,
		CoercedValue:  coerced,
	}}
}
