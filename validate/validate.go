package validate

import (
	"fmt"
	"math"
	"reflect"

	"github.com/fieldgate/sdk/schema"
)

// Code is a machine-readable data-validation error code.
type Code string

const (
	// CodeFieldMissing marks a required field that is absent or null.
	CodeFieldMissing Code = "FIELD_MISSING"

	// CodeTypeMismatch marks a value whose type does not match the
	// declared field type.
	CodeTypeMismatch Code = "TYPE_MISMATCH"

	// CodeFieldInvalid marks a correctly-typed value that violates a
	// constraint: enum membership, pattern, range, or check expression.
	CodeFieldInvalid Code = "FIELD_INVALID"
)

// Error is a single path-qualified validation failure.
type Error struct {
	// Field is the dot/bracket-qualified path of the offending value,
	// empty only for whole-schema errors.
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
	Code     Code   `json:"code"`
	Value    any    `json:"value,omitempty"`
	Expected any    `json:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty"`
}

// Result is the outcome of validating one data instance.
type Result struct {
	Valid  bool    `json:"valid"`
	Errors []Error `json:"errors"`
}

// Apply validates data against the schema and returns the complete error
// list in schema declaration order. It never panics on data shape and has
// no side effects.
func Apply(data map[string]any, s *schema.Schema) Result {
	errs := checkFields(data, s.Fields, "")
	return Result{Valid: len(errs) == 0, Errors: errs}
}

func checkFields(data map[string]any, fields []schema.Field, prefix string) []Error {
	var errs []Error
	for _, f := range fields {
		path := prefix + f.Name
		v, ok := data[f.Name]
		if !ok || v == nil {
			if !f.Optional {
				errs = append(errs, Error{
					Field:   path,
					Code:    CodeFieldMissing,
					Message: fmt.Sprintf("required field %q is missing", path),
				})
			}
			continue
		}
		errs = append(errs, checkValue(path, v, f.Def)...)
	}
	return errs
}

func checkValue(path string, v any, def schema.FieldDef) []Error {
	switch d := def.(type) {
	case schema.StringField:
		return checkString(path, v, d)
	case schema.NumberField:
		return checkNumeric(path, v, "number", d.Min, d.Max, d.Check)
	case schema.IntegerField:
		if f, ok := toFloat(v); ok && f != math.Trunc(f) {
			return []Error{{
				Field:    path,
				Code:     CodeTypeMismatch,
				Message:  fmt.Sprintf("expected integer, got fractional number %v", v),
				Value:    v,
				Expected: "integer",
				Actual:   "number",
			}}
		}
		return checkNumeric(path, v, "integer", d.Min, d.Max, d.Check)
	case schema.BooleanField:
		if _, ok := v.(bool); !ok {
			return mismatch(path, v, "boolean")
		}
		return nil
	case schema.ArrayField:
		return checkArray(path, v, d.Items)
	case schema.ObjectField:
		obj, ok := v.(map[string]any)
		if !ok {
			return mismatch(path, v, "object")
		}
		return checkFields(obj, d.Properties, path+".")
	}
	return nil
}

func checkString(path string, v any, d schema.StringField) []Error {
	s, ok := v.(string)
	if !ok {
		return mismatch(path, v, "string")
	}

	var errs []Error
	if len(d.Enum) > 0 && !contains(d.Enum, s) {
		errs = append(errs, Error{
			Field:    path,
			Code:     CodeFieldInvalid,
			Message:  fmt.Sprintf("value %q is not one of the allowed values", s),
			Value:    s,
			Expected: d.Enum,
		})
	}
	if d.Pattern != nil && !d.Pattern.MatchString(s) {
		errs = append(errs, Error{
			Field:    path,
			Code:     CodeFieldInvalid,
			Message:  fmt.Sprintf("value %q does not match pattern %s", s, d.Pattern),
			Value:    s,
			Expected: d.Pattern.String(),
		})
	}
	errs = append(errs, runCheck(path, s, d.Check)...)
	return errs
}

func checkNumeric(path string, v any, want string, min, max *float64, check *schema.Check) []Error {
	f, ok := toFloat(v)
	if !ok {
		return mismatch(path, v, want)
	}

	var errs []Error
	if min != nil && f < *min {
		errs = append(errs, Error{
			Field:    path,
			Code:     CodeFieldInvalid,
			Message:  fmt.Sprintf("value %v is less than minimum %v", f, *min),
			Value:    v,
			Expected: fmt.Sprintf(">= %v", *min),
		})
	}
	if max != nil && f > *max {
		errs = append(errs, Error{
			Field:    path,
			Code:     CodeFieldInvalid,
			Message:  fmt.Sprintf("value %v is greater than maximum %v", f, *max),
			Value:    v,
			Expected: fmt.Sprintf("<= %v", *max),
		})
	}
	errs = append(errs, runCheck(path, v, check)...)
	return errs
}

func checkArray(path string, v any, items []schema.Field) []Error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return mismatch(path, v, "array")
	}

	var errs []Error
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		obj, ok := elem.(map[string]any)
		if !ok {
			errs = append(errs, mismatch(elemPath, elem, "object")...)
			continue
		}
		errs = append(errs, checkFields(obj, items, elemPath+".")...)
	}
	return errs
}

func runCheck(path string, v any, c *schema.Check) []Error {
	if c == nil {
		return nil
	}
	ok, err := c.Eval(v)
	if err != nil {
		return []Error{{
			Field:    path,
			Code:     CodeFieldInvalid,
			Message:  fmt.Sprintf("check %s failed: %v", c.Source(), err),
			Value:    v,
			Expected: c.Source(),
		}}
	}
	if !ok {
		return []Error{{
			Field:    path,
			Code:     CodeFieldInvalid,
			Message:  fmt.Sprintf("value %v fails check %s", v, c.Source()),
			Value:    v,
			Expected: c.Source(),
		}}
	}
	return nil
}

func mismatch(path string, v any, expected string) []Error {
	return []Error{{
		Field:    path,
		Code:     CodeTypeMismatch,
		Message:  fmt.Sprintf("expected %s, got %s", expected, kindOf(v)),
		Value:    v,
		Expected: expected,
		Actual:   kindOf(v),
	}}
}

// kindOf names the observed shape of a value in schema terms for error
// messages.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	}
	if _, ok := toFloat(v); ok {
		return "number"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
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
