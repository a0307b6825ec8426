package proptypes

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/vango-dev/testkit/pkg/vdom"
)

// Reason classifies why a value failed.
type Reason string

const (
	ReasonRequired   Reason = "required"
	ReasonType       Reason = "type"
	ReasonValue      Reason = "value"
	ReasonUnknownKey Reason = "unknown-key"
	ReasonCustom     Reason = "custom"
	ReasonNotation   Reason = "notation"
)

// FieldError is the structured failure a built-in validator returns.
// Path is relative to the validated value: "" for the value itself,
// ".field" or "[2]" for nested values.
type FieldError struct {
	Path     string
	Reason   Reason
	Expected string
	Actual   string
	Message  string
}

// Error implements error.
func (e *FieldError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Reason {
	case ReasonRequired:
		return fmt.Sprintf("%s is required", pathOrValue(e.Path))
	case ReasonValue:
		return fmt.Sprintf("%s has value %s, expected %s", pathOrValue(e.Path), e.Actual, e.Expected)
	case ReasonUnknownKey:
		return fmt.Sprintf("unknown key %q, expected %s", e.Actual, e.Expected)
	default:
		return fmt.Sprintf("%s has type %s, expected %s", pathOrValue(e.Path), e.Actual, e.Expected)
	}
}

func pathOrValue(path string) string {
	if path == "" {
		return "value"
	}
	return strings.TrimPrefix(path, ".")
}

// typeMismatch reports value as having the wrong type.
func typeMismatch(expected string, value any) *FieldError {
	return &FieldError{Reason: ReasonType, Expected: expected, Actual: TypeName(value)}
}

// asFieldError converts an arbitrary validator error into a FieldError.
func asFieldError(err error, v Validator) *FieldError {
	if fe, ok := err.(*FieldError); ok {
		c := *fe
		return &c
	}
	return &FieldError{Reason: ReasonCustom, Expected: v.Describe(), Message: err.Error()}
}

// TypeName names a value's type the way failure messages do.
func TypeName(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case *vdom.VNode:
		if v == nil {
			return "nil"
		}
		return "element"
	case vdom.Component:
		return "component"
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Func:
		return "func"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Pointer:
		if rv.IsNil() {
			return "nil"
		}
		return TypeName(rv.Elem().Interface())
	}
	if isNumber(value) {
		return "number"
	}
	return rv.Type().String()
}

func isNumber(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isList(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// toFloat converts any numeric kind to float64.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// asMap views maps with string keys and structs as map[string]any.
// Struct fields are keyed by their yaml tag name, falling back to the
// field name; unexported fields and fields tagged "-" are left out.
// Nil pointer fields read as nil.
func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
		rv = rv.Elem()
	}
	switch {
	case rv.Kind() == reflect.Struct:
		return structFields(rv), true
	case rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String:
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

func structFields(rv reflect.Value) map[string]any {
	rt := rv.Type()
	m := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, _, _ := strings.Cut(f.Tag.Get("yaml"), ","); tag == "-" {
			continue
		} else if tag != "" {
			name = tag
		}
		fv := rv.Field(i)
		if fv.Kind() == reflect.Pointer && fv.IsNil() {
			m[name] = nil
			continue
		}
		m[name] = fv.Interface()
	}
	return m
}

// sameValue compares enum candidates. Integers compare exactly across
// signed and unsigned kinds; floats compare by numeric value.
func sameValue(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isSigned(ra) && isSigned(rb):
		return ra.Int() == rb.Int()
	case isUnsigned(ra) && isUnsigned(rb):
		return ra.Uint() == rb.Uint()
	case isSigned(ra) && isUnsigned(rb):
		return ra.Int() >= 0 && uint64(ra.Int()) == rb.Uint()
	case isUnsigned(ra) && isSigned(rb):
		return rb.Int() >= 0 && ra.Uint() == uint64(rb.Int())
	}
	af, aNum := toFloat(a)
	bf, bNum := toFloat(b)
	if aNum && bNum {
		return af == bf
	}
	if aNum != bNum {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func isSigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case nil:
		return "nil"
	}
	return fmt.Sprintf("%v", v)
}

func formatValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatStrings(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Quote(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
