package proptypes

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/vango-dev/testkit/pkg/vdom"
)

// Validator judges a single prop value.
//
// Validate is only called with non-nil values; missing and nil props are
// handled by the checker using Required. A non-nil error describes why the
// value does not conform. Errors of type *FieldError carry structured detail
// into Violation; any other error is reported as a custom failure.
type Validator interface {
	Validate(value any) error
	Required() bool
	Describe() string
}

// Kind tags the built-in validator variants.
type Kind uint8

const (
	KindAny Kind = iota
	KindString
	KindNumber
	KindBool
	KindFunc
	KindArray
	KindObject
	KindNode
	KindElement
	KindOneOf
	KindOneOfType
	KindArrayOf
	KindObjectOf
	KindShape
	KindExact
	KindInstanceOf
	KindCustom
)

var kindNames = map[Kind]string{
	KindAny:        "any",
	KindString:     "string",
	KindNumber:     "number",
	KindBool:       "bool",
	KindFunc:       "func",
	KindArray:      "array",
	KindObject:     "object",
	KindNode:       "node",
	KindElement:    "element",
	KindOneOf:      "oneOf",
	KindOneOfType:  "oneOfType",
	KindArrayOf:    "arrayOf",
	KindObjectOf:   "objectOf",
	KindShape:      "shape",
	KindExact:      "exact",
	KindInstanceOf: "instanceOf",
	KindCustom:     "custom",
}

// String returns the declaration name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Type is the built-in Validator. Values are immutable; IsRequired returns
// a modified copy.
type Type struct {
	kind     Kind
	required bool
	desc     string

	values []any                // OneOf
	types  []Validator          // OneOfType
	elem   Validator            // ArrayOf, ObjectOf
	fields map[string]Validator // Shape, Exact
	check  func(value any) error
}

// Kind returns the variant tag.
func (t Type) Kind() Kind { return t.kind }

// Required reports whether the prop must be supplied.
func (t Type) Required() bool { return t.required }

// Describe returns the expected-shape phrase used in failure messages.
func (t Type) Describe() string { return t.desc }

// IsRequired returns the required variant of t.
func (t Type) IsRequired() Type {
	t.required = true
	return t
}

// Validate implements Validator.
func (t Type) Validate(value any) error {
	if t.check == nil {
		return nil
	}
	return t.check(value)
}

// notation reports a nil validator nested inside t.
func (t Type) notation() error {
	check := func(where string, v Validator) error {
		if v == nil {
			return fmt.Errorf("%s has a nil validator inside %s", where, t.kind)
		}
		if nested, ok := v.(Type); ok {
			return nested.notation()
		}
		return nil
	}

	if t.kind == KindArrayOf || t.kind == KindObjectOf {
		if err := check("element", t.elem); err != nil {
			return err
		}
	}
	for i, v := range t.types {
		if err := check(fmt.Sprintf("type %d", i), v); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(t.fields) {
		if err := check(fmt.Sprintf("field %q", name), t.fields[name]); err != nil {
			return err
		}
	}
	return nil
}

// primitive builds a Type that accepts values for which ok returns true.
func primitive(kind Kind, ok func(any) bool) Type {
	name := kind.String()
	return Type{
		kind: kind,
		desc: name,
		check: func(value any) error {
			if ok(value) {
				return nil
			}
			return typeMismatch(name, value)
		},
	}
}

// Any accepts every value.
func Any() Type { return Type{kind: KindAny, desc: "any"} }

// String accepts string values.
func String() Type {
	return primitive(KindString, func(v any) bool { return reflect.ValueOf(v).Kind() == reflect.String })
}

// Number accepts every integer and floating point kind.
func Number() Type { return primitive(KindNumber, isNumber) }

// Bool accepts bool values.
func Bool() Type {
	return primitive(KindBool, func(v any) bool { return reflect.ValueOf(v).Kind() == reflect.Bool })
}

// Func accepts functions of any signature.
func Func() Type {
	return primitive(KindFunc, func(v any) bool { return reflect.ValueOf(v).Kind() == reflect.Func })
}

// Array accepts slices and arrays.
func Array() Type { return primitive(KindArray, isList) }

// Object accepts maps with string keys and structs.
func Object() Type {
	return primitive(KindObject, func(v any) bool {
		_, ok := asMap(v)
		return ok
	})
}

// Node accepts anything renderable: strings, numbers, elements,
// components and lists of those.
func Node() Type { return primitive(KindNode, isNode) }

// Element accepts a single *vdom.VNode or vdom.Component.
func Element() Type { return primitive(KindElement, isElement) }

// OneOf accepts exactly one of the given values (an enum).
// Numbers compare by value regardless of their Go type.
func OneOf(values ...any) Type {
	desc := "one of " + formatValues(values)
	return Type{
		kind:   KindOneOf,
		desc:   desc,
		values: values,
		check: func(value any) error {
			for _, allowed := range values {
				if sameValue(allowed, value) {
					return nil
				}
			}
			return &FieldError{
				Reason:   ReasonValue,
				Expected: desc,
				Actual:   formatValue(value),
			}
		},
	}
}

// OneOfType accepts values that satisfy any of the given validators.
func OneOfType(types ...Validator) Type {
	names := make([]string, len(types))
	for i, v := range types {
		if v == nil {
			names[i] = "<nil>"
			continue
		}
		names[i] = v.Describe()
	}
	desc := "one of type [" + strings.Join(names, ", ") + "]"
	return Type{
		kind:  KindOneOfType,
		desc:  desc,
		types: types,
		check: func(value any) error {
			for _, v := range types {
				if v != nil && v.Validate(value) == nil {
					return nil
				}
			}
			return typeMismatch(desc, value)
		},
	}
}

// ArrayOf accepts lists whose every element satisfies elem.
func ArrayOf(elem Validator) Type {
	desc := "array of " + describe(elem)
	return Type{
		kind: KindArrayOf,
		desc: desc,
		elem: elem,
		check: func(value any) error {
			if !isList(value) {
				return typeMismatch(desc, value)
			}
			rv := reflect.ValueOf(value)
			for i := 0; i < rv.Len(); i++ {
				if fe := validateValue(elem, rv.Index(i).Interface(), fmt.Sprintf("[%d]", i)); fe != nil {
					return fe
				}
			}
			return nil
		},
	}
}

// ObjectOf accepts string-keyed maps whose every value satisfies elem.
func ObjectOf(elem Validator) Type {
	desc := "object of " + describe(elem)
	return Type{
		kind: KindObjectOf,
		desc: desc,
		elem: elem,
		check: func(value any) error {
			m, ok := asMap(value)
			if !ok {
				return typeMismatch(desc, value)
			}
			for _, key := range sortedKeys(m) {
				if fe := validateValue(elem, m[key], "."+key); fe != nil {
					return fe
				}
			}
			return nil
		},
	}
}

// Shape accepts string-keyed maps whose declared fields satisfy their
// validators. Undeclared keys are ignored.
func Shape(fields map[string]Validator) Type {
	return shape(KindShape, "shape", fields, false)
}

// Exact is Shape that also rejects undeclared keys.
func Exact(fields map[string]Validator) Type {
	return shape(KindExact, "exact shape", fields, true)
}

func shape(kind Kind, desc string, fields map[string]Validator, exact bool) Type {
	return Type{
		kind:   kind,
		desc:   desc,
		fields: fields,
		check: func(value any) error {
			m, ok := asMap(value)
			if !ok {
				return typeMismatch("object", value)
			}
			for _, key := range sortedKeys(fields) {
				v, supplied := m[key]
				if !supplied && fields[key] != nil && fields[key].Required() {
					return &FieldError{
						Path:     "." + key,
						Reason:   ReasonRequired,
						Expected: fields[key].Describe(),
						Actual:   "missing",
					}
				}
				if fe := validateValue(fields[key], v, "."+key); fe != nil {
					return fe
				}
			}
			if !exact {
				return nil
			}
			for _, key := range sortedKeys(m) {
				if _, declared := fields[key]; !declared {
					return &FieldError{
						Path:     "." + key,
						Reason:   ReasonUnknownKey,
						Expected: "one of keys " + formatStrings(sortedKeys(fields)),
						Actual:   key,
					}
				}
			}
			return nil
		},
	}
}

// InstanceOf accepts values whose dynamic type is T, or any type
// implementing T when T is an interface.
func InstanceOf[T any]() Type {
	target := reflect.TypeOf((*T)(nil)).Elem()
	desc := "instance of " + target.String()
	return Type{
		kind: KindInstanceOf,
		desc: desc,
		check: func(value any) error {
			vt := reflect.TypeOf(value)
			if vt == nil {
				return typeMismatch(desc, value)
			}
			if vt == target || (target.Kind() == reflect.Interface && vt.Implements(target)) {
				return nil
			}
			return typeMismatch(desc, value)
		},
	}
}

// Custom wraps fn as a validator described by name.
// A non-nil error from fn is reported with its message.
func Custom(name string, fn func(value any) error) Type {
	return Type{
		kind: KindCustom,
		desc: name,
		check: func(value any) error {
			if fn == nil {
				return nil
			}
			return fn(value)
		},
	}
}

// ValidatorFunc adapts a function to an optional Validator.
type ValidatorFunc func(value any) error

// Validate implements Validator.
func (f ValidatorFunc) Validate(value any) error { return f(value) }

// Required implements Validator.
func (f ValidatorFunc) Required() bool { return false }

// Describe implements Validator.
func (f ValidatorFunc) Describe() string { return "custom" }

// validateValue applies v to value, handling nil and required, and
// prefixes path onto any failure.
func validateValue(v Validator, value any, path string) *FieldError {
	if v == nil {
		return &FieldError{Path: path, Reason: ReasonNotation, Expected: "validator", Actual: "nil"}
	}
	if value == nil {
		if v.Required() {
			return &FieldError{Path: path, Reason: ReasonRequired, Expected: v.Describe(), Actual: "nil"}
		}
		return nil
	}

	err := v.Validate(value)
	if err == nil {
		return nil
	}
	fe := asFieldError(err, v)
	fe.Path = path + fe.Path
	return fe
}

func describe(v Validator) string {
	if v == nil {
		return "<nil>"
	}
	return v.Describe()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// isNode mirrors what the renderer can display.
func isNode(v any) bool {
	switch v.(type) {
	case nil, string, *vdom.VNode, vdom.Component:
		return true
	}
	if isNumber(v) {
		return true
	}
	if isList(v) {
		rv := reflect.ValueOf(v)
		for i := 0; i < rv.Len(); i++ {
			if !isNode(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
	return false
}

func isElement(v any) bool {
	switch e := v.(type) {
	case *vdom.VNode:
		return e != nil
	case vdom.Component:
		return true
	}
	return false
}
