package proptypes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/testkit/pkg/vdom"
)

type counter struct{ n int }

func (c *counter) Render() *vdom.VNode { return vdom.Span(vdom.Textf("%d", c.n)) }

type stringer interface{ String() string }

type label string

func (l label) String() string { return string(l) }

func TestPrimitiveValidators(t *testing.T) {
	tests := []struct {
		name  string
		v     Type
		value any
		ok    bool
	}{
		{"string ok", String(), "hi", true},
		{"string named type ok", String(), label("x"), true},
		{"string rejects number", String(), 5, false},
		{"number int", Number(), 5, true},
		{"number uint8", Number(), uint8(5), true},
		{"number float", Number(), 2.5, true},
		{"number rejects string", Number(), "5", false},
		{"bool ok", Bool(), false, true},
		{"bool rejects string", Bool(), "true", false},
		{"func ok", Func(), func(int) string { return "" }, true},
		{"func rejects string", Func(), "fn", false},
		{"array slice", Array(), []int{1}, true},
		{"array fixed", Array(), [2]string{}, true},
		{"array rejects map", Array(), map[string]any{}, false},
		{"object map", Object(), map[string]int{"a": 1}, true},
		{"object props", Object(), Props{"a": 1}, true},
		{"object struct pointer", Object(), &counter{}, true},
		{"object rejects int-keyed map", Object(), map[int]int{}, false},
		{"node string", Node(), "text", true},
		{"node number", Node(), 3, true},
		{"node vnode", Node(), vdom.Div(), true},
		{"node component", Node(), &counter{}, true},
		{"node list", Node(), []any{"a", vdom.Span(), 1}, true},
		{"node rejects bool", Node(), true, false},
		{"node rejects list with map", Node(), []any{"a", map[string]any{}}, false},
		{"element vnode", Element(), vdom.Div(), true},
		{"element component", Element(), vdom.Func(func() *vdom.VNode { return nil }), true},
		{"element rejects string", Element(), "div", false},
		{"element rejects nil vnode", Element(), (*vdom.VNode)(nil), false},
		{"any", Any(), struct{}{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(tt.value)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, ReasonType, fe.Reason)
			assert.Equal(t, tt.v.Describe(), fe.Expected)
		})
	}
}

func TestIsRequired(t *testing.T) {
	optional := Number()
	required := optional.IsRequired()

	assert.False(t, optional.Required(), "IsRequired must not modify the receiver")
	assert.True(t, required.Required())
	assert.Equal(t, KindNumber, required.Kind())
	assert.Equal(t, "number", required.Describe())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "oneOf", KindOneOf.String())
	assert.Equal(t, "shape", Shape(nil).Kind().String())
	assert.Equal(t, "unknown", Kind(200).String())
}

func TestOneOf(t *testing.T) {
	v := OneOf("primary", "secondary", 3)

	assert.NoError(t, v.Validate("primary"))
	assert.NoError(t, v.Validate(3.0), "numbers compare by value")
	assert.NoError(t, v.Validate(int64(3)))

	err := v.Validate("huge")
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ReasonValue, fe.Reason)
	assert.Equal(t, `"huge"`, fe.Actual)
	assert.Equal(t, `one of ["primary", "secondary", 3]`, fe.Expected)

	assert.Error(t, v.Validate("3"), "string 3 is not number 3")
}

func TestOneOf_IntegerPrecision(t *testing.T) {
	tests := []struct {
		name   string
		allow  any
		value  any
		accept bool
	}{
		{"large uint64 neighbours differ", uint64(1 << 53), uint64(1<<53 + 1), false},
		{"large int64 neighbours differ", int64(1<<62 + 1), int64(1 << 62), false},
		{"signed and unsigned equal", 7, uint8(7), true},
		{"negative never matches unsigned", -1, uint64(1<<64 - 1), false},
		{"int matches float", 3, 3.0, true},
		{"float fraction differs", 3, 3.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := OneOf(tt.allow).Validate(tt.value)
			if tt.accept {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOneOfType(t *testing.T) {
	v := OneOfType(String(), Number())

	assert.NoError(t, v.Validate("a"))
	assert.NoError(t, v.Validate(1))
	err := v.Validate(true)
	require.Error(t, err)
	assert.Equal(t, "one of type [string, number]", v.Describe())
}

func TestArrayOf(t *testing.T) {
	v := ArrayOf(String())

	assert.NoError(t, v.Validate([]string{"a", "b"}))
	assert.NoError(t, v.Validate([]any{"a", nil}), "nil elements pass optional validators")

	err := v.Validate([]any{"a", 2, 3})
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "[1]", fe.Path, "first failing element is reported")
	assert.Equal(t, "number", fe.Actual)

	err = ArrayOf(String().IsRequired()).Validate([]any{nil})
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ReasonRequired, fe.Reason)

	err = v.Validate("not a list")
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "array of string", fe.Expected)
}

func TestObjectOf(t *testing.T) {
	v := ObjectOf(Number())

	assert.NoError(t, v.Validate(map[string]int{"a": 1, "b": 2}))

	err := v.Validate(map[string]any{"b": 1, "a": "x", "c": "y"})
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ".a", fe.Path, "keys are checked in sorted order")

	assert.Error(t, v.Validate([]int{1}))
}

func TestShape(t *testing.T) {
	v := Shape(map[string]Validator{
		"name": String().IsRequired(),
		"age":  Number(),
		"address": Shape(map[string]Validator{
			"zip": String().IsRequired(),
		}),
	})

	assert.NoError(t, v.Validate(map[string]any{"name": "Ada", "extra": true}))

	err := v.Validate(map[string]any{"age": 3})
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ".name", fe.Path)
	assert.Equal(t, ReasonRequired, fe.Reason)
	assert.Equal(t, "missing", fe.Actual)

	err = v.Validate(map[string]any{"name": "Ada", "address": map[string]any{"zip": 12345}})
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ".address.zip", fe.Path)
	assert.Equal(t, ReasonType, fe.Reason)

	err = v.Validate("Ada")
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "object", fe.Expected)
}

func TestShape_Structs(t *testing.T) {
	type address struct {
		Zip string `yaml:"zip,omitempty"`
	}
	type person struct {
		Name    string   `yaml:"name"`
		Address *address `yaml:"address"`
		Secret  string   `yaml:"-"`
		age     int
	}
	v := Exact(map[string]Validator{
		"name":    String().IsRequired(),
		"address": Shape(map[string]Validator{"zip": String().IsRequired()}),
	})

	assert.NoError(t, v.Validate(person{Name: "Ada", Address: &address{Zip: "02139"}}))
	assert.NoError(t, v.Validate(&person{Name: "Ada"}), "nil pointer field is an absent optional value")
	assert.NoError(t, Object().Validate(person{}))

	err := Shape(map[string]Validator{"name": Number()}).Validate(person{Name: "Ada"})
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ".name", fe.Path)
	assert.Equal(t, ReasonType, fe.Reason)
	assert.Equal(t, "string", fe.Actual)

	var missing *person
	err = v.Validate(missing)
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "object", fe.Expected)
	assert.Equal(t, "nil", fe.Actual)
}

func TestExact(t *testing.T) {
	v := Exact(map[string]Validator{"id": Number()})

	assert.NoError(t, v.Validate(map[string]any{"id": 1}))

	err := v.Validate(map[string]any{"id": 1, "zz": 2, "extra": 3})
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, ReasonUnknownKey, fe.Reason)
	assert.Equal(t, "extra", fe.Actual)
	assert.Equal(t, `one of keys ["id"]`, fe.Expected)
}

func TestInstanceOf(t *testing.T) {
	concrete := InstanceOf[*counter]()
	assert.NoError(t, concrete.Validate(&counter{}))
	assert.Error(t, concrete.Validate(counter{}))
	assert.Equal(t, "instance of *proptypes.counter", concrete.Describe())

	iface := InstanceOf[stringer]()
	assert.NoError(t, iface.Validate(label("x")))
	assert.Error(t, iface.Validate(5))
	assert.Error(t, iface.Validate(nil))
}

func TestCustom(t *testing.T) {
	even := Custom("even number", func(value any) error {
		n, ok := value.(int)
		if !ok || n%2 != 0 {
			return fmt.Errorf("%v is not even", value)
		}
		return nil
	})

	assert.NoError(t, even.Validate(4))
	err := even.Validate(3)
	require.EqualError(t, err, "3 is not even")
	assert.Equal(t, "even number", even.Describe())

	assert.NoError(t, Custom("noop", nil).Validate("x"))
}

func TestValidatorFunc(t *testing.T) {
	var v Validator = ValidatorFunc(func(value any) error { return nil })
	assert.False(t, v.Required())
	assert.Equal(t, "custom", v.Describe())
	assert.NoError(t, v.Validate(1))
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{nil, "nil"},
		{"s", "string"},
		{true, "bool"},
		{1, "number"},
		{float32(1), "number"},
		{[]int{}, "array"},
		{map[string]any{}, "object"},
		{struct{}{}, "object"},
		{&counter{}, "component"},
		{vdom.Div(), "element"},
		{(*vdom.VNode)(nil), "nil"},
		{func() {}, "func"},
		{(*int)(nil), "nil"},
		{make(chan int), "chan int"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeName(tt.value))
		})
	}
}

func TestFieldErrorMessages(t *testing.T) {
	assert.Equal(t, "name is required", (&FieldError{Path: ".name", Reason: ReasonRequired}).Error())
	assert.Equal(t, "value has type string, expected number",
		(&FieldError{Reason: ReasonType, Actual: "string", Expected: "number"}).Error())
	assert.Equal(t, "custom text", (&FieldError{Message: "custom text"}).Error())
}
