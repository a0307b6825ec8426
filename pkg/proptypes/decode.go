package proptypes

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/testkit/internal/errors"
)

// DecodeError is a contract or props file problem with the line it was found on.
// Line is 0 when unknown.
type DecodeError struct {
	Line int
	Err  error
}

// Error implements error.
func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error { return e.Err }

// contractFile is the on-disk contract layout:
//
//	component: Counter
//	props:
//	  count: {type: number, required: true}
//	  variant: {type: oneOf, values: [primary, secondary]}
type contractFile struct {
	Component string              `yaml:"component"`
	Props     map[string]propDecl `yaml:"props"`
}

// propDecl declares one validator.
type propDecl struct {
	Type     string              `yaml:"type"`
	Required bool                `yaml:"required"`
	Values   []any               `yaml:"values"`
	Of       *propDecl           `yaml:"of"`
	Types    []propDecl          `yaml:"types"`
	Fields   map[string]propDecl `yaml:"fields"`

	line int
}

// UnmarshalYAML records the declaration's line for error reporting.
func (d *propDecl) UnmarshalYAML(node *yaml.Node) error {
	type plain propDecl
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*d = propDecl(p)
	d.line = node.Line
	return nil
}

// Decode reads a YAML or JSON prop contract.
//
// Supported types: any, string, number, bool, func, array, object, node,
// element, oneOf (values), oneOfType (types), arrayOf (of), objectOf (of),
// shape (fields) and exact (fields). Errors wrap a *DecodeError.
func Decode(r io.Reader) (*Contract, error) {
	var file contractFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, errors.New("E005").Wrap(&DecodeError{Err: fmt.Errorf("empty contract")})
		}
		return nil, errors.New("E005").Wrap(&DecodeError{Line: yamlErrorLine(err), Err: err})
	}
	if file.Props == nil {
		return nil, errors.New("E005").Wrap(&DecodeError{Err: fmt.Errorf("contract has no props mapping")})
	}

	spec := make(Spec, len(file.Props))
	for _, name := range sortedKeys(file.Props) {
		v, err := file.Props[name].validator(name)
		if err != nil {
			return nil, errors.New("E005").Wrap(err)
		}
		spec[name] = v
	}

	return &Contract{Component: file.Component, Spec: spec}, nil
}

// DecodeProps reads a YAML or JSON mapping of prop values.
func DecodeProps(r io.Reader) (Props, error) {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if err == io.EOF {
			return Props{}, nil
		}
		return nil, errors.New("E006").Wrap(&DecodeError{Line: yamlErrorLine(err), Err: err})
	}
	if m == nil {
		return Props{}, nil
	}
	return Props(m), nil
}

// validator converts the declaration at path into a Validator.
func (d propDecl) validator(path string) (Type, error) {
	fail := func(format string, args ...any) (Type, error) {
		return Type{}, &DecodeError{Line: d.line, Err: fmt.Errorf("%s: "+format, append([]any{path}, args...)...)}
	}

	var t Type
	switch strings.ToLower(d.Type) {
	case "any":
		t = Any()
	case "string":
		t = String()
	case "number":
		t = Number()
	case "bool", "boolean":
		t = Bool()
	case "func":
		t = Func()
	case "array":
		t = Array()
	case "object":
		t = Object()
	case "node":
		t = Node()
	case "element":
		t = Element()
	case "oneof", "enum":
		if len(d.Values) == 0 {
			return fail("oneOf needs at least one value")
		}
		t = OneOf(d.Values...)
	case "oneoftype", "union":
		if len(d.Types) == 0 {
			return fail("oneOfType needs at least one type")
		}
		types := make([]Validator, len(d.Types))
		for i, sub := range d.Types {
			v, err := sub.validator(fmt.Sprintf("%s|%d", path, i))
			if err != nil {
				return Type{}, err
			}
			types[i] = v
		}
		t = OneOfType(types...)
	case "arrayof", "objectof":
		if d.Of == nil {
			return fail("%s needs an 'of' type", d.Type)
		}
		sep := "[]"
		if strings.EqualFold(d.Type, "objectof") {
			sep = ".*"
		}
		elem, err := d.Of.validator(path + sep)
		if err != nil {
			return Type{}, err
		}
		if sep == "[]" {
			t = ArrayOf(elem)
		} else {
			t = ObjectOf(elem)
		}
	case "shape", "exact":
		fields := make(map[string]Validator, len(d.Fields))
		for _, name := range sortedKeys(d.Fields) {
			v, err := d.Fields[name].validator(path + "." + name)
			if err != nil {
				return Type{}, err
			}
			fields[name] = v
		}
		if strings.EqualFold(d.Type, "exact") {
			t = Exact(fields)
		} else {
			t = Shape(fields)
		}
	case "":
		return fail("missing type")
	default:
		return fail("unknown type %q", d.Type)
	}

	if d.Required {
		t = t.IsRequired()
	}
	return t, nil
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// yamlErrorLine extracts the first line number from a yaml.v3 error message.
func yamlErrorLine(err error) int {
	m := yamlLineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
