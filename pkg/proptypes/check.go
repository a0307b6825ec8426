package proptypes

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/vango-dev/testkit/internal/errors"
)

// Spec is a component's prop contract: prop name to validator.
type Spec map[string]Validator

// Props is a concrete prop value set supplied for a component.
type Props map[string]any

// Sentinel errors. Usage errors (ErrNoSpec, ErrInvalidValidator) mean the
// test setup is broken; ErrConformance means the props failed the contract.
var (
	ErrNoSpec           = stderrors.New("proptypes: no prop contract")
	ErrInvalidValidator = stderrors.New("proptypes: invalid validator")
	ErrConformance      = stderrors.New("proptypes: props do not conform")
)

// anonymous labels components checked without a name.
const anonymous = "<<anonymous>>"

// CheckOptions configures a conformance check.
type CheckOptions struct {
	// Location names what is being checked in messages. Defaults to "prop".
	Location string

	// Component labels the component under test in messages.
	Component string

	// FailFast stops at the first violation instead of reporting all of them.
	FailFast bool
}

// Check reports whether props satisfy spec.
//
// Every prop declared in spec is checked in sorted name order: a required
// prop that is missing or nil is a violation, and a supplied value must
// pass its validator. Keys in props that spec does not declare are ignored.
//
// The result is nil when props conform, a *ViolationError listing every
// violation when they do not, or a usage error wrapping ErrNoSpec or
// ErrInvalidValidator when spec itself is unusable.
//
// Example:
//
//	spec := proptypes.Spec{"count": proptypes.Number().IsRequired()}
//	err := proptypes.Check(spec, proptypes.Props{}, "prop", "Counter")
//	// err: Failed prop type: The prop `count` is marked as required in `Counter`, but it was not supplied.
func Check(spec Spec, props Props, location, componentName string) error {
	return CheckWith(spec, props, CheckOptions{Location: location, Component: componentName})
}

// CheckWith is Check with explicit options.
func CheckWith(spec Spec, props Props, opts CheckOptions) error {
	if opts.Location == "" {
		opts.Location = "prop"
	}
	if opts.Component == "" {
		opts.Component = anonymous
	}

	if err := ValidateSpec(spec); err != nil {
		return err
	}

	var violations []Violation
	for _, name := range sortedKeys(spec) {
		v := spec[name]
		value, supplied := props[name]

		var fe *FieldError
		if !supplied && v.Required() {
			fe = &FieldError{Reason: ReasonRequired, Expected: v.Describe(), Actual: "missing"}
		} else {
			fe = validateValue(v, value, "")
		}
		if fe == nil {
			continue
		}

		violations = append(violations, newViolation(name, fe, opts))
		if opts.FailFast {
			break
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &ViolationError{Component: opts.Component, Violations: violations}
}

// ValidateSpec reports usage errors in spec without checking any values.
func ValidateSpec(spec Spec) error {
	if spec == nil {
		return errors.New("E002").Wrap(ErrNoSpec)
	}
	for _, name := range sortedKeys(spec) {
		v := spec[name]
		if v == nil {
			return errors.New("E003").Wrap(fmt.Errorf("%w: prop %q has a nil validator", ErrInvalidValidator, name))
		}
		if t, ok := v.(Type); ok {
			if err := t.notation(); err != nil {
				return errors.New("E003").Wrap(fmt.Errorf("%w: prop %q: %v", ErrInvalidValidator, name, err))
			}
		}
	}
	return nil
}

// Violation is one prop that failed its contract.
type Violation struct {
	// Prop is the top-level prop name.
	Prop string

	// Path is the full path to the failing value, e.g. "user.address.zip"
	// or "items[2]". It equals Prop for top-level failures.
	Path string

	Reason   Reason
	Expected string
	Actual   string

	// Message is the complete human-readable description.
	Message string
}

func newViolation(prop string, fe *FieldError, opts CheckOptions) Violation {
	v := Violation{
		Prop:     prop,
		Path:     prop + fe.Path,
		Reason:   fe.Reason,
		Expected: fe.Expected,
		Actual:   fe.Actual,
	}

	loc, comp := opts.Location, opts.Component
	switch fe.Reason {
	case ReasonRequired:
		if fe.Actual == "missing" {
			v.Message = fmt.Sprintf("The %s `%s` is marked as required in `%s`, but it was not supplied.", loc, v.Path, comp)
		} else {
			v.Message = fmt.Sprintf("The %s `%s` is marked as required in `%s`, but its value is `nil`.", loc, v.Path, comp)
		}
	case ReasonValue:
		v.Message = fmt.Sprintf("Invalid %s `%s` of value `%s` supplied to `%s`, expected %s.", loc, v.Path, fe.Actual, comp, fe.Expected)
	case ReasonUnknownKey:
		v.Message = fmt.Sprintf("Invalid %s `%s` key `%s` supplied to `%s`, expected %s.", loc, prop, fe.Actual, comp, fe.Expected)
	case ReasonCustom:
		v.Message = fmt.Sprintf("Invalid %s `%s` supplied to `%s`: %s.", loc, v.Path, comp, strings.TrimSuffix(fe.Message, "."))
	default:
		v.Message = fmt.Sprintf("Invalid %s `%s` of type `%s` supplied to `%s`, expected `%s`.", loc, v.Path, fe.Actual, comp, fe.Expected)
	}
	return v
}

// ViolationError is the outcome of a failed conformance check.
type ViolationError struct {
	Component  string
	Violations []Violation
}

// Error implements error.
func (e *ViolationError) Error() string {
	if len(e.Violations) == 1 {
		return "Failed prop type: " + e.Violations[0].Message
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Failed prop types for `%s` (%d violations):", e.Component, len(e.Violations))
	for _, v := range e.Violations {
		b.WriteString("\n  - ")
		b.WriteString(v.Message)
	}
	return b.String()
}

// Is matches ErrConformance.
func (e *ViolationError) Is(target error) bool {
	return target == ErrConformance
}

// Props returns the names of the violating props in report order.
func (e *ViolationError) Props() []string {
	names := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		names[i] = v.Prop
	}
	return names
}
