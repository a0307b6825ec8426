package vtest

import (
	"errors"
	"testing"

	"github.com/vango-dev/testkit/pkg/proptypes"
)

// CheckProps asserts that props satisfy spec for the component named label.
//
// A violation is reported with tb.Errorf and names the component and every
// offending prop. A broken contract (nil spec or nil validator) is a test
// setup error and stops the test with tb.Fatalf. CheckProps returns
// whether the props conformed.
//
// Example:
//
//	spec := proptypes.Spec{"count": proptypes.Number().IsRequired()}
//	vtest.CheckProps(t, spec, proptypes.Props{"count": 3}, "Counter")
func CheckProps(tb testing.TB, spec proptypes.Spec, props proptypes.Props, label string) bool {
	tb.Helper()
	return CheckPropsWith(tb, spec, props, proptypes.CheckOptions{Component: label})
}

// CheckPropsWith is CheckProps with explicit check options.
func CheckPropsWith(tb testing.TB, spec proptypes.Spec, props proptypes.Props, opts proptypes.CheckOptions) bool {
	tb.Helper()
	return report(tb, opts.Component, proptypes.CheckWith(spec, props, opts))
}

// CheckComponentProps asserts that props satisfy the contract a component
// declares for itself, labelled with its display name.
//
// Example:
//
//	vtest.CheckComponentProps(t, Counter{}, proptypes.Props{"count": 3})
func CheckComponentProps(tb testing.TB, comp proptypes.Declarer, props proptypes.Props) bool {
	tb.Helper()
	label := ""
	if comp != nil {
		label = comp.DisplayName()
	}
	return report(tb, label, proptypes.CheckDeclarer(comp, props, proptypes.CheckOptions{}))
}

func report(tb testing.TB, label string, err error) bool {
	tb.Helper()
	if err == nil {
		return true
	}
	if label == "" {
		label = "<<anonymous>>"
	}
	if errors.Is(err, proptypes.ErrConformance) {
		tb.Errorf("vtest: props for %s do not satisfy its prop contract:\n%v", label, err)
		return false
	}
	tb.Fatalf("vtest: invalid prop contract for %s: %v", label, err)
	return false
}
