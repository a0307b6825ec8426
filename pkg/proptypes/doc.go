// Package proptypes declares and checks component prop contracts.
//
// A Spec maps each prop name to a Validator. The built-in validators are
// tagged variants of Type, optional by default:
//
//	spec := proptypes.Spec{
//	    "count":   proptypes.Number().IsRequired(),
//	    "label":   proptypes.String(),
//	    "variant": proptypes.OneOf("primary", "secondary"),
//	    "user": proptypes.Shape(map[string]proptypes.Validator{
//	        "name": proptypes.String().IsRequired(),
//	    }),
//	    "tags": proptypes.ArrayOf(proptypes.String()),
//	}
//
// Check runs every declared validator against a Props value set and
// returns nil when the props conform. Checking is one-directional: props
// the spec does not declare are ignored (use Exact inside a shape to
// reject unknown keys).
//
// # Aggregation
//
// All violations are reported by default, one per prop, in sorted prop
// order. Within a single nested prop the first failing element or field
// is reported. CheckOptions.FailFast stops at the first violating prop.
//
// # Contract Files
//
// Decode reads the same contracts from YAML or JSON so the vtestkit CLI
// can check props outside a Go test.
package proptypes
