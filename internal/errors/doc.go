// Package errors provides structured, actionable error messages for the
// testkit CLI and for usage errors raised by the library packages.
//
// Each error has a unique code (e.g., "E001") that maps to a short message,
// a longer explanation and, where one exists, a fix hint.
//
// # Error Categories
//
//   - usage: broken test setup (nil tree, missing prop contract)
//   - parse: unreadable HTML, contract or props files
//   - config: invalid vtestkit.yaml or environment overrides
//   - conformance: props that fail their contract (CLI only)
//
// # Usage
//
//	err := errors.New("E005").
//	    WithLocation("contracts/counter.yaml", 4, 0).
//	    Wrap(decodeErr)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E005: Prop contract file could not be decoded
//	//
//	//   contracts/counter.yaml:4
//	//
//	//       2 │ props:
//	//       3 │   count:
//	//   →   4 │     type: numbr
//	//  ...
package errors
