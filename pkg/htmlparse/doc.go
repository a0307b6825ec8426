// Package htmlparse turns HTML markup into vdom trees.
//
// It lets the test-attribute locator run against markup produced by any
// renderer, such as a saved snapshot or an HTTP response body:
//
//	tree, err := htmlparse.ParseString(body)
//	sel, err := vquery.Find(tree, "submit-button")
//
// Comments and doctypes are dropped. Attribute values are kept as strings.
package htmlparse
