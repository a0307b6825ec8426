// Package vquery locates elements in a rendered tree by their test attribute.
//
// Test authors tag markup with vdom.TestID and query for it:
//
//	tree := Counter(5)
//	sel, err := vquery.Find(tree, "counter-display")
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if sel.Text() != "5" { ... }
//
// Queries are pure reads. A nil tree is a usage error (ErrNilTree); an
// identifier that matches nothing is simply an empty Selection, and the
// caller decides whether that fails the test.
package vquery
