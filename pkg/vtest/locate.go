package vtest

import (
	"testing"

	"github.com/vango-dev/testkit/pkg/vdom"
	"github.com/vango-dev/testkit/pkg/vquery"
)

// FindByTestAttr returns every node in tree whose test attribute equals id,
// in document order. The selection is empty when nothing matches. A nil tree
// fails the test immediately.
//
// Example:
//
//	sel := vtest.FindByTestAttr(t, Counter(0), "counter-display")
//	require.Equal(t, 1, sel.Len())
func FindByTestAttr(tb testing.TB, tree *vdom.VNode, id string) *vquery.Selection {
	tb.Helper()
	sel, err := vquery.Find(tree, id)
	if err != nil {
		tb.Fatalf("vtest: FindByTestAttr(%q): %v", id, err)
		return nil
	}
	return sel
}

// ExpectTestAttrCount asserts that exactly n nodes carry the test
// identifier id.
func ExpectTestAttrCount(tb testing.TB, tree *vdom.VNode, id string, n int) {
	tb.Helper()
	sel := FindByTestAttr(tb, tree, id)
	if sel == nil {
		return
	}
	if got := sel.Len(); got != n {
		tb.Errorf("expected %d node(s) with %s=%q, found %d, got:\n%s",
			n, vdom.TestAttr, id, got, truncate(RenderToString(tree), 500))
	}
}
