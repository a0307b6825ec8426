// Package vtest provides testing helpers for Vango components.
//
// The helpers take a testing.TB and report failures through it, so they
// work from tests, benchmarks and fuzz targets, and are safe to call from
// parallel subtests.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    tree := Counter(3)
//	    sel := vtest.FindByTestAttr(t, tree, "counter-display")
//	    require.Equal(t, 1, sel.Len())
//	    assert.Equal(t, "3", sel.Text())
//	}
//
// # Locating Nodes
//
// FindByTestAttr matches the vdom.TestAttr attribute that vdom.TestID
// emits. Results are in document order and include nested matches:
//
//	vtest.ExpectTestAttrCount(t, TodoList(items), "todo-item", len(items))
//
// # Prop Contracts
//
// CheckProps asserts that a prop set satisfies a component's contract:
//
//	spec := proptypes.Spec{"count": proptypes.Number().IsRequired()}
//	vtest.CheckProps(t, spec, proptypes.Props{"count": 3}, "Counter")
//
// Components that implement proptypes.Declarer can be checked directly:
//
//	vtest.CheckComponentProps(t, CounterContract, props)
//
// A violation fails the test with a message naming the component and each
// offending prop. A nil spec or validator stops the test, since the test
// itself is broken.
//
// # Render Assertions
//
// Assert on rendered HTML output:
//
//	vtest.ExpectContains(t, comp, "Welcome Admin")
//	vtest.ExpectNotContains(t, comp, "Login")
package vtest
