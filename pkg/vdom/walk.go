package vdom

// Walk visits node and its descendants depth-first in document order.
//
// Fragments are visited like any other node. Component nodes are expanded
// by calling Render and walking the result in their place, so fn sees the
// rendered output rather than the component wrapper. Returning false from
// fn stops the walk; Walk reports whether it ran to completion.
func Walk(node *VNode, fn func(*VNode) bool) bool {
	if node == nil {
		return true
	}

	if node.Kind == KindComponent {
		if node.Comp == nil {
			return true
		}
		return Walk(node.Comp.Render(), fn)
	}

	if !fn(node) {
		return false
	}

	for _, child := range node.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}
