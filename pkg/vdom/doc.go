// Package vdom provides the virtual DOM tree that components render to.
//
// VNode is the fundamental building block representing elements, text,
// fragments, components and raw HTML. Props holds attributes and event
// handlers.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), TestID("card"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Test Hooks
//
// TestAttr names the attribute that test locators match on, and TestID
// emits it. Markup and tests share the constant so the convention lives in
// one place.
//
// # Traversal
//
// Walk visits a tree depth-first in document order, expanding components
// through their Render method.
package vdom
