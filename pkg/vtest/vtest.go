package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/testkit/pkg/render"
	"github.com/vango-dev/testkit/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// This is useful for asserting on rendered output.
//
// Example:
//
//	html := vtest.RenderToString(MyComponent())
//	if !strings.Contains(html, "expected text") {
//	    t.Error("missing expected text")
//	}
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, comp.Render(), "Welcome Admin")
func ExpectContains(tb testing.TB, node *vdom.VNode, expected string) {
	tb.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		tb.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(tb testing.TB, node *vdom.VNode, unexpected string) {
	tb.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		tb.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that the tree contains an element with the given tag.
//
// Example:
//
//	vtest.ExpectElement(t, comp.Render(), "button")
func ExpectElement(tb testing.TB, node *vdom.VNode, tag string) {
	tb.Helper()
	found := false
	vdom.Walk(node, func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindElement && n.Tag == tag {
			found = true
			return false
		}
		return true
	})
	if !found {
		tb.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(RenderToString(node), 500))
	}
}

// ExpectAttribute asserts that some element in the tree carries attr=value.
//
// Example:
//
//	vtest.ExpectAttribute(t, comp.Render(), "class", "btn-primary")
func ExpectAttribute(tb testing.TB, node *vdom.VNode, attr, value string) {
	tb.Helper()
	found := false
	vdom.Walk(node, func(n *vdom.VNode) bool {
		if n.Kind != vdom.KindElement {
			return true
		}
		if got, ok := n.AttrString(attr); ok && got == value {
			found = true
			return false
		}
		return true
	})
	if !found {
		tb.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(RenderToString(node), 500))
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
