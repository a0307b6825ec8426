package vquery

import (
	"strings"

	"github.com/vango-dev/testkit/pkg/render"
	"github.com/vango-dev/testkit/pkg/vdom"
)

// Selection is an ordered, read-only set of nodes taken from a rendered tree.
// The nodes are shared with the tree; a Selection never copies or mutates them.
type Selection struct {
	nodes []*vdom.VNode
}

// Len returns the number of selected nodes.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.nodes)
}

// Empty reports whether nothing was selected.
func (s *Selection) Empty() bool {
	return s.Len() == 0
}

// Nodes returns the selected nodes in document order.
// The returned slice is a copy.
func (s *Selection) Nodes() []*vdom.VNode {
	out := make([]*vdom.VNode, s.Len())
	if s != nil {
		copy(out, s.nodes)
	}
	return out
}

// At returns the i-th selected node, or nil if i is out of range.
func (s *Selection) At(i int) *vdom.VNode {
	if i < 0 || i >= s.Len() {
		return nil
	}
	return s.nodes[i]
}

// First returns the first selected node, or nil for an empty selection.
func (s *Selection) First() *vdom.VNode {
	return s.At(0)
}

// Each calls fn for every selected node in order.
func (s *Selection) Each(fn func(i int, node *vdom.VNode)) {
	for i := 0; i < s.Len(); i++ {
		fn(i, s.nodes[i])
	}
}

// Text returns the text content of all selected nodes, concatenated.
func (s *Selection) Text() string {
	var b strings.Builder
	s.Each(func(_ int, n *vdom.VNode) {
		b.WriteString(n.TextContent())
	})
	return b.String()
}

// Attr returns the named attribute of the first selected node.
func (s *Selection) Attr(key string) (string, bool) {
	return s.First().AttrString(key)
}

// Find searches the descendants of the selected nodes for identifier.
// The selected nodes themselves are not candidates unless they sit inside
// another selected node. Results are de-duplicated and kept in document
// order.
func (s *Selection) Find(identifier string) *Selection {
	return s.FindAttr(vdom.TestAttr, identifier)
}

// FindAttr is Find for an arbitrary attribute key.
func (s *Selection) FindAttr(key, value string) *Selection {
	var children []*vdom.VNode
	s.Each(func(_ int, n *vdom.VNode) {
		children = append(children, n.Children...)
	})
	return &Selection{nodes: match(children, key, value)}
}

// HTML renders the selected nodes back to HTML, one after another.
func (s *Selection) HTML() (string, error) {
	r := render.NewRenderer(render.RendererConfig{})
	var b strings.Builder
	for _, n := range s.Nodes() {
		if err := r.RenderToWriter(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
