package vquery

import (
	stderrors "errors"

	"github.com/vango-dev/testkit/internal/errors"
	"github.com/vango-dev/testkit/pkg/vdom"
)

// ErrNilTree is returned when a query is run against a nil tree.
// It indicates a broken test setup, not a missing element.
var ErrNilTree = stderrors.New("vquery: nil tree")

// Find returns every element whose vdom.TestAttr attribute equals
// identifier exactly, in depth-first document order.
//
// Matches nested inside other matches are included. No match, including
// an empty identifier, yields an empty selection and a nil error.
//
// Example:
//
//	sel, err := vquery.Find(tree, "submit-button")
//	if err != nil {
//	    return err
//	}
//	if sel.Len() != 1 {
//	    t.Errorf("expected one submit button, found %d", sel.Len())
//	}
func Find(tree *vdom.VNode, identifier string) (*Selection, error) {
	return FindAttr(tree, vdom.TestAttr, identifier)
}

// FindAttr is Find for an arbitrary attribute key.
func FindAttr(tree *vdom.VNode, key, value string) (*Selection, error) {
	if tree == nil {
		return nil, errors.New("E001").Wrap(ErrNilTree)
	}
	return &Selection{nodes: match([]*vdom.VNode{tree}, key, value)}, nil
}

// match collects matching elements under each root, skipping nodes
// already collected through an earlier root.
func match(roots []*vdom.VNode, key, value string) []*vdom.VNode {
	nodes := make([]*vdom.VNode, 0)
	if value == "" {
		return nodes
	}

	seen := make(map[*vdom.VNode]bool)
	for _, root := range roots {
		vdom.Walk(root, func(n *vdom.VNode) bool {
			if n.Kind != vdom.KindElement || seen[n] {
				return true
			}
			if got, ok := n.AttrString(key); ok && got == value {
				seen[n] = true
				nodes = append(nodes, n)
			}
			return true
		})
	}
	return nodes
}
