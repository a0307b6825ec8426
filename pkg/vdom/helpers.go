package vdom

import "fmt"

// Text creates an escaped text node.
func Text(content string) *VNode { return &VNode{Kind: KindText, Text: content} }

// Textf is Text with fmt.Sprintf formatting.
func Textf(format string, args ...any) *VNode { return Text(fmt.Sprintf(format, args...)) }

// Raw creates a node whose HTML is emitted unescaped.
func Raw(html string) *VNode { return &VNode{Kind: KindRaw, Text: html} }

// Fragment groups children without a wrapper element. It accepts the same
// child arguments as element builders; attributes are ignored.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment}
	for _, c := range children {
		switch c.(type) {
		case Attr, []Attr, EventHandler:
			continue
		}
		node.add(c)
	}
	return node
}

// If returns node when condition holds, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if !condition {
		return nil
	}
	return node
}

// When is If with a lazily built node.
func When(condition bool, fn func() *VNode) *VNode {
	if !condition {
		return nil
	}
	return fn()
}

// Range builds one node per item, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Key labels a node among its siblings, e.g. items built by Range.
// Locator results can then be told apart by VNode.Key.
func Key(key any) Attr { return attr("key", fmt.Sprint(key)) }
