package htmlparse

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/testkit/internal/errors"
	"github.com/vango-dev/testkit/pkg/vdom"
)

// Parse reads HTML from r and returns it as a Fragment node.
//
// Input that starts with a doctype or an <html> tag is parsed as a full
// document and the fragment holds the <html> element. Anything else is
// parsed as body content and the fragment holds the top-level nodes.
func Parse(r io.Reader) (*vdom.VNode, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("E004").Wrap(err)
	}

	var roots []*html.Node
	if isDocument(src) {
		doc, err := html.Parse(bytes.NewReader(src))
		if err != nil {
			return nil, errors.New("E004").Wrap(err)
		}
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			roots = append(roots, c)
		}
	} else {
		body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
		roots, err = html.ParseFragment(bytes.NewReader(src), body)
		if err != nil {
			return nil, errors.New("E004").Wrap(err)
		}
	}

	frag := &vdom.VNode{Kind: vdom.KindFragment}
	for _, n := range roots {
		if child := convert(n); child != nil {
			frag.Children = append(frag.Children, child)
		}
	}
	return frag, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*vdom.VNode, error) {
	return Parse(strings.NewReader(s))
}

func isDocument(src []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(src))
	if len(head) > 64 {
		head = head[:64]
	}
	return bytes.HasPrefix(head, []byte("<!doctype")) || bytes.HasPrefix(head, []byte("<html"))
}

func convert(n *html.Node) *vdom.VNode {
	switch n.Type {
	case html.TextNode:
		return &vdom.VNode{Kind: vdom.KindText, Text: n.Data}
	case html.ElementNode:
		node := &vdom.VNode{Kind: vdom.KindElement, Tag: n.Data}
		if len(n.Attr) > 0 {
			node.Props = make(vdom.Props, len(n.Attr))
			for _, a := range n.Attr {
				key := a.Key
				if a.Namespace != "" {
					key = a.Namespace + ":" + a.Key
				}
				node.Props[key] = a.Val
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := convert(c); child != nil {
				node.Children = append(node.Children, child)
			}
		}
		return node
	default:
		// Comments, doctypes and other node types carry no test hooks.
		return nil
	}
}
