package vdom

// voidElements never carry children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// IsVoidElement reports whether tag is an HTML void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// newElement builds an element node from builder arguments; see add for
// the accepted argument types.
func newElement(tag string, args []any) *VNode {
	node := &VNode{Kind: KindElement, Tag: tag, Props: make(Props)}
	for _, arg := range args {
		node.add(arg)
	}
	return node
}

// add applies one builder argument to v. Attributes and event handlers set
// props; nodes, node slices, components and strings append children.
// Anything else, including nil, is ignored.
func (v *VNode) add(arg any) {
	switch x := arg.(type) {
	case Attr:
		v.setAttr(x)
	case []Attr:
		for _, a := range x {
			v.setAttr(a)
		}
	case EventHandler:
		if v.Props != nil {
			v.Props[x.Event] = x.Handler
		}
	case *VNode:
		if x != nil {
			v.Children = append(v.Children, x)
		}
	case []*VNode:
		for _, child := range x {
			v.add(child)
		}
	case Component:
		v.Children = append(v.Children, &VNode{Kind: KindComponent, Comp: x})
	case string:
		v.Children = append(v.Children, Text(x))
	}
}

// setAttr applies a to the node; empty attrs are ignored and "key" also
// sets Key.
func (v *VNode) setAttr(a Attr) {
	if a.Key == "" || v.Props == nil {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
	}
	v.Props[a.Key] = a.Value
}

// CustomElement creates an element with any tag name, e.g. a web component.
func CustomElement(tag string, args ...any) *VNode { return newElement(tag, args) }

// Layout
func Div(args ...any) *VNode     { return newElement("div", args) }
func Section(args ...any) *VNode { return newElement("section", args) }
func Header(args ...any) *VNode  { return newElement("header", args) }
func Footer(args ...any) *VNode  { return newElement("footer", args) }
func Main(args ...any) *VNode    { return newElement("main", args) }
func Nav(args ...any) *VNode     { return newElement("nav", args) }

// Text
func H1(args ...any) *VNode   { return newElement("h1", args) }
func P(args ...any) *VNode    { return newElement("p", args) }
func Span(args ...any) *VNode { return newElement("span", args) }
func Em(args ...any) *VNode   { return newElement("em", args) }
func A(args ...any) *VNode    { return newElement("a", args) }
func Img(args ...any) *VNode  { return newElement("img", args) }

// Lists and tables
func Ul(args ...any) *VNode    { return newElement("ul", args) }
func Li(args ...any) *VNode    { return newElement("li", args) }
func Table(args ...any) *VNode { return newElement("table", args) }
func Tr(args ...any) *VNode    { return newElement("tr", args) }
func Td(args ...any) *VNode    { return newElement("td", args) }

// Forms
func Form(args ...any) *VNode   { return newElement("form", args) }
func Label(args ...any) *VNode  { return newElement("label", args) }
func Input(args ...any) *VNode  { return newElement("input", args) }
func Button(args ...any) *VNode { return newElement("button", args) }
