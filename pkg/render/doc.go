// Package render converts VNode trees into HTML.
//
// Output is deterministic: attributes are written in sorted order, event
// handlers and reconciliation keys are omitted, text and attribute values
// are escaped, and void elements get no closing tag. This makes rendered
// selections safe to compare in tests and golden files.
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(node)
package render
