package vtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/vango-dev/testkit/pkg/vdom"
	"github.com/vango-dev/testkit/pkg/vtest"
)

func TestRenderToString(t *testing.T) {
	node := Div(
		Class("container"),
		H1(Text("Hello")),
		P(Text("World")),
	)

	html := vtest.RenderToString(node)
	assert.Equal(t, `<div class="container"><h1>Hello</h1><p>World</p></div>`, html)
}

func TestRenderToString_Nil(t *testing.T) {
	assert.Equal(t, "", vtest.RenderToString(nil))
}

func TestExpectContains(t *testing.T) {
	node := Div(Text("Hello World"))

	rec := &recorder{}
	vtest.ExpectContains(rec, node, "Hello")
	assert.False(t, rec.Failed())

	vtest.ExpectContains(rec, node, "Goodbye")
	assert.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], `"Goodbye"`)
}

func TestExpectNotContains(t *testing.T) {
	node := Div(Text("Hello World"))

	rec := &recorder{}
	vtest.ExpectNotContains(rec, node, "Goodbye")
	assert.False(t, rec.Failed())

	vtest.ExpectNotContains(rec, node, "World")
	assert.Len(t, rec.errors, 1)
}

func TestExpectElement(t *testing.T) {
	node := Div(Span(Text("x")), Button(Text("go")))

	rec := &recorder{}
	vtest.ExpectElement(rec, node, "button")
	assert.False(t, rec.Failed())

	vtest.ExpectElement(rec, node, "b")
	assert.Len(t, rec.errors, 1, "tag match is exact, <b> is not <button>")
}

func TestExpectAttribute(t *testing.T) {
	node := Div(Class("btn-primary"), Input(Type("text"), Disabled()))

	rec := &recorder{}
	vtest.ExpectAttribute(rec, node, "class", "btn-primary")
	vtest.ExpectAttribute(rec, node, "type", "text")
	vtest.ExpectAttribute(rec, node, "disabled", "true")
	assert.False(t, rec.Failed())

	vtest.ExpectAttribute(rec, node, "class", "btn")
	assert.Len(t, rec.errors, 1)
}

func TestExpectAttribute_RenderedForms(t *testing.T) {
	node := Div(AttrOf("aria-busy", false), Span(AttrOf("data-empty", nil), TabIndex(2)))

	rec := &recorder{}
	vtest.ExpectAttribute(rec, node, "aria-busy", "false")
	vtest.ExpectAttribute(rec, node, "tabindex", "2")
	assert.False(t, rec.Failed())

	vtest.ExpectAttribute(rec, node, "data-empty", "")
	assert.Len(t, rec.errors, 1, "nil attributes are absent")
}

func TestTruncatedOutput(t *testing.T) {
	var items []any
	for i := 0; i < 200; i++ {
		items = append(items, Li(Text("item")))
	}
	node := Ul(items...)

	rec := &recorder{}
	vtest.ExpectContains(rec, node, "missing")
	assert.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "...")
}
