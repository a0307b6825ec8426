package vdom

import "strings"

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// AttrOf sets any attribute.
func AttrOf(key string, value any) Attr { return attr(key, value) }

// Data sets data-<key>.
func Data(key, value string) Attr { return attr("data-"+key, value) }

func ID(id string) Attr            { return attr("id", id) }
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }
func TitleAttr(title string) Attr  { return attr("title", title) }
func Role(role string) Attr        { return attr("role", role) }
func Href(url string) Attr         { return attr("href", url) }
func Alt(text string) Attr         { return attr("alt", text) }
func Width(w int) Attr             { return attr("width", w) }
func Name(name string) Attr        { return attr("name", name) }
func Value(value string) Attr      { return attr("value", value) }
func Type(t string) Attr           { return attr("type", t) }
func For(id string) Attr           { return attr("for", id) }
func TabIndex(index int) Attr      { return attr("tabindex", index) }
func AriaHidden(hidden bool) Attr  { return attr("aria-hidden", hidden) }

// Disabled renders as a bare boolean attribute.
func Disabled() Attr { return attr("disabled", true) }

// AttrIf returns a when condition holds and an empty Attr otherwise.
// Empty attrs are skipped by element builders.
func AttrIf(condition bool, a Attr) Attr {
	if !condition {
		return Attr{}
	}
	return a
}

// ClassIf is AttrIf for a single class.
func ClassIf(condition bool, class string) Attr {
	return AttrIf(condition, Class(class))
}

// Classes joins the non-empty strings among classes, which may be string
// or []string values. Other types are skipped.
func Classes(classes ...any) Attr {
	var names []string
	keep := func(s string) {
		if s != "" {
			names = append(names, s)
		}
	}
	for _, c := range classes {
		switch v := c.(type) {
		case string:
			keep(v)
		case []string:
			for _, s := range v {
				keep(s)
			}
		}
	}
	return Class(names...)
}
