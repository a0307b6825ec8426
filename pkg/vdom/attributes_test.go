package vdom

import "testing"

func TestAttributeHelpers(t *testing.T) {
	tests := []struct {
		name    string
		attr    Attr
		wantKey string
		wantVal any
	}{
		{"ID", ID("main"), "id", "main"},
		{"Class", Class("a", "b"), "class", "a b"},
		{"Data", Data("id", "123"), "data-id", "123"},
		{"TestID", TestID("submit"), "data-test", "submit"},
		{"Href", Href("/home"), "href", "/home"},
		{"Type", Type("text"), "type", "text"},
		{"Disabled", Disabled(), "disabled", true},
		{"TabIndex", TabIndex(3), "tabindex", 3},
		{"AriaHidden", AriaHidden(true), "aria-hidden", true},
		{"AttrOf", AttrOf("aria-busy", false), "aria-busy", false},
		{"TitleAttr", TitleAttr("tip"), "title", "tip"},
		{"Role", Role("dialog"), "role", "dialog"},
		{"Alt", Alt("logo"), "alt", "logo"},
		{"Width", Width(32), "width", 32},
		{"Name", Name("email"), "name", "email"},
		{"Value", Value("x"), "value", "x"},
		{"For", For("email"), "for", "email"},
		{"Key", Key(3), "key", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value != tt.wantVal {
				t.Errorf("Value = %v, want %v", tt.attr.Value, tt.wantVal)
			}
		})
	}
}

func TestClasses(t *testing.T) {
	a := Classes("btn", "", []string{"primary", ""}, 42)
	if a.Value != "btn primary" {
		t.Errorf("Classes() = %q, want %q", a.Value, "btn primary")
	}
}

func TestTestAttrConstant(t *testing.T) {
	if TestAttr != "data-test" {
		t.Errorf("TestAttr = %q, want data-test", TestAttr)
	}
}
