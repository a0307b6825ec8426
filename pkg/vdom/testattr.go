package vdom

// TestAttr is the attribute test authors add to markup so tests can find
// elements without depending on classes, ids or structure.
// Locators match it exactly and case-sensitively.
const TestAttr = "data-test"

// TestID tags an element with the test attribute.
//
//	Button(TestID("submit-button"), Text("Save"))
//
// renders as <button data-test="submit-button">Save</button>.
func TestID(id string) Attr { return attr(TestAttr, id) }
