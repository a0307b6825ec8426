package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Usage Errors (E001-E003)
	// ============================================

	"E001": {
		Category:   CategoryUsage,
		Message:    "Rendered tree is nil",
		Detail:     "A locator query needs a rendered tree. A nil tree means the component was never rendered or its render function returned nil.",
		Suggestion: "Render the component first and pass the resulting *vdom.VNode",
	},
	"E002": {
		Category:   CategoryUsage,
		Message:    "Prop contract is missing",
		Detail:     "The component under test does not declare a prop contract, so its props cannot be checked.",
		Suggestion: "Declare a proptypes.Spec for the component or implement proptypes.Declarer",
	},
	"E003": {
		Category:   CategoryUsage,
		Message:    "Prop contract contains an invalid validator",
		Detail:     "Every prop in a contract must map to a non-nil proptypes.Validator.",
		Suggestion: "Use a constructor such as proptypes.String() or proptypes.Number().IsRequired()",
	},

	// ============================================
	// Parse Errors (E004-E009)
	// ============================================

	"E004": {
		Category: CategoryParse,
		Message:  "HTML could not be parsed",
		Detail:   "The input could not be read as an HTML document or fragment.",
	},
	"E005": {
		Category:   CategoryParse,
		Message:    "Prop contract file could not be decoded",
		Detail:     "Contract files are YAML or JSON documents with a component name and a props mapping.",
		Suggestion: "Check the prop types used; supported types are listed in the proptypes package docs",
	},
	"E006": {
		Category: CategoryParse,
		Message:  "Props file could not be decoded",
		Detail:   "A props file must be a YAML or JSON mapping from prop name to value.",
	},

	// ============================================
	// Config Errors (E010-E019)
	// ============================================

	"E010": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Suggestion: "Check vtestkit.yaml and VTESTKIT_* environment variables",
	},

	// ============================================
	// Conformance Errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryConformance,
		Message:  "Props do not satisfy the component's prop contract",
	},
	"E021": {
		Category: CategoryConformance,
		Message:  "Unexpected number of test attribute matches",
	},

	// ============================================
	// CLI Errors (E030-E039)
	// ============================================

	"E030": {
		Category:   CategoryCLI,
		Message:    "Input file could not be read",
		Suggestion: "Check the path and its permissions, or pass - to read stdin",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
