package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Runtime errors (E001-E099)

	"E000": {
		Category: CategoryRuntime,
		Message:  "Render failed",
		Detail:   "The renderer returned an error that has no dedicated code.",
	},
	"E001": {
		Category:   CategoryRuntime,
		Message:    "Hook called outside a component",
		Detail:     "UseState and UseEffect resolve the running component through the context passed to the component body. The hook received a context without a component frame, or the frame of a component that is not rendering.",
		Suggestion: "Pass the ctx argument of the component body to every hook call, and call hooks only while the body runs.",
	},
	"E002": {
		Category:   CategoryRuntime,
		Message:    "Hook order changed between renders",
		Detail:     "A component called a different number or kind of hooks than on its previous render. Hook slots are matched by call order.",
		Suggestion: "Call UseState and UseEffect unconditionally at the top of the component body.",
	},
	"E003": {
		Category:   CategoryRuntime,
		Message:    "Render container is nil",
		Detail:     "Render needs a DOM node to mount the tree into.",
		Suggestion: "Pass the document root, or another element, as the container.",
	},
	"E004": {
		Category:   CategoryRuntime,
		Message:    "Maximum update depth exceeded",
		Detail:     "State updates kept scheduling re-renders. This usually means an effect without a dependency list sets state on every render.",
		Suggestion: "Give the effect a dependency list with hooks.Deps(...), or raise render.maxUpdateDepth.",
	},

	// Config errors (E120-E149)

	"E120": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Detail:     "The configuration file could not be parsed.",
		Suggestion: "Check the file for syntax errors.",
	},
	"E121": {
		Category:   CategoryConfig,
		Message:    "Unsupported configuration format",
		Detail:     "Configuration files must end in .json, .yaml or .yml.",
		Suggestion: "Rename the file to hookdom.json or hookdom.yaml.",
	},
	"E122": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration value",
		Detail:     "A configuration value is out of range.",
	},
	"E141": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Detail:     "No hookdom.json, hookdom.yaml or hookdom.yml was found in the directory.",
		Suggestion: "Run the command from the project directory or pass --config.",
	},

	// Snapshot errors (E150-E169)

	"E150": {
		Category:   CategorySnapshot,
		Message:    "Snapshot upload failed",
		Detail:     "The rendered HTML could not be stored in the snapshot bucket.",
		Suggestion: "Check the bucket name, the region and the AWS credentials in the environment.",
	},
	"E151": {
		Category:   CategorySnapshot,
		Message:    "Snapshot bucket not configured",
		Detail:     "Uploading a snapshot needs a bucket name.",
		Suggestion: "Set snapshot.bucket in the config file or pass --bucket.",
	},

	// Server errors (E170-E189)

	"E170": {
		Category:   CategoryServer,
		Message:    "Preview server failed",
		Detail:     "The preview server stopped with an error.",
		Suggestion: "Check that the address is free, or pick another port with --addr.",
	},
}

// Register adds or replaces an error template.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

// Get returns the template for an error code.
func Get(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns all registered codes in order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
