package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Document structure

func Div(props Props, children ...any) *VNode     { return H("div", props, children...) }
func Span(props Props, children ...any) *VNode    { return H("span", props, children...) }
func Section(props Props, children ...any) *VNode { return H("section", props, children...) }
func Header(props Props, children ...any) *VNode  { return H("header", props, children...) }
func Footer(props Props, children ...any) *VNode  { return H("footer", props, children...) }
func Main(props Props, children ...any) *VNode    { return H("main", props, children...) }
func Nav(props Props, children ...any) *VNode     { return H("nav", props, children...) }

// Text content

func P(props Props, children ...any) *VNode      { return H("p", props, children...) }
func H1(props Props, children ...any) *VNode     { return H("h1", props, children...) }
func H2(props Props, children ...any) *VNode     { return H("h2", props, children...) }
func H3(props Props, children ...any) *VNode     { return H("h3", props, children...) }
func Strong(props Props, children ...any) *VNode { return H("strong", props, children...) }
func Em(props Props, children ...any) *VNode     { return H("em", props, children...) }
func Code(props Props, children ...any) *VNode   { return H("code", props, children...) }

// Lists

func Ul(props Props, children ...any) *VNode { return H("ul", props, children...) }
func Ol(props Props, children ...any) *VNode { return H("ol", props, children...) }
func Li(props Props, children ...any) *VNode { return H("li", props, children...) }

// Forms and interaction

func Button(props Props, children ...any) *VNode { return H("button", props, children...) }
func Label(props Props, children ...any) *VNode  { return H("label", props, children...) }
func Form(props Props, children ...any) *VNode   { return H("form", props, children...) }
func Input(props Props) *VNode                   { return H("input", props) }
func A(props Props, children ...any) *VNode      { return H("a", props, children...) }
func Br() *VNode                                 { return H("br", nil) }
