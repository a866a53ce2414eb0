package vdom

import "context"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindInvalid   VKind = iota // nil or unsupported child value
	KindElement                // <div>, <button>, etc.
	KindText                   // string or number leaf
	KindComponent              // function component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	default:
		return "Invalid"
	}
}

// Component maps a property bag to the VNode it renders. The context carries
// the hook frame of the component instance being rendered.
type Component func(ctx context.Context, props Props) *VNode

// Props holds attributes, styles and event handlers. The reserved keys
// "children" and "key" never appear in a built node's Props.
type Props map[string]any

// VNode is the virtual DOM node.
type VNode struct {
	Tag      string    // Host element tag, empty for components
	Comp     Component // Function component, nil for host elements
	Props    Props     // Attributes and event handlers
	Children []any     // *VNode, string or number values
	Key      any       // Identity hint, not used by the child diff
}

// Kind returns KindComponent or KindElement.
func (v *VNode) Kind() VKind {
	if v == nil {
		return KindInvalid
	}
	if v.Comp != nil {
		return KindComponent
	}
	return KindElement
}

// IsComponent reports whether the node is a function component.
func (v *VNode) IsComponent() bool {
	return v != nil && v.Comp != nil
}

// KindOf classifies a child value.
func KindOf(child any) VKind {
	switch c := child.(type) {
	case nil:
		return KindInvalid
	case *VNode:
		return c.Kind()
	}
	if _, ok := TextOf(child); ok {
		return KindText
	}
	return KindInvalid
}
