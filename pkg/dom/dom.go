// Package dom defines the host DOM capability the reconciler renders into.
//
// The reconciler never touches a concrete DOM. It creates nodes through a
// Host and mutates them through Node. A browser binding, a remote DOM or the
// in-memory memdom shim can all stand behind these interfaces.
package dom

// Host creates nodes.
type Host interface {
	// CreateElement creates a detached element with the given tag name.
	CreateElement(tag string) Node

	// CreateTextNode creates a detached text node.
	CreateTextNode(text string) Node
}

// Node is an element or text node.
type Node interface {
	// NodeName returns the tag name of an element or "#text".
	NodeName() string

	ParentNode() Node
	ChildNodes() []Node
	AppendChild(child Node)
	ReplaceChild(newChild, oldChild Node)
	RemoveChild(child Node)

	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	// AddEventListener registers listener for event. Listeners are func
	// values (see Invoke) and are matched by identity on removal.
	AddEventListener(event string, listener any)
	RemoveEventListener(event string, listener any)

	// SetClassName replaces the element's class list.
	SetClassName(className string)

	// SetStyle assigns one inline style property.
	SetStyle(property, value string)

	TextContent() string
	SetTextContent(text string)
}

// ChildAt returns the child of parent at index i, or nil.
func ChildAt(parent Node, i int) Node {
	children := parent.ChildNodes()
	if i < 0 || i >= len(children) {
		return nil
	}
	return children[i]
}
