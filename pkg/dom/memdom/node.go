package memdom

import (
	"sort"
	"strings"

	"github.com/vango-dev/hookdom/internal/identity"
	"github.com/vango-dev/hookdom/pkg/dom"
)

// Node is an element or a text node of a Document.
type Node struct {
	doc      *Document
	id       string
	tag      string // empty for text nodes
	text     string
	parent   *Node
	children []*Node

	attrs     map[string]string
	style     map[string]string
	listeners map[string][]any
}

var _ dom.Node = (*Node)(nil)

// ID returns the document-unique node id.
func (n *Node) ID() string { return n.id }

// Tag returns the element tag, or "" for text nodes.
func (n *Node) Tag() string { return n.tag }

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n.tag == "" }

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child nodes.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// NodeName implements dom.Node.
func (n *Node) NodeName() string {
	if n.IsText() {
		return "#text"
	}
	return n.tag
}

// ParentNode implements dom.Node.
func (n *Node) ParentNode() dom.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ChildNodes implements dom.Node.
func (n *Node) ChildNodes() []dom.Node {
	out := make([]dom.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// AppendChild implements dom.Node. A child attached elsewhere is moved.
func (n *Node) AppendChild(child dom.Node) {
	c := asNode(child)
	if c == nil {
		return
	}
	c.detach()
	c.parent = n
	n.children = append(n.children, c)
	n.doc.index(c)
	n.doc.journal.add(Mutation{Op: OpAppendChild, Node: n.id, Child: c.id})
}

// ReplaceChild implements dom.Node. It does nothing when oldChild is not a
// child of n.
func (n *Node) ReplaceChild(newChild, oldChild dom.Node) {
	nc, oc := asNode(newChild), asNode(oldChild)
	if nc == nil || oc == nil || oc.parent != n {
		return
	}
	nc.detach()
	i := n.indexOf(oc)
	n.children[i] = nc
	nc.parent = n
	oc.parent = nil
	n.doc.forget(oc)
	n.doc.index(nc)
	n.doc.journal.add(Mutation{Op: OpReplaceChild, Node: n.id, Child: nc.id, Old: oc.id})
}

// RemoveChild implements dom.Node. It does nothing when child is not a
// child of n.
func (n *Node) RemoveChild(child dom.Node) {
	c := asNode(child)
	if c == nil || c.parent != n {
		return
	}
	i := n.indexOf(c)
	n.children = append(n.children[:i], n.children[i+1:]...)
	c.parent = nil
	n.doc.forget(c)
	n.doc.journal.add(Mutation{Op: OpRemoveChild, Node: n.id, Child: c.id})
}

// GetAttribute implements dom.Node. The style attribute is composed from
// the inline style properties.
func (n *Node) GetAttribute(name string) (string, bool) {
	if name == "style" {
		if len(n.style) == 0 {
			return "", false
		}
		return n.styleText(), true
	}
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttribute implements dom.Node.
func (n *Node) SetAttribute(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
	n.doc.journal.add(Mutation{Op: OpSetAttribute, Node: n.id, Name: name, Value: value})
}

// RemoveAttribute implements dom.Node.
func (n *Node) RemoveAttribute(name string) {
	if name == "style" {
		n.style = nil
	}
	delete(n.attrs, name)
	n.doc.journal.add(Mutation{Op: OpRemoveAttribute, Node: n.id, Name: name})
}

// Attributes returns a copy of the element's attributes.
func (n *Node) Attributes() map[string]string {
	out := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// AddEventListener implements dom.Node. Adding the same listener twice for
// an event has no effect, as in the browser.
func (n *Node) AddEventListener(event string, listener any) {
	for _, l := range n.listeners[event] {
		if identity.Identical(l, listener) {
			return
		}
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]any)
	}
	n.listeners[event] = append(n.listeners[event], listener)
	n.doc.journal.add(Mutation{Op: OpAddEventListener, Node: n.id, Name: event})
}

// RemoveEventListener implements dom.Node.
func (n *Node) RemoveEventListener(event string, listener any) {
	list := n.listeners[event]
	for i, l := range list {
		if identity.Identical(l, listener) {
			n.listeners[event] = append(list[:i], list[i+1:]...)
			if len(n.listeners[event]) == 0 {
				delete(n.listeners, event)
			}
			n.doc.journal.add(Mutation{Op: OpRemoveEventListener, Node: n.id, Name: event})
			return
		}
	}
}

// Listeners returns the number of listeners registered for event.
func (n *Node) Listeners(event string) int {
	return len(n.listeners[event])
}

// SetClassName implements dom.Node.
func (n *Node) SetClassName(className string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs["class"] = className
	n.doc.journal.add(Mutation{Op: OpSetClassName, Node: n.id, Value: className})
}

// ClassName returns the element's class list.
func (n *Node) ClassName() string {
	return n.attrs["class"]
}

// SetStyle implements dom.Node. camelCase property names are stored in
// their CSS form ("backgroundColor" becomes "background-color"). An empty
// value removes the property.
func (n *Node) SetStyle(property, value string) {
	prop := cssProperty(property)
	if value == "" {
		delete(n.style, prop)
	} else {
		if n.style == nil {
			n.style = make(map[string]string)
		}
		n.style[prop] = value
	}
	n.doc.journal.add(Mutation{Op: OpSetStyle, Node: n.id, Name: prop, Value: value})
}

// Style returns one inline style property.
func (n *Node) Style(property string) string {
	return n.style[cssProperty(property)]
}

// TextContent implements dom.Node.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// SetTextContent implements dom.Node. On an element it replaces all
// children with one text node.
func (n *Node) SetTextContent(text string) {
	if n.IsText() {
		n.text = text
		n.doc.journal.add(Mutation{Op: OpSetText, Node: n.id, Value: text})
		return
	}
	for _, c := range n.children {
		c.parent = nil
		n.doc.forget(c)
	}
	n.children = nil
	n.doc.journal.add(Mutation{Op: OpSetText, Node: n.id, Value: text})
	if text != "" {
		t := &Node{doc: n.doc, id: n.doc.newID(), text: text, parent: n}
		n.children = []*Node{t}
		n.doc.nodes[t.id] = t
	}
}

// Query returns the first descendant element with the given tag, in
// document order.
func (n *Node) Query(tag string) *Node {
	for _, c := range n.children {
		if c.tag == tag {
			return c
		}
		if found := c.Query(tag); found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns every descendant element with the given tag.
func (n *Node) QueryAll(tag string) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.tag == tag {
			out = append(out, c)
		}
		out = append(out, c.QueryAll(tag)...)
	}
	return out
}

// QueryAttr returns the first descendant element whose attribute name has
// the given value.
func (n *Node) QueryAttr(name, value string) *Node {
	for _, c := range n.children {
		if v, ok := c.attrs[name]; ok && v == value {
			return c
		}
		if found := c.QueryAttr(name, value); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	i := p.indexOf(n)
	p.children = append(p.children[:i], p.children[i+1:]...)
	n.parent = nil
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) styleText() string {
	props := make([]string, 0, len(n.style))
	for k := range n.style {
		props = append(props, k)
	}
	sort.Strings(props)
	parts := make([]string, len(props))
	for i, k := range props {
		parts[i] = k + ": " + n.style[k]
	}
	return strings.Join(parts, "; ")
}

func asNode(v dom.Node) *Node {
	n, _ := v.(*Node)
	return n
}

// index registers a subtree in the id index.
func (d *Document) index(n *Node) {
	d.nodes[n.id] = n
	for _, c := range n.children {
		d.index(c)
	}
}

// cssProperty converts a camelCase style property to its CSS name.
func cssProperty(p string) string {
	if strings.Contains(p, "-") {
		return p
	}
	var b strings.Builder
	for _, r := range p {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
