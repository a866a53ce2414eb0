package memdom

import (
	"strconv"

	"github.com/vango-dev/hookdom/pkg/dom"
)

// RootID is the node id of the document's root container.
const RootID = "root"

// Document creates and tracks nodes. It implements dom.Host.
type Document struct {
	nextID  int
	nodes   map[string]*Node
	root    *Node
	journal Journal
}

var _ dom.Host = (*Document)(nil)

// NewDocument creates a document with an empty root container.
func NewDocument() *Document {
	d := &Document{nodes: make(map[string]*Node)}
	d.root = &Node{doc: d, id: RootID, tag: "div"}
	d.nodes[RootID] = d.root
	return d
}

// Root returns the root container element.
func (d *Document) Root() *Node {
	return d.root
}

// Journal returns the document's mutation journal.
func (d *Document) Journal() *Journal {
	return &d.journal
}

// NodeByID returns a live node by id.
func (d *Document) NodeByID(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// CreateElement implements dom.Host.
func (d *Document) CreateElement(tag string) dom.Node {
	n := &Node{doc: d, id: d.newID(), tag: tag}
	d.nodes[n.id] = n
	d.journal.add(Mutation{Op: OpCreateElement, Node: n.id, Name: tag})
	return n
}

// CreateTextNode implements dom.Host.
func (d *Document) CreateTextNode(text string) dom.Node {
	n := &Node{doc: d, id: d.newID(), text: text}
	d.nodes[n.id] = n
	d.journal.add(Mutation{Op: OpCreateText, Node: n.id, Value: text})
	return n
}

func (d *Document) newID() string {
	d.nextID++
	return "n" + strconv.Itoa(d.nextID)
}

// forget drops a detached subtree from the id index.
func (d *Document) forget(n *Node) {
	if n == d.root {
		return
	}
	delete(d.nodes, n.id)
	for _, c := range n.children {
		d.forget(c)
	}
}

// Dispatch delivers ev to target's listeners for ev.Type and then bubbles it
// up through the ancestors until a listener stops propagation. It returns the
// number of listeners invoked.
func (d *Document) Dispatch(target *Node, ev *dom.Event) int {
	if target == nil || ev == nil {
		return 0
	}
	ev.Target = target
	invoked := 0
	for n := target; n != nil; n = n.parent {
		listeners := append([]any(nil), n.listeners[ev.Type]...)
		for _, l := range listeners {
			if dom.Invoke(l, ev) {
				invoked++
			}
		}
		if ev.Stopped() {
			break
		}
	}
	return invoked
}
