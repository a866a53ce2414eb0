package render

import (
	"context"
	"fmt"

	"github.com/vango-dev/hookdom/pkg/dom"
	"github.com/vango-dev/hookdom/pkg/hooks"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

// fiber mirrors one rendered position of a virtual tree.
//
// An element fiber owns its DOM element and one child fiber per rendered
// child. A component fiber has exactly one child, the fiber of its output,
// and shares that child's DOM node.
type fiber struct {
	kind     vdom.VKind
	text     string      // text leaves
	vnode    *vdom.VNode // element and component nodes
	node     dom.Node
	inst     *instance        // component fibers
	owner    hooks.InstanceID // nearest enclosing component instance
	parent   *fiber
	children []*fiber
}

// childOwner returns the owner of f's children.
func (f *fiber) childOwner() hooks.InstanceID {
	if f.kind == vdom.KindComponent {
		return f.inst.id
	}
	return f.owner
}

// instance is the registry entry of a mounted component.
type instance struct {
	id     hooks.InstanceID
	parent hooks.InstanceID
	fiber  *fiber
	out    *vdom.VNode // last rendered output, nil when the body returned nil
	ctx    context.Context
	passes int
}

// Instance describes a mounted component instance.
type Instance struct {
	ID           hooks.InstanceID
	Parent       hooks.InstanceID // 0 for a root component
	Component    *vdom.VNode      // node the instance was last rendered from
	LastRendered *vdom.VNode      // last output, nil when the body returned nil
	DOM          dom.Node         // DOM node of the output
	Renders      int
}

func (i *instance) snapshot() Instance {
	return Instance{
		ID:           i.id,
		Parent:       i.parent,
		Component:    i.fiber.vnode,
		LastRendered: i.out,
		DOM:          i.fiber.node,
		Renders:      i.passes,
	}
}

// root is the record kept per container.
type root struct {
	vnode *vdom.VNode
	fiber *fiber
}

// renderable returns the children of v that can be rendered, in order.
// Nil and unsupported values are skipped so that child positions line up
// between the virtual tree and the fibers. Skipped values other than nil
// are traced.
func (r *Renderer) renderable(children []any) []any {
	for _, c := range children {
		if vdom.KindOf(c) == vdom.KindInvalid {
			out := make([]any, 0, len(children))
			for i, c := range children {
				if vdom.KindOf(c) != vdom.KindInvalid {
					out = append(out, c)
					continue
				}
				if c != nil {
					r.trace("render: skipped unsupported child", "index", i, "type", fmt.Sprintf("%T", c))
				}
			}
			return out
		}
	}
	return children
}

// output maps a component's return value to the child rendered in its
// place. A nil output renders as an empty text node.
func output(v *vdom.VNode) any {
	if v == nil {
		return ""
	}
	return v
}
