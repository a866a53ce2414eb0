package render

import (
	"context"

	"github.com/vango-dev/hookdom/pkg/hooks"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

// mount creates the DOM for child and returns its fiber. The returned node
// is detached; the caller attaches it.
func (r *Renderer) mount(ctx context.Context, parent *fiber, owner hooks.InstanceID, child any) (*fiber, error) {
	switch vdom.KindOf(child) {
	case vdom.KindText:
		text, _ := vdom.TextOf(child)
		f := &fiber{kind: vdom.KindText, text: text, owner: owner, parent: parent}
		f.node = r.host.CreateTextNode(text)
		r.recordMutation("createText")
		return f, nil

	case vdom.KindElement:
		return r.mountElement(ctx, parent, owner, child.(*vdom.VNode))

	case vdom.KindComponent:
		return r.mountComponent(ctx, parent, owner, child.(*vdom.VNode))
	}
	// renderable filters everything else out before we get here.
	panic("render: mount of unsupported child")
}

func (r *Renderer) mountElement(ctx context.Context, parent *fiber, owner hooks.InstanceID, v *vdom.VNode) (*fiber, error) {
	el := r.host.CreateElement(v.Tag)
	r.recordMutation("createElement")
	f := &fiber{kind: vdom.KindElement, vnode: v, node: el, owner: owner, parent: parent}
	r.applyProps(el, nil, v.Props)

	for _, c := range r.renderable(v.Children) {
		cf, err := r.mount(ctx, f, owner, c)
		if err != nil {
			r.unmount(f)
			return nil, err
		}
		el.AppendChild(cf.node)
		r.recordMutation("appendChild")
		f.children = append(f.children, cf)
	}
	return f, nil
}

func (r *Renderer) mountComponent(ctx context.Context, parent *fiber, owner hooks.InstanceID, v *vdom.VNode) (_ *fiber, err error) {
	inst := &instance{id: r.store.NewID(), parent: owner, ctx: ctx}
	f := &fiber{kind: vdom.KindComponent, vnode: v, inst: inst, owner: owner, parent: parent}
	inst.fiber = f
	r.instances[inst.id] = inst
	r.recordInstances()

	mounted := false
	defer func() {
		if !mounted {
			r.store.Exit(inst.id)
			delete(r.instances, inst.id)
			r.recordInstances()
		}
	}()

	out, err := r.invoke(ctx, inst)
	if err != nil {
		return nil, err
	}
	cf, err := r.mount(ctx, f, inst.id, output(out))
	if err != nil {
		return nil, err
	}
	f.children = []*fiber{cf}
	f.node = cf.node
	inst.out = out
	mounted = true
	r.trace("render: mounted component", "id", inst.id, "parent", owner)
	return f, nil
}

// invoke runs the body of inst's component with a hook frame for inst.
// Hook errors raised by the body are returned; a body that panics leaves
// the executing stack as it found it.
func (r *Renderer) invoke(ctx context.Context, inst *instance) (out *vdom.VNode, err error) {
	v := inst.fiber.vnode
	r.store.Enter(inst.id)
	returned := false
	defer func() {
		if !returned {
			r.store.Abandon(inst.id)
		}
	}()
	defer catch(&err)

	out = v.Comp(hooks.WithInstance(ctx, r.store, inst.id), componentProps(v))
	returned = true
	inst.passes++
	r.recordComponentRender()
	if err := r.store.Leave(inst.id); err != nil {
		return nil, err
	}
	return out, nil
}

// componentProps returns the props a component body receives. Children
// given to a component node are passed under the "children" key.
func componentProps(v *vdom.VNode) vdom.Props {
	if len(v.Children) == 0 {
		if v.Props == nil {
			return vdom.Props{}
		}
		return v.Props
	}
	props := make(vdom.Props, len(v.Props)+1)
	for k, val := range v.Props {
		props[k] = val
	}
	props["children"] = v.Children
	return props
}

// unmount tears down the component instances of the subtree at f, parents
// before children. The DOM is left alone; the caller detaches f's node.
func (r *Renderer) unmount(f *fiber) {
	if f == nil {
		return
	}
	if f.inst != nil {
		if _, ok := r.instances[f.inst.id]; ok {
			r.store.Exit(f.inst.id)
			delete(r.instances, f.inst.id)
			r.recordInstances()
			r.trace("render: unmounted component", "id", f.inst.id)
		}
	}
	for _, c := range f.children {
		r.unmount(c)
	}
}
