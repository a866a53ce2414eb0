package render

import (
	"context"

	"github.com/vango-dev/hookdom/internal/identity"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

// reconcile patches the DOM rendered for f so it matches next, and returns
// the fiber now standing at f's position. f is reused when next has the
// same type; otherwise f is unmounted and replaced.
func (r *Renderer) reconcile(ctx context.Context, f *fiber, next any) (*fiber, error) {
	kind := vdom.KindOf(next)
	if kind == f.kind {
		switch kind {
		case vdom.KindText:
			text, _ := vdom.TextOf(next)
			if text != f.text {
				f.node.SetTextContent(text)
				r.recordMutation("setText")
				r.trace("render: set text", "text", text)
				f.text = text
			}
			return f, nil

		case vdom.KindElement:
			v := next.(*vdom.VNode)
			if v.Tag == f.vnode.Tag {
				r.applyProps(f.node, f.vnode.Props, v.Props)
				f.vnode = v
				return f, r.reconcileChildren(ctx, f, r.renderable(v.Children))
			}

		case vdom.KindComponent:
			v := next.(*vdom.VNode)
			if identity.Identical(v.Comp, f.vnode.Comp) {
				f.vnode = v
				f.inst.ctx = ctx
				return f, r.update(ctx, f.inst)
			}
		}
	}
	return r.replace(ctx, f, next)
}

// replace unmounts f, mounts next and swaps the DOM nodes.
func (r *Renderer) replace(ctx context.Context, f *fiber, next any) (*fiber, error) {
	r.trace("render: replace", "old", f.kind.String(), "new", vdom.KindOf(next).String())
	r.unmount(f)
	nf, err := r.mount(ctx, f.parent, f.owner, next)
	if err != nil {
		return f, err
	}
	if parent := f.node.ParentNode(); parent != nil {
		parent.ReplaceChild(nf.node, f.node)
		r.recordMutation("replaceChild")
	}
	return nf, nil
}

// update re-executes a mounted component and reconciles its new output
// against the output of its previous render.
func (r *Renderer) update(ctx context.Context, inst *instance) error {
	out, err := r.invoke(ctx, inst)
	if err != nil {
		return err
	}
	f := inst.fiber
	prev := f.children[0]
	prevNode := prev.node
	cf, err := r.reconcile(ctx, prev, output(out))
	cf.parent = f
	f.children[0] = cf
	inst.out = out
	if cf.node != prevNode {
		// Component fibers share their output's node; move every one of
		// them that pointed at the replaced node.
		for p := f; p != nil && p.kind == vdom.KindComponent && p.node == prevNode; p = p.parent {
			p.node = cf.node
		}
	}
	return err
}

// reconcileChildren diffs the children of the element fiber f by position.
// Surplus old children are removed from the highest index down.
func (r *Renderer) reconcileChildren(ctx context.Context, f *fiber, next []any) error {
	old := f.children
	kept := make([]*fiber, 0, len(next))
	for i, c := range next {
		if i < len(old) {
			cf, err := r.reconcile(ctx, old[i], c)
			kept = append(kept, cf)
			if err != nil {
				f.children = append(kept, old[i+1:]...)
				return err
			}
			continue
		}
		cf, err := r.mount(ctx, f, f.childOwner(), c)
		if err != nil {
			f.children = kept
			return err
		}
		f.node.AppendChild(cf.node)
		r.recordMutation("appendChild")
		kept = append(kept, cf)
	}

	for i := len(old) - 1; i >= len(next); i-- {
		r.unmount(old[i])
		f.node.RemoveChild(old[i].node)
		r.recordMutation("removeChild")
	}
	f.children = kept
	return nil
}
