// Package render is the reconciler. It mounts virtual trees built with
// package vdom into a host DOM and keeps them synchronized across renders.
//
// # Rendering
//
// The first Render of a container mounts the tree and records it. Later
// calls diff the new tree against the recorded one and patch the DOM in
// place:
//
//	doc := memdom.NewDocument()
//	r := render.New(doc)
//	err := r.Render(ctx, vdom.H("div", vdom.Props{"id": "x"}, "hi"), doc.Root())
//
// Children are matched by position. Two nodes at the same position are
// patched when they have the same type (same tag, same component function,
// or both text) and replaced otherwise. The Key of a node is not used.
//
// # Component instances
//
// Each mounted function component gets an instance id. The id follows the
// component across renders for as long as the same component function stays
// at the same position, so hook state survives. A replaced or removed
// component is unmounted and its effect cleanups run.
//
// # Updates
//
// A state setter called outside a render re-renders its instance before it
// returns. A setter called while a render is in progress (from a component
// body or an effect) is queued and drained by the outermost render. Every
// queued write is rendered as its own pass; a flush that needs more than
// MaxUpdateDepth passes fails with ErrUpdateStorm.
//
// A Renderer is not safe for concurrent use.
package render
