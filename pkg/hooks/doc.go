// Package hooks implements per-component hook state for hookdom.
//
// A Store keeps, for every component instance id, an ordered list of hook
// slots. Slots are claimed positionally: the n-th hook call during a render
// owns slot n. The count and order of hook calls must therefore be the same
// on every render of an instance; the Store checks this and reports a
// HookOrderError instead of silently misaligning state.
//
// The reconciler drives the lifecycle of each instance:
//
//	store.Enter(id)            // before the component body runs
//	out := comp(hooks.WithInstance(ctx, store, id), props)
//	err := store.Leave(id)     // after it returns
//	...
//	store.Exit(id)             // on unmount, runs stored cleanups
//
// Component code only sees UseState and UseEffect, which resolve their
// instance from the context passed to the component. Calling them anywhere
// else fails with an OutsideComponentError.
//
// A Store is not safe for concurrent use. It assumes a single goroutine
// drives rendering, matching the host's single-threaded event loop.
package hooks
