// Package vdom provides the virtual node model for hookdom.
//
// A VNode describes one position of a render tree: either a host element
// named by a tag, or a function component that maps props to another VNode.
// Nodes are created fresh on every render pass and never mutated afterwards;
// the reconciler in package render turns them into host DOM nodes.
//
// # Node Factory
//
// H is the construction call a markup-lowering step emits:
//
//	H("div", Props{"id": "main"},
//	    H("h1", nil, "Title"),
//	    H(Counter, Props{"start": 3}),
//	)
//
// Children may be *VNode values, strings, numbers (text leaves), nil (dropped)
// or slices of those (spliced in one level). Fragment groups children without
// adding a host element.
//
// # Element helpers
//
// Div, Span, Button and the other helpers are thin wrappers over H for
// hand-written trees.
package vdom
