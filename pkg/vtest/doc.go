// Package vtest provides testing helpers for hookdom components.
//
// A Harness mounts a tree into an in-memory document and exposes the
// interactions a test needs: finding elements by id, dispatching events,
// reading the markup and the recorded DOM operations.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.Mount(t, vdom.H(Counter, nil))
//	    h.Click("increment")
//	    h.ExpectText("count", "Count: 1")
//	}
//
// Errors from re-renders started by event handlers fail the test. The
// tree is unmounted when the test ends, so effect cleanups always run.
//
// # One-Liner Shorthand
//
// For static output, render straight to a string:
//
//	html := vtest.RenderToString(vdom.H(Badge, vdom.Props{"label": "new"}))
package vtest
