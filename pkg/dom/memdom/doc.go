// Package memdom is an in-memory implementation of the dom capability.
//
// It is the host used by tests, by the CLI and by the preview server. Every
// mutation is appended to a Journal so callers can count DOM writes or
// replay them elsewhere, and events can be dispatched to registered
// listeners with bubbling.
package memdom
