package vtest

import (
	"context"
	"strings"
	"testing"

	"github.com/vango-dev/hookdom/pkg/dom"
	"github.com/vango-dev/hookdom/pkg/dom/memdom"
	"github.com/vango-dev/hookdom/pkg/render"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

// Harness is a tree mounted into a memdom document.
type Harness struct {
	tb       testing.TB
	Doc      *memdom.Document
	Renderer *render.Renderer
}

// Mount renders tree into a fresh document. opts are applied after the
// harness defaults, so a WithErrorHandler option replaces the failing one.
func Mount(tb testing.TB, tree *vdom.VNode, opts ...render.Option) *Harness {
	tb.Helper()
	doc := memdom.NewDocument()
	base := []render.Option{
		render.WithErrorHandler(func(err error) {
			tb.Errorf("render error: %v", err)
		}),
	}
	h := &Harness{
		tb:       tb,
		Doc:      doc,
		Renderer: render.New(doc, append(base, opts...)...),
	}
	if err := h.Renderer.Render(context.Background(), tree, doc.Root()); err != nil {
		tb.Fatalf("Render() error = %v", err)
	}
	tb.Cleanup(func() { h.Renderer.Unmount(doc.Root()) })
	return h
}

// Rerender reconciles the document against tree.
func (h *Harness) Rerender(tree *vdom.VNode) {
	h.tb.Helper()
	if err := h.Renderer.Render(context.Background(), tree, h.Doc.Root()); err != nil {
		h.tb.Fatalf("Render() error = %v", err)
	}
}

// HTML returns the markup inside the root container.
func (h *Harness) HTML() string {
	return h.Doc.Root().InnerHTML()
}

// ByID returns the element whose id attribute is id, failing the test if
// there is none.
func (h *Harness) ByID(id string) *memdom.Node {
	h.tb.Helper()
	n := h.Doc.Root().QueryAttr("id", id)
	if n == nil {
		h.tb.Fatalf("no element with id %q in:\n%s", id, truncate(h.HTML(), 500))
	}
	return n
}

// Text returns the text content of the element with the given id.
func (h *Harness) Text(id string) string {
	h.tb.Helper()
	return h.ByID(id).TextContent()
}

// Dispatch sends ev to the element with the given id and returns the
// number of listeners invoked.
func (h *Harness) Dispatch(id string, ev *dom.Event) int {
	h.tb.Helper()
	return h.Doc.Dispatch(h.ByID(id), ev)
}

// Click dispatches a click to the element with the given id.
func (h *Harness) Click(id string) {
	h.tb.Helper()
	if h.Dispatch(id, &dom.Event{Type: "click"}) == 0 {
		h.tb.Errorf("click on #%s reached no listener", id)
	}
}

// Input dispatches an input event carrying value.
func (h *Harness) Input(id, value string) {
	h.tb.Helper()
	h.Dispatch(id, &dom.Event{Type: "input", Value: value})
}

// Mutations returns and clears the DOM operations recorded so far.
func (h *Harness) Mutations() []memdom.Mutation {
	return h.Doc.Journal().Drain()
}

// ExpectText asserts the text content of the element with the given id.
func (h *Harness) ExpectText(id, want string) {
	h.tb.Helper()
	if got := h.Text(id); got != want {
		h.tb.Errorf("#%s text = %q, want %q", id, got, want)
	}
}

// ExpectContains asserts that the markup contains expected.
func (h *Harness) ExpectContains(expected string) {
	h.tb.Helper()
	if html := h.HTML(); !strings.Contains(html, expected) {
		h.tb.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the markup does not contain unexpected.
func (h *Harness) ExpectNotContains(unexpected string) {
	h.tb.Helper()
	if html := h.HTML(); strings.Contains(html, unexpected) {
		h.tb.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts an attribute of the element with the given id.
func (h *Harness) ExpectAttribute(id, attr, value string) {
	h.tb.Helper()
	got, ok := h.ByID(id).GetAttribute(attr)
	if !ok {
		h.tb.Errorf("#%s has no %s attribute", id, attr)
		return
	}
	if got != value {
		h.tb.Errorf("#%s %s = %q, want %q", id, attr, got, value)
	}
}

// ExpectNoAttribute asserts that the element with the given id lacks attr.
func (h *Harness) ExpectNoAttribute(id, attr string) {
	h.tb.Helper()
	if got, ok := h.ByID(id).GetAttribute(attr); ok {
		h.tb.Errorf("#%s %s = %q, want no attribute", id, attr, got)
	}
}

// RenderToString mounts tree into a scratch document and returns its
// markup, or "" if rendering fails.
func RenderToString(tree *vdom.VNode) string {
	doc := memdom.NewDocument()
	r := render.New(doc)
	if err := r.Render(context.Background(), tree, doc.Root()); err != nil {
		return ""
	}
	html := doc.Root().InnerHTML()
	r.Unmount(doc.Root())
	return html
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
