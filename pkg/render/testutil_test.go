package render

import (
	"context"
	"testing"

	"github.com/vango-dev/hookdom/pkg/dom/memdom"
	"github.com/vango-dev/hookdom/pkg/hooks"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

func newTestRenderer(t *testing.T, opts ...Option) (*memdom.Document, *Renderer) {
	t.Helper()
	doc := memdom.NewDocument()
	return doc, New(doc, opts...)
}

func mustRender(t *testing.T, r *Renderer, doc *memdom.Document, tree *vdom.VNode) {
	t.Helper()
	if err := r.Render(context.Background(), tree, doc.Root()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
}

func mustPanic(t *testing.T, fn func()) (v any) {
	t.Helper()
	defer func() {
		v = recover()
		if v == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
	return nil
}

// useCounter is a custom hook built from UseState.
func useCounter(ctx context.Context) (int, func(int, ...bool)) {
	return hooks.UseState(ctx, 0)
}
