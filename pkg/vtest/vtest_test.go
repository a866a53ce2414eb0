package vtest

import (
	"context"
	"testing"

	"github.com/vango-dev/hookdom/pkg/dom"
	"github.com/vango-dev/hookdom/pkg/hooks"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

func echo(ctx context.Context, props vdom.Props) *vdom.VNode {
	text, setText := hooks.UseState(ctx, "")
	return vdom.Div(nil,
		vdom.Input(vdom.Props{"id": "field", "onInput": func(ev *dom.Event) { setText(ev.Value) }}),
		vdom.P(vdom.Props{"id": "out", "title": text}, text),
	)
}

func TestHarnessInput(t *testing.T) {
	h := Mount(t, vdom.H(echo, nil))
	h.ExpectText("out", "")

	h.Input("field", "hello")
	h.ExpectText("out", "hello")
	h.ExpectAttribute("out", "title", "hello")
	h.ExpectContains(`<p id="out" title="hello">hello</p>`)
	h.ExpectNotContains("<span")

	if len(h.Mutations()) == 0 {
		t.Error("no mutations recorded")
	}
	if len(h.Mutations()) != 0 {
		t.Error("Mutations() did not clear the journal")
	}
}

func TestHarnessRerender(t *testing.T) {
	h := Mount(t, vdom.Div(vdom.Props{"id": "box", "hidden": true}))
	h.ExpectAttribute("box", "hidden", "")

	h.Rerender(vdom.Div(vdom.Props{"id": "box"}))
	h.ExpectNoAttribute("box", "hidden")
}

func TestRenderToString(t *testing.T) {
	got := RenderToString(vdom.Ul(nil, vdom.Li(nil, "a"), vdom.Li(nil, "b")))
	if got != "<ul><li>a</li><li>b</li></ul>" {
		t.Errorf("RenderToString() = %q", got)
	}
	if got := RenderToString(nil); got != "" {
		t.Errorf("RenderToString(nil) = %q", got)
	}
}
