package memdom

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vango-dev/hookdom/pkg/dom"
)

func TestCreateAndAppendJournal(t *testing.T) {
	d := NewDocument()
	div := d.CreateElement("div")
	txt := d.CreateTextNode("hi")
	div.AppendChild(txt)
	d.Root().AppendChild(div)

	want := []Mutation{
		{Op: OpCreateElement, Node: "n1", Name: "div"},
		{Op: OpCreateText, Node: "n2", Value: "hi"},
		{Op: OpAppendChild, Node: "n1", Child: "n2"},
		{Op: OpAppendChild, Node: RootID, Child: "n1"},
	}
	if diff := cmp.Diff(want, d.Journal().Records()); diff != "" {
		t.Errorf("journal mismatch (-want +got):\n%s", diff)
	}
	if got := d.Root().InnerHTML(); got != "<div>hi</div>" {
		t.Errorf("InnerHTML = %q", got)
	}
}

func TestReplaceAndRemove(t *testing.T) {
	d := NewDocument()
	root := d.Root()
	a := d.CreateElement("a")
	b := d.CreateElement("b")
	c := d.CreateElement("i")
	root.AppendChild(a)
	root.AppendChild(b)

	root.ReplaceChild(c, a)
	if got := root.InnerHTML(); got != "<i></i><b></b>" {
		t.Fatalf("after replace = %q", got)
	}
	if a.ParentNode() != nil {
		t.Error("replaced node still has a parent")
	}
	if _, ok := d.NodeByID(a.(*Node).ID()); ok {
		t.Error("replaced node still indexed")
	}

	root.RemoveChild(b)
	if got := root.InnerHTML(); got != "<i></i>" {
		t.Fatalf("after remove = %q", got)
	}

	// Removing a non-child is ignored.
	d.Journal().Reset()
	root.RemoveChild(b)
	if d.Journal().Len() != 0 {
		t.Error("removing a detached node was journaled")
	}
}

func TestAttributesClassAndStyle(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("input").(*Node)
	el.SetAttribute("type", "text")
	el.SetClassName("field wide")
	el.SetStyle("backgroundColor", "red")
	el.SetStyle("color", "blue")

	if v, ok := el.GetAttribute("type"); !ok || v != "text" {
		t.Errorf("type = %q, %v", v, ok)
	}
	if el.ClassName() != "field wide" {
		t.Errorf("class = %q", el.ClassName())
	}
	if el.Style("background-color") != "red" || el.Style("backgroundColor") != "red" {
		t.Errorf("style not normalized")
	}
	if v, _ := el.GetAttribute("style"); v != "background-color: red; color: blue" {
		t.Errorf("style attr = %q", v)
	}
	want := `<input class="field wide" style="background-color: red; color: blue" type="text">`
	if got := el.OuterHTML(); got != want {
		t.Errorf("OuterHTML = %q, want %q", got, want)
	}

	el.RemoveAttribute("style")
	if _, ok := el.GetAttribute("style"); ok {
		t.Error("style survived RemoveAttribute")
	}
	el.RemoveAttribute("type")
	if _, ok := el.GetAttribute("type"); ok {
		t.Error("type survived RemoveAttribute")
	}
}

func TestListenersByIdentity(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("button").(*Node)
	calls := 0
	h := func() { calls++ }
	other := func() { calls += 10 }

	el.AddEventListener("click", h)
	el.AddEventListener("click", h)
	if el.Listeners("click") != 1 {
		t.Fatalf("listeners = %d, want 1", el.Listeners("click"))
	}
	el.RemoveEventListener("click", other)
	if el.Listeners("click") != 1 {
		t.Fatal("removed a listener that was never added")
	}

	if n := d.Dispatch(el, &dom.Event{Type: "click"}); n != 1 || calls != 1 {
		t.Errorf("dispatch invoked %d, calls = %d", n, calls)
	}
	el.RemoveEventListener("click", h)
	if el.Listeners("click") != 0 {
		t.Error("listener not removed")
	}
}

func TestDispatchBubbles(t *testing.T) {
	d := NewDocument()
	outer := d.CreateElement("div").(*Node)
	inner := d.CreateElement("span").(*Node)
	outer.AppendChild(inner)
	d.Root().AppendChild(outer)

	var order []string
	inner.AddEventListener("click", func(ev *dom.Event) { order = append(order, "inner") })
	outer.AddEventListener("click", func(ev *dom.Event) {
		order = append(order, "outer")
		if ev.Target != dom.Node(inner) {
			t.Error("target not preserved while bubbling")
		}
	})
	d.Dispatch(inner, &dom.Event{Type: "click"})
	if diff := cmp.Diff([]string{"inner", "outer"}, order); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}

	order = nil
	inner.AddEventListener("click", func(ev *dom.Event) { ev.StopPropagation() })
	d.Dispatch(inner, &dom.Event{Type: "click"})
	if diff := cmp.Diff([]string{"inner"}, order); diff != "" {
		t.Errorf("stopped order (-want +got):\n%s", diff)
	}
}

func TestTextContent(t *testing.T) {
	d := NewDocument()
	p := d.CreateElement("p").(*Node)
	p.AppendChild(d.CreateTextNode("a < b"))
	p.AppendChild(d.CreateTextNode("!"))
	if p.TextContent() != "a < b!" {
		t.Errorf("TextContent = %q", p.TextContent())
	}
	if p.InnerHTML() != "a &lt; b!" {
		t.Errorf("InnerHTML = %q", p.InnerHTML())
	}
	p.SetTextContent("x")
	if len(p.Children()) != 1 || p.TextContent() != "x" {
		t.Errorf("SetTextContent left %d children, text %q", len(p.Children()), p.TextContent())
	}
}

func TestVoidElementsHaveNoClosingTag(t *testing.T) {
	d := NewDocument()
	br := d.CreateElement("br").(*Node)
	if br.OuterHTML() != "<br>" {
		t.Errorf("OuterHTML = %q", br.OuterHTML())
	}
}

func TestInnerHTMLWithIDs(t *testing.T) {
	d := NewDocument()
	btn := d.CreateElement("button").(*Node)
	btn.AppendChild(d.CreateTextNode("go"))
	d.Root().AppendChild(btn)
	want := `<button data-hid="` + btn.ID() + `">go</button>`
	if got := d.Root().InnerHTMLWithIDs("data-hid"); got != want {
		t.Errorf("InnerHTMLWithIDs = %q, want %q", got, want)
	}
	if got := d.Root().InnerHTML(); got != "<button>go</button>" {
		t.Errorf("InnerHTML = %q", got)
	}
}

func TestQueryAttr(t *testing.T) {
	d := NewDocument()
	outer := d.CreateElement("div").(*Node)
	inner := d.CreateElement("span").(*Node)
	inner.SetAttribute("id", "x")
	outer.AppendChild(inner)
	d.Root().AppendChild(outer)

	if got := d.Root().QueryAttr("id", "x"); got != inner {
		t.Errorf("QueryAttr(id, x) = %v, want span", got)
	}
	if got := d.Root().QueryAttr("id", "y"); got != nil {
		t.Errorf("QueryAttr(id, y) = %v, want nil", got)
	}
}
