package vdom

import "testing"

type score int

func TestTextOf(t *testing.T) {
	tests := []struct {
		in   any
		want string
		ok   bool
	}{
		{"hi", "hi", true},
		{42, "42", true},
		{int64(-3), "-3", true},
		{uint8(7), "7", true},
		{2.5, "2.5", true},
		{float32(0.5), "0.5", true},
		{score(9), "9", true},
		{true, "", false},
		{nil, "", false},
		{H("div", nil), "", false},
		{struct{}{}, "", false},
	}
	for _, tt := range tests {
		got, ok := TextOf(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TextOf(%#v) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKindOf(t *testing.T) {
	if KindOf("x") != KindText {
		t.Error("string should be text")
	}
	if KindOf(3) != KindText {
		t.Error("number should be text")
	}
	if KindOf(H("div", nil)) != KindElement {
		t.Error("tag node should be element")
	}
	if KindOf(nil) != KindInvalid {
		t.Error("nil should be invalid")
	}
	var missing *VNode
	if KindOf(missing) != KindInvalid {
		t.Error("nil *VNode should be invalid")
	}
	if KindComponent.String() != "Component" || KindInvalid.String() != "Invalid" {
		t.Error("VKind.String mismatch")
	}
}
