package hooks

import (
	"context"
	"testing"
)

func TestUseStateSeedsOnce(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()

	var got int
	var set func(int, ...bool)
	renderOnce(t, s, id, func(ctx context.Context) { got, set = UseState(ctx, 5) })
	if got != 5 {
		t.Fatalf("initial value = %d, want 5", got)
	}

	set(8)
	renderOnce(t, s, id, func(ctx context.Context) { got, _ = UseState(ctx, 99) })
	if got != 8 {
		t.Errorf("value after set = %d, want 8 (initial must not reseed)", got)
	}
}

func TestStateSlotIsolation(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()

	var a, b string
	var setA, setB func(string, ...bool)
	body := func(ctx context.Context) {
		a, setA = UseState(ctx, "a0")
		b, setB = UseState(ctx, "b0")
	}

	renderOnce(t, s, id, body)
	setB("b1")
	renderOnce(t, s, id, body)
	if a != "a0" || b != "b1" {
		t.Errorf("after setB: a=%q b=%q, want a0 b1", a, b)
	}

	setA("a1")
	renderOnce(t, s, id, body)
	if a != "a1" || b != "b1" {
		t.Errorf("after setA: a=%q b=%q, want a1 b1", a, b)
	}
}

func TestSetterTriggersRerender(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()

	var calls []InstanceID
	s.SetRerender(func(got InstanceID) { calls = append(calls, got) })

	var set func(int, ...bool)
	renderOnce(t, s, id, func(ctx context.Context) { _, set = UseState(ctx, 1) })

	set(1)
	if len(calls) != 0 {
		t.Errorf("identical write re-rendered %d times, want 0", len(calls))
	}

	set(2)
	if len(calls) != 1 || calls[0] != id {
		t.Errorf("calls = %v, want [%d]", calls, id)
	}

	set(2, true)
	if len(calls) != 2 {
		t.Errorf("forced write: %d calls, want 2", len(calls))
	}

	set(2, false)
	if len(calls) != 2 {
		t.Errorf("unforced identical write: %d calls, want 2", len(calls))
	}
}

func TestSetterComparesReferences(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()

	rerenders := 0
	s.SetRerender(func(InstanceID) { rerenders++ })

	items := []string{"a"}
	var set func([]string, ...bool)
	renderOnce(t, s, id, func(ctx context.Context) { _, set = UseState(ctx, items) })

	set(items)
	if rerenders != 0 {
		t.Errorf("same slice re-rendered %d times, want 0", rerenders)
	}
	set([]string{"a"})
	if rerenders != 1 {
		t.Errorf("equal but distinct slice: %d re-renders, want 1", rerenders)
	}
}

func TestSetterAfterExitIsNoop(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()

	rerenders := 0
	s.SetRerender(func(InstanceID) { rerenders++ })

	var set func(int, ...bool)
	renderOnce(t, s, id, func(ctx context.Context) { _, set = UseState(ctx, 0) })
	s.Exit(id)

	set(10)
	if rerenders != 0 {
		t.Errorf("setter after Exit re-rendered %d times, want 0", rerenders)
	}
}

func TestSetterWithoutCallback(t *testing.T) {
	s := NewStore(nil)
	s.SetDebug(true)
	id := s.NewID()

	var set func(int, ...bool)
	renderOnce(t, s, id, func(ctx context.Context) { _, set = UseState(ctx, 0) })
	set(3)

	var got int
	renderOnce(t, s, id, func(ctx context.Context) { got, _ = UseState(ctx, 0) })
	if got != 3 {
		t.Errorf("value = %d, want 3", got)
	}
}

func TestUseStateInterfaceNil(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()

	var got error
	renderOnce(t, s, id, func(ctx context.Context) { got, _ = UseState[error](ctx, nil) })
	if got != nil {
		t.Errorf("value = %v, want nil", got)
	}
}
