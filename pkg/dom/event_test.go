package dom

import "testing"

func TestInvoke(t *testing.T) {
	ev := &Event{Type: "click", Value: "v"}

	var calls []string
	listeners := []any{
		func() { calls = append(calls, "plain") },
		func(e *Event) { calls = append(calls, "ptr "+e.Value) },
		func(e Event) { calls = append(calls, "value "+e.Type) },
	}
	for _, l := range listeners {
		if !Invoke(l, ev) {
			t.Errorf("Invoke(%T) = false, want true", l)
		}
	}
	if Invoke(func(int) {}, ev) {
		t.Error("unsupported listener shape should not be invoked")
	}

	want := []string{"plain", "ptr v", "value click"}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestStopPropagation(t *testing.T) {
	ev := &Event{}
	if ev.Stopped() {
		t.Fatal("new event should not be stopped")
	}
	ev.StopPropagation()
	if !ev.Stopped() {
		t.Error("StopPropagation did not stop the event")
	}
}
