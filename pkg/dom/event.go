package dom

// Event is delivered to listeners.
type Event struct {
	Type   string            // "click", "input", ...
	Target Node              // node the event was dispatched on
	Value  string            // value payload for input-like events
	Data   map[string]string // extra payload

	stopped bool
}

// StopPropagation prevents the event from bubbling further.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether StopPropagation was called.
func (e *Event) Stopped() bool {
	return e.stopped
}

// Invoke calls listener with ev. Supported listener shapes are func(),
// func(*Event) and func(Event). It reports whether listener was callable.
func Invoke(listener any, ev *Event) bool {
	switch fn := listener.(type) {
	case func():
		fn()
	case func(*Event):
		fn(ev)
	case func(Event):
		fn(*ev)
	default:
		return false
	}
	return true
}
