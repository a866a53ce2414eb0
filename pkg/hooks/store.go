package hooks

import (
	"log/slog"
)

// InstanceID identifies one component instance. Ids are allocated in
// increasing order and never reused.
type InstanceID uint64

// HookKind identifies the type of hook owning a slot.
type HookKind uint8

const (
	HookState HookKind = iota + 1
	HookEffect
)

// String returns a human-readable name for the hook kind.
func (k HookKind) String() string {
	switch k {
	case HookState:
		return "State"
	case HookEffect:
		return "Effect"
	default:
		return "Unknown"
	}
}

// slot is one positional hook cell.
type slot struct {
	kind   HookKind
	value  any
	effect *effectRecord
}

// effectRecord is the bookkeeping of one UseEffect slot.
type effectRecord struct {
	deps    []any
	hasDeps bool
	fn      func() func()
	cleanup func()
}

// instance holds the hook slots of one component instance.
type instance struct {
	slots    []*slot
	cursor   int  // next slot index during a render
	rendered bool // a render of this instance has completed
}

// Store holds hook state for every mounted component instance.
type Store struct {
	instances map[InstanceID]*instance
	stack     []InstanceID // executing instances, innermost last
	lastID    InstanceID
	rerender  func(InstanceID)
	logger    *slog.Logger
	debug     bool
}

// NewStore creates an empty Store. A nil logger uses slog.Default().
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		instances: make(map[InstanceID]*instance),
		logger:    logger,
	}
}

// SetDebug enables verbose tracing of every hook operation.
func (s *Store) SetDebug(on bool) {
	s.debug = on
}

func (s *Store) trace(msg string, args ...any) {
	if s.debug {
		s.logger.Debug(msg, args...)
	}
}

// NewID allocates the next instance id.
func (s *Store) NewID() InstanceID {
	s.lastID++
	return s.lastID
}

// SetRerender registers the callback used by state setters to re-render an
// instance. It replaces any previous callback.
func (s *Store) SetRerender(fn func(InstanceID)) {
	s.rerender = fn
}

// Enter makes id the currently executing instance and resets its hook
// counter. Slots are allocated on the first Enter of an id and kept on
// later ones.
func (s *Store) Enter(id InstanceID) {
	inst := s.instances[id]
	if inst == nil {
		inst = &instance{}
		s.instances[id] = inst
		s.trace("hooks: enter (mount)", "id", id)
	} else {
		s.trace("hooks: enter (update)", "id", id, "slots", len(inst.slots))
	}
	inst.cursor = 0
	s.stack = append(s.stack, id)
}

// NextIndex returns the current hook index of id and advances it.
func (s *Store) NextIndex(id InstanceID) int {
	inst := s.instances[id]
	if inst == nil {
		return 0
	}
	idx := inst.cursor
	inst.cursor++
	return idx
}

// Leave ends the render of id, restoring the previously executing instance.
// It returns a HookOrderError when the render called fewer hooks than the
// previous one.
func (s *Store) Leave(id InstanceID) error {
	s.pop(id)
	inst := s.instances[id]
	if inst == nil {
		return nil
	}
	if inst.rendered && inst.cursor != len(inst.slots) {
		return &HookOrderError{ID: id, Index: inst.cursor, Want: len(inst.slots), Have: inst.cursor}
	}
	inst.rendered = true
	return nil
}

// Abandon restores the previously executing instance without validating the
// hook count. It is used when a component body panics.
func (s *Store) Abandon(id InstanceID) {
	s.pop(id)
}

// Exit unmounts id: every stored effect cleanup runs in ascending slot
// order, then the slots are discarded. Hook calls against id fail afterwards.
func (s *Store) Exit(id InstanceID) {
	s.pop(id)
	inst := s.instances[id]
	if inst == nil {
		return
	}
	delete(s.instances, id)
	for i, sl := range inst.slots {
		if sl.effect != nil && sl.effect.cleanup != nil {
			s.trace("hooks: cleanup (unmount)", "id", id, "slot", i)
			cleanup := sl.effect.cleanup
			sl.effect.cleanup = nil
			cleanup()
		}
	}
	s.trace("hooks: exit", "id", id)
}

// Current returns the innermost executing instance.
func (s *Store) Current() (InstanceID, bool) {
	if len(s.stack) == 0 {
		return 0, false
	}
	return s.stack[len(s.stack)-1], true
}

// Mounted reports whether id has live hook state.
func (s *Store) Mounted(id InstanceID) bool {
	_, ok := s.instances[id]
	return ok
}

// HookCount returns the number of slots held by id.
func (s *Store) HookCount(id InstanceID) int {
	if inst := s.instances[id]; inst != nil {
		return len(inst.slots)
	}
	return 0
}

// Len returns the number of mounted instances.
func (s *Store) Len() int {
	return len(s.instances)
}

// pop removes the innermost occurrence of id from the executing stack.
func (s *Store) pop(id InstanceID) {
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i] == id {
			s.stack = append(s.stack[:i], s.stack[i+1:]...)
			return
		}
	}
}

// claim returns the slot at idx for a hook of the given kind, creating it on
// the first render and validating kind and count on later ones.
func (s *Store) claim(id InstanceID, inst *instance, idx int, kind HookKind) (*slot, bool) {
	if idx < len(inst.slots) {
		sl := inst.slots[idx]
		if sl.kind != kind {
			panic(&HookOrderError{ID: id, Index: idx, Expected: sl.kind, Got: kind})
		}
		return sl, false
	}
	if inst.rendered {
		panic(&HookOrderError{ID: id, Index: idx, Got: kind, Want: len(inst.slots), Have: idx + 1})
	}
	sl := &slot{kind: kind}
	inst.slots = append(inst.slots, sl)
	return sl, true
}

// requestRerender invokes the registered re-render callback for id.
func (s *Store) requestRerender(id InstanceID) {
	if s.rerender == nil {
		s.trace("hooks: no re-render callback registered", "id", id)
		return
	}
	s.rerender(id)
}
