package hooks

import (
	"context"

	"github.com/vango-dev/hookdom/internal/identity"
)

// UseState returns the value of the calling instance's next state slot and a
// setter for it. The slot is seeded with initial on the first render only.
//
// The setter stores next and re-renders the instance unless next is
// identical to the stored value. Passing true as the optional force argument
// re-renders even for an identical value. Setters of an unmounted instance
// do nothing.
//
//	count, setCount := hooks.UseState(ctx, 0)
//	onClick := func() { setCount(count + 1) }
func UseState[T any](ctx context.Context, initial T) (T, func(next T, force ...bool)) {
	s, id, inst := resolve(ctx, "UseState")
	idx := s.NextIndex(id)
	sl, created := s.claim(id, inst, idx, HookState)
	if created {
		sl.value = initial
		s.trace("hooks: init state", "id", id, "slot", idx)
	}

	cur, _ := sl.value.(T)
	set := func(next T, force ...bool) {
		s.setState(id, idx, next, len(force) > 0 && force[0])
	}
	return cur, set
}

// setState writes a state slot and triggers a re-render when it changed.
func (s *Store) setState(id InstanceID, idx int, next any, force bool) {
	inst := s.instances[id]
	if inst == nil || idx >= len(inst.slots) {
		s.trace("hooks: set on unmounted instance", "id", id, "slot", idx)
		return
	}
	sl := inst.slots[idx]
	if !force && identity.Identical(sl.value, next) {
		return
	}
	s.trace("hooks: update state", "id", id, "slot", idx, "force", force)
	sl.value = next
	s.requestRerender(id)
}
