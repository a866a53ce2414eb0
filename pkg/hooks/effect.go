package hooks

import (
	"context"

	"github.com/vango-dev/hookdom/internal/identity"
)

// Deps builds a dependency list for UseEffect. Deps() with no values is the
// empty list, which runs the effect once on mount.
func Deps(values ...any) []any {
	if values == nil {
		return []any{}
	}
	return values
}

// UseEffect runs fn during the render when its dependencies changed and
// stores the cleanup fn returns.
//
// A nil deps list means the effect runs on every render. A non-nil list is
// compared element by element with the previous one; the effect reruns when
// the length differs or any element is not identical. Before a rerun, the
// previous cleanup is called. Effects run synchronously, in the same call
// stack as the render that reached them.
//
//	hooks.UseEffect(ctx, func() func() {
//	    t := time.AfterFunc(time.Second, tick)
//	    return func() { t.Stop() }
//	}, hooks.Deps())
func UseEffect(ctx context.Context, fn func() func(), deps []any) {
	s, id, inst := resolve(ctx, "UseEffect")
	idx := s.NextIndex(id)
	sl, _ := s.claim(id, inst, idx, HookEffect)

	prev := sl.effect
	if !depsChanged(prev, deps) {
		return
	}

	if prev != nil && prev.cleanup != nil {
		s.trace("hooks: cleanup (rerun)", "id", id, "slot", idx)
		cleanup := prev.cleanup
		prev.cleanup = nil
		cleanup()
	}

	rec := &effectRecord{fn: fn, hasDeps: deps != nil}
	if deps != nil {
		rec.deps = make([]any, len(deps))
		copy(rec.deps, deps)
	}
	sl.effect = rec

	s.trace("hooks: run effect", "id", id, "slot", idx, "deps", len(deps))
	if fn != nil {
		rec.cleanup = fn()
	}
}

// depsChanged applies the dependency policy of UseEffect.
func depsChanged(prev *effectRecord, deps []any) bool {
	if prev == nil || deps == nil || !prev.hasDeps {
		return true
	}
	return !identity.SliceIdentical(prev.deps, deps)
}
