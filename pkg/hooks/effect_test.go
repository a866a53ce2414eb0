package hooks

import (
	"context"
	"testing"
)

type effectProbe struct {
	runs     int
	cleanups int
	log      []string
}

func (p *effectProbe) effect(name string) func() func() {
	return func() func() {
		p.runs++
		p.log = append(p.log, "run "+name)
		return func() {
			p.cleanups++
			p.log = append(p.log, "cleanup "+name)
		}
	}
}

func TestEffectSameDepsSkips(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()
	p := &effectProbe{}

	renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, p.effect("a"), Deps("x")) })
	renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, p.effect("a"), Deps("x")) })

	if p.runs != 1 || p.cleanups != 0 {
		t.Errorf("runs=%d cleanups=%d, want 1 and 0", p.runs, p.cleanups)
	}
}

func TestEffectChangedDepsCleansUpFirst(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()
	p := &effectProbe{}

	renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, p.effect("a"), Deps("x")) })
	renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, p.effect("b"), Deps("y")) })

	want := []string{"run a", "cleanup a", "run b"}
	if len(p.log) != len(want) {
		t.Fatalf("log = %v, want %v", p.log, want)
	}
	for i := range want {
		if p.log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, p.log[i], want[i])
		}
	}
}

func TestEffectNilDepsRunsEveryRender(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()
	p := &effectProbe{}

	for i := 0; i < 3; i++ {
		renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, p.effect("e"), nil) })
	}
	if p.runs != 3 || p.cleanups != 2 {
		t.Errorf("runs=%d cleanups=%d, want 3 and 2", p.runs, p.cleanups)
	}
}

func TestEffectEmptyDepsRunsOnce(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()
	p := &effectProbe{}

	for i := 0; i < 3; i++ {
		renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, p.effect("e"), Deps()) })
	}
	if p.runs != 1 {
		t.Errorf("runs = %d, want 1", p.runs)
	}

	s.Exit(id)
	if p.cleanups != 1 {
		t.Errorf("cleanups after Exit = %d, want 1", p.cleanups)
	}
}

func TestEffectLengthChange(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()
	p := &effectProbe{}

	renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, p.effect("e"), Deps(1)) })
	renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, p.effect("e"), Deps(1, 2)) })
	if p.runs != 2 {
		t.Errorf("runs = %d, want 2", p.runs)
	}
}

func TestEffectNoCleanupReturned(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()
	runs := 0

	fn := func() func() { runs++; return nil }
	renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, fn, Deps(1)) })
	renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, fn, Deps(2)) })
	s.Exit(id)

	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestEffectCopiesDeps(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()
	p := &effectProbe{}

	deps := Deps("x")
	renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, p.effect("e"), deps) })
	deps[0] = "y"
	renderOnce(t, s, id, func(ctx context.Context) { UseEffect(ctx, p.effect("e"), Deps("y")) })
	if p.runs != 2 {
		t.Errorf("runs = %d, want 2 (stored deps must not alias caller slice)", p.runs)
	}
}

func TestEffectSetterQueuesRerender(t *testing.T) {
	s := NewStore(nil)
	id := s.NewID()

	var requested []InstanceID
	s.SetRerender(func(got InstanceID) { requested = append(requested, got) })

	renderOnce(t, s, id, func(ctx context.Context) {
		v, set := UseState(ctx, 0)
		UseEffect(ctx, func() func() {
			if v == 0 {
				set(1)
			}
			return nil
		}, Deps(v))
	})
	if len(requested) != 1 || requested[0] != id {
		t.Errorf("requested = %v, want [%d]", requested, id)
	}
}

func TestDeps(t *testing.T) {
	if d := Deps(); d == nil || len(d) != 0 {
		t.Errorf("Deps() = %#v, want empty non-nil", d)
	}
	if d := Deps(1, 2); len(d) != 2 {
		t.Errorf("Deps(1, 2) = %v", d)
	}
}
