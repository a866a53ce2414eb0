package hooks

import "context"

type frameKey struct{}

// frame binds a context to the instance whose body is running.
type frame struct {
	store *Store
	id    InstanceID
}

// WithInstance returns a context that resolves hook calls against id.
// The reconciler passes it to the component body.
func WithInstance(ctx context.Context, store *Store, id InstanceID) context.Context {
	return context.WithValue(ctx, frameKey{}, frame{store: store, id: id})
}

// InstanceFrom returns the store and instance id carried by ctx.
func InstanceFrom(ctx context.Context) (*Store, InstanceID, bool) {
	if ctx == nil {
		return nil, 0, false
	}
	f, ok := ctx.Value(frameKey{}).(frame)
	if !ok || f.store == nil {
		return nil, 0, false
	}
	return f.store, f.id, true
}

// resolve returns the running instance for a hook call or panics with an
// OutsideComponentError.
func resolve(ctx context.Context, hook string) (*Store, InstanceID, *instance) {
	store, id, ok := InstanceFrom(ctx)
	if !ok {
		panic(&OutsideComponentError{Hook: hook})
	}
	cur, ok := store.Current()
	if !ok || cur != id {
		panic(&OutsideComponentError{Hook: hook, ID: id})
	}
	inst := store.instances[id]
	if inst == nil {
		panic(&OutsideComponentError{Hook: hook, ID: id})
	}
	return store, id, inst
}
