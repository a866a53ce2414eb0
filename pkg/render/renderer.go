package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/hookdom/pkg/dom"
	"github.com/vango-dev/hookdom/pkg/hooks"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

// Renderer mounts and updates virtual trees in a host DOM.
type Renderer struct {
	host     dom.Host
	store    *hooks.Store
	logger   *slog.Logger
	debug    bool
	metrics  *Metrics
	tracer   trace.Tracer
	maxDepth int
	onError  func(error)

	roots     map[dom.Node]*root
	instances map[hooks.InstanceID]*instance

	depth int                // nested render passes in progress
	queue []hooks.InstanceID // re-renders requested during a render
}

// New creates a Renderer creating nodes through host.
func New(host dom.Host, opts ...Option) *Renderer {
	r := &Renderer{
		host:      host,
		logger:    slog.Default(),
		maxDepth:  DefaultMaxUpdateDepth,
		roots:     make(map[dom.Node]*root),
		instances: make(map[hooks.InstanceID]*instance),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.maxDepth < 1 {
		r.maxDepth = DefaultMaxUpdateDepth
	}
	r.store = hooks.NewStore(r.logger)
	r.store.SetDebug(r.debug)
	r.store.SetRerender(r.requestRerender)
	if r.onError == nil {
		r.onError = func(err error) {
			r.logger.Error("hookdom: re-render failed", "error", err)
		}
	}
	return r
}

// Store returns the hook store of the renderer.
func (r *Renderer) Store() *hooks.Store {
	return r.store
}

// Render renders tree into container.
//
// The first call for a container mounts tree and appends it to the
// container. Later calls reconcile tree against the previously rendered one
// and patch the DOM. A nil tree unmounts what was rendered, or does nothing
// when the container is empty.
func (r *Renderer) Render(ctx context.Context, tree *vdom.VNode, container dom.Node) error {
	if container == nil {
		return ErrNoContainer
	}
	return r.pass(ctx, "hookdom.Render", func(ctx context.Context) error {
		rec := r.roots[container]
		switch {
		case rec == nil && tree == nil:
			return nil
		case rec == nil:
			f, err := r.mount(ctx, nil, 0, tree)
			if err != nil {
				return err
			}
			container.AppendChild(f.node)
			r.recordMutation("appendChild")
			r.roots[container] = &root{vnode: tree, fiber: f}
			r.trace("render: mounted", "tag", tree.Tag, "component", tree.IsComponent())
			return nil
		case tree == nil:
			r.unmountRoot(container, rec)
			return nil
		default:
			f, err := r.reconcile(ctx, rec.fiber, tree)
			rec.fiber = f
			rec.vnode = tree
			r.trace("render: updated", "tag", tree.Tag, "component", tree.IsComponent())
			return err
		}
	})
}

// Unmount tears down the tree rendered into container: every component
// instance is unmounted, its effect cleanups run, and the root DOM node is
// removed from the container. It reports whether anything was rendered.
func (r *Renderer) Unmount(container dom.Node) bool {
	rec := r.roots[container]
	if rec == nil {
		return false
	}
	err := r.pass(context.Background(), "hookdom.Unmount", func(context.Context) error {
		r.unmountRoot(container, rec)
		return nil
	})
	if err != nil {
		r.onError(err)
	}
	return true
}

func (r *Renderer) unmountRoot(container dom.Node, rec *root) {
	r.unmount(rec.fiber)
	container.RemoveChild(rec.fiber.node)
	r.recordMutation("removeChild")
	delete(r.roots, container)
	r.trace("render: unmounted root")
}

// Rendered returns the tree last rendered into container.
func (r *Renderer) Rendered(container dom.Node) (*vdom.VNode, bool) {
	rec := r.roots[container]
	if rec == nil {
		return nil, false
	}
	return rec.vnode, true
}

// Instance returns the registry entry of a mounted component instance.
func (r *Renderer) Instance(id hooks.InstanceID) (Instance, bool) {
	inst := r.instances[id]
	if inst == nil {
		return Instance{}, false
	}
	return inst.snapshot(), true
}

// Instances returns the number of mounted component instances.
func (r *Renderer) Instances() int {
	return len(r.instances)
}

// pass runs fn as one render pass. Only the outermost pass drains the
// re-render queue; hook errors raised as panics inside fn are returned.
func (r *Renderer) pass(ctx context.Context, name string, fn func(ctx context.Context) error, attrs ...attribute.KeyValue) (err error) {
	ctx, span := r.startSpan(ctx, name, attrs...)
	start := time.Now()
	defer func() {
		if v := recover(); v != nil {
			r.observeRender(name, start, statusPanic)
			endSpan(span, fmt.Errorf("render: panic: %v", v))
			panic(v)
		}
		r.observeRender(name, start, passStatus(err))
		endSpan(span, err)
	}()

	r.depth++
	defer func() {
		r.depth--
		if r.depth == 0 {
			r.queue = nil
		}
	}()
	defer catch(&err)

	if err = fn(ctx); err != nil {
		return err
	}
	if r.depth == 1 {
		err = r.flush(ctx)
	}
	return err
}

// requestRerender is the hook store's re-render callback.
func (r *Renderer) requestRerender(id hooks.InstanceID) {
	if r.depth > 0 {
		r.trace("render: queue re-render", "id", id, "queued", len(r.queue)+1)
		r.queue = append(r.queue, id)
		return
	}
	inst := r.instances[id]
	if inst == nil {
		return
	}
	ctx := context.WithoutCancel(inst.ctx)
	err := r.pass(ctx, "hookdom.Rerender", func(ctx context.Context) error {
		return r.rerender(ctx, id)
	}, attribute.Int64("hookdom.instance", int64(id)))
	if err != nil {
		r.onError(err)
	}
}

// flush drains the re-render queue, one pass per queued request.
func (r *Renderer) flush(ctx context.Context) error {
	passes := 0
	for len(r.queue) > 0 {
		id := r.queue[0]
		r.queue = r.queue[1:]
		passes++
		if passes > r.maxDepth {
			r.queue = nil
			r.recordStorm()
			r.logger.Warn("hookdom: update storm", "id", id, "limit", r.maxDepth)
			return &StormError{ID: id, Limit: r.maxDepth}
		}
		if err := r.rerender(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// rerender re-executes a mounted instance and patches its output. Requests
// for instances unmounted since they were queued are dropped.
func (r *Renderer) rerender(ctx context.Context, id hooks.InstanceID) error {
	inst := r.instances[id]
	if inst == nil {
		r.trace("render: drop re-render of unmounted instance", "id", id)
		return nil
	}
	ctx, span := r.startSpan(ctx, "hookdom.Component", attribute.Int64("hookdom.instance", int64(id)))
	err := r.update(ctx, inst)
	endSpan(span, err)
	return err
}

func (r *Renderer) trace(msg string, args ...any) {
	if r.debug {
		r.logger.Debug(msg, args...)
	}
}
