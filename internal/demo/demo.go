// Package demo is the sample application rendered by the CLI and the
// preview server: a heading, a counter and a clock.
package demo

import (
	"context"
	"time"

	"github.com/vango-dev/hookdom/pkg/hooks"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

// Scheduler runs fn every d until the returned stop func is called. The
// preview server implements it on top of its event loop so ticks never race
// with event handling.
type Scheduler interface {
	Every(d time.Duration, fn func()) (stop func())
}

// Options configures the demo tree.
type Options struct {
	Title string

	// Now is the clock source. Defaults to time.Now.
	Now func() time.Time

	// Scheduler drives the clock. Without one the clock shows the time of
	// its first render.
	Scheduler Scheduler

	// Interval between clock ticks. Defaults to one second.
	Interval time.Duration
}

// Tree returns the root node of the demo application.
func Tree(opts Options) *vdom.VNode {
	if opts.Title == "" {
		opts.Title = "Demo !"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	return vdom.H(App, vdom.Props{
		"title":     opts.Title,
		"now":       opts.Now,
		"scheduler": opts.Scheduler,
		"interval":  opts.Interval,
	})
}

// App lays out the demo.
func App(ctx context.Context, props vdom.Props) *vdom.VNode {
	return vdom.Div(vdom.Props{"className": "app"},
		vdom.H1(nil, props["title"]),
		vdom.Div(nil,
			vdom.H2(nil, "Counter"),
			vdom.H(Counter, vdom.Props{"step": 1}),
		),
		vdom.H(Clock, vdom.Props{
			"now":       props["now"],
			"scheduler": props["scheduler"],
			"interval":  props["interval"],
		}),
	)
}

// Counter shows a count with buttons to change it.
func Counter(ctx context.Context, props vdom.Props) *vdom.VNode {
	step, _ := props["step"].(int)
	if step == 0 {
		step = 1
	}
	count, setCount := hooks.UseState(ctx, 0)

	parity := "even"
	if count%2 != 0 {
		parity = "odd"
	}
	return vdom.Div(vdom.Props{"className": "counter " + parity},
		vdom.P(vdom.Props{"id": "count", "style": map[string]string{"fontWeight": "bold"}}, "Count: ", count),
		vdom.Button(vdom.Props{"id": "decrement", "onClick": func() { setCount(count - step) }}, "-"),
		vdom.Button(vdom.Props{"id": "increment", "onClick": func() { setCount(count + step) }}, "Increment"),
		vdom.Button(vdom.Props{
			"id":       "reset",
			"disabled": count == 0,
			"onClick":  func() { setCount(0) },
		}, "Reset"),
	)
}

// Clock shows the time of its last tick.
func Clock(ctx context.Context, props vdom.Props) *vdom.VNode {
	now, _ := props["now"].(func() time.Time)
	if now == nil {
		now = time.Now
	}
	interval, _ := props["interval"].(time.Duration)
	sched, _ := props["scheduler"].(Scheduler)

	t, setT := hooks.UseState(ctx, now())
	hooks.UseEffect(ctx, func() func() {
		if sched == nil || interval <= 0 {
			return nil
		}
		return sched.Every(interval, func() { setT(now()) })
	}, hooks.Deps(sched, interval))

	return vdom.P(vdom.Props{"id": "clock"}, "Last update: ", t.Format("15:04:05"))
}
