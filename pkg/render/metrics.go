package render

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/hookdom/pkg/hooks"
)

// MetricsConfig configures the Prometheus collectors of a Renderer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "hookdom").
	Namespace string

	// Subsystem is the metrics subsystem (default: "render").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the render metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "hookdom",
		Subsystem: "render",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors updated by a Renderer.
type Metrics struct {
	passes           *prometheus.CounterVec
	passDuration     *prometheus.HistogramVec
	componentRenders prometheus.Counter
	mutations        *prometheus.CounterVec
	instances        prometheus.Gauge
	storms           prometheus.Counter
}

// NewMetrics registers the render collectors.
//
// Metrics collected:
//   - hookdom_render_passes_total: render passes by kind and status
//   - hookdom_render_pass_duration_seconds: render pass duration by kind
//   - hookdom_render_component_renders_total: component body executions
//   - hookdom_render_dom_mutations_total: DOM operations by op
//   - hookdom_render_instances: mounted component instances
//   - hookdom_render_update_storms_total: flushes aborted by ErrUpdateStorm
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		passes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "passes_total",
			Help:        "Total number of render passes",
			ConstLabels: config.ConstLabels,
		}, []string{"kind", "status"}),

		passDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pass_duration_seconds",
			Help:        "Render pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"kind"}),

		componentRenders: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "component_renders_total",
			Help:        "Total number of component body executions",
			ConstLabels: config.ConstLabels,
		}),

		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dom_mutations_total",
			Help:        "Total number of DOM operations issued by the reconciler",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		instances: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "instances",
			Help:        "Number of mounted component instances",
			ConstLabels: config.ConstLabels,
		}),

		storms: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "update_storms_total",
			Help:        "Total number of flushes aborted for exceeding the update depth",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func passKind(name string) string {
	switch name {
	case "hookdom.Render":
		return "render"
	case "hookdom.Unmount":
		return "unmount"
	default:
		return "rerender"
	}
}

// statusPanic labels a pass that ended in a panic not raised by a hook.
const statusPanic = "panic"

func passStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUpdateStorm):
		return "storm"
	case errors.Is(err, hooks.ErrHookOrder), errors.Is(err, hooks.ErrOutsideComponent):
		return "hook_error"
	default:
		return "error"
	}
}

func (r *Renderer) observeRender(name string, start time.Time, status string) {
	if r.metrics == nil {
		return
	}
	kind := passKind(name)
	r.metrics.passes.WithLabelValues(kind, status).Inc()
	r.metrics.passDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

func (r *Renderer) recordMutation(op string) {
	if r.metrics != nil {
		r.metrics.mutations.WithLabelValues(op).Inc()
	}
}

func (r *Renderer) recordComponentRender() {
	if r.metrics != nil {
		r.metrics.componentRenders.Inc()
	}
}

func (r *Renderer) recordInstances() {
	if r.metrics != nil {
		r.metrics.instances.Set(float64(len(r.instances)))
	}
}

func (r *Renderer) recordStorm() {
	if r.metrics != nil {
		r.metrics.storms.Inc()
	}
}
