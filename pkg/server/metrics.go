package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the server collectors. Render collectors live in
// render.Metrics on the same registry.
type metrics struct {
	clients      prometheus.Gauge
	frames       *prometheus.CounterVec
	events       *prometheus.CounterVec
	renderErrors prometheus.Counter
	dropped      prometheus.Counter
}

func newMetrics(reg prometheus.Registerer, namespace string) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		clients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "clients",
			Help:      "Number of connected WebSocket clients",
		}),
		frames: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "frames_total",
			Help:      "WebSocket frames by direction and type",
		}, []string{"direction", "type"}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "events_total",
			Help:      "Browser events by type and outcome",
		}, []string{"event", "outcome"}),
		renderErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "render_errors_total",
			Help:      "Errors of re-renders started by state setters",
		}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "dropped_clients_total",
			Help:      "Clients disconnected for not keeping up with patches",
		}),
	}
}
