package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/hookdom/internal/demo"
	"github.com/vango-dev/hookdom/internal/snapshot"
	"github.com/vango-dev/hookdom/pkg/vdom"
)

// IDAttribute carries node ids in the HTML sent to browsers.
const IDAttribute = "data-hid"

// Config configures a Server.
type Config struct {
	// Addr is the listen address used by ListenAndServe.
	// Default: "localhost:4000"
	Addr string

	// Title of the served page and of uploaded snapshots.
	Title string

	// WriteTimeout bounds every WebSocket write.
	// Default: 10s
	WriteTimeout time.Duration

	// MaxMessageSize limits inbound WebSocket frames.
	// Default: 4KB
	MaxMessageSize int64

	// SendBuffer is the number of frames queued per client before the
	// client is dropped as too slow.
	// Default: 64
	SendBuffer int

	// CheckOrigin validates WebSocket upgrade requests.
	// Default: SameOriginCheck
	CheckOrigin func(r *http.Request) bool

	Logger *slog.Logger
	Debug  bool

	// MaxUpdateDepth is passed to render.WithMaxUpdateDepth.
	MaxUpdateDepth int

	// DisableMetricsEndpoint removes GET /metrics. Collectors are still
	// registered on Registry.
	DisableMetricsEndpoint bool

	// Namespace of the Prometheus metrics.
	// Default: "hookdom"
	Namespace string

	// Tracer receives render spans. Nil disables tracing.
	Tracer trace.Tracer

	// Snapshots backs POST /snapshot. Nil disables uploads.
	Snapshots *snapshot.Store

	// App builds the rendered tree. The scheduler it receives posts ticks to
	// the event loop. Default: the demo application.
	App func(demo.Scheduler) *vdom.VNode
}

// DefaultConfig returns a Config with defaults filled in.
func DefaultConfig() Config {
	var c Config
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = "localhost:4000"
	}
	if c.Title == "" {
		c.Title = "hookdom"
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = 4 * 1024
	}
	if c.SendBuffer <= 0 {
		c.SendBuffer = 64
	}
	if c.CheckOrigin == nil {
		c.CheckOrigin = SameOriginCheck
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Namespace == "" {
		c.Namespace = "hookdom"
	}
	if c.App == nil {
		c.App = func(s demo.Scheduler) *vdom.VNode {
			return demo.Tree(demo.Options{Scheduler: s})
		}
	}
}

// SameOriginCheck accepts requests without an Origin header and requests
// whose Origin host matches the request host.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return r.Host != "" && u.Host == r.Host
}
