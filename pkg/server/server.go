package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	herrors "github.com/vango-dev/hookdom/internal/errors"
	"github.com/vango-dev/hookdom/internal/snapshot"
	"github.com/vango-dev/hookdom/pkg/dom/memdom"
	"github.com/vango-dev/hookdom/pkg/middleware"
	"github.com/vango-dev/hookdom/pkg/render"
)

// Server is the preview server.
type Server struct {
	cfg    Config
	logger *slog.Logger

	// Owned by the event loop.
	doc      *memdom.Document
	renderer *render.Renderer
	clients  map[string]*client
	seq      uint64

	loop     *loop
	sched    *scheduler
	registry *prometheus.Registry
	metrics  *metrics
	upgrader websocket.Upgrader
	router   chi.Router

	closeOnce sync.Once
}

// New creates a server and renders its application. The event loop runs
// until Close.
func New(cfg Config) (*Server, error) {
	cfg.applyDefaults()

	s := &Server{
		cfg:      cfg,
		logger:   cfg.Logger.With("component", "server"),
		doc:      memdom.NewDocument(),
		clients:  make(map[string]*client),
		registry: prometheus.NewRegistry(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}
	s.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	s.metrics = newMetrics(s.registry, cfg.Namespace)

	opts := []render.Option{
		render.WithLogger(cfg.Logger),
		render.WithDebug(cfg.Debug),
		render.WithMaxUpdateDepth(cfg.MaxUpdateDepth),
		render.WithMetrics(render.NewMetrics(
			render.WithNamespace(cfg.Namespace),
			render.WithRegistry(s.registry),
		)),
		render.WithErrorHandler(s.renderError),
	}
	if cfg.Tracer != nil {
		opts = append(opts, render.WithTracer(cfg.Tracer))
	}
	s.renderer = render.New(s.doc, opts...)

	s.loop = newLoop(s.flush)
	s.sched = newScheduler(s.loop)
	s.router = s.routes()
	go s.loop.run()

	err := s.loop.do(context.Background(), func() error {
		return s.renderer.Render(context.Background(), cfg.App(s.sched), s.doc.Root())
	})
	if err != nil {
		s.sched.close()
		s.loop.stop()
		return nil, err
	}
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Prometheus(
		middleware.WithRegistry(s.registry),
		middleware.WithNamespace(s.cfg.Namespace),
	))
	if s.cfg.Tracer != nil {
		r.Use(middleware.OpenTelemetry(s.cfg.Tracer))
	}
	r.Use(middleware.Logger(s.logger))

	r.Get("/", s.handlePage)
	r.Get("/ws", s.HandleWebSocket)
	r.Get("/snapshot", s.handleSnapshot)
	r.Post("/snapshot", s.handleUpload)
	if !s.cfg.DisableMetricsEndpoint {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return r
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the Prometheus registry of the server.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// Do runs fn on the event loop with exclusive access to the document.
func (s *Server) Do(ctx context.Context, fn func(doc *memdom.Document) error) error {
	return s.loop.do(ctx, func() error { return fn(s.doc) })
}

// HTML returns the current markup of the rendered tree.
func (s *Server) HTML(ctx context.Context) (string, error) {
	var html string
	err := s.Do(ctx, func(doc *memdom.Document) error {
		html = doc.Root().InnerHTML()
		return nil
	})
	return html, err
}

// Clients returns the number of connected clients.
func (s *Server) Clients(ctx context.Context) (int, error) {
	var n int
	err := s.loop.do(ctx, func() error {
		n = len(s.clients)
		return nil
	})
	return n, err
}

// flush broadcasts the mutations recorded by the last loop task.
func (s *Server) flush() {
	muts := s.doc.Journal().Drain()
	if len(muts) == 0 {
		return
	}
	s.seq++
	if len(s.clients) == 0 {
		return
	}
	s.broadcast(Frame{
		Type:      FramePatch,
		Seq:       s.seq,
		Mutations: muts,
		HTML:      s.doc.Root().InnerHTMLWithIDs(IDAttribute),
	})
}

func (s *Server) broadcast(f Frame) {
	msg, err := json.Marshal(f)
	if err != nil {
		s.logger.Error("frame encode error", "error", err)
		return
	}
	for _, c := range s.clients {
		select {
		case c.send <- msg:
			s.metrics.frames.WithLabelValues("out", f.Type).Inc()
		default:
			s.logger.Warn("client too slow, disconnecting", "client", c.id)
			s.metrics.dropped.Inc()
			s.removeClient(c)
		}
	}
}

// renderError receives errors of re-renders triggered outside a render,
// such as from event handlers and clock ticks.
func (s *Server) renderError(err error) {
	s.metrics.renderErrors.Inc()
	s.logger.Error("render failed", "error", err)
}

// HandleWebSocket upgrades the request and serves the client until it
// disconnects.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, s.cfg.SendBuffer),
	}
	c.logger = s.logger.With("client", c.id)

	// Registration and the init frame share a loop task so no patch can fall
	// between them.
	err = s.loop.do(r.Context(), func() error {
		msg, err := json.Marshal(Frame{
			Type: FrameInit,
			Seq:  s.seq,
			HTML: s.doc.Root().InnerHTMLWithIDs(IDAttribute),
		})
		if err != nil {
			return err
		}
		c.send <- msg
		s.clients[c.id] = c
		s.metrics.clients.Set(float64(len(s.clients)))
		s.metrics.frames.WithLabelValues("out", FrameInit).Inc()
		return nil
	})
	if err != nil {
		s.logger.Error("client registration failed", "error", err)
		conn.Close()
		return
	}
	c.logger.Debug("client connected")

	go c.writePump(s.cfg.WriteTimeout)
	s.readPump(c)
}

// removeClient unregisters c and closes its send queue. Runs on the loop.
func (s *Server) removeClient(c *client) {
	if _, ok := s.clients[c.id]; !ok {
		return
	}
	delete(s.clients, c.id)
	close(c.send)
	s.metrics.clients.Set(float64(len(s.clients)))
	c.logger.Debug("client disconnected")
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var body string
	err := s.Do(r.Context(), func(doc *memdom.Document) error {
		body = doc.Root().InnerHTMLWithIDs(IDAttribute)
		return nil
	})
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, herrors.New("E170").Wrap(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page(s.cfg.Title, body))
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	body, err := s.HTML(r.Context())
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, herrors.New("E170").Wrap(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(snapshot.Page(s.cfg.Title, body))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Snapshots == nil {
		s.writeError(w, http.StatusServiceUnavailable, herrors.New("E151"))
		return
	}
	body, err := s.HTML(r.Context())
	if err != nil {
		s.writeError(w, http.StatusServiceUnavailable, herrors.New("E170").Wrap(err))
		return
	}
	key, err := s.cfg.Snapshots.Upload(r.Context(), r.URL.Query().Get("key"), s.cfg.Title, body)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, herrors.FromError(err, "E150"))
		return
	}
	s.logger.Info("snapshot uploaded", "key", key)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"key": key})
}

func (s *Server) writeError(w http.ResponseWriter, status int, err *herrors.HookdomError) {
	s.logger.Error("request failed", "code", err.Code, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(err.FormatJSON()))
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts the
// HTTP server down and closes s.
func (s *Server) ListenAndServe(ctx context.Context) error {
	hs := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.cfg.Addr)
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return herrors.New("E170").Wrap(err)

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// Hijacked WebSocket connections are not tracked by Shutdown; Close
		// disconnects them.
		s.Close()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return herrors.New("E170").Wrap(err)
		}
		<-errCh
		return nil
	}
}

// Close unmounts the application, disconnects all clients and stops the
// event loop. It is safe to call more than once.
func (s *Server) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.loop.do(context.Background(), func() error {
			s.renderer.Unmount(s.doc.Root())
			for _, c := range s.clients {
				s.removeClient(c)
			}
			return nil
		})
		s.sched.close()
		s.loop.stop()
		s.logger.Info("server closed")
	})
	return err
}
