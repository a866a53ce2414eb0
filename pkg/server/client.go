package server

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/hookdom/pkg/dom"
	"github.com/vango-dev/hookdom/pkg/dom/memdom"
)

// Frame types.
const (
	FrameInit  = "init"
	FramePatch = "patch"
	FrameEvent = "event"
)

// Frame is the JSON envelope exchanged over the WebSocket.
type Frame struct {
	Type      string            `json:"type"`
	Seq       uint64            `json:"seq,omitempty"`
	Mutations []memdom.Mutation `json:"mutations,omitempty"`
	HTML      string            `json:"html,omitempty"`
	Event     string            `json:"event,omitempty"`
	Target    string            `json:"target,omitempty"`
	Value     string            `json:"value,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
}

// client is one connected browser. send is owned by the event loop: only
// loop tasks write to or close it.
type client struct {
	id     string
	conn   *websocket.Conn
	send   chan []byte
	logger *slog.Logger
}

// writePump writes queued frames until send is closed, then closes the
// connection.
func (c *client) writePump(timeout time.Duration) {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(timeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			c.logger.Debug("write error", "error", err)
			c.conn.Close()
			// The loop closes send once the read side notices.
			for range c.send {
			}
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(timeout))
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump reads event frames until the connection fails and hands each one
// to the event loop.
func (s *Server) readPump(c *client) {
	defer s.loop.post(func() { s.removeClient(c) })

	c.conn.SetReadLimit(s.cfg.MaxMessageSize)
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				c.logger.Error("read error", "error", err)
			}
			return
		}

		var f Frame
		if err := json.Unmarshal(msg, &f); err != nil {
			c.logger.Warn("frame decode error", "error", err)
			s.metrics.frames.WithLabelValues("in", "invalid").Inc()
			continue
		}
		s.metrics.frames.WithLabelValues("in", f.Type).Inc()

		switch f.Type {
		case FrameEvent:
			if !s.loop.post(func() { s.dispatch(f) }) {
				return
			}
		default:
			c.logger.Warn("unknown frame type", "type", f.Type)
		}
	}
}

// dispatch delivers a browser event to the document. Runs on the loop.
func (s *Server) dispatch(f Frame) {
	target, ok := s.doc.NodeByID(f.Target)
	if !ok {
		s.metrics.events.WithLabelValues(f.Event, "stale").Inc()
		s.logger.Debug("event for unknown node", "event", f.Event, "target", f.Target)
		return
	}
	n := s.doc.Dispatch(target, &dom.Event{Type: f.Event, Value: f.Value, Data: f.Data})
	outcome := "handled"
	if n == 0 {
		outcome = "unhandled"
	}
	s.metrics.events.WithLabelValues(f.Event, outcome).Inc()
	if s.cfg.Debug {
		s.logger.Debug("event", "event", f.Event, "target", f.Target, "listeners", n)
	}
}
