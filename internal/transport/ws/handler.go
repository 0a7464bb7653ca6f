// Package ws serves hub sessions to browsers over a websocket.
//
// The browser sends Inbound JSON messages and receives an Outbound frame at
// the client frame rate. One connection is one session.
package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/skyquiz/internal/loop/config"
	"github.com/tomz197/skyquiz/internal/loop/server"
)

var (
	errShutdown = errors.New("server shutting down")
	errClosed   = errors.New("session closed")
	errIdle     = errors.New("idle timeout")
)

// Handler upgrades requests and runs one session per connection.
type Handler struct {
	hub           server.GameServer
	logger        *log.Logger
	frameInterval time.Duration
	idleTimeout   time.Duration
	acceptOpts    *websocket.AcceptOptions
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler's logger.
func WithLogger(l *log.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// WithFrameInterval sets how often frames are pushed to the browser.
func WithFrameInterval(d time.Duration) Option {
	return func(h *Handler) { h.frameInterval = d }
}

// WithOriginPatterns allows cross-origin connections from the given hosts.
func WithOriginPatterns(patterns ...string) Option {
	return func(h *Handler) { h.acceptOpts.OriginPatterns = patterns }
}

// NewHandler creates a websocket handler backed by hub.
func NewHandler(hub server.GameServer, opts ...Option) *Handler {
	h := &Handler{
		hub:           hub,
		logger:        log.Default(),
		frameInterval: config.ClientTargetFrameTime,
		idleTimeout:   time.Duration(config.InactivityDisconnectUser * float64(time.Second)),
		acceptOpts:    &websocket.AcceptOptions{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, h.acceptOpts)
	if err != nil {
		h.logger.Error("failed to accept", "err", err)
		return
	}
	defer conn.CloseNow()

	handle := h.hub.Register(r.URL.Query().Get("name"))
	defer h.hub.Unregister(handle.ID)

	logger := h.logger.With("session", handle.ID.String()[:8], "remote", r.RemoteAddr)
	logger.Info("websocket connected")

	err = h.serve(r.Context(), conn, handle)
	switch {
	case errors.Is(err, errClosed), errors.Is(err, errShutdown), errors.Is(err, errIdle):
		logger.Info("websocket closed", "reason", err)
	case websocket.CloseStatus(err) != -1, errors.Is(err, context.Canceled):
		// Peer went away.
	default:
		logger.Warn("websocket error", "err", err)
	}
	logger.Info("websocket disconnected")
}

// serve pumps commands in and frames out until either side stops.
func (h *Handler) serve(ctx context.Context, conn *websocket.Conn, handle *server.Handle) error {
	eg, ctx := errgroup.WithContext(ctx)
	lastInput := make(chan struct{}, 1)

	eg.Go(func() error {
		for {
			var msg Inbound
			if err := wsjson.Read(ctx, conn, &msg); err != nil {
				return err
			}
			select {
			case lastInput <- struct{}{}:
			default:
			}
			if cmd, ok := msg.Command(); ok {
				handle.Send(cmd)
			}
		}
	})

	eg.Go(func() error {
		ticker := time.NewTicker(h.frameInterval)
		defer ticker.Stop()
		idle := time.NewTimer(h.idleTimeout)
		defer idle.Stop()

		var last *server.Frame
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-lastInput:
				idle.Reset(h.idleTimeout)
			case <-idle.C:
				return closeWith(conn, websocket.StatusGoingAway, errIdle)
			case ev, ok := <-handle.Events:
				if !ok {
					return closeWith(conn, websocket.StatusNormalClosure, errClosed)
				}
				if ev.Type == server.EventShutdown {
					_ = wsjson.Write(ctx, conn, Outbound{Type: "shutdown"})
					return closeWith(conn, websocket.StatusGoingAway, errShutdown)
				}
			case <-ticker.C:
				f := handle.Frame()
				if f == nil || f == last {
					continue
				}
				last = f
				if err := wsjson.Write(ctx, conn, Outbound{Type: "frame", Frame: NewView(f)}); err != nil {
					return err
				}
			}
		}
	})

	return eg.Wait()
}

// closeWith sends a close frame before the read side is cancelled.
func closeWith(conn *websocket.Conn, code websocket.StatusCode, err error) error {
	_ = conn.Close(code, err.Error())
	return err
}
