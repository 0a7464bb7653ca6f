// Package server hosts many independent game sessions on one tick goroutine.
package server

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/skyquiz/internal/audio"
	"github.com/tomz197/skyquiz/internal/loop/config"
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/quiz"
	"github.com/tomz197/skyquiz/internal/state"
)

// GameServer is the interface clients use to talk to the hub.
type GameServer interface {
	Register(name string) *Handle
	Unregister(id uuid.UUID)
}

// Options configures a Hub. Zero fields get defaults.
type Options struct {
	Area       object.PlayArea
	Logger     *log.Logger
	HighScores state.HighScoreStore // shared by every session
	Audio      func() audio.Port    // called once per session
	Bank       []quiz.Question
	Clock      func() time.Time
}

// Hub runs one loop.Controller per connected client.
type Hub struct {
	opts     Options
	sessions map[uuid.UUID]*session // owned by Run

	commandCh    chan clientCommand
	registerCh   chan *Handle
	unregisterCh chan uuid.UUID

	mu      sync.RWMutex
	handles map[uuid.UUID]*Handle
}

// Compile-time check that Hub implements GameServer.
var _ GameServer = (*Hub)(nil)

// Handle is a client's connection to its session.
type Handle struct {
	ID     uuid.UUID
	Name   string
	Events chan Event // closed when the session is removed

	hub   *Hub
	frame atomic.Pointer[Frame]
}

type clientCommand struct {
	id  uuid.UUID
	cmd Command
}

// NewHub creates a hub. Call Run to start ticking.
func NewHub(opts Options) *Hub {
	if opts.Area.Width <= 0 || opts.Area.Height <= 0 {
		opts.Area = object.PlayArea{Width: config.AreaWidth, Height: config.AreaHeight}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.HighScores == nil {
		opts.HighScores = &state.MemoryStore{}
	}
	if opts.Audio == nil {
		opts.Audio = func() audio.Port { return audio.Nop{} }
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Hub{
		opts:         opts,
		sessions:     make(map[uuid.UUID]*session),
		commandCh:    make(chan clientCommand, 256),
		registerCh:   make(chan *Handle, 16),
		unregisterCh: make(chan uuid.UUID, 16),
		handles:      make(map[uuid.UUID]*Handle),
	}
}

// Run ticks every session at config.ServerTickRate. Blocks until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	h.opts.Logger.Info("hub started", "tick", config.ServerTickTime)
	defer h.closeAll()

	lastTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		h.step(delta)

		elapsed := time.Since(frameStart)
		if elapsed < config.ServerTickTime {
			time.Sleep(config.ServerTickTime - elapsed)
		}
	}
}

// step runs one hub frame: registrations, commands, simulation, frames.
func (h *Hub) step(delta time.Duration) {
	h.processRegistrations()
	h.collectCommands()

	now := h.opts.Clock()
	for _, s := range h.sessions {
		s.step(delta, now)
	}
	for _, s := range h.sessions {
		s.publish(now, len(h.sessions))
	}
}

// Shutdown notifies every client and waits for them to disconnect, up to
// timeout. The caller should cancel Run's context afterwards.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.mu.RLock()
	for _, handle := range h.handles {
		select {
		case handle.Events <- Event{Type: EventShutdown}:
		default:
		}
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return
		case <-ticker.C:
			if h.Count() == 0 {
				return
			}
		}
	}
}

// Register creates a session for a new client.
func (h *Hub) Register(name string) *Handle {
	handle := &Handle{
		ID:     uuid.New(),
		Name:   name,
		Events: make(chan Event, 16),
		hub:    h,
	}

	h.mu.Lock()
	h.handles[handle.ID] = handle
	h.mu.Unlock()

	h.registerCh <- handle
	return handle
}

// Unregister removes a client's session.
func (h *Hub) Unregister(id uuid.UUID) {
	h.unregisterCh <- id
}

// Count returns the number of registered clients.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handles)
}

// Send queues a command for this client's session. It never blocks; when
// the queue is full the command is dropped.
func (c *Handle) Send(cmd Command) {
	select {
	case c.hub.commandCh <- clientCommand{id: c.ID, cmd: cmd}:
	default:
	}
}

// Frame returns the latest published frame, or nil before the first tick.
func (c *Handle) Frame() *Frame {
	return c.frame.Load()
}

func (h *Hub) processRegistrations() {
	for {
		select {
		case handle := <-h.registerCh:
			s := newSession(handle, h.opts)
			h.sessions[handle.ID] = s
			s.logger.Info("session opened", "high", s.ctrl.State().HighScore)
		case id := <-h.unregisterCh:
			h.remove(id)
		default:
			return
		}
	}
}

func (h *Hub) remove(id uuid.UUID) {
	s, ok := h.sessions[id]
	if !ok {
		return
	}
	st := s.ctrl.State()
	s.close()
	delete(h.sessions, id)

	h.mu.Lock()
	delete(h.handles, id)
	h.mu.Unlock()
	close(s.handle.Events)

	s.logger.Info("session closed", "score", st.Score, "high", st.HighScore)
}

func (h *Hub) collectCommands() {
	for {
		select {
		case cc := <-h.commandCh:
			if s, ok := h.sessions[cc.id]; ok {
				s.apply(cc.cmd)
			}
		default:
			return
		}
	}
}

func (h *Hub) closeAll() {
	h.processRegistrations()
	for id := range h.sessions {
		h.remove(id)
	}
	h.opts.Logger.Info("hub stopped")
}
