// Package client renders one session in a terminal and forwards key input.
package client

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyquiz/internal/draw"
	"github.com/tomz197/skyquiz/internal/input"
	"github.com/tomz197/skyquiz/internal/loop/config"
	"github.com/tomz197/skyquiz/internal/loop/server"
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/state"
)

// Client handles rendering and input for a single connection.
type Client struct {
	server       server.GameServer
	handle       *server.Handle
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Logger       *log.Logger
}

// NewClient registers a session with gs and prepares the terminal canvas.
func NewClient(gs server.GameServer, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		termWidth, termHeight = 80, 24
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.AreaWidth, config.AreaHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		server:       gs,
		handle:       gs.Register(opts.Username),
		state:        NewClientState(),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		lastInput:    time.Now(),
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}
}

// Run starts the client loop. Blocks until the client quits, the input
// stream ends or the hub shuts down.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer c.server.Unregister(c.handle.ID)

	lastTime := time.Now()
	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads keys and forwards the resulting commands to the hub.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)
	in := c.state.Input

	if c.inputStream.Closed() || in.Quit {
		c.state.Running = false
		return
	}

	idle := time.Since(c.lastInput).Seconds()
	switch {
	case len(in.Pressed) > 0:
		c.lastInput = time.Now()
		c.state.isInactive = false
	case idle > config.InactivityDisconnectUser:
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
		return
	case idle > config.InactivityWarnUser:
		c.state.isInactive = true
	}

	if c.state.shuttingDown {
		return
	}

	var cmds []server.Command
	cmds, c.state.intent = commandsFor(in, c.handle.Frame(), c.state.intent)
	for _, cmd := range cmds {
		c.handle.Send(cmd)
	}
}

// commandsFor maps one frame of keys onto hub commands for the current screen.
// Intent is only re-sent when it changes.
func commandsFor(in input.Input, f *server.Frame, last object.Intent) ([]server.Command, object.Intent) {
	var cmds []server.Command
	phase := state.PhaseReady
	if f != nil {
		phase = f.State.Phase
	}

	switch {
	case f != nil && f.Prompt != nil:
		if in.Number >= 1 && in.Number <= len(f.Prompt.Question.Options) {
			cmds = append(cmds, server.Command{Kind: server.CmdAnswer, Choice: in.Number - 1})
		}
	case phase == state.PhaseReady:
		if in.Enter || in.Bomb {
			cmds = append(cmds, server.Command{Kind: server.CmdStart})
		}
	case phase == state.PhaseGameOver:
		switch {
		case in.Enter || in.Bomb:
			cmds = append(cmds, server.Command{Kind: server.CmdStart})
		case in.Reset:
			cmds = append(cmds, server.Command{Kind: server.CmdReset})
		}
	case phase == state.PhasePaused:
		switch {
		case in.Pause || in.Enter:
			cmds = append(cmds, server.Command{Kind: server.CmdTogglePause})
		case in.Reset:
			cmds = append(cmds, server.Command{Kind: server.CmdReset})
		}
	case phase == state.PhasePlaying:
		if in.Pause {
			cmds = append(cmds, server.Command{Kind: server.CmdTogglePause})
		}
		if in.Bomb {
			cmds = append(cmds, server.Command{Kind: server.CmdBomb})
		}
	}

	intent := object.Intent{Left: in.Left, Right: in.Right, Up: in.Up, Down: in.Down}
	if phase != state.PhasePlaying {
		intent = object.Intent{}
	}
	if intent != last {
		cmds = append(cmds, server.Command{Kind: server.CmdIntent, Intent: intent})
	}
	return cmds, intent
}

// processServerEvents handles events from the hub.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.Events:
			if !ok {
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventShutdown:
				c.state.shuttingDown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
			case server.EventPhase:
				c.logger.Debug("phase", "phase", event.Phase, "score", event.Score)
				if event.Phase == state.PhasePlaying {
					c.inputStream.Reset()
				}
			}
		default:
			if c.state.shuttingDown {
				c.state.shutdownTimer -= c.state.delta.Seconds()
				if c.state.shutdownTimer <= 0 {
					c.state.Running = false
				}
			}
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and
// computes the centering offset.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
