package client

import (
	"time"

	"github.com/tomz197/skyquiz/internal/input"
	"github.com/tomz197/skyquiz/internal/loop/server"
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/state"
)

// screen is which overlay the client shows. A change triggers a full repaint.
type screen int

const (
	screenTitle screen = iota
	screenPlaying
	screenPaused
	screenQuiz
	screenGameOver
	screenInactive
	screenShutdown
)

// screenFor picks the overlay for a frame.
func screenFor(f *server.Frame, shuttingDown, inactive bool) screen {
	switch {
	case shuttingDown:
		return screenShutdown
	case inactive:
		return screenInactive
	case f == nil:
		return screenTitle
	case f.Prompt != nil:
		return screenQuiz
	}
	switch f.State.Phase {
	case state.PhasePlaying:
		return screenPlaying
	case state.PhasePaused:
		return screenPaused
	case state.PhaseGameOver:
		return screenGameOver
	}
	return screenTitle
}

// ClientState holds per-connection UI state.
type ClientState struct {
	Input         input.Input
	Running       bool
	delta         time.Duration
	intent        object.Intent // last intent sent to the hub
	shuttingDown  bool
	shutdownTimer float64 // seconds left on the shutdown screen
	isInactive    bool
	prevScreen    screen
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running:    true,
		prevScreen: -1,
	}
}
