package server

import (
	"time"

	"github.com/tomz197/skyquiz/internal/loop"
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/quiz"
	"github.com/tomz197/skyquiz/internal/state"
)

// CommandKind identifies a client request.
type CommandKind int

const (
	CmdIntent CommandKind = iota // movement input, replaces the previous one
	CmdStart
	CmdTogglePause
	CmdBomb
	CmdAnswer // Choice is the option index
	CmdReset
	CmdResize // Width and Height in logical pixels
)

// Command is one request from a client to its session.
type Command struct {
	Kind          CommandKind
	Intent        object.Intent
	Choice        int
	Width, Height float64
}

// EventType identifies a hub-to-client notification.
type EventType int

const (
	EventPhase    EventType = iota // the session's phase changed
	EventShutdown                  // the hub is going away
)

// Event is sent from the hub to one client.
type Event struct {
	Type  EventType
	Phase state.Phase
	Score int
}

// Spark is a particle as seen by a renderer.
type Spark struct {
	X, Y   float64
	Symbol rune
	Fade   float64 // 1 when fresh, falling to 0
}

// Frame is the immutable view of one session published after every tick.
type Frame struct {
	loop.Snapshot
	Sparks    []Spark
	Prompt    *quiz.Prompt  // open question, if any
	Remaining time.Duration // until Prompt times out
	Flash     time.Duration // screen flash left after a hit or a bomb
	Sessions  int           // sessions connected to the hub
}
