// Package state holds the authoritative game record and the actions that change it.
package state

import (
	"time"

	"github.com/tomz197/skyquiz/internal/loop/config"
)

// Phase is the top-level game phase.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// PowerUps are the player's temporary and stackable bonuses.
type PowerUps struct {
	Shield          bool
	Bombs           int
	ExtraBullets    int
	SpeedBoost      bool
	SpeedBoostUntil time.Duration // play-clock time the boost expires
}

// State is one immutable snapshot of the game record.
// Values are replaced wholesale by actions, never edited in place.
type State struct {
	Phase         Phase
	Score         int
	Lives         int
	Level         int
	HighScore     int
	PowerUps      PowerUps
	ReviveChances int
	HasUsedRevive bool
}

// Initial returns the state of a fresh session.
func Initial() State {
	return State{
		Phase:         PhaseReady,
		Lives:         config.InitialLives,
		Level:         1,
		ReviveChances: config.InitialReviveChances,
	}
}

// LevelFor returns the level shown for a score.
func LevelFor(score int) int {
	return score/config.PointsPerLevel + 1
}
