package state

import (
	"time"

	"github.com/tomz197/skyquiz/internal/loop/config"
)

// Action is a pure transition from one state to the next.
type Action func(State) State

// Start begins a new game, keeping only the high score.
func Start(s State) State {
	next := Initial()
	next.HighScore = s.HighScore
	next.Phase = PhasePlaying
	return next
}

// Pause suspends a running game.
func Pause(s State) State {
	if s.Phase == PhasePlaying {
		s.Phase = PhasePaused
	}
	return s
}

// Resume continues a paused game.
func Resume(s State) State {
	if s.Phase == PhasePaused {
		s.Phase = PhasePlaying
	}
	return s
}

// GameOver ends the game and raises the high score if it was beaten.
func GameOver(s State) State {
	s.Phase = PhaseGameOver
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	return s
}

// Reset returns to the title screen.
func Reset(s State) State {
	next := Initial()
	next.HighScore = s.HighScore
	return next
}

// IncrementScore adds points. Non-positive amounts are ignored.
func IncrementScore(points int) Action {
	return func(s State) State {
		if points <= 0 {
			return s
		}
		s.Score += points
		s.Level = LevelFor(s.Score)
		return s
	}
}

// LoseLife consumes the shield if one is up, otherwise one life.
// Reaching zero lives after the revive was used ends the game.
func LoseLife(s State) State {
	if s.PowerUps.Shield {
		s.PowerUps.Shield = false
		return s
	}
	s.Lives = max(s.Lives-1, 0)
	if s.Lives == 0 && s.HasUsedRevive {
		return GameOver(s)
	}
	return s
}

// AddExtraBullet adds one parallel shot, up to the cap.
func AddExtraBullet(s State) State {
	s.PowerUps.ExtraBullets = min(s.PowerUps.ExtraBullets+1, config.MaxExtraBullets)
	return s
}

// ActivateShield arms the shield. It absorbs the next life loss.
func ActivateShield(s State) State {
	s.PowerUps.Shield = true
	return s
}

// ActivateSpeedBoost starts (or extends) the speed boost from play-clock time now.
func ActivateSpeedBoost(now time.Duration) Action {
	return func(s State) State {
		s.PowerUps.SpeedBoost = true
		s.PowerUps.SpeedBoostUntil = now + config.SpeedBoostDuration
		return s
	}
}

// DeactivateSpeedBoost ends the speed boost.
func DeactivateSpeedBoost(s State) State {
	s.PowerUps.SpeedBoost = false
	s.PowerUps.SpeedBoostUntil = 0
	return s
}

// AddBomb adds one bomb charge, up to the cap.
func AddBomb(s State) State {
	s.PowerUps.Bombs = min(s.PowerUps.Bombs+1, config.MaxBombs)
	return s
}

// UseBomb consumes one bomb charge if any remain.
func UseBomb(s State) State {
	if s.PowerUps.Bombs > 0 {
		s.PowerUps.Bombs--
	}
	return s
}

// Revive brings the player back with one life. It can only be used once.
func Revive(s State) State {
	s.Lives = 1
	s.HasUsedRevive = true
	s.ReviveChances = max(s.ReviveChances-1, 0)
	return s
}

// WithHighScore records a loaded high score if it beats the current one.
func WithHighScore(score int) Action {
	return func(s State) State {
		if score > s.HighScore {
			s.HighScore = score
		}
		return s
	}
}
