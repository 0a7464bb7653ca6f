// Package audio plays the game's sound cues.
package audio

import "errors"

//go:generate go tool mockgen -destination=mocks/mock_audio.go -package=mocks . Port

// ErrUnavailable is returned when no audio device can be opened.
var ErrUnavailable = errors.New("audio unavailable")

// Port is the set of cues the simulation can trigger.
// Implementations must never block the caller.
type Port interface {
	PlayExplosion()
	PlayHit()
	PlayBulletHit()
	PlayPowerUp()
	PlayRevive()
}

// Nop is a silent Port.
type Nop struct{}

func (Nop) PlayExplosion() {}
func (Nop) PlayHit()       {}
func (Nop) PlayBulletHit() {}
func (Nop) PlayPowerUp()   {}
func (Nop) PlayRevive()    {}

// Cue identifies one sound.
type Cue int

const (
	CueExplosion Cue = iota
	CueHit
	CueBulletHit
	CuePowerUp
	CueRevive
)

func (c Cue) String() string {
	switch c {
	case CueExplosion:
		return "explosion"
	case CueHit:
		return "hit"
	case CueBulletHit:
		return "bullet-hit"
	case CuePowerUp:
		return "power-up"
	case CueRevive:
		return "revive"
	}
	return "unknown"
}
