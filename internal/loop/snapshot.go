package loop

import (
	"time"

	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/state"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	State   state.State
	Area    object.PlayArea
	Clock   time.Duration
	Avatar  object.Sprite
	Sprites []object.Sprite // projectiles, enemies, enemy shots, pickups
	Stars   []object.Star
	Quiz    bool // a question is open or queued
}

// Snapshot copies the live populations. Inactive entities are skipped.
func (c *Controller) Snapshot() Snapshot {
	shots := c.projectiles.Active()
	enemies := c.enemies.Active()
	enemyShots := c.enemies.Shots()
	pickups := c.pickups.Active()

	sprites := make([]object.Sprite, 0, len(shots)+len(enemies)+len(enemyShots)+len(pickups))
	sprites = appendSprites(sprites, shots)
	sprites = appendSprites(sprites, enemies)
	sprites = appendSprites(sprites, enemyShots)
	sprites = appendSprites(sprites, pickups)

	return Snapshot{
		State:   c.store.State(),
		Area:    c.area,
		Clock:   c.clock,
		Avatar:  c.avatar.Sprite(),
		Sprites: sprites,
		Stars:   c.stars.Snapshot(),
		Quiz:    c.QuizPending(),
	}
}

type spriter interface {
	object.Entity
	Sprite() object.Sprite
}

func appendSprites[T spriter](dst []object.Sprite, src []T) []object.Sprite {
	for _, e := range src {
		if e.IsActive() {
			dst = append(dst, e.Sprite())
		}
	}
	return dst
}
