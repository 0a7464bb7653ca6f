// Package object defines the entities that live in the play area.
package object

import (
	"time"

	"github.com/tomz197/skyquiz/internal/physics"
)

// PlayArea is the logical play field in pixels.
type PlayArea struct {
	Width  float64
	Height float64
}

// Center returns the middle of the area.
func (a PlayArea) Center() (float64, float64) {
	return a.Width / 2, a.Height / 2
}

// Contains reports whether a point lies inside the area (edges inclusive).
func (a PlayArea) Contains(p physics.Point) bool {
	return p.X >= 0 && p.X <= a.Width && p.Y >= 0 && p.Y <= a.Height
}

// UpdateContext provides what an entity needs to advance one tick.
type UpdateContext struct {
	Delta time.Duration
	Area  PlayArea
}

// Entity is a transient member of a population.
type Entity interface {
	// Update moves the entity by one tick.
	Update(ctx UpdateContext)
	// InPlay reports whether the entity is still inside its allowed bounds.
	InPlay(area PlayArea) bool
	// Bounds returns the collision box.
	Bounds() physics.Rect

	IsActive() bool
	Deactivate()
}

// Releasable is implemented by pooled entities that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// Release returns e to its pool if it implements Releasable.
func Release(e any) {
	if r, ok := e.(Releasable); ok {
		r.Release()
	}
}

// Kind identifies an entity type in a rendering snapshot.
type Kind int

const (
	KindAvatar Kind = iota
	KindProjectile
	KindEnemyProjectile
	KindEnemy
	KindPickup
)

// Sprite is a read-only copy of an entity for rendering.
type Sprite struct {
	Kind   Kind
	X, Y   float64 // centre
	W, H   float64
	Class  SizeClass  // enemies only
	Reward RewardKind // pickups only
	Health float64    // current/max health, enemies only
}

// Rect returns the sprite's box.
func (s Sprite) Rect() physics.Rect {
	return physics.RectAround(s.X, s.Y, s.W, s.H)
}
