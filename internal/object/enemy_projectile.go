package object

import (
	"math"

	"github.com/tomz197/skyquiz/internal/physics"
)

// Enemy projectile properties.
const (
	EnemyProjectileRadius = 6.0
	EnemyProjectileSpeed  = 200.0 // px/s
	enemyProjectileMargin = 50.0
)

// EnemyProjectile is a round shot fired by an enemy. It collides through its
// enclosing box.
type EnemyProjectile struct {
	X, Y   float64 // centre
	VX, VY float64
	active bool
}

// NewEnemyProjectile launches a shot downward, tilted by angle radians.
// Angle 0 falls straight down.
func NewEnemyProjectile(x, y, angle float64) *EnemyProjectile {
	return &EnemyProjectile{
		X:      x,
		Y:      y,
		VX:     math.Sin(angle) * EnemyProjectileSpeed,
		VY:     EnemyProjectileSpeed,
		active: true,
	}
}

func (p *EnemyProjectile) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

func (p *EnemyProjectile) InPlay(area PlayArea) bool {
	return p.Y <= area.Height+enemyProjectileMargin &&
		p.X >= -enemyProjectileMargin &&
		p.X <= area.Width+enemyProjectileMargin
}

func (p *EnemyProjectile) Bounds() physics.Rect {
	return physics.CircleBounds(p.X, p.Y, EnemyProjectileRadius)
}

func (p *EnemyProjectile) IsActive() bool { return p.active }
func (p *EnemyProjectile) Deactivate()    { p.active = false }

func (p *EnemyProjectile) Sprite() Sprite {
	d := EnemyProjectileRadius * 2
	return Sprite{Kind: KindEnemyProjectile, X: p.X, Y: p.Y, W: d, H: d}
}
