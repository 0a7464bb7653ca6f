package object

import (
	"sync"

	"github.com/tomz197/skyquiz/internal/physics"
)

// Player projectile properties.
const (
	ProjectileWidth  = 16.0
	ProjectileHeight = 32.0
	ProjectileSpeed  = 300.0 // px/s, upward
	ProjectileDamage = 1
	projectileExit   = -50.0 // leaves play above this Y
)

var projectilePool = sync.Pool{
	New: func() any {
		return &Projectile{}
	},
}

// Projectile is a shot fired by the avatar.
type Projectile struct {
	X, Y   float64 // centre
	VY     float64
	active bool
}

// NewProjectile takes a projectile from the pool and places it at (x, y).
func NewProjectile(x, y float64) *Projectile {
	p := projectilePool.Get().(*Projectile)
	p.X = x
	p.Y = y
	p.VY = -ProjectileSpeed
	p.active = true
	return p
}

// Release returns the projectile to the pool.
// It must not be used afterwards.
func (p *Projectile) Release() {
	p.active = false
	projectilePool.Put(p)
}

// Update moves the projectile.
func (p *Projectile) Update(ctx UpdateContext) {
	p.Y += p.VY * ctx.Delta.Seconds()
}

// InPlay reports whether the projectile is still on its way up.
func (p *Projectile) InPlay(_ PlayArea) bool {
	return p.Y >= projectileExit
}

func (p *Projectile) Bounds() physics.Rect {
	return physics.RectAround(p.X, p.Y, ProjectileWidth, ProjectileHeight)
}

func (p *Projectile) IsActive() bool { return p.active }
func (p *Projectile) Deactivate()    { p.active = false }

func (p *Projectile) Sprite() Sprite {
	return Sprite{Kind: KindProjectile, X: p.X, Y: p.Y, W: ProjectileWidth, H: ProjectileHeight}
}
