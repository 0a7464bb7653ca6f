// Package collision resolves overlaps between entity populations.
package collision

import (
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/physics"
)

//go:generate go tool mockgen -destination=mocks/mock_collision.go -package=mocks . Effects,Ledger

// Effects receives the presentation side of each collision.
type Effects interface {
	// EnemyDestroyed fires once per destroyed enemy.
	EnemyDestroyed(x, y float64, class object.SizeClass)
	// EnemyDamaged fires when a projectile hits an enemy that survives.
	EnemyDamaged()
	// AvatarHit fires after a life loss. fatal is true when no lives remain.
	AvatarHit(fatal bool)
	// RewardTriggered fires when the avatar collects a pickup.
	RewardTriggered(kind object.RewardKind)
}

// Ledger applies the state side of each collision.
type Ledger interface {
	AwardScore(points int)
	// LoseLife applies one life loss and reports whether it left zero lives.
	LoseLife() (fatal bool)
}

// Resolver checks every population pair once per tick.
// It keeps a spatial grid between calls to avoid per-tick allocation.
type Resolver struct {
	grid *physics.SpatialGrid
}

// GridCellSize covers the largest combined half-extent of a projectile and an enemy.
func GridCellSize() float64 {
	return object.MaxEnemyExtent()/2 + max(object.ProjectileWidth, object.ProjectileHeight)/2
}

// NewResolver creates a resolver for the given area.
func NewResolver(area object.PlayArea) *Resolver {
	return &Resolver{
		grid: physics.NewSpatialGrid(area.Width, area.Height, GridCellSize()),
	}
}

// SetArea re-dimensions the broad-phase grid.
func (r *Resolver) SetArea(area object.PlayArea) {
	r.grid.Resize(area.Width, area.Height)
}

// ResolveAll runs the four collision steps in order:
//  1. projectile × enemy
//  2. avatar × enemy
//  3. avatar × enemy projectile
//  4. avatar × pickup
//
// Deactivations in an earlier step are visible to later ones.
func (r *Resolver) ResolveAll(
	shots []*object.Projectile,
	enemies []*object.Enemy,
	avatar *object.Avatar,
	enemyShots []*object.EnemyProjectile,
	pickups []*object.Pickup,
	ledger Ledger,
	fx Effects,
) {
	r.resolveShots(shots, enemies, ledger, fx)
	if avatar == nil {
		return
	}
	box := avatar.Bounds()
	resolveAvatarEnemies(box, enemies, ledger, fx)
	resolveAvatarShots(box, enemyShots, ledger, fx)
	resolveAvatarPickups(box, pickups, fx)
}

func (r *Resolver) resolveShots(shots []*object.Projectile, enemies []*object.Enemy, ledger Ledger, fx Effects) {
	if len(shots) == 0 || len(enemies) == 0 {
		return
	}

	r.grid.Clear()
	for i, e := range enemies {
		if e.IsActive() {
			r.grid.Insert(e.X, e.Y, i)
		}
	}

	for _, p := range shots {
		if !p.IsActive() {
			continue
		}
		pb := p.Bounds()

		// Lowest index wins, matching a front-to-back scan.
		target := -1
		r.grid.QueryAround(p.X, p.Y, func(i int) bool {
			if (target < 0 || i < target) && enemies[i].IsActive() && physics.Overlaps(pb, enemies[i].Bounds()) {
				target = i
			}
			return false
		})
		if target < 0 {
			continue
		}

		p.Deactivate()
		e := enemies[target]
		if e.Hit(object.ProjectileDamage) {
			ledger.AwardScore(e.Class.Spec().Score)
			fx.EnemyDestroyed(e.X, e.Y, e.Class)
		} else {
			fx.EnemyDamaged()
		}
	}
}

func resolveAvatarEnemies(box physics.Rect, enemies []*object.Enemy, ledger Ledger, fx Effects) {
	for _, e := range enemies {
		if !e.IsActive() || !physics.Overlaps(box, e.Bounds()) {
			continue
		}
		e.Deactivate()
		fatal := ledger.LoseLife()
		fx.EnemyDestroyed(e.X, e.Y, e.Class)
		fx.AvatarHit(fatal)
	}
}

func resolveAvatarShots(box physics.Rect, shots []*object.EnemyProjectile, ledger Ledger, fx Effects) {
	for _, s := range shots {
		if !s.IsActive() || !physics.Overlaps(box, s.Bounds()) {
			continue
		}
		s.Deactivate()
		fx.AvatarHit(ledger.LoseLife())
	}
}

func resolveAvatarPickups(box physics.Rect, pickups []*object.Pickup, fx Effects) {
	for _, p := range pickups {
		if !p.IsActive() || !physics.Overlaps(box, p.Bounds()) {
			continue
		}
		p.Deactivate()
		fx.RewardTriggered(p.Reward)
	}
}
