package manager

import (
	"time"

	"github.com/tomz197/skyquiz/internal/loop/config"
	"github.com/tomz197/skyquiz/internal/object"
	"github.com/tomz197/skyquiz/internal/physics"
)

// ProjectileManager fires the avatar's shots on a timer and moves them.
type ProjectileManager struct {
	pop      *Population[*object.Projectile]
	interval time.Duration
	lastFire time.Duration
}

// NewProjectileManager creates a manager firing every config.FireInterval.
func NewProjectileManager(area object.PlayArea) *ProjectileManager {
	return &ProjectileManager{
		pop:      NewPopulation[*object.Projectile](area),
		interval: config.FireInterval,
	}
}

// Update fires when the interval has elapsed, then advances every shot.
// extra adds parallel shots spaced config.ExtraBulletSpacing apart.
func (m *ProjectileManager) Update(delta, now time.Duration, origin physics.Point, extra int) {
	if now-m.lastFire >= m.interval {
		m.lastFire = now
		m.fire(origin, extra)
	}
	m.pop.Update(delta)
}

func (m *ProjectileManager) fire(origin physics.Point, extra int) {
	n := 1 + max(extra, 0)
	first := -float64(n-1) / 2 * config.ExtraBulletSpacing
	for i := range n {
		x := origin.X + first + float64(i)*config.ExtraBulletSpacing
		m.pop.Add(object.NewProjectile(x, origin.Y))
	}
}

// Active returns the current shots.
func (m *ProjectileManager) Active() []*object.Projectile {
	return m.pop.Active()
}

func (m *ProjectileManager) Cull() int {
	return m.pop.Cull()
}

// Clear disposes every shot and restarts the fire timer.
func (m *ProjectileManager) Clear() {
	m.pop.Clear()
	m.lastFire = 0
}

func (m *ProjectileManager) SetArea(area object.PlayArea) {
	m.pop.SetArea(area)
}
