package manager

import (
	"time"

	"github.com/tomz197/skyquiz/internal/object"
)

// EnemyManager spawns enemies on the difficulty schedule and owns their shots.
type EnemyManager struct {
	enemies *Population[*object.Enemy]
	shots   *Population[*object.EnemyProjectile]
	table   DifficultyTable
	rand    RandFunc

	row       DifficultyRow
	lastSpawn time.Duration
}

// NewEnemyManager creates a manager. A nil table uses DefaultDifficulty and
// a nil rand uses math/rand.
func NewEnemyManager(area object.PlayArea, table DifficultyTable, rand RandFunc) *EnemyManager {
	if table == nil {
		table = DefaultDifficulty
	}
	return &EnemyManager{
		enemies: NewPopulation[*object.Enemy](area),
		shots:   NewPopulation[*object.EnemyProjectile](area),
		table:   table,
		rand:    orDefault(rand),
		row:     table[0],
	}
}

// Update reselects the difficulty row for score, spawns when the interval
// has elapsed, then advances enemies, their fire and their shots.
func (m *EnemyManager) Update(delta, now time.Duration, score int) {
	m.row = m.table.Select(score)
	if now-m.lastSpawn >= m.row.SpawnInterval {
		m.lastSpawn = now
		m.spawn()
	}

	m.enemies.Update(delta)

	area := m.enemies.Area()
	for _, e := range m.enemies.Active() {
		e.TryFire(now, area, m.shots.Add)
	}
	m.shots.Update(delta)
}

func (m *EnemyManager) spawn() {
	class := m.row.Weights().Sample(m.rand())
	x := spawnX(m.rand, m.enemies.Area(), class.Spec().Width)
	m.enemies.Add(object.NewEnemy(class, x, m.row.SpeedMultiplier))
}

// Detonate deactivates every active enemy and enemy shot. fn is called once
// per enemy that was active.
func (m *EnemyManager) Detonate(fn func(*object.Enemy)) int {
	n := 0
	for _, e := range m.enemies.Active() {
		if !e.IsActive() {
			continue
		}
		e.Deactivate()
		n++
		if fn != nil {
			fn(e)
		}
	}
	for _, s := range m.shots.Active() {
		s.Deactivate()
	}
	return n
}

// Row returns the difficulty row chosen on the last Update.
func (m *EnemyManager) Row() DifficultyRow {
	return m.row
}

// Interval returns the current spawn interval.
func (m *EnemyManager) Interval() time.Duration {
	return m.row.SpawnInterval
}

// Add places an enemy directly, outside the spawn schedule.
func (m *EnemyManager) Add(e *object.Enemy) {
	m.enemies.Add(e)
}

// AddShot places an enemy projectile directly.
func (m *EnemyManager) AddShot(p *object.EnemyProjectile) {
	m.shots.Add(p)
}

func (m *EnemyManager) Active() []*object.Enemy {
	return m.enemies.Active()
}

func (m *EnemyManager) Shots() []*object.EnemyProjectile {
	return m.shots.Active()
}

// Cull removes inactive enemies and shots.
func (m *EnemyManager) Cull() int {
	return m.enemies.Cull() + m.shots.Cull()
}

// Clear disposes everything and restarts the spawn timer.
func (m *EnemyManager) Clear() {
	m.enemies.Clear()
	m.shots.Clear()
	m.lastSpawn = 0
	m.row = m.table[0]
}

func (m *EnemyManager) SetArea(area object.PlayArea) {
	m.enemies.SetArea(area)
	m.shots.SetArea(area)
}
