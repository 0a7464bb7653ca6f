package manager

import (
	"time"

	"github.com/tomz197/skyquiz/internal/loop/config"
	"github.com/tomz197/skyquiz/internal/object"
)

// PickupManager drops a reward crate on a fixed interval.
type PickupManager struct {
	pop       *Population[*object.Pickup]
	rand      RandFunc
	interval  time.Duration
	lastSpawn time.Duration
}

// NewPickupManager creates a manager dropping every config.PickupInterval.
func NewPickupManager(area object.PlayArea, rand RandFunc) *PickupManager {
	return &PickupManager{
		pop:      NewPopulation[*object.Pickup](area),
		rand:     orDefault(rand),
		interval: config.PickupInterval,
	}
}

// Update spawns when the interval has elapsed, then advances every pickup.
func (m *PickupManager) Update(delta, now time.Duration) {
	if now-m.lastSpawn >= m.interval {
		m.lastSpawn = now
		m.spawn()
	}
	m.pop.Update(delta)
}

func (m *PickupManager) spawn() {
	kinds := object.RewardKinds()
	i := min(int(m.rand()*float64(len(kinds))), len(kinds)-1)
	x := spawnX(m.rand, m.pop.Area(), object.PickupSize)
	m.pop.Add(object.NewPickup(kinds[i], x))
}

// Add drops a pickup directly, outside the spawn schedule.
func (m *PickupManager) Add(p *object.Pickup) {
	m.pop.Add(p)
}

func (m *PickupManager) Active() []*object.Pickup {
	return m.pop.Active()
}

func (m *PickupManager) Cull() int {
	return m.pop.Cull()
}

// Clear disposes every pickup and restarts the spawn timer.
func (m *PickupManager) Clear() {
	m.pop.Clear()
	m.lastSpawn = 0
}

func (m *PickupManager) SetArea(area object.PlayArea) {
	m.pop.SetArea(area)
}
