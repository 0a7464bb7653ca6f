// Package manager owns the entity populations: spawning, advancing and culling.
package manager

import (
	"math/rand"
	"time"

	"github.com/tomz197/skyquiz/internal/object"
)

// Population is an ordered collection of one entity type.
// Members keep insertion order, so lower indices are older.
type Population[T object.Entity] struct {
	members []T
	area    object.PlayArea
}

// NewPopulation creates an empty population for the given area.
func NewPopulation[T object.Entity](area object.PlayArea) *Population[T] {
	return &Population[T]{area: area}
}

// Add appends a member.
func (p *Population[T]) Add(m T) {
	p.members = append(p.members, m)
}

// Update advances every active member and deactivates those that left play.
func (p *Population[T]) Update(delta time.Duration) {
	ctx := object.UpdateContext{Delta: delta, Area: p.area}
	for _, m := range p.members {
		if !m.IsActive() {
			continue
		}
		m.Update(ctx)
		if !m.InPlay(p.area) {
			m.Deactivate()
		}
	}
}

// Cull removes and disposes every inactive member. Returns the number removed.
func (p *Population[T]) Cull() int {
	kept := p.members[:0]
	removed := 0
	for _, m := range p.members {
		if m.IsActive() {
			kept = append(kept, m)
			continue
		}
		object.Release(m)
		removed++
	}

	// Drop references held past the new length.
	var zero T
	for i := len(kept); i < len(p.members); i++ {
		p.members[i] = zero
	}
	p.members = kept
	return removed
}

// Active returns the current members. The slice is a view valid until the
// next Add or Cull; members deactivated since the last Cull are still present
// and report IsActive false.
func (p *Population[T]) Active() []T {
	return p.members
}

// Len returns the number of members, active or not.
func (p *Population[T]) Len() int {
	return len(p.members)
}

// Clear disposes every member.
func (p *Population[T]) Clear() {
	for _, m := range p.members {
		m.Deactivate()
	}
	p.Cull()
}

// SetArea changes the bounds used by Update.
func (p *Population[T]) SetArea(area object.PlayArea) {
	p.area = area
}

// Area returns the current bounds.
func (p *Population[T]) Area() object.PlayArea {
	return p.area
}

// RandFunc returns a uniform draw in [0, 1).
type RandFunc func() float64

func orDefault(r RandFunc) RandFunc {
	if r == nil {
		return rand.Float64
	}
	return r
}

// spawnX picks a centre so an entity of width w lies fully inside the area.
func spawnX(r RandFunc, area object.PlayArea, w float64) float64 {
	span := area.Width - w
	if span <= 0 {
		return area.Width / 2
	}
	return r()*span + w/2
}
