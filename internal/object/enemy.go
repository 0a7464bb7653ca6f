package object

import (
	"time"

	"github.com/tomz197/skyquiz/internal/physics"
)

// SizeClass is the enemy archetype.
type SizeClass int

const (
	ClassSmall SizeClass = iota
	ClassMedium
	ClassLarge
)

func (c SizeClass) String() string {
	switch c {
	case ClassSmall:
		return "small"
	case ClassMedium:
		return "medium"
	case ClassLarge:
		return "large"
	}
	return "unknown"
}

// ClassSpec holds the fixed properties of a size class.
type ClassSpec struct {
	Width, Height float64
	Speed         float64 // px/s, downward
	Health        int
	Score         int
	Probability   float64   // base spawn probability
	FanAngles     []float64 // one projectile per angle, radians from straight down
}

// Enemy firing rules.
const (
	EnemyFireInterval = 2000 * time.Millisecond
	enemyFireTop      = 50.0  // must be below this Y to fire
	enemyFireBottom   = 100.0 // and this far above the bottom edge
	enemyExitMargin   = 100.0
)

var classSpecs = [...]ClassSpec{
	ClassSmall:  {Width: 48, Height: 48, Speed: 150, Health: 1, Score: 10, Probability: 0.50, FanAngles: []float64{0}},
	ClassMedium: {Width: 64, Height: 64, Speed: 100, Health: 5, Score: 30, Probability: 0.35, FanAngles: []float64{0}},
	ClassLarge:  {Width: 80, Height: 80, Speed: 60, Health: 10, Score: 50, Probability: 0.15, FanAngles: []float64{0, -0.5, 0.5}},
}

// Classes lists every size class in sampling order.
func Classes() []SizeClass {
	return []SizeClass{ClassSmall, ClassMedium, ClassLarge}
}

// Spec returns the properties of c.
func (c SizeClass) Spec() ClassSpec {
	return classSpecs[c]
}

// MaxEnemyExtent is the largest enemy edge length.
func MaxEnemyExtent() float64 {
	m := 0.0
	for _, s := range classSpecs {
		m = max(m, s.Width, s.Height)
	}
	return m
}

// Enemy is a descending hostile craft.
type Enemy struct {
	X, Y      float64 // centre
	VY        float64
	Class     SizeClass
	Health    int
	MaxHealth int

	lastFire time.Duration
	active   bool
}

// NewEnemy creates an enemy of class c centred at x, just above the area.
// speedMul scales the class speed.
func NewEnemy(c SizeClass, x, speedMul float64) *Enemy {
	spec := c.Spec()
	return &Enemy{
		X:         x,
		Y:         -spec.Height,
		VY:        spec.Speed * speedMul,
		Class:     c,
		Health:    spec.Health,
		MaxHealth: spec.Health,
		active:    true,
	}
}

func (e *Enemy) Update(ctx UpdateContext) {
	e.Y += e.VY * ctx.Delta.Seconds()
}

// TryFire launches the class fire pattern when the cooldown has elapsed and
// the enemy is inside the firing band. Shots are passed to emit.
func (e *Enemy) TryFire(now time.Duration, area PlayArea, emit func(*EnemyProjectile)) bool {
	if !e.active || now-e.lastFire < EnemyFireInterval {
		return false
	}
	if e.Y <= enemyFireTop || e.Y >= area.Height-enemyFireBottom {
		return false
	}
	e.lastFire = now

	spec := e.Class.Spec()
	originY := e.Y + spec.Height/2
	for _, angle := range spec.FanAngles {
		emit(NewEnemyProjectile(e.X, originY, angle))
	}
	return true
}

// Hit applies damage and reports whether the enemy was destroyed.
func (e *Enemy) Hit(damage int) bool {
	e.Health -= damage
	if e.Health <= 0 {
		e.active = false
		return true
	}
	return false
}

// HealthRatio returns current/max health in [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return physics.Clamp(float64(e.Health)/float64(e.MaxHealth), 0, 1)
}

func (e *Enemy) InPlay(area PlayArea) bool {
	return e.Y <= area.Height+enemyExitMargin
}

func (e *Enemy) Bounds() physics.Rect {
	spec := e.Class.Spec()
	return physics.RectAround(e.X, e.Y, spec.Width, spec.Height)
}

func (e *Enemy) IsActive() bool { return e.active }
func (e *Enemy) Deactivate()    { e.active = false }

func (e *Enemy) Sprite() Sprite {
	spec := e.Class.Spec()
	return Sprite{
		Kind:   KindEnemy,
		X:      e.X,
		Y:      e.Y,
		W:      spec.Width,
		H:      spec.Height,
		Class:  e.Class,
		Health: e.HealthRatio(),
	}
}
