package object

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect. It takes no part in collisions.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
	Symbol      rune    // Character to display
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, lifetime float64, symbol rune) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Lifetime = lifetime
	p.MaxLifetime = lifetime
	p.Drag = 0.95
	p.Symbol = symbol
	return p
}

// Release returns the particle to the pool for reuse.
func (p *Particle) Release() {
	particlePool.Put(p)
}

var explosionSymbols = []rune{'#', '@', '*', '%', 'X', 'O', '+'}

// ExplosionSize returns the particle count for a destroyed enemy of class c.
func ExplosionSize(c SizeClass) int {
	return (int(c) + 1) * 6
}

// SpawnExplosion creates particles in a circular burst and hands each to spawn.
func SpawnExplosion(x, y float64, count int, speed, lifetime float64, spawn func(*Particle)) {
	if spawn == nil {
		return
	}

	for range count {
		angle := rand.Float64() * 2 * math.Pi
		// 50% to 150% speed, 50% to 100% lifetime
		spd := speed * (0.5 + rand.Float64())
		life := lifetime * (0.5 + rand.Float64()*0.5)

		symbol := explosionSymbols[rand.Intn(len(explosionSymbols))]
		spawn(NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life, symbol))
	}
}

// Update moves the particle. Returns true when it has expired.
func (p *Particle) Update(delta time.Duration) bool {
	dt := delta.Seconds()

	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		return true
	}

	dragFactor := math.Pow(p.Drag, dt*60) // normalised to ~60fps
	p.VX *= dragFactor
	p.VY *= dragFactor

	p.X += p.VX * dt
	p.Y += p.VY * dt
	return false
}

// Visible reports whether the particle is still bright enough to draw.
func (p *Particle) Visible() bool {
	return p.MaxLifetime <= 0 || p.Lifetime/p.MaxLifetime >= 0.25
}
