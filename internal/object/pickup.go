package object

import "github.com/tomz197/skyquiz/internal/physics"

// RewardKind is the reward a pickup unlocks once its quiz is answered.
type RewardKind int

const (
	RewardShield RewardKind = iota
	RewardBomb
	RewardRandom
)

func (k RewardKind) String() string {
	switch k {
	case RewardShield:
		return "shield"
	case RewardBomb:
		return "bomb"
	case RewardRandom:
		return "random"
	}
	return "unknown"
}

// RewardKinds lists every reward kind.
func RewardKinds() []RewardKind {
	return []RewardKind{RewardShield, RewardBomb, RewardRandom}
}

// Pickup properties.
const (
	PickupSize   = 36.0
	PickupSpeed  = 80.0 // px/s
	PickupSpawnY = -30.0
	pickupExit   = 50.0
)

// Pickup is a falling reward crate.
type Pickup struct {
	X, Y   float64 // centre
	Reward RewardKind
	active bool
}

// NewPickup creates a pickup centred at x, just above the area.
func NewPickup(kind RewardKind, x float64) *Pickup {
	return &Pickup{X: x, Y: PickupSpawnY, Reward: kind, active: true}
}

func (p *Pickup) Update(ctx UpdateContext) {
	p.Y += PickupSpeed * ctx.Delta.Seconds()
}

func (p *Pickup) InPlay(area PlayArea) bool {
	return p.Y <= area.Height+pickupExit
}

func (p *Pickup) Bounds() physics.Rect {
	return physics.RectAround(p.X, p.Y, PickupSize, PickupSize)
}

func (p *Pickup) IsActive() bool { return p.active }
func (p *Pickup) Deactivate()    { p.active = false }

func (p *Pickup) Sprite() Sprite {
	return Sprite{Kind: KindPickup, X: p.X, Y: p.Y, W: PickupSize, H: PickupSize, Reward: p.Reward}
}
