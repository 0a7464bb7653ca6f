package object

import (
	"math"

	"github.com/tomz197/skyquiz/internal/physics"
)

// Avatar defaults.
const (
	AvatarSpeed      = 200.0 // px/s
	AvatarWidth      = 40.0  // collision box
	AvatarHeight     = 60.0
	AvatarBottomGap  = 80.0 // start offset from the bottom edge
	AvatarMuzzleLift = 30.0 // projectiles leave this far above the centre
)

// Intent is the movement input for one tick.
// A non-nil Target inside the play area replaces the directional keys.
type Intent struct {
	Left, Right, Up, Down bool
	Target                *physics.Point
}

// Avatar is the player-controlled craft.
type Avatar struct {
	X, Y  float64 // centre
	Speed float64
	W, H  float64
}

// NewAvatar creates the craft at its start position.
func NewAvatar(area PlayArea) *Avatar {
	a := &Avatar{
		Speed: AvatarSpeed,
		W:     AvatarWidth,
		H:     AvatarHeight,
	}
	a.Reset(area)
	return a
}

// Reset moves the craft back to its start position.
func (a *Avatar) Reset(area PlayArea) {
	a.X = area.Width / 2
	a.Y = area.Height - AvatarBottomGap
	a.Clamp(area)
}

// Update steers the craft for one tick. speedMul scales the base speed
// (1 normally, higher while a speed boost is active).
func (a *Avatar) Update(ctx UpdateContext, in Intent, speedMul float64) {
	step := a.Speed * speedMul * ctx.Delta.Seconds()

	if in.Target != nil && ctx.Area.Contains(*in.Target) {
		dx := in.Target.X - a.X
		dy := in.Target.Y - a.Y
		dist := math.Hypot(dx, dy)
		if dist <= step {
			a.X, a.Y = in.Target.X, in.Target.Y
		} else if dist > 0 {
			a.X += dx / dist * step
			a.Y += dy / dist * step
		}
		a.Clamp(ctx.Area)
		return
	}

	if in.Left {
		a.X -= step
	}
	if in.Right {
		a.X += step
	}
	if in.Up {
		a.Y -= step
	}
	if in.Down {
		a.Y += step
	}
	a.Clamp(ctx.Area)
}

// Clamp keeps the whole craft inside the area.
func (a *Avatar) Clamp(area PlayArea) {
	a.X = physics.Clamp(a.X, a.W/2, area.Width-a.W/2)
	a.Y = physics.Clamp(a.Y, a.H/2, area.Height-a.H/2)
}

// Muzzle returns where projectiles are fired from.
func (a *Avatar) Muzzle() physics.Point {
	return physics.Point{X: a.X, Y: a.Y - AvatarMuzzleLift}
}

// Bounds returns the collision box.
func (a *Avatar) Bounds() physics.Rect {
	return physics.RectAround(a.X, a.Y, a.W, a.H)
}

// Sprite returns a rendering copy.
func (a *Avatar) Sprite() Sprite {
	return Sprite{Kind: KindAvatar, X: a.X, Y: a.Y, W: a.W, H: a.H}
}
