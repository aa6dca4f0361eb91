package obj

import "github.com/milk9111/coindash/common"

// animTicks is the number of ticks between animation frame advances
// (roughly 0.15s at 60 TPS).
const animTicks = 9

// Entity holds the position, velocity, and animation-timer state shared by
// the player and enemies.
type Entity struct {
	common.Rect
	VelocityX   float64
	VelocityY   float64
	OnGround    bool
	FacingRight bool

	// AnimFrame is a monotonically increasing frame index; drawing code
	// reduces it modulo the frame count of whichever animation is active.
	AnimFrame int
	animTimer int
}

// AdvanceAnimation bumps the frame index on the fixed animation cadence.
func (e *Entity) AdvanceAnimation() {
	e.animTimer++
	if e.animTimer >= animTicks {
		e.animTimer = 0
		e.AnimFrame++
	}
}

// ApplyGravity accumulates the per-tick gravity term while airborne and
// clamps the fall speed.
func (e *Entity) ApplyGravity() {
	if e.OnGround {
		return
	}
	e.VelocityY += common.Gravity
	if e.VelocityY > common.MaxFallSpeed {
		e.VelocityY = common.MaxFallSpeed
	}
}
