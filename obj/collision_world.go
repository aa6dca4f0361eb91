package obj

import "github.com/milk9111/coindash/common"

// CollisionWorld resolves axis-aligned movement against the static level
// geometry. Resolution is axis-separated: callers integrate and resolve the
// horizontal axis first, then the vertical axis.
type CollisionWorld struct {
	platforms []common.Rect
}

func NewCollisionWorld(platforms []common.Rect) *CollisionWorld {
	return &CollisionWorld{platforms: platforms}
}

func (w *CollisionWorld) Platforms() []common.Rect { return w.platforms }

// MoveX applies the entity's horizontal velocity and clamps it out of any
// platform it ran into.
func (w *CollisionWorld) MoveX(e *Entity) {
	e.X += e.VelocityX
	for _, p := range w.platforms {
		if !e.Rect.Intersects(p) {
			continue
		}
		if e.VelocityX > 0 {
			e.X = p.X - e.Width
		} else if e.VelocityX < 0 {
			e.X = p.X + p.Width
		}
	}
}

// MoveY applies the entity's vertical velocity. Landing on a platform clamps
// the entity to its top, zeroes the velocity, and sets OnGround; bumping a
// ceiling clamps to its bottom and zeroes the velocity without grounding.
func (w *CollisionWorld) MoveY(e *Entity) {
	e.Y += e.VelocityY
	e.OnGround = false
	for _, p := range w.platforms {
		if !e.Rect.Intersects(p) {
			continue
		}
		if e.VelocityY > 0 {
			e.Y = p.Y - e.Height
			e.VelocityY = 0
			e.OnGround = true
		} else if e.VelocityY < 0 {
			e.Y = p.Y + p.Height
			e.VelocityY = 0
		}
	}
	// An entity resting flush on a platform produces no overlap, so keep it
	// grounded as long as the one-pixel probe below still touches.
	if !e.OnGround && e.VelocityY == 0 && w.IsGrounded(e.Rect) {
		e.OnGround = true
	}
}

// IsGrounded reports whether the rect is resting on a platform, probing one
// pixel below it.
func (w *CollisionWorld) IsGrounded(r common.Rect) bool {
	probe := r
	probe.Y++
	for _, p := range w.platforms {
		if probe.Intersects(p) {
			return true
		}
	}
	return false
}
