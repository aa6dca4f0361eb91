package common

// Playfield size in pixels. The window is laid out at this fixed resolution
// and scaled by ebiten.
const (
	BaseWidth  = 800
	BaseHeight = 600
)

// Per-tick physics constants. The game runs on ebiten's fixed 60 TPS update.
const (
	Gravity      = 0.5
	MaxFallSpeed = 15
)
