package obj

import (
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/coindash/assets"
	"github.com/milk9111/coindash/common"
	"github.com/milk9111/coindash/component"
)

const (
	playerWidth  = 40
	playerHeight = 50

	playerMoveSpeed = 4
	jumpImpulse     = -12

	// invincibilityTicks is the damage-suppression window after a hit
	// (2 seconds at 60 TPS).
	invincibilityTicks = 120

	// brief knockback applied on a hit; input regains control of the
	// horizontal velocity once the countdown expires
	knockbackTicks  = 8
	knockbackSpeed  = 6
	knockbackLift   = -4
	fallOutMargin   = 100
	playerSheetName = "player-Sheet.png"
)

// Player is the input-driven character: immediate-set horizontal velocity,
// grounded jump impulse, gravity integration, lives, and an invincibility
// countdown after each hit.
type Player struct {
	Entity
	Lives           int
	InvincibleTicks int
	Alive           bool

	input *Input
	world *CollisionWorld

	knockbackRemaining int

	spritesLoaded bool
	animIdle      *component.Animation
	animWalk      *component.Animation
	animJump      *component.Animation
}

func NewPlayer(x, y float64, lives int, input *Input, world *CollisionWorld) *Player {
	return &Player{
		Entity: Entity{
			Rect:        common.Rect{X: x, Y: y, Width: playerWidth, Height: playerHeight},
			FacingRight: true,
		},
		Lives: lives,
		Alive: true,
		input: input,
		world: world,
	}
}

// Update advances the player one tick and reports whether a jump started.
func (p *Player) Update() (jumped bool) {
	if !p.Alive {
		return false
	}

	if p.InvincibleTicks > 0 {
		p.InvincibleTicks--
	}

	if p.knockbackRemaining > 0 {
		p.knockbackRemaining--
	} else {
		p.VelocityX = 0
		if p.input.MoveX < 0 {
			p.VelocityX = -playerMoveSpeed
			p.FacingRight = false
		} else if p.input.MoveX > 0 {
			p.VelocityX = playerMoveSpeed
			p.FacingRight = true
		}
	}

	if p.input.JumpPressed && p.OnGround {
		p.VelocityY = jumpImpulse
		jumped = true
	}

	p.ApplyGravity()
	p.world.MoveX(&p.Entity)
	p.world.MoveY(&p.Entity)

	if p.X < 0 {
		p.X = 0
	}
	if p.X+p.Width > common.BaseWidth {
		p.X = common.BaseWidth - p.Width
	}

	// the animation only runs while moving or airborne
	if p.VelocityX != 0 || !p.OnGround {
		p.AdvanceAnimation()
	}

	if p.Y > common.BaseHeight+fallOutMargin {
		p.Alive = false
	}

	return jumped
}

// TakeDamage applies a hit from an attacker centered at fromX. It reports
// whether damage landed; hits are suppressed while the invincibility
// countdown is running. Lives never go below zero.
func (p *Player) TakeDamage(fromX float64) bool {
	if p.InvincibleTicks > 0 {
		return false
	}
	if p.Lives > 0 {
		p.Lives--
	}
	p.InvincibleTicks = invincibilityTicks
	p.knockbackRemaining = knockbackTicks
	if fromX > p.CenterX() {
		p.VelocityX = -knockbackSpeed
	} else {
		p.VelocityX = knockbackSpeed
	}
	p.VelocityY = knockbackLift
	if p.Lives == 0 {
		p.Alive = false
	}
	return true
}

func (p *Player) ensureSprites() {
	if p.spritesLoaded {
		return
	}
	p.spritesLoaded = true
	sheet, err := assets.LoadImage(playerSheetName)
	if err != nil {
		log.Debug("player sheet missing, drawing primitive shapes", "error", err)
		return
	}
	fw := sheet.Bounds().Dx() / 10
	fh := sheet.Bounds().Dy() / 3
	p.animIdle = component.NewAnimationRow(sheet, fw, fh, 0, 10, 7, true)
	p.animWalk = component.NewAnimationRow(sheet, fw, fh, 1, 10, 7, true)
	p.animJump = component.NewAnimationRow(sheet, fw, fh, 2, 10, 7, true)
}

// Draw renders the player, flashing while invincible by skipping draws on
// alternating intervals.
func (p *Player) Draw(screen *ebiten.Image) {
	if !p.Alive {
		return
	}
	if p.InvincibleTicks > 0 && (p.InvincibleTicks/6)%2 == 0 {
		return
	}

	p.ensureSprites()
	if p.animIdle != nil {
		anim := p.animIdle
		if !p.OnGround {
			anim = p.animJump
		} else if p.VelocityX != 0 {
			anim = p.animWalk
		}
		anim.SetFrame(p.AnimFrame)
		fw, fh := anim.Size()
		op := &ebiten.DrawImageOptions{}
		if !p.FacingRight {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(fw), 0)
		}
		op.GeoM.Translate(p.CenterX()-float64(fw)/2, p.CenterY()-float64(fh)/2)
		anim.Draw(screen, op)
		return
	}

	p.drawGeometric(screen)
}

// drawGeometric is the fallback when no sprite sheet is available: a body
// rect with blinking eyes and stepping legs.
func (p *Player) drawGeometric(screen *ebiten.Image) {
	idleColors := []color.RGBA{
		{R: 100, G: 150, B: 255, A: 255},
		{R: 120, G: 170, B: 255, A: 255},
	}
	walkColors := []color.RGBA{
		{R: 100, G: 150, B: 255, A: 255},
		{R: 110, G: 160, B: 255, A: 255},
		{R: 120, G: 170, B: 255, A: 255},
		{R: 110, G: 160, B: 255, A: 255},
	}

	var body color.RGBA
	if p.VelocityX != 0 {
		body = walkColors[p.AnimFrame%len(walkColors)]
	} else {
		body = idleColors[p.AnimFrame%len(idleColors)]
	}
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), body, false)

	black := color.RGBA{A: 255}
	eyeY := float32(p.Y + 15)
	if p.AnimFrame%20 == 0 {
		// blink
		vector.StrokeLine(screen, float32(p.X+12), eyeY, float32(p.X+18), eyeY, 1, black, false)
		vector.StrokeLine(screen, float32(p.X+22), eyeY, float32(p.X+28), eyeY, 1, black, false)
	} else {
		vector.DrawFilledCircle(screen, float32(p.X+15), eyeY, 3, black, false)
		vector.DrawFilledCircle(screen, float32(p.X+25), eyeY, 3, black, false)
	}

	legColor := color.RGBA{R: 50, G: 100, B: 200, A: 255}
	const legWidth = 6
	bottom := p.Y + p.Height
	if p.VelocityX != 0 {
		offset := math.Sin(float64(p.AnimFrame)*3) * 5
		vector.DrawFilledRect(screen, float32(p.X+10), float32(bottom-10+offset), legWidth, 10, legColor, false)
		vector.DrawFilledRect(screen, float32(p.X+24), float32(bottom-10-offset), legWidth, 10, legColor, false)
	} else {
		vector.DrawFilledRect(screen, float32(p.X+10), float32(bottom-10), legWidth, 10, legColor, false)
		vector.DrawFilledRect(screen, float32(p.X+24), float32(bottom-10), legWidth, 10, legColor, false)
	}
}
