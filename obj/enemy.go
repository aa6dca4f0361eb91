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
	enemyWidth  = 35
	enemyHeight = 40

	enemySpeed     = 2
	enemySheetName = "enemy-Sheet.png"
)

// Enemy patrols horizontally between two fixed x-bounds, reversing direction
// on bound contact. No pathfinding, no player awareness.
type Enemy struct {
	Entity
	PatrolLeft  float64
	PatrolRight float64
	Speed       float64

	spritesLoaded bool
	animWalk      *component.Animation
}

func NewEnemy(x, y, patrolLeft, patrolRight float64) *Enemy {
	return &Enemy{
		Entity: Entity{
			Rect:        common.Rect{X: x, Y: y, Width: enemyWidth, Height: enemyHeight},
			VelocityX:   enemySpeed,
			FacingRight: true,
		},
		PatrolLeft:  patrolLeft,
		PatrolRight: patrolRight,
		Speed:       enemySpeed,
	}
}

// Update advances the patrol one tick. Clamping runs after movement so the
// enemy never ends a tick outside its bounds.
func (e *Enemy) Update(world *CollisionWorld) {
	e.ApplyGravity()
	world.MoveX(&e.Entity)
	world.MoveY(&e.Entity)

	if e.X <= e.PatrolLeft {
		e.X = e.PatrolLeft
		e.VelocityX = e.Speed
		e.FacingRight = true
	} else if e.X+e.Width >= e.PatrolRight {
		e.X = e.PatrolRight - e.Width
		e.VelocityX = -e.Speed
		e.FacingRight = false
	}

	e.AdvanceAnimation()
}

func (e *Enemy) ensureSprites() {
	if e.spritesLoaded {
		return
	}
	e.spritesLoaded = true
	sheet, err := assets.LoadImage(enemySheetName)
	if err != nil {
		log.Debug("enemy sheet missing, drawing primitive shapes", "error", err)
		return
	}
	fw := sheet.Bounds().Dx() / 10
	fh := sheet.Bounds().Dy()
	e.animWalk = component.NewAnimationRow(sheet, fw, fh, 0, 10, 7, true)
}

func (e *Enemy) Draw(screen *ebiten.Image) {
	e.ensureSprites()
	if e.animWalk != nil {
		e.animWalk.SetFrame(e.AnimFrame)
		fw, fh := e.animWalk.Size()
		op := &ebiten.DrawImageOptions{}
		if !e.FacingRight {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(fw), 0)
		}
		op.GeoM.Translate(e.CenterX()-float64(fw)/2, e.CenterY()-float64(fh)/2)
		e.animWalk.Draw(screen, op)
		return
	}

	e.drawGeometric(screen)
}

// drawGeometric is the spiky placeholder creature used when no sheet is
// available.
func (e *Enemy) drawGeometric(screen *ebiten.Image) {
	bodyColors := []color.RGBA{
		{R: 255, G: 100, B: 100, A: 255},
		{R: 255, G: 120, B: 120, A: 255},
		{R: 255, G: 110, B: 110, A: 255},
	}
	body := bodyColors[e.AnimFrame%len(bodyColors)]
	vector.DrawFilledRect(screen, float32(e.X), float32(e.Y), float32(e.Width), float32(e.Height), body, false)

	spikeColor := color.RGBA{R: 150, G: 50, B: 50, A: 255}
	spikeOffset := math.Sin(float64(e.AnimFrame)*2) * 3
	const spikeSize = 8
	for _, sx := range []float64{e.X + 5, e.X + 15, e.X + 25} {
		vector.DrawFilledRect(screen, float32(sx), float32(e.Y+spikeOffset-5), spikeSize, spikeSize, spikeColor, false)
	}

	eyeColor := color.RGBA{R: 255, G: 255, A: 255}
	eyeOffset := math.Sin(float64(e.AnimFrame)) * 2
	vector.DrawFilledCircle(screen, float32(e.X+10+eyeOffset), float32(e.Y+20), 2, eyeColor, false)
	vector.DrawFilledCircle(screen, float32(e.X+25+eyeOffset), float32(e.Y+20), 2, eyeColor, false)

	mouthColor := color.RGBA{R: 100, A: 255}
	mouthY := float32(e.Y + 28)
	mouthWidth := math.Abs(math.Sin(float64(e.AnimFrame)*1.5))*10 + 5
	cx := e.CenterX()
	vector.StrokeLine(screen, float32(cx-mouthWidth/2), mouthY, float32(cx+mouthWidth/2), mouthY, 1, mouthColor, false)
}
