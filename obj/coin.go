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
	coinRadius    = 12
	coinSheetName = "coin-Sheet.png"

	// spin advance per tick; the fallback drawing folds it through cos to
	// fake a 3D spin
	coinSpinStep = 0.08
)

// Coin is a static collectible. Once collected it is excluded from overlap
// checks and from the remaining-coin count.
type Coin struct {
	common.Rect
	Collected bool

	spin float64

	spritesLoaded bool
	animSpin      *component.Animation
}

// NewCoin places a coin centered at (x, y).
func NewCoin(x, y float64) *Coin {
	return &Coin{
		Rect: common.Rect{
			X:      x - coinRadius,
			Y:      y - coinRadius,
			Width:  coinRadius * 2,
			Height: coinRadius * 2,
		},
	}
}

// Update advances the spin animation.
func (c *Coin) Update() {
	if c.Collected {
		return
	}
	c.spin += coinSpinStep
}

// TryCollect marks the coin collected when the player rect overlaps it and
// reports whether collection happened on this call.
func (c *Coin) TryCollect(player common.Rect) bool {
	if c.Collected || !c.Rect.Intersects(player) {
		return false
	}
	c.Collected = true
	return true
}

func (c *Coin) ensureSprites() {
	if c.spritesLoaded {
		return
	}
	c.spritesLoaded = true
	sheet, err := assets.LoadImage(coinSheetName)
	if err != nil {
		log.Debug("coin sheet missing, drawing primitive shapes", "error", err)
		return
	}
	fw := sheet.Bounds().Dx() / 10
	fh := sheet.Bounds().Dy()
	c.animSpin = component.NewAnimationRow(sheet, fw, fh, 0, 10, 10, true)
}

func (c *Coin) Draw(screen *ebiten.Image) {
	if c.Collected {
		return
	}

	c.ensureSprites()
	if c.animSpin != nil {
		c.animSpin.SetFrame(int(c.spin))
		fw, fh := c.animSpin.Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(c.CenterX()-float64(fw)/2, c.CenterY()-float64(fh)/2)
		c.animSpin.Draw(screen, op)
		return
	}

	// fallback: narrow the bright inner band with the spin phase to fake a
	// spinning disc
	gold := color.RGBA{R: 255, G: 215, A: 255}
	bright := color.RGBA{R: 255, G: 255, B: 100, A: 255}
	vector.DrawFilledCircle(screen, float32(c.CenterX()), float32(c.CenterY()), coinRadius, gold, false)
	width := math.Abs(math.Cos(c.spin)) * coinRadius * 2
	if width < 2 {
		width = 2
	}
	vector.DrawFilledRect(screen, float32(c.CenterX()-width/2), float32(c.Y), float32(width), float32(c.Height), bright, false)
}
