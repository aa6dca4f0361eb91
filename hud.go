package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// drawHUD paints the in-game overlay: score, remaining coin count, and one
// heart per remaining life.
func (g *Game) drawHUD(screen *ebiten.Image) {
	g.drawTextTopLeft(screen, fmt.Sprintf("Score: %d", g.world.Score), 20, 16, 2, colornames.White)
	g.drawTextTopLeft(screen, fmt.Sprintf("Coins: %d/%d", g.world.RemainingCoins(), g.world.TotalCoins()), 20, 52, 2, colornames.White)

	for i := 0; i < g.world.Player.Lives; i++ {
		drawHeart(screen, 30+float32(i)*36, 100)
	}
}

func (g *Game) drawTextTopLeft(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, g.face, op)
}

// drawHeart approximates a heart with two circles over a larger one.
func drawHeart(screen *ebiten.Image, x, y float32) {
	red := color.RGBA{R: 220, G: 40, B: 60, A: 255}
	vector.DrawFilledCircle(screen, x-5, y, 6, red, true)
	vector.DrawFilledCircle(screen, x+5, y, 6, red, true)
	vector.DrawFilledCircle(screen, x, y+6, 8, red, true)
}
