package main

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/coindash/audio"
	"github.com/milk9111/coindash/common"
	"github.com/milk9111/coindash/levels"
	"github.com/milk9111/coindash/obj"
	"github.com/milk9111/coindash/settings"
	"github.com/milk9111/coindash/system"
)

// GameState identifies which screen the game is on. Exactly one state holds
// at any time; transitions happen only on explicit events.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateWon
	StateLost
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

type Game struct {
	state      GameState
	input      *obj.Input
	world      *system.World
	levelName  string
	endMessage string
	quit       bool

	menu *ebitenui.UI
	face text.Face

	mixer    *audio.Mixer
	settings *settings.Manager
	watcher  *levels.Watcher
}

func NewGame(levelName string, mgr *settings.Manager, mixer *audio.Mixer, watcher *levels.Watcher) *Game {
	g := &Game{
		state:     StateMenu,
		input:     obj.NewInput(),
		levelName: levelName,
		settings:  mgr,
		mixer:     mixer,
		watcher:   watcher,
	}
	g.face = text.NewGoXFace(basicfont.Face7x13)
	g.menu = newMenuUI(g)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.input.Update()
	g.pollWatcher()
	return g.tick()
}

// tick advances the state machine one frame. It is split from Update so
// tests can drive it without ebiten's input polling.
func (g *Game) tick() error {
	switch g.state {
	case StateMenu:
		if g.menu != nil {
			g.menu.Update()
		}
	case StatePlaying:
		switch g.world.Step() {
		case system.EventWon:
			g.endMessage = fmt.Sprintf("You Won! Score: %d", g.world.Score)
			g.setState(StateWon)
		case system.EventLost:
			if g.world.Player.Lives == 0 {
				g.endMessage = "Game Over! No lives left!"
			} else {
				g.endMessage = "Game Over!"
			}
			g.setState(StateLost)
		}
	case StateWon, StateLost:
		if g.input.ConfirmPressed {
			g.setState(StateMenu)
		}
	}
	return nil
}

func (g *Game) setState(s GameState) {
	if g.state == s {
		return
	}
	log.Debug("game state changed", "from", g.state, "to", s)
	g.state = s
}

// startGame loads the level and spawns a fresh session.
func (g *Game) startGame() {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		log.Error("could not load level", "level", g.levelName, "error", err)
		return
	}
	g.world = system.NewWorld(lvl, g.input, system.Hooks{
		OnJump: func() { g.mixer.PlayEffect(audio.EffectJump) },
		OnCoin: func() { g.mixer.PlayEffect(audio.EffectCoin) },
		OnHit:  func() { g.mixer.PlayEffect(audio.EffectHit) },
	})
	g.setState(StatePlaying)
	g.mixer.PlayMusic()
}

func (g *Game) toggleMusic() {
	g.mixer.SetMusicEnabled(g.settings.ToggleMusic())
}

func (g *Game) toggleSounds() {
	g.mixer.SetSoundsEnabled(g.settings.ToggleSound())
}

// pollWatcher drains pending level-file events and restarts the running
// session on a reload.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		log.Info("level file changed, reloading", "file", name)
		if g.state == StatePlaying {
			g.startGame()
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Warn("level watcher error", "error", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case StateMenu:
		g.drawMenu(screen)
	default:
		g.drawWorld(screen)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 30, G: 30, B: 60, A: 255})
	g.drawTextCentered(screen, "COIN DASH", 100, 4, colornames.White)
	if g.menu != nil {
		g.menu.Draw(screen)
	}
	s := g.settings.Current()
	footer := fmt.Sprintf("Music: %s  Sounds: %s", onOff(s.MusicEnabled), onOff(s.SoundEnabled))
	g.drawTextCentered(screen, footer, 540, 2, color.RGBA{R: 200, G: 200, B: 200, A: 255})
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 135, G: 206, B: 235, A: 255})

	fill := color.RGBA{R: 100, G: 200, B: 100, A: 255}
	border := color.RGBA{R: 80, G: 180, B: 80, A: 255}
	for _, p := range g.world.Collision.Platforms() {
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), fill, false)
		vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 1, border, false)
	}

	// layer order: coins, then enemies, then player
	for _, c := range g.world.Coins {
		c.Draw(screen)
	}
	for _, e := range g.world.Enemies {
		e.Draw(screen)
	}
	g.world.Player.Draw(screen)

	g.drawHUD(screen)

	if g.state == StateWon || g.state == StateLost {
		g.drawTextCentered(screen, g.endMessage, 250, 3, colornames.Yellow)
		g.drawTextCentered(screen, "Press SPACE to return to menu", 320, 2, colornames.White)
	}
}

func (g *Game) drawTextCentered(screen *ebiten.Image, str string, centerY, scale float64, clr color.Color) {
	w, h := text.Measure(str, g.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(common.BaseWidth/2-w*scale/2, centerY-h*scale/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, g.face, op)
}

func onOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
