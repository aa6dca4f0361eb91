package system

import (
	"github.com/milk9111/coindash/levels"
	"github.com/milk9111/coindash/obj"
)

const coinScore = 10

// Event is the session-level outcome of a single tick.
type Event int

const (
	EventNone Event = iota
	EventWon
	EventLost
)

// Hooks notify the owner of gameplay events as they happen, typically to
// play audio. Nil funcs are skipped.
type Hooks struct {
	OnJump func()
	OnCoin func()
	OnHit  func()
}

// World owns one playing session: the level geometry and every live entity,
// plus the score. It advances on a fixed per-frame tick.
type World struct {
	Level     *levels.Level
	Collision *obj.CollisionWorld
	Player    *obj.Player
	Enemies   []*obj.Enemy
	Coins     []*obj.Coin
	Score     int

	hooks Hooks
}

// NewWorld spawns a fresh session from the level definition.
func NewWorld(lvl *levels.Level, input *obj.Input, hooks Hooks) *World {
	w := &World{
		Level:     lvl,
		Collision: obj.NewCollisionWorld(lvl.PlatformRects()),
		hooks:     hooks,
	}
	w.Player = obj.NewPlayer(lvl.Spawn.X, lvl.Spawn.Y, lvl.Lives, input, w.Collision)
	for _, e := range lvl.Enemies {
		w.Enemies = append(w.Enemies, obj.NewEnemy(e.X, e.Y, e.PatrolLeft, e.PatrolRight))
	}
	for _, c := range lvl.Coins {
		w.Coins = append(w.Coins, obj.NewCoin(c.X, c.Y))
	}
	return w
}

// Step advances the session one tick: player, enemies, coin collection,
// damage, then the win/loss checks.
func (w *World) Step() Event {
	if w.Player.Update() {
		w.emit(w.hooks.OnJump)
	}

	for _, e := range w.Enemies {
		e.Update(w.Collision)
	}

	for _, c := range w.Coins {
		c.Update()
		if c.TryCollect(w.Player.Rect) {
			w.Score += coinScore
			w.emit(w.hooks.OnCoin)
		}
	}

	if w.Player.Alive {
		for _, e := range w.Enemies {
			if w.Player.Rect.Intersects(e.Rect) && w.Player.TakeDamage(e.CenterX()) {
				w.emit(w.hooks.OnHit)
			}
		}
	}

	if w.RemainingCoins() == 0 && w.Player.Alive {
		return EventWon
	}
	if !w.Player.Alive {
		return EventLost
	}
	return EventNone
}

// RemainingCoins counts the coins not yet collected.
func (w *World) RemainingCoins() int {
	remaining := 0
	for _, c := range w.Coins {
		if !c.Collected {
			remaining++
		}
	}
	return remaining
}

func (w *World) TotalCoins() int { return len(w.Coins) }

func (w *World) emit(hook func()) {
	if hook != nil {
		hook()
	}
}
