package obj

import (
	"testing"

	"github.com/milk9111/coindash/common"
)

// newTestPlayer spawns a grounded player standing on a full-width floor.
func newTestPlayer(lives int) (*Player, *Input) {
	input := NewInput()
	world := NewCollisionWorld([]common.Rect{
		{X: 0, Y: 550, Width: 800, Height: 50},
	})
	p := NewPlayer(100, 500, lives, input, world)
	p.OnGround = true
	return p, input
}

func TestPlayerHorizontalMovement(t *testing.T) {
	cases := []struct {
		name        string
		moveX       float64
		wantX       float64
		facingRight bool
	}{
		{"right", 1, 104, true},
		{"left", -1, 96, false},
		{"idle", 0, 100, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, input := newTestPlayer(3)
			input.MoveX = c.moveX
			p.Update()
			if p.X != c.wantX {
				t.Fatalf("X = %g, want %g", p.X, c.wantX)
			}
			if p.FacingRight != c.facingRight {
				t.Fatalf("FacingRight = %v, want %v", p.FacingRight, c.facingRight)
			}
		})
	}
}

func TestPlayerJumpOnlyWhenGrounded(t *testing.T) {
	p, input := newTestPlayer(3)

	input.JumpPressed = true
	if jumped := p.Update(); !jumped {
		t.Fatal("grounded player should jump on press")
	}
	if p.VelocityY >= 0 {
		t.Fatalf("VelocityY = %g, want upward impulse", p.VelocityY)
	}

	// still holding jump mid-air must not re-trigger
	if jumped := p.Update(); jumped {
		t.Fatal("airborne player must not jump again")
	}
}

func TestPlayerJumpArcReturnsToGround(t *testing.T) {
	p, input := newTestPlayer(3)
	input.JumpPressed = true
	p.Update()
	input.JumpPressed = false

	peak := p.Y
	landed := false
	for i := 0; i < 300; i++ {
		p.Update()
		if p.Y < peak {
			peak = p.Y
		}
		if p.OnGround {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("player never landed after jumping")
	}
	if peak >= 500 {
		t.Fatalf("peak Y = %g, player never rose above start", peak)
	}
	if p.Y != 500 {
		t.Fatalf("landed at Y = %g, want 500", p.Y)
	}
}

func TestPlayerClampedToPlayfield(t *testing.T) {
	p, input := newTestPlayer(3)
	input.MoveX = -1
	for i := 0; i < 100; i++ {
		p.Update()
	}
	if p.X != 0 {
		t.Fatalf("X = %g, want clamped to 0", p.X)
	}

	input.MoveX = 1
	for i := 0; i < 400; i++ {
		p.Update()
	}
	if p.X != common.BaseWidth-p.Width {
		t.Fatalf("X = %g, want clamped to %g", p.X, common.BaseWidth-p.Width)
	}
}

func TestPlayerTakeDamage(t *testing.T) {
	p, _ := newTestPlayer(3)

	if !p.TakeDamage(200) {
		t.Fatal("first hit should land")
	}
	if p.Lives != 2 {
		t.Fatalf("Lives = %d, want 2", p.Lives)
	}
	if p.InvincibleTicks == 0 {
		t.Fatal("hit should start the invincibility countdown")
	}
	if p.VelocityX >= 0 {
		t.Fatalf("VelocityX = %g, want knockback away from attacker on the right", p.VelocityX)
	}

	// hits are suppressed while invincible
	if p.TakeDamage(200) {
		t.Fatal("second hit during invincibility should be suppressed")
	}
	if p.Lives != 2 {
		t.Fatalf("Lives = %d after suppressed hit, want 2", p.Lives)
	}
}

func TestPlayerInvincibilityExpires(t *testing.T) {
	p, _ := newTestPlayer(3)
	p.TakeDamage(200)

	for i := 0; i < 120; i++ {
		p.Update()
	}
	if p.InvincibleTicks != 0 {
		t.Fatalf("InvincibleTicks = %d after 120 ticks, want 0", p.InvincibleTicks)
	}
	if !p.TakeDamage(0) {
		t.Fatal("hit after the countdown expired should land")
	}
	if p.Lives != 1 {
		t.Fatalf("Lives = %d, want 1", p.Lives)
	}
	if p.VelocityX <= 0 {
		t.Fatalf("VelocityX = %g, want knockback away from attacker on the left", p.VelocityX)
	}
}

func TestPlayerDiesAtZeroLives(t *testing.T) {
	p, _ := newTestPlayer(1)

	if !p.TakeDamage(200) {
		t.Fatal("hit should land")
	}
	if p.Lives != 0 {
		t.Fatalf("Lives = %d, want 0", p.Lives)
	}
	if p.Alive {
		t.Fatal("player should be dead at zero lives")
	}

	// lives never go below zero
	p.InvincibleTicks = 0
	p.TakeDamage(200)
	if p.Lives != 0 {
		t.Fatalf("Lives = %d, want floor at 0", p.Lives)
	}
}

func TestPlayerFallOutKills(t *testing.T) {
	input := NewInput()
	world := NewCollisionWorld(nil)
	p := NewPlayer(100, 400, 3, input, world)

	for i := 0; i < 600 && p.Alive; i++ {
		p.Update()
	}
	if p.Alive {
		t.Fatal("player falling below the playfield should die")
	}
	if p.Lives != 3 {
		t.Fatalf("Lives = %d, falling out should not consume lives", p.Lives)
	}
}

func TestPlayerKnockbackOverridesInput(t *testing.T) {
	p, input := newTestPlayer(3)
	input.MoveX = 1
	p.TakeDamage(200) // attacker to the right, knockback pushes left

	p.Update()
	if p.VelocityX >= 0 {
		t.Fatalf("VelocityX = %g, input should not override knockback", p.VelocityX)
	}

	for i := 0; i < 20; i++ {
		p.Update()
	}
	if p.VelocityX <= 0 {
		t.Fatalf("VelocityX = %g, input should regain control after knockback", p.VelocityX)
	}
}
