package obj

import (
	"testing"

	"github.com/milk9111/coindash/common"
)

func TestEnemyPatrolStaysInBounds(t *testing.T) {
	world := NewCollisionWorld([]common.Rect{
		{X: 0, Y: 550, Width: 800, Height: 50},
	})
	e := NewEnemy(300, 510, 250, 450)

	for i := 0; i < 1000; i++ {
		e.Update(world)
		if e.X < e.PatrolLeft {
			t.Fatalf("tick %d: X = %g, below patrol left %g", i, e.X, e.PatrolLeft)
		}
		if e.X+e.Width > e.PatrolRight {
			t.Fatalf("tick %d: right edge = %g, beyond patrol right %g", i, e.X+e.Width, e.PatrolRight)
		}
	}
}

func TestEnemyReversesAtBounds(t *testing.T) {
	world := NewCollisionWorld([]common.Rect{
		{X: 0, Y: 550, Width: 800, Height: 50},
	})

	t.Run("right_bound", func(t *testing.T) {
		e := NewEnemy(414, 510, 250, 450)
		e.Update(world) // 416, flush against the right bound
		e.Update(world)
		if e.VelocityX >= 0 {
			t.Fatalf("VelocityX = %g, want reversed to the left", e.VelocityX)
		}
		if e.FacingRight {
			t.Fatal("enemy should face left after reversing")
		}
	})

	t.Run("left_bound", func(t *testing.T) {
		e := NewEnemy(251, 510, 250, 450)
		e.VelocityX = -e.Speed
		e.Update(world) // 249, past the left bound
		e.Update(world)
		if e.VelocityX <= 0 {
			t.Fatalf("VelocityX = %g, want reversed to the right", e.VelocityX)
		}
		if !e.FacingRight {
			t.Fatal("enemy should face right after reversing")
		}
	})
}

func TestEnemySettlesOnPlatform(t *testing.T) {
	world := NewCollisionWorld([]common.Rect{
		{X: 0, Y: 550, Width: 800, Height: 50},
	})
	e := NewEnemy(300, 500, 250, 450)

	for i := 0; i < 60; i++ {
		e.Update(world)
	}
	if !e.OnGround {
		t.Fatal("enemy should settle on the platform")
	}
	if e.Y != 510 {
		t.Fatalf("Y = %g, want resting at 510", e.Y)
	}
}
