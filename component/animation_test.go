package component

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// Frames cut from any row must be full-sized and aligned to that row of the
// sheet; a sub-image keeps the sheet's coordinate space, so frame rects that
// assume a zero origin collapse to empty images for every row past the first.
func TestAnimationRowFrameBounds(t *testing.T) {
	const (
		frameW = 16
		frameH = 16
		cols   = 5
		rows   = 3
	)
	sheet := ebiten.NewImage(frameW*cols, frameH*rows)

	for row := 0; row < rows; row++ {
		a := NewAnimationRow(sheet, frameW, frameH, row, cols, 12, true)
		if a.FrameCount != cols {
			t.Fatalf("row %d: FrameCount = %d, want %d", row, a.FrameCount, cols)
		}
		for i, f := range a.frames {
			b := f.Bounds()
			if b.Dx() != frameW || b.Dy() != frameH {
				t.Fatalf("row %d frame %d: bounds %v, want %dx%d", row, i, b, frameW, frameH)
			}
			if b.Min.X != i*frameW || b.Min.Y != row*frameH {
				t.Fatalf("row %d frame %d: at %v, want (%d, %d)", row, i, b.Min, i*frameW, row*frameH)
			}
		}
	}
}

func TestAnimationFrameBoundsOnMultiRowSheet(t *testing.T) {
	sheet := ebiten.NewImage(32, 32) // 2x2 frames of 16x16
	a := NewAnimation(sheet, 16, 16, 0, 12, true)
	if a.FrameCount != 4 {
		t.Fatalf("FrameCount = %d, want 4", a.FrameCount)
	}
	want := [][2]int{{0, 0}, {16, 0}, {0, 16}, {16, 16}}
	for i, f := range a.frames {
		b := f.Bounds()
		if b.Min.X != want[i][0] || b.Min.Y != want[i][1] || b.Dx() != 16 || b.Dy() != 16 {
			t.Fatalf("frame %d: bounds %v, want 16x16 at (%d, %d)", i, b, want[i][0], want[i][1])
		}
	}
}

// A nil sheet yields an empty animation; every method must be a no-op
// instead of panicking so drawing code can call through unconditionally.
func TestAnimationNilSheet(t *testing.T) {
	a := NewAnimation(nil, 16, 16, 10, 12, true)
	if a.FrameCount != 0 {
		t.Fatalf("FrameCount = %d, want 0", a.FrameCount)
	}

	a.Update()
	a.SetFrame(3)
	a.Reset()
	a.Draw(nil, nil)

	if w, h := a.Size(); w != 0 || h != 0 {
		t.Fatalf("Size() = (%d, %d), want (0, 0)", w, h)
	}
}

func TestAnimationRowNilSheet(t *testing.T) {
	a := NewAnimationRow(nil, 16, 16, 1, 10, 12, true)
	if a.FrameCount != 0 {
		t.Fatalf("FrameCount = %d, want 0", a.FrameCount)
	}
	a.Update()
	a.Draw(nil, nil)
}

func TestAnimationNilReceiver(t *testing.T) {
	var a *Animation
	a.Update()
	a.SetFrame(1)
	a.Reset()
	a.Draw(nil, nil)
}
