package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation slices a spritesheet into frames laid out left-to-right,
// top-to-bottom. It carries no timing of its own: callers either drive it
// with Update (ticks at the configured FPS against a 60 TPS loop) or point
// it at a frame index directly with SetFrame.
type Animation struct {
	FrameW     int
	FrameH     int
	FrameCount int
	Loop       bool

	current     int
	tick        int
	ticksPerFrm int
	frames      []*ebiten.Image
}

// NewAnimation reads frameCount frames of frameW x frameH pixels from sheet.
// frameCount <= 0 reads every frame the sheet holds. A nil sheet yields an
// empty animation that draws nothing.
func NewAnimation(sheet *ebiten.Image, frameW, frameH, frameCount, fps int, loop bool) *Animation {
	if sheet == nil || frameW <= 0 || frameH <= 0 {
		return &Animation{}
	}
	if fps <= 0 {
		fps = 12
	}
	bounds := sheet.Bounds()
	cols := bounds.Dx() / frameW
	rows := bounds.Dy() / frameH
	maxFrames := cols * rows
	if frameCount <= 0 || frameCount > maxFrames {
		frameCount = maxFrames
	}
	ticks := 60 / fps
	if ticks < 1 {
		ticks = 1
	}
	a := &Animation{
		FrameW:      frameW,
		FrameH:      frameH,
		FrameCount:  frameCount,
		Loop:        loop,
		ticksPerFrm: ticks,
	}
	a.frames = make([]*ebiten.Image, 0, frameCount)
	// frame rects are in the sheet's own coordinate space: a sub-image keeps
	// the original image's coordinates, so offset by the bounds origin
	for i := 0; i < frameCount; i++ {
		sx := bounds.Min.X + (i%cols)*frameW
		sy := bounds.Min.Y + (i/cols)*frameH
		sub := sheet.SubImage(image.Rect(sx, sy, sx+frameW, sy+frameH)).(*ebiten.Image)
		a.frames = append(a.frames, sub)
	}
	return a
}

// NewAnimationRow reads frameCount frames left-to-right starting at the given
// 0-based row of the sheet.
func NewAnimationRow(sheet *ebiten.Image, frameW, frameH, row, frameCount, fps int, loop bool) *Animation {
	if sheet == nil || frameW <= 0 || frameH <= 0 {
		return &Animation{}
	}
	rowImg := sheet.SubImage(image.Rect(0, row*frameH, sheet.Bounds().Dx(), (row+1)*frameH)).(*ebiten.Image)
	return NewAnimation(rowImg, frameW, frameH, frameCount, fps, loop)
}

// Update advances the animation at its configured FPS. Call once per tick.
func (a *Animation) Update() {
	if a == nil || a.FrameCount <= 1 {
		return
	}
	a.tick++
	if a.tick < a.ticksPerFrm {
		return
	}
	a.tick = 0
	a.current++
	if a.current >= a.FrameCount {
		if a.Loop {
			a.current = 0
		} else {
			a.current = a.FrameCount - 1
		}
	}
}

// SetFrame points the animation at frame i, wrapping when looping.
func (a *Animation) SetFrame(i int) {
	if a == nil || a.FrameCount == 0 {
		return
	}
	if a.Loop {
		i %= a.FrameCount
		if i < 0 {
			i += a.FrameCount
		}
	} else if i >= a.FrameCount {
		i = a.FrameCount - 1
	} else if i < 0 {
		i = 0
	}
	a.current = i
}

// Reset sets the animation back to the first frame.
func (a *Animation) Reset() {
	if a == nil {
		return
	}
	a.current = 0
	a.tick = 0
}

// Draw draws the current frame with the given options.
func (a *Animation) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	if a == nil || len(a.frames) == 0 {
		return
	}
	var dop ebiten.DrawImageOptions
	if op != nil {
		dop = *op
	}
	dop.Filter = ebiten.FilterNearest
	screen.DrawImage(a.frames[a.current], &dop)
}

// Size returns the frame width and height.
func (a *Animation) Size() (int, int) { return a.FrameW, a.FrameH }
