package assets

import (
	"image/color"

	"github.com/automoto/hopper/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sheets are drawn in greys so the tint shader can colour them.
var (
	bodyColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	eyeColor  = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	footColor = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// buildSheet draws a horizontal strip of frames for a state. The body sits
// on the bottom edge of each frame, facing right.
func buildSheet(state config.StateID, frames, w, h int) *ebiten.Image {
	if frames < 1 {
		frames = 1
	}
	sheet := ebiten.NewImage(frames*w, h)
	for i := 0; i < frames; i++ {
		drawFrame(sheet, state, i, float32(i*w), float32(w), float32(h))
	}
	return sheet
}

func drawFrame(dst *ebiten.Image, state config.StateID, i int, ox, w, h float32) {
	bodyW, bodyH := w-12, h-12
	bodyX, bodyY := ox+6, float32(6)
	legL, legR := float32(0), float32(0)

	switch state {
	case config.Idle:
		// breathe
		if i%2 == 1 {
			bodyY++
			bodyH--
		}
	case config.Running:
		stride := []float32{0, 2, 4, 2, 0, -2}
		legL = stride[i%len(stride)]
		legR = -legL
		bodyY += float32(i % 2)
	case config.Jump:
		bodyY -= 2
		bodyH += 2
		legL, legR = -2, -2
	case config.Fall:
		bodyW += 2
		bodyX--
		legL, legR = 2, -2
	}

	vector.FillRect(dst, bodyX, bodyY, bodyW, bodyH-4, bodyColor, false)

	// eyes look toward the facing direction
	eyeY := bodyY + 5
	vector.FillRect(dst, bodyX+bodyW-9, eyeY, 3, 4, eyeColor, false)
	vector.FillRect(dst, bodyX+bodyW-4, eyeY, 3, 4, eyeColor, false)

	footY := h - 4
	vector.FillRect(dst, bodyX+2+legL, footY, 6, 4, footColor, false)
	vector.FillRect(dst, bodyX+bodyW-8+legR, footY, 6, 4, footColor, false)
}
