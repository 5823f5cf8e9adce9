package systems

import (
	"image/color"

	"github.com/automoto/hopper/assets"
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
	tintVec  = make([]float32, 4)
)

// DrawLevel paints the tile map. The map is scenery only.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	m := components.Level.Get(levelEntry).Map
	if m == nil {
		return
	}

	ox, oy := MapOrigin(m, screen.Bounds().Dx(), screen.Bounds().Dy())
	for _, r := range m.SolidRects() {
		x, y := float32(ox+r.X), float32(oy+r.Y)
		vector.FillRect(screen, x, y, float32(r.W), float32(r.H), cfg.UI.TileColor, false)
		// lit top edge
		vector.FillRect(screen, x, y, float32(r.W), 2, cfg.UI.TileEdge, false)
	}
}

// DrawPlayer renders the animated sprite at the projected position,
// anchored at the bottom-centre so squash keeps the feet in place.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pd := components.Player.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	if !pd.Valid || anim.CurrentAnimation == nil {
		return
	}
	sprite := components.Sprite.Get(playerEntry)
	img := assets.GetFrame(anim.CurrentSheet, anim.CurrentAnimation.Frame())

	frame := PlayerFrame(cameraPosition(e), screen.Bounds().Dx(), screen.Bounds().Dy(), pd.Snapshot.Display)

	var geo ebiten.GeoM
	geo.Translate(-frame.W/2, -frame.H)
	scaleX := sprite.ScaleX
	if sprite.FlipX {
		scaleX = -scaleX
	}
	geo.Scale(scaleX, sprite.ScaleY)
	geo.Translate(frame.X+frame.W/2, frame.Y+frame.H)

	if assets.TintShader == nil {
		drawOp.GeoM = geo
		drawOp.ColorScale.Reset()
		drawOp.ColorScale.ScaleWithColor(sprite.Tint)
		screen.DrawImage(img, drawOp)
		return
	}

	shaderOp.GeoM = geo
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{"TintColor": colorVec(sprite.Tint)}
	b := img.Bounds()
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.TintShader, shaderOp)
}

func colorVec(c color.RGBA) []float32 {
	tintVec[0] = float32(c.R) / 255
	tintVec[1] = float32(c.G) / 255
	tintVec[2] = float32(c.B) / 255
	tintVec[3] = float32(c.A) / 255
	return tintVec
}
