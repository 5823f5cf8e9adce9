package systems

import (
	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/shared/leveldata"
	"github.com/automoto/hopper/shared/motion"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned box in screen pixels, top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether the interiors of r and o intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// WorldToScreen maps a centred, y-up display position to screen pixels.
func WorldToScreen(cam math.Vec2, screenW, screenH int, x, y float64) (float64, float64) {
	return float64(screenW)/2 + (x - cam.X), float64(screenH)/2 - (y - cam.Y)
}

// MapOrigin is where the map's top-left corner sits on screen: centred
// horizontally and resting on the bottom edge.
func MapOrigin(m *leveldata.TileMap, screenW, screenH int) (float64, float64) {
	return float64(screenW-m.Width()) / 2, float64(screenH - m.Height())
}

// PlayerFrame is the screen box of the sprite frame centred on d.
func PlayerFrame(cam math.Vec2, screenW, screenH int, d motion.Display) Rect {
	x, y := WorldToScreen(cam, screenW, screenH, float64(d.X), float64(d.Y))
	w, h := float64(cfg.Player.FrameWidth), float64(cfg.Player.FrameHeight)
	return Rect{X: x - w/2, Y: y - h/2, W: w, H: h}
}

// Hitbox insets a frame by the configured margins.
func Hitbox(frame Rect) Rect {
	p := cfg.Player
	return Rect{
		X: frame.X + float64(p.HitboxLeft),
		Y: frame.Y + float64(p.HitboxTop),
		W: frame.W - float64(p.HitboxLeft+p.HitboxRight),
		H: frame.H - float64(p.HitboxTop+p.HitboxBottom),
	}
}

// WorldBounds builds the motion bounds for the configured screen: the
// screen half extents less the margin, with only the floor raised by
// FloorInset.
func WorldBounds(res gamemath.Fixed) motion.Bounds {
	b := motion.NewBounds(
		gamemath.Pixels(cfg.C.Width/2, res),
		gamemath.Pixels(cfg.C.Height/2, res),
		gamemath.Pixels(cfg.World.Margin, res),
	)
	b.MinY = min(gamemath.SatAdd(b.MinY, gamemath.Pixels(cfg.World.FloorInset, res)), b.MaxY)
	return b
}

func cameraPosition(e *ecs.ECS) math.Vec2 {
	if entry, ok := components.Camera.First(e.World); ok {
		return components.Camera.Get(entry).Position
	}
	return math.Vec2{}
}
