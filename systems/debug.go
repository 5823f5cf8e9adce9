package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/motion"
	"github.com/automoto/hopper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateOverlap moves the player's resolv box onto the hitbox and records
// which tiles it intersects. The result is only drawn, never fed back into
// motion.
func UpdateOverlap(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pd := components.Player.Get(playerEntry)
	pd.Overlaps = pd.Overlaps[:0]

	if !GetOrCreateSettings(e).Debug || !pd.Valid {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok || components.Level.Get(levelEntry).Map == nil {
		return
	}
	m := components.Level.Get(levelEntry).Map

	w, h := cfg.C.Width, cfg.C.Height
	ox, oy := MapOrigin(m, w, h)
	hb := Hitbox(PlayerFrame(cameraPosition(e), w, h, pd.Snapshot.Display))

	obj := components.Object.Get(playerEntry).Object
	obj.X, obj.Y = hb.X-ox, hb.Y-oy
	obj.Update()

	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return
	}
	local := Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	for _, tile := range check.ObjectsByTags(tags.ResolvSolid) {
		if local.Overlaps(Rect{X: tile.X, Y: tile.Y, W: tile.W, H: tile.H}) {
			pd.Overlaps = append(pd.Overlaps, tile)
		}
	}
}

// NewDrawDebug returns the debug renderer: world bounds, hitbox, overlapping
// tiles and the snapshot text.
func NewDrawDebug(state *motion.GameState, clock Clock) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !GetOrCreateSettings(e).Debug {
			return
		}
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		cam := cameraPosition(e)

		drawBounds(screen, state, cam, w, h)

		playerEntry, ok := tags.Player.First(e.World)
		if !ok {
			return
		}
		pd := components.Player.Get(playerEntry)
		if !pd.Valid {
			ebitenutil.DebugPrintAt(screen, "no player", 4, 4)
			return
		}

		drawOverlaps(e, screen, pd.Overlaps)
		strokeRect(screen, Hitbox(PlayerFrame(cam, w, h, pd.Snapshot.Display)), cfg.UI.HitboxColor)

		msg := debugText(pd, clock, ebiten.ActualTPS(), getOrCreateInput(e).LastInputMethod)
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
	}
}

func debugText(pd *components.PlayerData, clock Clock, tps float64, method components.InputMethod) string {
	mode := "fixed"
	if _, wall := clock.(*WallClock); wall {
		mode = "elapsed"
	}
	return fmt.Sprintf("%s\nTPS: %.0f dt: %s tiles: %d\ninput: %s",
		pd.Snapshot, tps, mode, len(pd.Overlaps), method)
}

func drawBounds(screen *ebiten.Image, state *motion.GameState, cam math.Vec2, w, h int) {
	if state == nil {
		return
	}
	res := float64(state.Tuning.SubpixelRes)
	if res == 0 {
		return
	}
	b := state.Bounds
	x0, y0 := WorldToScreen(cam, w, h, float64(b.MinX)/res, float64(b.MaxY)/res)
	x1, y1 := WorldToScreen(cam, w, h, float64(b.MaxX)/res, float64(b.MinY)/res)
	strokeRect(screen, Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}, cfg.UI.BoundsColor)
}

func drawOverlaps(e *ecs.ECS, screen *ebiten.Image, tiles []*resolv.Object) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok || len(tiles) == 0 {
		return
	}
	ox, oy := MapOrigin(components.Level.Get(levelEntry).Map, screen.Bounds().Dx(), screen.Bounds().Dy())
	for _, t := range tiles {
		vector.FillRect(screen, float32(ox+t.X), float32(oy+t.Y), float32(t.W), float32(t.H), cfg.UI.OverlapFill, false)
	}
}

func strokeRect(screen *ebiten.Image, r Rect, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
