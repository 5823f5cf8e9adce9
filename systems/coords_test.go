package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"

	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/gamemath"
	"github.com/automoto/hopper/shared/leveldata"
	"github.com/automoto/hopper/shared/motion"
)

func TestWorldToScreen(t *testing.T) {
	x, y := WorldToScreen(math.Vec2{}, 320, 288, 0, 0)
	assert.Equal(t, 160.0, x)
	assert.Equal(t, 144.0, y)

	x, y = WorldToScreen(math.Vec2{}, 320, 288, 10, 20)
	assert.Equal(t, 170.0, x)
	assert.Equal(t, 124.0, y, "y grows upward in the world")

	x, y = WorldToScreen(math.Vec2{X: 5, Y: 5}, 320, 288, 5, 5)
	assert.Equal(t, 160.0, x)
	assert.Equal(t, 144.0, y)
}

func TestMapOrigin(t *testing.T) {
	m, err := leveldata.ParseASCII("small", []string{"x."}, 32)
	require.NoError(t, err)

	x, y := MapOrigin(m, 320, 288)
	assert.Equal(t, 128.0, x)
	assert.Equal(t, 256.0, y)
}

func TestPlayerFrameAndHitbox(t *testing.T) {
	frame := PlayerFrame(math.Vec2{}, 320, 288, motion.Display{})
	assert.Equal(t, Rect{X: 144, Y: 128, W: 32, H: 32}, frame)

	assert.Equal(t, Rect{X: 150, Y: 134, W: 20, H: 26}, Hitbox(frame))
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.True(t, a.Overlaps(Rect{X: 2, Y: 2, W: 2, H: 2}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}), "shared edge")
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 20, W: 10, H: 10}))
}

func TestWorldBounds(t *testing.T) {
	res := gamemath.SubpixelRes
	b := WorldBounds(res)

	assert.Equal(t, gamemath.Fixed(-144)*res, b.MinX)
	assert.Equal(t, gamemath.Fixed(144)*res, b.MaxX)
	assert.Equal(t, gamemath.Fixed(-96)*res, b.MinY)
	assert.Equal(t, gamemath.Fixed(128)*res, b.MaxY, "the inset only raises the floor")
}

func TestWorldBoundsInsetTallerThanScreen(t *testing.T) {
	prev := cfg.World.FloorInset
	cfg.World.FloorInset = 1000
	defer func() { cfg.World.FloorInset = prev }()

	b := WorldBounds(gamemath.SubpixelRes)
	assert.Equal(t, b.MaxY, b.MinY)
}

func TestPlayerAtCeilingTouchesScreenTop(t *testing.T) {
	res := gamemath.SubpixelRes
	b := WorldBounds(res)
	d := motion.Project(motion.Position{X: 0, Y: b.MaxY}, res)

	frame := PlayerFrame(math.Vec2{}, cfg.C.Width, cfg.C.Height, d)
	assert.Equal(t, 0.0, frame.Y)
}

func TestGroundedPlayerStandsOnFloorRow(t *testing.T) {
	res := gamemath.SubpixelRes
	b := WorldBounds(res)
	d := motion.Project(motion.Position{X: 0, Y: b.MinY}, res)

	frame := PlayerFrame(math.Vec2{}, cfg.C.Width, cfg.C.Height, d)
	assert.Equal(t, float64(cfg.C.Height-cfg.World.FloorInset), frame.Y+frame.H)
}
