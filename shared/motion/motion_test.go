package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/hopper/shared/gamemath"
)

const testDT = 1.0 / 60

func createTestBounds() Bounds {
	res := gamemath.SubpixelRes
	return NewBounds(160*res, 120*res, 16*res)
}

func createTestState() *GameState {
	return NewGameState(createTestBounds(), DefaultTuning())
}

func TestNewBounds(t *testing.T) {
	b := createTestBounds()

	assert.Equal(t, gamemath.Fixed(-144*128), b.MinX)
	assert.Equal(t, gamemath.Fixed(144*128), b.MaxX)
	assert.Equal(t, gamemath.Fixed(-104*128), b.MinY)
	assert.Equal(t, gamemath.Fixed(104*128), b.MaxY)
}

func TestNewBoundsSmallerThanMargin(t *testing.T) {
	b := NewBounds(10, 10, 20)

	assert.Equal(t, Bounds{}, b)
	assert.True(t, b.Contains(Position{}))
}

func TestNewGameStateSpawnsGrounded(t *testing.T) {
	s := createTestState()

	require.NotNil(t, s.Player)
	assert.True(t, s.Player.Jump.OnFloor)
	assert.False(t, s.Player.Jump.Jumping)
	assert.False(t, s.Player.Jump.JumpStarted)
	assert.Equal(t, s.Bounds.MinY, s.Player.Pos.Y)
	assert.Equal(t, Velocity{}, s.Player.Vel)
}

func TestStepWithoutPlayerIsNoop(t *testing.T) {
	s := createTestState()
	s.Player = nil

	d, ok := Step(s, Input{Right: true, Jump: true}, testDT)
	assert.False(t, ok)
	assert.Equal(t, Display{}, d)

	_, ok = s.Snapshot()
	assert.False(t, ok)

	_, ok = Step(nil, Input{}, testDT)
	assert.False(t, ok)
}

func TestPhasesToleratesNilPlayer(t *testing.T) {
	tn := DefaultTuning()
	assert.NotPanics(t, func() {
		ApplyDrive(nil, DriveRight, tn)
		UpdateJump(nil, true, tn)
		ApplyGravity(nil, tn, testDT)
		LimitVelocity(nil, VelocityLimit{Enabled: true, Max: 1})
		Integrate(nil)
		c := BoundsCollider{Bounds: createTestBounds()}
		c.ResolveX(nil)
		c.ResolveY(nil)
	})
	assert.Equal(t, PhaseGrounded, Phase(nil))
}

func TestStepKeepsGroundedPlayerGrounded(t *testing.T) {
	s := createTestState()

	for i := 0; i < 10; i++ {
		_, ok := Step(s, Input{}, testDT)
		require.True(t, ok)
		assert.True(t, s.Player.Jump.OnFloor, "frame %d", i)
		assert.Equal(t, s.Bounds.MinY, s.Player.Pos.Y)
	}
}

func TestStepFullJumpArcLandsAgain(t *testing.T) {
	s := createTestState()

	_, _ = Step(s, Input{Jump: true}, testDT)
	require.False(t, s.Player.Jump.OnFloor)
	peak := s.Player.Pos.Y

	landed := false
	for i := 0; i < 600; i++ {
		_, _ = Step(s, Input{Jump: true}, testDT)
		if s.Player.Pos.Y > peak {
			peak = s.Player.Pos.Y
		}
		if s.Player.Jump.OnFloor {
			landed = true
			break
		}
	}

	assert.True(t, landed)
	assert.Greater(t, peak, s.Bounds.MinY)
	assert.Equal(t, gamemath.Fixed(0), s.Player.Vel.Y)
	assert.Equal(t, s.Bounds.MinY, s.Player.Pos.Y)
}

func TestStepHeldJumpDoesNotRejumpOnLanding(t *testing.T) {
	s := createTestState()

	for i := 0; i < 600 && !(i > 0 && s.Player.Jump.OnFloor); i++ {
		_, _ = Step(s, Input{Jump: true}, testDT)
	}
	require.True(t, s.Player.Jump.OnFloor)

	_, _ = Step(s, Input{Jump: true}, testDT)
	assert.True(t, s.Player.Jump.OnFloor, "held key must be released before the next jump")

	_, _ = Step(s, Input{}, testDT)
	_, _ = Step(s, Input{Jump: true}, testDT)
	assert.False(t, s.Player.Jump.OnFloor)
}

func TestStepReturnsProjection(t *testing.T) {
	s := createTestState()
	s.Player.Pos = Position{X: 300, Y: s.Bounds.MinY}

	d, ok := Step(s, Input{}, testDT)
	require.True(t, ok)
	assert.Equal(t, Project(s.Player.Pos, s.Tuning.SubpixelRes), d)
	assert.Equal(t, 2, d.X)
}

func TestSnapshot(t *testing.T) {
	s := createTestState()
	s.Player.Vel.X = 45

	snap, ok := s.Snapshot()
	require.True(t, ok)
	assert.Equal(t, s.Player.Pos, snap.Pos)
	assert.Equal(t, gamemath.Fixed(45), snap.Vel.X)
	assert.Equal(t, PhaseGrounded, snap.Phase)
	assert.Contains(t, snap.String(), "V: (45,0)")
	assert.Contains(t, snap.String(), "IoF: true")
}

func TestCustomColliderIsUsed(t *testing.T) {
	s := createTestState()
	rec := &recordingCollider{}
	s.Collider = rec

	_, _ = Step(s, Input{}, testDT)
	assert.Equal(t, []string{"x", "y"}, rec.calls)
}

type recordingCollider struct {
	calls []string
}

func (r *recordingCollider) ResolveX(*Player) { r.calls = append(r.calls, "x") }
func (r *recordingCollider) ResolveY(*Player) { r.calls = append(r.calls, "y") }
