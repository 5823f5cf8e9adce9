package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/hopper/shared/gamemath"
)

func TestMapInput(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		want Drive
	}{
		{"none", Input{}, DriveDecelerate},
		{"right", Input{Right: true}, DriveRight},
		{"left", Input{Left: true}, DriveLeft},
		{"both favours right", Input{Left: true, Right: true}, DriveRight},
		{"jump only", Input{Jump: true}, DriveDecelerate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, MapInput(c.in))
		})
	}
}

func TestApplyDriveAccelerates(t *testing.T) {
	tn := DefaultTuning()
	p := &Player{}

	ApplyDrive(p, DriveRight, tn)
	ApplyDrive(p, DriveRight, tn)
	assert.Equal(t, gamemath.Fixed(20), p.Vel.X)

	ApplyDrive(p, DriveLeft, tn)
	assert.Equal(t, gamemath.Fixed(10), p.Vel.X)
}

func TestFrictionStepsToZeroWithoutOvershoot(t *testing.T) {
	tn := DefaultTuning()

	p := &Player{Vel: Velocity{X: 45}}
	ApplyDrive(p, DriveDecelerate, tn)
	assert.Equal(t, gamemath.Fixed(15), p.Vel.X)
	ApplyDrive(p, DriveDecelerate, tn)
	assert.Equal(t, gamemath.Fixed(0), p.Vel.X)
	ApplyDrive(p, DriveDecelerate, tn)
	assert.Equal(t, gamemath.Fixed(0), p.Vel.X)

	p = &Player{Vel: Velocity{X: -45}}
	ApplyDrive(p, DriveDecelerate, tn)
	assert.Equal(t, gamemath.Fixed(-15), p.Vel.X)
	ApplyDrive(p, DriveDecelerate, tn)
	assert.Equal(t, gamemath.Fixed(0), p.Vel.X)
}

func TestFrictionThroughStep(t *testing.T) {
	s := createTestState()
	s.Player.Vel.X = 45

	_, _ = Step(s, Input{}, testDT)
	assert.Equal(t, gamemath.Fixed(15), s.Player.Vel.X)
	_, _ = Step(s, Input{}, testDT)
	assert.Equal(t, gamemath.Fixed(0), s.Player.Vel.X)

	for i := 0; i < 5; i++ {
		_, _ = Step(s, Input{}, testDT)
		assert.GreaterOrEqual(t, s.Player.Vel.X, gamemath.Fixed(0))
	}
}

func TestApplyDriveSaturates(t *testing.T) {
	tn := DefaultTuning()
	p := &Player{Vel: Velocity{X: 1<<31 - 5}}

	ApplyDrive(p, DriveRight, tn)
	assert.Equal(t, gamemath.Fixed(1<<31-1), p.Vel.X)
}

func TestDriveString(t *testing.T) {
	assert.Equal(t, "right", DriveRight.String())
	assert.Equal(t, "left", DriveLeft.String())
	assert.Equal(t, "decelerate", DriveDecelerate.String())
}
