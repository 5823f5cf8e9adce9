package motion

import "github.com/automoto/hopper/shared/gamemath"

// Input is the level state of the logical buttons for one frame.
type Input struct {
	Left, Right bool
	Jump        bool
}

// Drive is the horizontal intent derived from Input.
type Drive int

const (
	DriveDecelerate Drive = iota
	DriveRight
	DriveLeft
)

func (d Drive) String() string {
	switch d {
	case DriveRight:
		return "right"
	case DriveLeft:
		return "left"
	default:
		return "decelerate"
	}
}

// MapInput picks exactly one drive. Right wins when both keys are held.
func MapInput(in Input) Drive {
	switch {
	case in.Right:
		return DriveRight
	case in.Left:
		return DriveLeft
	default:
		return DriveDecelerate
	}
}

// ApplyDrive mutates vx: accelerate in the drive direction, or bleed
// speed toward zero by the friction step without overshooting.
func ApplyDrive(p *Player, d Drive, t Tuning) {
	if p == nil {
		return
	}
	switch d {
	case DriveRight:
		p.Vel.X = gamemath.SatAdd(p.Vel.X, t.Accel)
	case DriveLeft:
		p.Vel.X = gamemath.SatAdd(p.Vel.X, -t.Accel)
	default:
		p.Vel.X = gamemath.ApproachZero(p.Vel.X, t.Friction)
	}
}
