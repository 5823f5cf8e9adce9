package systems

import (
	"log"

	"github.com/automoto/hopper/components"
	"github.com/automoto/hopper/shared/motion"
	"github.com/automoto/hopper/tags"
	"github.com/yohamta/donburi/ecs"
)

// MotionSystem steps the motion core once per tick and mirrors the result
// onto the player entity. It owns no state beyond what it is given.
type MotionSystem struct {
	State *motion.GameState
	Clock Clock

	// Reloads and ReloadErrors come from a tuning watcher. Either may be nil.
	Reloads      <-chan motion.Tuning
	ReloadErrors <-chan error
}

func NewMotionSystem(state *motion.GameState, clock Clock) *MotionSystem {
	return &MotionSystem{State: state, Clock: clock}
}

func (m *MotionSystem) Update(e *ecs.ECS) {
	m.drainReloads()

	input := getOrCreateInput(e)
	wasGrounded := m.State != nil && m.State.Player != nil && m.State.Player.Jump.OnFloor

	_, ok := motion.Step(m.State, MotionInput(input), m.Clock.Tick())

	playerEntry, found := tags.Player.First(e.World)
	if !found {
		return
	}
	pd := components.Player.Get(playerEntry)
	if !ok {
		pd.Valid = false
		pd.Landed = false
		return
	}

	snap, _ := m.State.Snapshot()
	pd.Snapshot = snap
	pd.Valid = true
	pd.Res = m.State.Tuning.SubpixelRes
	pd.Landed = !wasGrounded && snap.Jump.OnFloor
}

func (m *MotionSystem) drainReloads() {
	for {
		select {
		case t, ok := <-m.Reloads:
			if !ok {
				m.Reloads = nil
				continue
			}
			m.ApplyTuning(t)
		case err, ok := <-m.ReloadErrors:
			if !ok {
				m.ReloadErrors = nil
				continue
			}
			log.Printf("Warning: tuning reload failed, keeping previous values: %v", err)
		default:
			return
		}
	}
}

// ApplyTuning swaps in new tuning between ticks. A different subpixel
// resolution would reinterpret the stored position, so it is refused.
func (m *MotionSystem) ApplyTuning(t motion.Tuning) bool {
	if m.State == nil {
		return false
	}
	if t.SubpixelRes != m.State.Tuning.SubpixelRes {
		log.Printf("Warning: tuning reload changes subpixel_res %d -> %d; restart to apply",
			m.State.Tuning.SubpixelRes, t.SubpixelRes)
		return false
	}
	m.State.Tuning = t
	log.Printf("Tuning reloaded")
	return true
}
