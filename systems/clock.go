package systems

import (
	"time"

	cfg "github.com/automoto/hopper/config"
)

// Clock supplies the elapsed seconds handed to the gravity phase each tick.
type Clock interface {
	Tick() float64
}

// FixedClock reports exactly one tick of time.
type FixedClock struct {
	TPS int
}

func (c FixedClock) Tick() float64 {
	if c.TPS <= 0 {
		return 0
	}
	return 1 / float64(c.TPS)
}

// WallClock reports the real time since the previous Tick, capped at
// MaxStep. The first Tick reports zero.
type WallClock struct {
	Now     func() time.Time
	MaxStep float64
	last    time.Time
}

func (c *WallClock) Tick() float64 {
	now := c.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if c.MaxStep > 0 && dt > c.MaxStep {
		return c.MaxStep
	}
	return dt
}

// NewClock builds the clock for a time model.
func NewClock(model cfg.TimeModel) Clock {
	if model == cfg.TimeElapsed {
		return &WallClock{Now: time.Now, MaxStep: 0.25}
	}
	return FixedClock{TPS: cfg.TPS}
}
