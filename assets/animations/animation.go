// Package animations steps sprite-sheet frame indices once per tick.
package animations

type Animation struct {
	First int
	Last  int
	Step  int     // how many indices to move per advance
	Speed float32 // ticks each frame is shown for
	ticks float32
	frame int
	// Looped is set once the animation has wrapped at least once.
	Looped bool
	// Hold stays on the last frame instead of wrapping.
	Hold bool
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	if last < first {
		last = first
	}
	return &Animation{
		First: first,
		Last:  last,
		Step:  step,
		Speed: speed,
		ticks: speed,
		frame: first,
	}
}

// Update advances by one tick.
func (a *Animation) Update() {
	a.ticks--
	if a.ticks >= 0 {
		return
	}
	a.ticks = a.Speed
	a.frame += a.Step
	if a.frame <= a.Last {
		return
	}
	a.Looped = true
	if a.Hold {
		a.frame = a.Last
	} else {
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds to the first frame and clears Looped.
func (a *Animation) Restart() {
	a.frame = a.First
	a.ticks = a.Speed
	a.Looped = false
}
