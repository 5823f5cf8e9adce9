package config

// StateID names a player sprite state.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Fall
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "run"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	}
	return "none"
}

// SpriteStates lists every state that has a sheet.
var SpriteStates = []StateID{Idle, Running, Jump, Fall}
