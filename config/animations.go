package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		Idle:    {First: 0, Last: 3, Step: 1, Speed: 10},
		Running: {First: 0, Last: 5, Step: 1, Speed: 5},
		Jump:    {First: 0, Last: 1, Step: 1, Speed: 8},
		Fall:    {First: 0, Last: 1, Step: 1, Speed: 8},
	},
}
