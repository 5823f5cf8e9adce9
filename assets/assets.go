package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"
	"path"

	"github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevel loads a level by file name from fsys, falling back to the
// embedded levels when fsys is nil.
func LoadLevel(fsys fs.FS, name string) (*leveldata.TileMap, error) {
	if fsys == nil {
		fsys = assetFS
	}
	p := path.Join(config.World.LevelDir, name)
	m, err := leveldata.Load(fsys, p, config.World.TileSize)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return m, nil
}

// LevelNames lists the embedded levels.
func LevelNames() ([]string, error) {
	return leveldata.List(assetFS, config.World.LevelDir)
}

type AnimationLoader struct {
	cache      map[config.StateID]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[config.StateID]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

// Sheet returns the sprite sheet for a state, building it on first use.
func (l *AnimationLoader) Sheet(state config.StateID) *ebiten.Image {
	if img, ok := l.cache[state]; ok {
		return img
	}
	def := config.CharacterAnimations["player"][state]
	img := buildSheet(state, def.Last+1, config.Player.FrameWidth, config.Player.FrameHeight)
	l.cache[state] = img
	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
func (l *AnimationLoader) GetFrame(state config.StateID, frameIndex int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", state, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	w, h := config.Player.FrameWidth, config.Player.FrameHeight
	sx := frameIndex * w
	frame := l.Sheet(state).SubImage(image.Rect(sx, 0, sx+w, h)).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

var (
	animationLoader = NewAnimationLoader()
)

func GetSheet(state config.StateID) *ebiten.Image {
	return animationLoader.Sheet(state)
}

func GetFrame(state config.StateID, frameIndex int) *ebiten.Image {
	return animationLoader.GetFrame(state, frameIndex)
}

// PreloadAllAnimations builds every sheet and frame up front so the first
// state change does not stall a frame.
func PreloadAllAnimations() {
	for state, def := range config.CharacterAnimations["player"] {
		step := def.Step
		if step <= 0 {
			step = 1
		}
		for i := def.First; i <= def.Last; i += step {
			_ = GetFrame(state, i)
		}
	}
}
