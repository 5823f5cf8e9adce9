package systems

import (
	"strings"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/fonts"
	"github.com/automoto/hopper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const hudMargin = 6

// DrawHUD shows the jump phase in the top-right corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pd := components.Player.Get(playerEntry)
	if !pd.Valid {
		return
	}

	face := fonts.Mono.Get()
	label := strings.ToUpper(pd.Snapshot.Phase.String())
	width := font.MeasureString(face, label).Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	x := screen.Bounds().Dx() - width - hudMargin
	text.Draw(screen, label, face, x, hudMargin+ascent, cfg.UI.HUDTextColor)
}
