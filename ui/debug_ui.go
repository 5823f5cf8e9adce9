package ui

import (
	"bytes"
	"fmt"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/shared/motion"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// DebugPanel is the tuning overlay. It reads the motion state every frame
// and flips the optional behaviours on it directly.
type DebugPanel struct {
	UI    *ebitenui.UI
	State *motion.GameState

	stateLabel   *widget.Label
	posLabel     *widget.Label
	velLabel     *widget.Label
	driveLabel   *widget.Label
	jumpLabel    *widget.Label
	gravityLabel *widget.Label
	limitButton  *widget.Button
	bounceButton *widget.Button

	titleFace text.Face
	smallFace text.Face

	initialized bool
}

func NewDebugPanel(state *motion.GameState) *DebugPanel {
	dp := &DebugPanel{State: state}

	dp.loadFonts()
	dp.buildUI()

	return dp
}

func (dp *DebugPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		panic(err)
	}

	dp.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
	dp.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   8,
	}
}

func (dp *DebugPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelBackground)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("TUNING", &dp.titleFace, &widget.LabelColor{
			Idle: cfg.UI.PanelText,
		}),
	))

	dp.stateLabel = dp.newLabel()
	dp.posLabel = dp.newLabel()
	dp.velLabel = dp.newLabel()
	dp.driveLabel = dp.newLabel()
	dp.jumpLabel = dp.newLabel()
	dp.gravityLabel = dp.newLabel()
	for _, l := range []*widget.Label{dp.stateLabel, dp.posLabel, dp.velLabel, dp.driveLabel, dp.jumpLabel, dp.gravityLabel} {
		content.AddChild(l)
	}

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	dp.limitButton = dp.newButton(func() {
		if dp.State != nil {
			dp.State.Tuning.VelocityLimit.Enabled = !dp.State.Tuning.VelocityLimit.Enabled
		}
	})
	dp.bounceButton = dp.newButton(func() {
		if dp.State != nil {
			dp.State.Tuning.WallBounce = !dp.State.Tuning.WallBounce
		}
	})
	buttons.AddChild(dp.limitButton)
	buttons.AddChild(dp.bounceButton)
	content.AddChild(buttons)

	rootContainer.AddChild(content)

	dp.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (dp *DebugPanel) newLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &dp.smallFace, &widget.LabelColor{
			Idle: cfg.UI.PanelText,
		}),
	)
}

func (dp *DebugPanel) newButton(onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(70, 14),
		),
		widget.ButtonOpts.Image(dp.buttonImage()),
		widget.ButtonOpts.Text("", &dp.smallFace, &widget.ButtonTextColor{
			Idle:    cfg.UI.PanelText,
			Hover:   cfg.Yellow,
			Pressed: cfg.UI.PanelText,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			dp.UpdateUI()
		}),
	)
}

func (dp *DebugPanel) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.UI.ButtonIdle),
		Hover:   image.NewNineSliceColor(cfg.UI.ButtonHover),
		Pressed: image.NewNineSliceColor(cfg.UI.ButtonPressed),
	}
}

// UpdateUI refreshes every label from the current state.
func (dp *DebugPanel) UpdateUI() {
	if dp.State == nil {
		return
	}
	t := dp.State.Tuning

	snap, ok := dp.State.Snapshot()
	if ok {
		dp.stateLabel.Label = "phase " + snap.Phase.String()
		dp.posLabel.Label = fmt.Sprintf("pos %d,%d", snap.Pos.X, snap.Pos.Y)
		dp.velLabel.Label = fmt.Sprintf("vel %d,%d", snap.Vel.X, snap.Vel.Y)
	} else {
		dp.stateLabel.Label = "no player"
		dp.posLabel.Label = ""
		dp.velLabel.Label = ""
	}
	dp.driveLabel.Label = fmt.Sprintf("accel %d friction %d", t.Accel, t.Friction)
	dp.jumpLabel.Label = fmt.Sprintf("jump %d hover %d", t.JumpSpeed, t.JumpHoverSpeed)
	dp.gravityLabel.Label = fmt.Sprintf("gravity %.1f term %d", t.GravityAccel, t.TerminalVelocity)

	setButtonText(dp.limitButton, "limit "+onOff(t.VelocityLimit.Enabled))
	setButtonText(dp.bounceButton, "bounce "+onOff(t.WallBounce))
}

func setButtonText(b *widget.Button, s string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = s
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Update runs the widgets only while the panel is shown.
func (dp *DebugPanel) Update(settings *components.SettingsData) {
	if settings == nil || !settings.Panel {
		return
	}
	dp.UI.Update()
	// widgets are validated after the first UI update
	if !dp.initialized {
		dp.initialized = true
	}
	dp.UpdateUI()
}

func (dp *DebugPanel) Draw(settings *components.SettingsData, screen *ebiten.Image) {
	if settings == nil || !settings.Panel || !dp.initialized {
		return
	}
	dp.UI.Draw(screen)
}
