package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/hopper/config"
	"github.com/automoto/hopper/fonts"
	"github.com/automoto/hopper/scenes"
	"github.com/automoto/hopper/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func NewGame(prefs *systems.Preferences) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(prefs),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", config.Debug.Enabled, "start with the debug overlay on")
	tuningPath := flag.String("tuning", "", "YAML tuning file; empty uses the built-in values")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	level := flag.String("level", config.World.Level, "level file under assets/levels (.txt or .tmx)")
	timeModel := flag.String("time", config.Motion.TimeModel.String(), "gravity time model: fixed or elapsed")
	scale := flag.Int("scale", config.C.Scale, "window scale")
	flag.Parse()

	model, ok := config.ParseTimeModel(*timeModel)
	if !ok {
		log.Fatalf("unknown time model %q (want fixed or elapsed)", *timeModel)
	}
	config.Debug.Enabled = *debug
	config.Motion.TuningPath = *tuningPath
	config.Motion.Watch = *watch
	config.Motion.TimeModel = model
	config.World.Level = *level
	if *scale > 0 {
		config.C.Scale = *scale
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Fatal(err)
	}

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	prefs, err := systems.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle("hopper")
	ebiten.SetTPS(config.TPS)

	log.Printf("Loading level %s", config.World.Level)
	log.Printf("Running game (time=%s, watch=%t)", config.Motion.TimeModel, config.Motion.Watch)
	if err := ebiten.RunGame(NewGame(prefs)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
