package main

import (
	"flag"
	"log"

	"github.com/automoto/shapefighter/assets"
	"github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/fonts"
	"github.com/automoto/shapefighter/scenes"
	"github.com/automoto/shapefighter/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	session *scenes.Session
	scene   Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{session: session}
	g.scene = scenes.NewMenuScene(g, session)
	return g
}

func (g *Game) Update() error {
	if g.session.Quitting() {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.session.Renderer.Resize(width, height)
	return width, height
}

func main() {
	networked := flag.Bool("net", false, "Play over the relay instead of hot-seat")
	address := flag.String("server", "", "Relay address (host:port), overrides the saved setting")
	name := flag.String("name", "", "Player name, overrides the saved setting")
	tuning := flag.String("tuning", config.SettingsMenu.TuningFile, "YAML tuning file, reloaded on change")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := config.LoadTuning(*tuning); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: Saved settings ignored: %v", err)
	}
	if *address != "" {
		settings.Address = *address
	}
	if *name != "" {
		settings.Name = *name
	}

	session := scenes.NewSession(settings, *networked, assets.NewAudioSink())
	if err := session.WatchTuning(*tuning); err != nil {
		log.Printf("Warning: tuning changes will not be picked up: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetTPS(config.C.TPS)

	err = ebiten.RunGame(NewGame(session))
	session.Close()
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
