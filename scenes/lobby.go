package scenes

import (
	"errors"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/game"
	"github.com/automoto/shapefighter/ui"
	"github.com/automoto/shapefighter/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const pulseSeconds = 0.8

// LobbyScene shows the roster with ebitenui until the match starts
type LobbyScene struct {
	session      *Session
	sceneChanger SceneChanger
	lobbyUI      *ui.LobbyUI
	once         sync.Once
	shouldStart  bool
	shouldGoBack bool
	status       string

	pulse    *gween.Tween
	pulseOut bool
}

// NewLobbyScene creates a new lobby scene
func NewLobbyScene(sc SceneChanger, s *Session) *LobbyScene {
	return &LobbyScene{sceneChanger: sc, session: s}
}

func (ls *LobbyScene) Update() {
	ls.once.Do(ls.configure)
	defer ls.session.Frame()

	if ls.lobbyUI == nil || anyJustPressed(ebiten.KeyEscape) {
		ls.shouldGoBack = true
	}
	if ls.shouldGoBack {
		ls.session.ReturnToMenu()
		ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger, ls.session))
		return
	}

	c := ls.session.Controller
	c.Step(1 / float64(cfg.C.TPS))

	if ls.shouldStart || anyJustPressed(ebiten.KeyEnter) {
		ls.shouldStart = false
		ls.startMatch()
		return
	}

	w := c.World()
	status := ls.session.ConnectionStatus()
	if status == "" {
		status = ls.status
	}
	ls.lobbyUI.UpdateUI(world.Seats(w), world.IsReadyToStart(w), status)
	ls.lobbyUI.Update()
	ls.updatePulse(w)
}

func (ls *LobbyScene) Draw(screen *ebiten.Image) {
	ls.session.Renderer.Draw(screen, ls.session.Controller.World())
	if ls.lobbyUI != nil {
		ls.lobbyUI.UI.Draw(screen)
	}
}

func (ls *LobbyScene) configure() {
	lobbyUI, err := ui.NewLobbyUI(
		func() { ls.shouldStart = true },
		func() { ls.shouldGoBack = true },
	)
	if err != nil {
		log.Printf("[game] lobby: %v", err)
		return
	}
	ls.lobbyUI = lobbyUI
	ls.pulse = gween.New(1, 0.35, pulseSeconds, ease.InOutSine)
	ls.session.Connect()
}

func (ls *LobbyScene) startMatch() {
	err := ls.session.Controller.StartMatch()
	var te *game.TransitionError
	if errors.As(err, &te) {
		ls.status = "Waiting for more players"
		return
	}
	if err != nil {
		log.Printf("[game] %v", err)
		return
	}
	ls.sceneChanger.ChangeScene(NewMatchScene(ls.sceneChanger, ls.session))
}

// updatePulse fades the plain lobby labels in and out
func (ls *LobbyScene) updatePulse(w *world.World) {
	alpha, done := ls.pulse.Update(1 / float32(cfg.C.TPS))
	if done {
		ls.pulseOut = !ls.pulseOut
		if ls.pulseOut {
			ls.pulse = gween.New(0.35, 1, pulseSeconds, ease.InOutSine)
		} else {
			ls.pulse = gween.New(1, 0.35, pulseSeconds, ease.InOutSine)
		}
	}
	for _, e := range w.Entries() {
		lbl, ok := components.Lookup(e, components.Label)
		if !ok || lbl.Title {
			continue
		}
		if a, ok := components.Lookup(e, components.Appearance); ok {
			a.Color = fade(cfg.UI.TextColor, alpha)
		}
	}
}

// fade scales a premultiplied color by alpha
func fade(c color.RGBA, alpha float32) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
