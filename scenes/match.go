package scenes

import (
	"image/color"

	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/fonts"
	"github.com/automoto/shapefighter/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// MatchScene steps the controller once per tick until the match ends
type MatchScene struct {
	session      *Session
	sceneChanger SceneChanger
}

func NewMatchScene(sc SceneChanger, s *Session) *MatchScene {
	return &MatchScene{sceneChanger: sc, session: s}
}

func (ms *MatchScene) Update() {
	defer ms.session.Frame()

	if anyJustPressed(ebiten.KeyEscape) {
		ms.session.ReturnToMenu()
		ms.sceneChanger.ChangeScene(NewMenuScene(ms.sceneChanger, ms.session))
		return
	}

	c := ms.session.Controller
	c.Step(1 / float64(cfg.C.TPS))
	if c.State() == game.StateGameOver {
		ms.sceneChanger.ChangeScene(NewGameOverScene(ms.sceneChanger, ms.session))
	}
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	ms.session.Renderer.Draw(screen, ms.session.Controller.World())
	if status := ms.session.ConnectionStatus(); status != "" {
		text.Draw(screen, status, fonts.Small.Get(), 8, 16, color.RGBA{255, 200, 100, 255})
	}
}
