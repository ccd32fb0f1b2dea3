package scenes

import (
	"image/color"
	"log"

	"github.com/automoto/shapefighter/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	cfg "github.com/automoto/shapefighter/config"
)

const fadeSeconds = 0.6

// GameOverScene fades a result banner over the final frame of the match
type GameOverScene struct {
	session      *Session
	sceneChanger SceneChanger
	fade         *gween.Tween
	alpha        float32
	faded        bool
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, s *Session) *GameOverScene {
	return &GameOverScene{
		session:      s,
		sceneChanger: sc,
		fade:         gween.New(0, 1, fadeSeconds, ease.OutQuad),
	}
}

func (gs *GameOverScene) Update() {
	defer gs.session.Frame()
	gs.session.Controller.Step(1 / float64(cfg.C.TPS))

	if !gs.faded {
		gs.alpha, gs.faded = gs.fade.Update(1 / float32(cfg.C.TPS))
		return
	}

	switch {
	case anyJustPressed(ebiten.KeyR) && !gs.session.Networked():
		if err := gs.session.Controller.EnterLobby(); err != nil {
			log.Printf("[game] %v", err)
			return
		}
		gs.sceneChanger.ChangeScene(NewLobbyScene(gs.sceneChanger, gs.session))
	case anyJustPressed(ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyEscape),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		gs.session.ReturnToMenu()
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.session))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	gs.session.Renderer.Draw(screen, gs.session.Controller.World())

	bounds := screen.Bounds()
	width, height := float32(bounds.Dx()), float32(bounds.Dy())
	vector.FillRect(screen, 0, 0, width, height, color.RGBA{0, 0, 0, uint8(200 * gs.alpha)}, false)

	banner := "DRAW"
	if winner, ok := gs.session.Controller.Winner(); ok {
		banner = winner + " WINS"
	}
	gold := fade(color.RGBA{255, 200, 60, 255}, gs.alpha)
	drawCentered(screen, banner, fonts.Title, int(height/2), gold)

	if gs.faded {
		hint := "Enter: menu"
		if !gs.session.Networked() {
			hint += "   R: rematch"
		}
		drawCentered(screen, hint, fonts.Regular, int(height)-30, cfg.UI.TextColor)
	}
}

func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, y int, clr color.Color) {
	face := name.Get()
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, (screen.Bounds().Dx()-b.Dx())/2, y, clr)
}
