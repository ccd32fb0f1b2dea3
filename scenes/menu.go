package scenes

import (
	"log"

	"github.com/automoto/shapefighter/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuScene displays the main menu
type MenuScene struct {
	session      *Session
	sceneChanger SceneChanger
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, s *Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: s}
}

func (ms *MenuScene) Update() {
	defer ms.session.Frame()

	switch {
	case anyJustPressed(ebiten.KeyEnter, ebiten.KeySpace):
		ms.choose("start")
	case anyJustPressed(ebiten.KeyO):
		ms.choose("options")
	case anyJustPressed(ebiten.KeyEscape):
		ms.choose("exit")
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, y := ms.session.Renderer.ToArena(ebiten.CursorPosition())
		if id, ok := ms.session.Controller.SelectMenuItem(x, y); ok {
			ms.choose(id)
		}
	}
}

func (ms *MenuScene) choose(id string) {
	c := ms.session.Controller
	if c.State() != game.StateMainMenu {
		return
	}
	switch id {
	case "start":
		if err := c.EnterLobby(); err != nil {
			log.Printf("[game] %v", err)
			return
		}
		ms.sceneChanger.ChangeScene(NewLobbyScene(ms.sceneChanger, ms.session))
	case "options":
		ms.sceneChanger.ChangeScene(NewOptionsScene(ms.sceneChanger, ms.session))
	case "exit":
		ms.session.Quit()
	default:
		log.Printf("[game] unknown menu item %q", id)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	ms.session.Renderer.Draw(screen, ms.session.Controller.World())
}
