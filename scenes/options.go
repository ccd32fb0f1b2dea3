package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// OptionsScene edits and persists the user settings
type OptionsScene struct {
	session      *Session
	sceneChanger SceneChanger
	optionsUI    *ui.OptionsUI
	once         sync.Once
	leave        bool
}

func NewOptionsScene(sc SceneChanger, s *Session) *OptionsScene {
	return &OptionsScene{sceneChanger: sc, session: s}
}

func (o *OptionsScene) Update() {
	o.once.Do(o.configure)
	defer o.session.Frame()

	if o.optionsUI == nil {
		o.sceneChanger.ChangeScene(NewMenuScene(o.sceneChanger, o.session))
		return
	}
	if anyJustPressed(ebiten.KeyEscape) {
		o.save(o.optionsUI.Address(), o.optionsUI.Name())
	}
	if o.leave {
		o.sceneChanger.ChangeScene(NewMenuScene(o.sceneChanger, o.session))
		return
	}

	snd := o.session.Sound
	o.optionsUI.UpdateUI(snd.Volume(), snd.Muted())
	o.optionsUI.Update()
}

func (o *OptionsScene) Draw(screen *ebiten.Image) {
	if o.optionsUI != nil {
		o.optionsUI.UI.Draw(screen)
	}
}

func (o *OptionsScene) configure() {
	settings := o.session.Settings
	optionsUI, err := ui.NewOptionsUI(settings.Address, settings.Name)
	if err != nil {
		log.Printf("[settings] options screen: %v", err)
		return
	}

	snd := o.session.Sound
	optionsUI.OnVolumeDown = func() {
		snd.SetVolume(cfg.PrevVolumeStep(snd.Volume()))
		snd.Play(cfg.SoundMove)
	}
	optionsUI.OnVolumeUp = func() {
		snd.SetVolume(cfg.NextVolumeStep(snd.Volume()))
		snd.Play(cfg.SoundMove)
	}
	optionsUI.OnToggleMute = snd.ToggleMute
	optionsUI.OnGoBack = o.save
	if !o.session.Networked() {
		optionsUI.SetStatus("Server and name apply to network games")
	}
	o.optionsUI = optionsUI
}

func (o *OptionsScene) save(address, name string) {
	o.session.SaveSettings(address, name)
	o.leave = true
}
