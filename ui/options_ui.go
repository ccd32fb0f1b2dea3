package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// OptionsUI edits volume, mute and the network identity. Volume and mute
// apply at once; address and name are read when the screen is left.
type OptionsUI struct {
	UI *ebitenui.UI

	OnVolumeDown func()
	OnVolumeUp   func()
	OnToggleMute func()
	OnGoBack     func(address, name string)

	volumeLabel  *widget.Label
	muteButton   *widget.Button
	addressInput *widget.TextInput
	nameInput    *widget.TextInput
	statusLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewOptionsUI(address, name string) (*OptionsUI, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	ui := &OptionsUI{
		titleFace:  f.title,
		normalFace: f.normal,
		smallFace:  f.small,
	}
	ui.buildUI(address, name)
	return ui, nil
}

func (ui *OptionsUI) buildUI(address, name string) {
	root := rootContainer(color.RGBA{20, 20, 30, 255})
	content := centeredColumn(8)

	content.AddChild(label("OPTIONS", &ui.titleFace, white))

	volumeRow := row(6)
	volumeRow.AddChild(button("-", &ui.normalFace, buttonImage(), 28, func() {
		if ui.OnVolumeDown != nil {
			ui.OnVolumeDown()
		}
	}))
	ui.volumeLabel = label(VolumeText(0), &ui.normalFace, white)
	volumeRow.AddChild(ui.volumeLabel)
	volumeRow.AddChild(button("+", &ui.normalFace, buttonImage(), 28, func() {
		if ui.OnVolumeUp != nil {
			ui.OnVolumeUp()
		}
	}))
	content.AddChild(volumeRow)

	ui.muteButton = button(MuteText(false), &ui.normalFace, buttonImage(), 120, func() {
		if ui.OnToggleMute != nil {
			ui.OnToggleMute()
		}
	})
	content.AddChild(ui.muteButton)

	ui.addressInput = ui.textField(address, "localhost:8080")
	content.AddChild(ui.field("Server:", ui.addressInput))
	ui.nameInput = ui.textField(name, "Player 1")
	content.AddChild(ui.field("Name:  ", ui.nameInput))

	ui.statusLabel = label("", &ui.smallFace, warning)
	content.AddChild(ui.statusLabel)

	content.AddChild(button("Back", &ui.normalFace, buttonImage(), 80, func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack(ui.Address(), ui.Name())
		}
	}))

	root.AddChild(content)
	ui.UI = &ebitenui.UI{Container: root}
}

func (ui *OptionsUI) field(caption string, input *widget.TextInput) *widget.Container {
	r := row(6)
	r.AddChild(label(caption, &ui.normalFace, color.RGBA{200, 200, 200, 255}))
	r.AddChild(input)
	return r
}

func (ui *OptionsUI) textField(initial, placeholder string) *widget.TextInput {
	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          white,
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         white,
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	input.SetText(initial)
	return input
}

// UpdateUI reflects the current volume and mute state
func (ui *OptionsUI) UpdateUI(volume float64, muted bool) {
	ui.volumeLabel.Label = VolumeText(volume)
	if t := ui.muteButton.Text(); t != nil {
		t.Label = MuteText(muted)
	}
}

func (ui *OptionsUI) SetStatus(msg string) {
	ui.statusLabel.Label = msg
}

// Address is the trimmed server address field
func (ui *OptionsUI) Address() string {
	return strings.TrimSpace(ui.addressInput.GetText())
}

// Name is the trimmed player name field
func (ui *OptionsUI) Name() string {
	return strings.TrimSpace(ui.nameInput.GetText())
}

func (ui *OptionsUI) Update() {
	ui.UI.Update()
}

func VolumeText(v float64) string {
	return fmt.Sprintf("Volume %3.0f%%", v*100)
}

func MuteText(muted bool) string {
	if muted {
		return "Sound: Off"
	}
	return "Sound: On"
}
