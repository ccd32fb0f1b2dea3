package ui

import (
	"fmt"

	"github.com/automoto/shapefighter/components"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// maxSeatRows is how many roster lines the lobby shows
const maxSeatRows = 4

// LobbyUI holds the ebitenui interface for the lobby roster
type LobbyUI struct {
	UI *ebitenui.UI

	OnStartMatch func()
	OnGoBack     func()

	seatLabels  [maxSeatRows]*widget.Label
	startButton *widget.Button
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewLobbyUI creates the lobby screen
func NewLobbyUI(onStartMatch, onGoBack func()) (*LobbyUI, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}
	lui := &LobbyUI{
		OnStartMatch: onStartMatch,
		OnGoBack:     onGoBack,
		titleFace:    f.title,
		normalFace:   f.normal,
		smallFace:    f.small,
	}
	lui.buildUI()
	return lui, nil
}

func (lui *LobbyUI) buildUI() {
	// No background: the world's labels show through behind the roster
	root := rootContainer(nil)
	content := centeredColumn(6)

	content.AddChild(label("LOBBY", &lui.titleFace, white))

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelTint)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 0)),
	)
	for i := range lui.seatLabels {
		lui.seatLabels[i] = label(emptySeat(i), &lui.normalFace, white)
		panel.AddChild(lui.seatLabels[i])
	}
	content.AddChild(panel)

	buttons := row(10)
	buttons.AddChild(button("Back", &lui.normalFace, buttonImage(), 80, func() {
		if lui.OnGoBack != nil {
			lui.OnGoBack()
		}
	}))
	lui.startButton = button("START", &lui.normalFace, startButtonImage(), 100, func() {
		if lui.OnStartMatch != nil {
			lui.OnStartMatch()
		}
	})
	lui.startButton.GetWidget().Disabled = true
	buttons.AddChild(lui.startButton)
	content.AddChild(buttons)

	lui.statusLabel = label("", &lui.smallFace, warning)
	content.AddChild(lui.statusLabel)

	root.AddChild(content)
	lui.UI = &ebitenui.UI{Container: root}
}

// UpdateUI shows the current roster. ready enables the start button; status
// replaces the status line.
func (lui *LobbyUI) UpdateUI(seats []components.SeatData, ready bool, status string) {
	lines := SeatLines(seats)
	for i, l := range lui.seatLabels {
		if i < len(lines) {
			l.Label = lines[i]
			continue
		}
		l.Label = emptySeat(i)
	}
	lui.startButton.GetWidget().Disabled = !ready
	lui.statusLabel.Label = status
}

func (lui *LobbyUI) Update() {
	lui.UI.Update()
}

// SeatLines formats the roster in seat order, at most one line per row
func SeatLines(seats []components.SeatData) []string {
	lines := make([]string, 0, len(seats))
	for i, s := range seats {
		if i == maxSeatRows {
			break
		}
		line := fmt.Sprintf("%d. %s", i+1, s.Name)
		if s.IsLocal && s.PeerID != "" {
			line += " (you)"
		}
		lines = append(lines, line)
	}
	return lines
}

func emptySeat(i int) string {
	return fmt.Sprintf("%d. ...", i+1)
}
