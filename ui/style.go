// Package ui builds the ebitenui screens for the lobby and options.
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// faces are stored as text.Face for ebitenui compatibility
type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() (faces, error) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("failed to load UI font: %w", err)
	}
	return faces{
		title:  &text.GoTextFace{Source: fontSource, Size: 18},
		normal: &text.GoTextFace{Source: fontSource, Size: 12},
		small:  &text.GoTextFace{Source: fontSource, Size: 10},
	}, nil
}

var (
	white     = color.RGBA{255, 255, 255, 255}
	dimmed    = color.RGBA{100, 100, 100, 255}
	warning   = color.RGBA{255, 200, 100, 255}
	panelTint = color.RGBA{30, 30, 45, 255}
)

func rootContainer(background color.Color) *widget.Container {
	opts := []widget.ContainerOpt{widget.ContainerOpts.Layout(widget.NewAnchorLayout())}
	if background != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(background)))
	}
	return widget.NewContainer(opts...)
}

func centeredColumn(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

func row(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func label(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: clr, Disabled: dimmed}))
}

func button(s string, face *text.Face, img *widget.ButtonImage, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 26)),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(s, face, &widget.ButtonTextColor{
			Idle:     white,
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: dimmed,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}
