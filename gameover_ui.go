package main

import (
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameOverUI is a centered panel with the end-of-run text and a Restart
// button. It starts hidden.
type GameOverUI struct {
	ui      *ebitenui.UI
	panel   *widget.Container
	title   *widget.Text
	detail  *widget.Text
	visible bool
}

func NewGameOverUI(width, height int, onRestart func()) *GameOverUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)
	detail := widget.NewText(
		widget.TextOpts.Text("", &face, colornames.Lightgrey),
		widget.TextOpts.WidgetOpts(center),
	)
	restartBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnIdle}),
		widget.ButtonOpts.Text("Restart", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 18, Right: 18}),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onRestart != nil {
				onRestart()
			}
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 36, Right: 36}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/3, height/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(detail)
	panel.AddChild(restartBtn)
	panel.GetWidget().Visibility = widget.Visibility_Hide

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &GameOverUI{
		ui:     &ebitenui.UI{Container: root},
		panel:  panel,
		title:  title,
		detail: detail,
	}
}

func (o *GameOverUI) Show(title, detail string) {
	o.title.Label = title
	o.detail.Label = detail
	o.panel.GetWidget().Visibility = widget.Visibility_Show
	o.visible = true
}

func (o *GameOverUI) Hide() {
	o.panel.GetWidget().Visibility = widget.Visibility_Hide
	o.visible = false
}

func (o *GameOverUI) Visible() bool {
	return o.visible
}

func (o *GameOverUI) Update() {
	o.ui.Update()
}

func (o *GameOverUI) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	o.ui.Draw(screen)
}
