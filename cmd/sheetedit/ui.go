package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// rightPanelWidth is the screen width reserved for the box properties panel;
// everything left of it is the canvas.
const rightPanelWidth = 260

// Panel bundles the widgets whose state follows the selected box.
type Panel struct {
	EntityInput *widget.TextInput
	AnimInput   *widget.TextInput
	FrameInput  *widget.TextInput

	// suppress stops ChangedHandlers from echoing programmatic SetText
	// calls back into the model
	suppress bool
}

// SetFields refreshes the inputs from the selected box without triggering the
// change handlers.
func (p *Panel) SetFields(entity, anim, frame string) {
	p.suppress = true
	p.EntityInput.SetText(entity)
	p.AnimInput.SetText(anim)
	p.FrameInput.SetText(frame)
	p.suppress = false
}

// BuildEditorUI assembles the right-hand properties panel. Field edits and
// button presses are reported through the callbacks.
func BuildEditorUI(
	onFieldChanged func(field, value string),
	onSave func(),
	onNewBox func(),
	onDuplicate func(),
	onDelete func(),
	onReload func(),
) (*ebitenui.UI, *Panel) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	panel := &Panel{}

	side := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(rightPanelWidth, 0),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	addInput := func(label, field string) *widget.TextInput {
		side.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(label, &fontFace, labelColor()),
		))
		input := widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 28)),
			widget.TextInputOpts.Image(textInputImage()),
			widget.TextInputOpts.Color(textInputColor()),
			widget.TextInputOpts.Face(&fontFace),
			widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
				if panel.suppress || onFieldChanged == nil {
					return
				}
				onFieldChanged(field, args.InputText)
			}),
		)
		side.AddChild(input)
		return input
	}

	panel.EntityInput = addInput("Entity", "entity")
	panel.AnimInput = addInput("Animation", "animation")
	panel.FrameInput = addInput("Frame", "frame")

	addButton := func(label string, onClick func()) {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(ui.PrimaryTheme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, &fontFace, &widget.ButtonTextColor{Idle: color.Black}),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 32)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
		side.AddChild(btn)
	}

	addButton("Save (Ctrl+S)", onSave)
	addButton("New Box (N)", onNewBox)
	addButton("Duplicate (Ctrl+D)", onDuplicate)
	addButton("Delete (Del)", onDelete)
	addButton("Reload Sheet", onReload)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	side.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(side)
	ui.Container = root

	return ui, panel
}
