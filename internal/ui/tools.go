package ui

import (
	"LocalDrawer/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the four drawing actions. Each button carries a text name
// so it can be found without looking at its icon.
type Toolbar struct {
	Pencil  *widget.Button
	Eraser  *widget.Button
	AddText *widget.Button
	Clear   *widget.Button

	content *fyne.Container
}

func NewToolbar(board *DrawingSurface) *Toolbar {
	t := &Toolbar{}
	t.Pencil = widget.NewButtonWithIcon("Pencil", theme.DocumentCreateIcon(), func() {
		board.ChangeTool(state.ToolPencil)
	})
	t.Eraser = widget.NewButtonWithIcon("Eraser", theme.ContentClearIcon(), func() {
		board.ChangeTool(state.ToolEraser)
	})
	t.AddText = widget.NewButtonWithIcon("Add Text Box", theme.ContentAddIcon(), func() {
		board.AddTextBox()
	})
	t.Clear = widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), board.ClearCanvas)

	board.OnToolChanged = t.markActive
	t.markActive(board.Tool())

	t.content = container.NewHBox(
		widget.NewLabel("Tool:"),
		t.Pencil,
		t.Eraser,
		widget.NewSeparator(),
		t.AddText,
		t.Clear,
		layout.NewSpacer(),
	)
	return t
}

// Buttons returns the actions in display order.
func (t *Toolbar) Buttons() []*widget.Button {
	return []*widget.Button{t.Pencil, t.Eraser, t.AddText, t.Clear}
}

func (t *Toolbar) CanvasObject() fyne.CanvasObject {
	return t.content
}

// markActive highlights the button of the selected tool.
func (t *Toolbar) markActive(tool state.Tool) {
	t.Pencil.Importance = widget.MediumImportance
	t.Eraser.Importance = widget.MediumImportance
	switch tool {
	case state.ToolPencil:
		t.Pencil.Importance = widget.HighImportance
	case state.ToolEraser:
		t.Eraser.Importance = widget.HighImportance
	}
	t.Pencil.Refresh()
	t.Eraser.Refresh()
}
