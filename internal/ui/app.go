package ui

import (
	"LocalDrawer/internal/config"
	"LocalDrawer/internal/raster"
	"LocalDrawer/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

// OptionsFromConfig maps loaded configuration onto widget options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Raster: raster.Options{
			Width:       cfg.Canvas.Width,
			Height:      cfg.Canvas.Height,
			LineWidth:   cfg.Canvas.LineWidth,
			StrokeColor: cfg.Canvas.StrokeColor,
			EraserSize:  cfg.Canvas.EraserSize,
		},
		Label: state.TextLabel{
			X:    cfg.Labels.DefaultX,
			Y:    cfg.Labels.DefaultY,
			Text: cfg.Labels.DefaultText,
		},
	}
}

// NewContent lays out the toolbar above the canvas with the status line below.
func NewContent(board *DrawingSurface, toolbar *Toolbar) fyne.CanvasObject {
	return container.NewBorder(toolbar.CanvasObject(), board.StatusBar(), nil, nil, container.NewScroll(board))
}

// InstallShortcuts binds P, E and T and Ctrl+L to the toolbar actions.
// Runes typed into a focused label go to the label instead.
func InstallShortcuts(c fyne.Canvas, board *DrawingSurface) {
	c.SetOnTypedRune(func(r rune) {
		switch r {
		case 'p', 'P':
			board.ChangeTool(state.ToolPencil)
		case 'e', 'E':
			board.ChangeTool(state.ToolEraser)
		case 't', 'T':
			board.AddTextBox()
		}
	})
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyL, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		board.ClearCanvas()
	})
}

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(fyne.NewSize(float32(cfg.Canvas.Width)+40, float32(cfg.Canvas.Height)+120))

	board := NewDrawingSurface(OptionsFromConfig(cfg))
	toolbar := NewToolbar(board)

	myWindow.SetContent(NewContent(board, toolbar))
	InstallShortcuts(myWindow.Canvas(), board)
	myWindow.ShowAndRun()
}
