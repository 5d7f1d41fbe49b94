package ui

import (
	"image/color"
	"log/slog"

	"LocalDrawer/internal/applog"
	"LocalDrawer/internal/raster"
	"LocalDrawer/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
)

// Options configures a DrawingSurface.
type Options struct {
	Raster raster.Options
	Label  state.TextLabel // position and text of new labels
}

func DefaultOptions() Options {
	return Options{
		Raster: raster.DefaultOptions(),
		Label: state.TextLabel{
			X:    state.DefaultLabelX,
			Y:    state.DefaultLabelY,
			Text: state.DefaultLabelText,
		},
	}
}

// DrawingSurface is a fixed-size canvas for freehand strokes with editable
// text labels floating above it.
//
// The raster surface is acquired once, when the widget is first rendered,
// and lives outside the label state so label changes never touch pixels.
// The stroke and drag state machines are independent of each other.
type DrawingSurface struct {
	widget.BaseWidget

	opts Options
	log  *slog.Logger

	surface *raster.Surface // nil until mounted
	image   *canvas.Image

	overlay *fyne.Container
	fields  map[int64]*labelField

	tool   state.Tool
	stroke state.StrokeState
	drag   state.DragState
	labels *state.Labels

	statusBar *widget.Label

	OnToolChanged func(state.Tool)
}

var _ fyne.Widget = (*DrawingSurface)(nil)
var _ fyne.Draggable = (*DrawingSurface)(nil)
var _ desktop.Mouseable = (*DrawingSurface)(nil)
var _ desktop.Hoverable = (*DrawingSurface)(nil)

func NewDrawingSurface(opts Options) *DrawingSurface {
	d := &DrawingSurface{
		opts:      opts,
		log:       applog.WithComponent("ui").With(slog.String("session", uuid.NewString())),
		overlay:   container.NewWithoutLayout(),
		fields:    make(map[int64]*labelField),
		tool:      state.ToolPencil,
		labels:    state.NewLabels(state.NewClock(nil), opts.Label),
		statusBar: widget.NewLabel("Ready"),
	}
	d.ExtendBaseWidget(d)
	return d
}

// mount acquires the raster surface. Later calls keep the existing one.
func (d *DrawingSurface) mount() {
	if d.surface != nil {
		return
	}
	d.surface = raster.New(d.opts.Raster, d.log)
	d.image = canvas.NewImageFromImage(d.surface.Image())
	d.image.FillMode = canvas.ImageFillStretch
	d.image.ScaleMode = canvas.ImageScalePixels
	d.image.SetMinSize(d.canvasSize())
	d.log.Info("drawing surface mounted")
}

func (d *DrawingSurface) canvasSize() fyne.Size {
	return fyne.NewSize(float32(d.opts.Raster.Width), float32(d.opts.Raster.Height))
}

func (d *DrawingSurface) refreshRaster() {
	if d.image == nil {
		return
	}
	d.image.Image = d.surface.Image()
	d.image.Refresh()
}

// StartDrawing begins a stroke at pos. Without a raster surface it does nothing.
func (d *DrawingSurface) StartDrawing(pos fyne.Position) {
	if d.surface == nil {
		return
	}
	d.stroke.Begin()
	d.surface.BeginPath(float64(pos.X), float64(pos.Y))
}

// Draw applies the active tool at pos while a stroke is in progress.
// Leaving the canvas ends the stroke.
func (d *DrawingSurface) Draw(pos fyne.Position) {
	if d.surface == nil || !d.stroke.Drawing() {
		return
	}
	x, y := float64(pos.X), float64(pos.Y)
	if !d.surface.Contains(x, y) {
		d.StopDrawing()
		return
	}

	switch d.tool {
	case state.ToolPencil:
		if err := d.surface.LineTo(x, y); err != nil {
			d.log.Warn("stroke failed", slog.Any("err", err))
		}
	case state.ToolEraser:
		d.surface.EraseAt(x, y)
	}
	d.refreshRaster()
}

// StopDrawing ends the current stroke. Idempotent.
func (d *DrawingSurface) StopDrawing() {
	if d.surface == nil || !d.stroke.End() {
		return
	}
	d.surface.ClosePath()
}

// Drawing reports whether a stroke is in progress.
func (d *DrawingSurface) Drawing() bool {
	return d.stroke.Drawing()
}

func (d *DrawingSurface) ChangeTool(tool state.Tool) {
	d.tool = tool
	d.log.Debug("tool changed", slog.String("tool", tool.String()))
	d.setStatus("Tool: " + tool.String())
	if d.OnToolChanged != nil {
		d.OnToolChanged(tool)
	}
}

func (d *DrawingSurface) Tool() state.Tool {
	return d.tool
}

// AddTextBox appends a label at the default position with the default text.
func (d *DrawingSurface) AddTextBox() state.TextLabel {
	label := d.labels.Add()
	d.syncLabels()
	d.log.Debug("text box added", slog.Int64("id", label.ID))
	d.setStatus("Added text box")
	return label
}

// UpdateText replaces the text of one label. Unknown ids are ignored.
func (d *DrawingSurface) UpdateText(id int64, text string) {
	if !d.labels.UpdateText(id, text) {
		return
	}
	d.syncLabels()
}

// StartDragging records label as dragged. pointer is in window coordinates.
func (d *DrawingSurface) StartDragging(label state.TextLabel, pointer fyne.Position) {
	d.drag.Start(label, toPoint(pointer))
}

// DragTextBox moves the dragged label so it keeps its offset from pointer.
func (d *DrawingSurface) DragTextBox(pointer fyne.Position) {
	id, x, y, ok := d.drag.Target(toPoint(pointer))
	if !ok {
		return
	}
	if d.labels.Move(id, x, y) {
		d.syncLabels()
	}
}

// StopDragging releases the dragged label. Idempotent.
func (d *DrawingSurface) StopDragging() {
	d.drag.Stop()
}

// ClearCanvas wipes every pixel and removes all labels. Without a raster
// surface it does nothing.
func (d *DrawingSurface) ClearCanvas() {
	if d.surface == nil {
		return
	}
	d.surface.Clear()
	d.labels.Clear()
	d.drag.Stop()
	d.syncLabels()
	d.refreshRaster()
	d.log.Info("canvas cleared")
	d.setStatus("Canvas cleared")
}

// Labels returns the labels in render order.
func (d *DrawingSurface) Labels() []state.TextLabel {
	return d.labels.All()
}

// StatusBar is the label showing the last action.
func (d *DrawingSurface) StatusBar() *widget.Label {
	return d.statusBar
}

// SetStatus updates the status line from any goroutine.
func (d *DrawingSurface) SetStatus(text string) {
	fyne.Do(func() {
		d.setStatus(text)
	})
}

func (d *DrawingSurface) setStatus(text string) {
	d.statusBar.SetText(text)
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

func (d *DrawingSurface) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		d.StartDrawing(e.Position)
	}
}

func (d *DrawingSurface) MouseUp(*desktop.MouseEvent) {
	d.StopDrawing()
}

func (d *DrawingSurface) Dragged(e *fyne.DragEvent) {
	d.Draw(e.Position)
}

func (d *DrawingSurface) DragEnd() {
	d.StopDrawing()
}

func (d *DrawingSurface) MouseIn(*desktop.MouseEvent) {}

func (d *DrawingSurface) MouseMoved(e *desktop.MouseEvent) {
	d.Draw(e.Position)
}

func (d *DrawingSurface) MouseOut() {
	d.StopDrawing()
}

func (d *DrawingSurface) CreateRenderer() fyne.WidgetRenderer {
	d.mount()
	return &drawingSurfaceRenderer{
		board:      d,
		background: canvas.NewRectangle(color.White),
	}
}

type drawingSurfaceRenderer struct {
	board      *DrawingSurface
	background *canvas.Rectangle
}

func (r *drawingSurfaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.image, r.board.overlay}
}

func (r *drawingSurfaceRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.image.Move(fyne.NewPos(0, 0))
	r.board.image.Resize(r.board.canvasSize())
	r.board.overlay.Resize(size)
}

func (r *drawingSurfaceRenderer) MinSize() fyne.Size {
	return r.board.canvasSize()
}

// Refresh redraws the current pixels; it never recreates the surface.
func (r *drawingSurfaceRenderer) Refresh() {
	r.board.refreshRaster()
	r.board.overlay.Refresh()
	canvas.Refresh(r.board)
}

func (r *drawingSurfaceRenderer) Destroy() {}
