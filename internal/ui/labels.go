package ui

import (
	"LocalDrawer/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const labelFieldWidth = 180

// labelField is the editable entry for one label. Pressing and dragging
// on it moves the label instead of selecting text.
type labelField struct {
	widget.Entry
	id    int64
	board *DrawingSurface
}

var _ desktop.Mouseable = (*labelField)(nil)
var _ desktop.Hoverable = (*labelField)(nil)
var _ fyne.Draggable = (*labelField)(nil)

func newLabelField(board *DrawingSurface, label state.TextLabel) *labelField {
	f := &labelField{id: label.ID, board: board}
	f.ExtendBaseWidget(f)
	f.SetText(label.Text)
	f.OnChanged = func(text string) {
		board.UpdateText(f.id, text)
	}
	return f
}

func (f *labelField) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if label, ok := f.board.labels.Get(f.id); ok {
		f.board.StartDragging(label, e.AbsolutePosition)
	}
}

func (f *labelField) MouseUp(*desktop.MouseEvent) {
	f.board.StopDragging()
}

func (f *labelField) Dragged(e *fyne.DragEvent) {
	f.board.DragTextBox(e.AbsolutePosition)
}

func (f *labelField) DragEnd() {
	f.board.StopDragging()
}

func (f *labelField) MouseIn(*desktop.MouseEvent) {}

func (f *labelField) MouseMoved(e *desktop.MouseEvent) {
	f.board.DragTextBox(e.AbsolutePosition)
}

func (f *labelField) MouseOut() {
	f.board.StopDragging()
}

// syncLabels reconciles the overlay with the label collection by id.
// Existing fields are moved in place so an entry being edited keeps focus.
func (d *DrawingSurface) syncLabels() {
	current := d.labels.All()
	seen := make(map[int64]bool, len(current))
	objects := make([]fyne.CanvasObject, 0, len(current))

	for _, label := range current {
		seen[label.ID] = true
		f, ok := d.fields[label.ID]
		if !ok {
			f = newLabelField(d, label)
			d.fields[label.ID] = f
		} else if f.Text != label.Text {
			f.SetText(label.Text)
		}
		f.Move(fyne.NewPos(float32(label.X), float32(label.Y)))
		f.Resize(fyne.NewSize(labelFieldWidth, f.MinSize().Height))
		objects = append(objects, f)
	}
	for id := range d.fields {
		if !seen[id] {
			delete(d.fields, id)
		}
	}

	d.overlay.Objects = objects
	d.overlay.Refresh()
}

// field returns the entry rendering the label with the given id.
func (d *DrawingSurface) field(id int64) (*labelField, bool) {
	f, ok := d.fields[id]
	return f, ok
}
