package ui

import (
	"testing"

	"LocalDrawer/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func primaryAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func dragTo(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(x, y)}}
}

func mustField(t *testing.T, d *DrawingSurface, id int64) *labelField {
	t.Helper()
	f, ok := d.field(id)
	require.True(t, ok, "no field for label %d", id)
	return f
}

func TestAddTextBoxCreatesDefaultField(t *testing.T) {
	d := newMountedBoard(t)

	label := d.AddTextBox()

	assert.Equal(t, 100, label.X)
	assert.Equal(t, 100, label.Y)
	assert.Equal(t, "Your text here", label.Text)

	require.Len(t, d.overlay.Objects, 1)
	f := mustField(t, d, label.ID)
	assert.Equal(t, "Your text here", f.Text)
	assert.Equal(t, fyne.NewPos(100, 100), f.Position())
	assert.Equal(t, "Added text box", d.StatusBar().Text)
}

func TestAddTextBoxRepeatedly(t *testing.T) {
	d := newMountedBoard(t)

	for i := 0; i < 4; i++ {
		d.AddTextBox()
	}

	labels := d.Labels()
	require.Len(t, labels, 4)
	require.Len(t, d.overlay.Objects, 4)
	for i, label := range labels {
		assert.Same(t, d.overlay.Objects[i], mustField(t, d, label.ID), "render order follows insertion order")
	}
}

func TestEditingOneFieldLeavesSiblings(t *testing.T) {
	d := newMountedBoard(t)
	first := d.AddTextBox()
	second := d.AddTextBox()
	f := mustField(t, d, second.ID)

	test.Type(f, "!")

	got := d.Labels()
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0])
	assert.Equal(t, f.Text, got[1].Text)
	assert.NotEqual(t, "Your text here", got[1].Text)
	assert.Equal(t, "Your text here", mustField(t, d, first.ID).Text)
}

func TestUpdateTextRefreshesField(t *testing.T) {
	d := newMountedBoard(t)
	label := d.AddTextBox()

	d.UpdateText(label.ID, "New text")

	assert.Equal(t, "New text", mustField(t, d, label.ID).Text)
	assert.Equal(t, "New text", d.Labels()[0].Text)
}

func TestUpdateTextUnknownID(t *testing.T) {
	d := newMountedBoard(t)
	label := d.AddTextBox()

	d.UpdateText(label.ID+99, "ignored")

	assert.Equal(t, []state.TextLabel{label}, d.Labels())
}

func TestDragKeepsPointerOffset(t *testing.T) {
	d := newMountedBoard(t)
	label := d.AddTextBox()

	d.StartDragging(label, fyne.NewPos(150, 120))
	d.DragTextBox(fyne.NewPos(180, 170))

	got := d.Labels()[0]
	assert.Equal(t, 130, got.X)
	assert.Equal(t, 150, got.Y)
	assert.Equal(t, label.Text, got.Text)
	assert.Equal(t, fyne.NewPos(130, 150), mustField(t, d, label.ID).Position())

	d.StopDragging()
	d.DragTextBox(fyne.NewPos(400, 400))
	assert.Equal(t, 130, d.Labels()[0].X)
}

func TestDragWithoutStartIsNoop(t *testing.T) {
	d := newMountedBoard(t)
	label := d.AddTextBox()

	d.DragTextBox(fyne.NewPos(300, 300))
	d.StopDragging()

	assert.Equal(t, []state.TextLabel{label}, d.Labels())
}

func TestFieldPointerEventsDragLabel(t *testing.T) {
	d := newMountedBoard(t)
	label := d.AddTextBox()
	other := d.AddTextBox()
	f := mustField(t, d, label.ID)

	f.MouseDown(primaryAt(110, 105))
	f.Dragged(dragTo(160, 125))
	f.MouseUp(primaryAt(160, 125))
	f.Dragged(dragTo(300, 300))

	got := d.Labels()
	assert.Equal(t, 150, got[0].X)
	assert.Equal(t, 120, got[0].Y)
	assert.Equal(t, other, got[1])
}

func TestFieldPointerLeaveEndsDrag(t *testing.T) {
	d := newMountedBoard(t)
	label := d.AddTextBox()
	f := mustField(t, d, label.ID)

	f.MouseDown(primaryAt(100, 100))
	f.MouseOut()
	f.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{AbsolutePosition: fyne.NewPos(200, 200)}})

	assert.Equal(t, 100, d.Labels()[0].X)
	_, dragging := d.drag.Active()
	assert.False(t, dragging)
}

func TestDragDoesNotDisturbStroke(t *testing.T) {
	d := newMountedBoard(t)
	label := d.AddTextBox()

	d.StartDrawing(fyne.NewPos(10, 10))
	d.StartDragging(label, fyne.NewPos(100, 100))
	d.StopDragging()

	assert.True(t, d.Drawing())
}
