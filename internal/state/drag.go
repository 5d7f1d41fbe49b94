package state

import "math"

// DragState remembers the label being dragged and the offset between the
// pointer and the label's top-left corner at drag start. The offset stays
// fixed for the whole drag so the label does not jump under the pointer.
type DragState struct {
	active bool
	id     int64
	offset Point
}

func (d *DragState) Start(label TextLabel, pointer Point) {
	d.active = true
	d.id = label.ID
	d.offset = Point{
		X: pointer.X - float32(label.X),
		Y: pointer.Y - float32(label.Y),
	}
}

// Target returns the label id and the position it should move to for the
// given pointer. ok is false when nothing is being dragged.
func (d *DragState) Target(pointer Point) (id int64, x, y int, ok bool) {
	if !d.active {
		return 0, 0, 0, false
	}
	x = int(math.Round(float64(pointer.X - d.offset.X)))
	y = int(math.Round(float64(pointer.Y - d.offset.Y)))
	return d.id, x, y, true
}

// Stop clears the drag. Safe to call when nothing is dragged.
func (d *DragState) Stop() {
	*d = DragState{}
}

// Active returns the dragged label id, if any.
func (d *DragState) Active() (int64, bool) {
	return d.id, d.active
}
