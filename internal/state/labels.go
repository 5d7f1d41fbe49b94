package state

import "slices"

// Labels is the ordered label collection. Every mutation builds a new slice
// from the old one and installs it wholesale.
type Labels struct {
	items    []TextLabel
	clock    *Clock
	template TextLabel
}

// NewLabels returns an empty collection. New labels copy the position and
// text of template.
func NewLabels(clock *Clock, template TextLabel) *Labels {
	if clock == nil {
		clock = NewClock(nil)
	}
	return &Labels{clock: clock, template: template}
}

// Add appends a label with the template's position and text.
func (l *Labels) Add() TextLabel {
	label := l.template
	label.ID = l.clock.Next()

	next := make([]TextLabel, 0, len(l.items)+1)
	next = append(next, l.items...)
	next = append(next, label)
	l.items = next
	return label
}

// UpdateText replaces the text of the label with the given id. It reports
// whether anything changed.
func (l *Labels) UpdateText(id int64, text string) bool {
	return l.replace(id, func(label TextLabel) TextLabel {
		label.Text = text
		return label
	})
}

// Move sets the top-left corner of the label with the given id.
func (l *Labels) Move(id int64, x, y int) bool {
	return l.replace(id, func(label TextLabel) TextLabel {
		label.X, label.Y = x, y
		return label
	})
}

func (l *Labels) replace(id int64, fn func(TextLabel) TextLabel) bool {
	idx := l.index(id)
	if idx < 0 {
		return false
	}
	updated := fn(l.items[idx])
	if updated == l.items[idx] {
		return false
	}
	next := make([]TextLabel, len(l.items))
	copy(next, l.items)
	next[idx] = updated
	l.items = next
	return true
}

func (l *Labels) index(id int64) int {
	for i, label := range l.items {
		if label.ID == id {
			return i
		}
	}
	return -1
}

func (l *Labels) Get(id int64) (TextLabel, bool) {
	if idx := l.index(id); idx >= 0 {
		return l.items[idx], true
	}
	return TextLabel{}, false
}

// All returns a copy of the labels in insertion order.
func (l *Labels) All() []TextLabel {
	return slices.Clone(l.items)
}

func (l *Labels) Len() int {
	return len(l.items)
}

// Clear drops every label.
func (l *Labels) Clear() {
	l.items = nil
}
