package state

// StrokeMode is the state of the freehand drawing machine.
type StrokeMode int

const (
	Idle StrokeMode = iota
	Drawing
)

// StrokeState tracks whether a pointer button is held down on the canvas.
// It knows nothing about labels.
type StrokeState struct {
	mode StrokeMode
}

func (s *StrokeState) Begin() {
	s.mode = Drawing
}

// End returns to Idle and reports whether a stroke was in progress.
func (s *StrokeState) End() bool {
	was := s.mode == Drawing
	s.mode = Idle
	return was
}

func (s *StrokeState) Drawing() bool {
	return s.mode == Drawing
}

func (s *StrokeState) Mode() StrokeMode {
	return s.mode
}
