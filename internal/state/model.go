package state

// Point is a pointer position in float pixels.
type Point struct{ X, Y float32 }

// Tool is the active interpretation of pointer moves on the canvas.
type Tool int

const (
	ToolPencil Tool = iota
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolEraser:
		return "eraser"
	}
	return "unknown"
}

const (
	DefaultLabelText = "Your text here"
	DefaultLabelX    = 100
	DefaultLabelY    = 100
)

// TextLabel is an editable text overlay. X and Y are the top-left corner
// relative to the drawing surface origin.
type TextLabel struct {
	ID   int64
	X, Y int
	Text string
}
