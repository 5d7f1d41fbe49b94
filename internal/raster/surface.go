// Package raster holds the pixel surface strokes are baked into.
package raster

import (
	"image"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
)

// Options configures a Surface.
type Options struct {
	Width       int
	Height      int
	LineWidth   float64
	StrokeColor string // hex, e.g. "#000000"
	EraserSize  int
}

func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		LineWidth:   2,
		StrokeColor: "#000000",
		EraserSize:  20,
	}
}

// Surface is a fixed-size raster with a single open path. Pencil segments are
// stroked as soon as they are added, so no vector data outlives the stroke.
type Surface struct {
	dc   *gg.Context
	opts Options
	log  *slog.Logger

	last     gg.Point
	pathOpen bool
}

// New allocates the pixel buffer and configures the pen.
func New(opts Options, logger *slog.Logger) *Surface {
	if logger == nil {
		logger = slog.Default()
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetLineWidth(opts.LineWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetHexColor(opts.StrokeColor)

	logger.Debug("raster surface acquired",
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height),
		slog.Float64("line_width", opts.LineWidth),
		slog.String("color", opts.StrokeColor))
	return &Surface{dc: dc, opts: opts, log: logger}
}

func (s *Surface) Width() int  { return s.opts.Width }
func (s *Surface) Height() int { return s.opts.Height }

func (s *Surface) Options() Options { return s.opts }

// Contains reports whether (x, y) lies on the surface.
func (s *Surface) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(s.opts.Width) && y < float64(s.opts.Height)
}

// BeginPath starts a new path at (x, y).
func (s *Surface) BeginPath(x, y float64) {
	s.dc.ClearPath()
	s.last = gg.Pt(x, y)
	s.pathOpen = true
}

// LineTo extends the open path to (x, y) and strokes the new segment.
// Without an open path it behaves like BeginPath.
func (s *Surface) LineTo(x, y float64) error {
	if !s.pathOpen {
		s.BeginPath(x, y)
		return nil
	}
	s.dc.MoveTo(s.last.X, s.last.Y)
	s.dc.LineTo(x, y)
	s.last = gg.Pt(x, y)
	return s.dc.Stroke()
}

// ClosePath ends the open path. It is a no-op when no path is open.
func (s *Surface) ClosePath() {
	if !s.pathOpen {
		return
	}
	s.dc.ClearPath()
	s.pathOpen = false
}

// PathOpen reports whether a path is in progress.
func (s *Surface) PathOpen() bool {
	return s.pathOpen
}

// ClearRect resets the w×h rectangle at (x, y) to transparent. Pixels
// outside the surface are ignored.
func (s *Surface) ClearRect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			s.dc.SetPixel(px, py, gg.Transparent)
		}
	}
}

// EraseAt clears an EraserSize square centered on (x, y).
func (s *Surface) EraseAt(x, y float64) {
	size := s.opts.EraserSize
	half := size / 2
	s.ClearRect(int(math.Round(x))-half, int(math.Round(y))-half, size, size)
}

// Clear wipes the whole surface. The pen settings are kept.
func (s *Surface) Clear() {
	s.dc.Clear()
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}
