package recording

import (
	"log/slog"
	"math"
	"slices"

	"github.com/xTibor/segdisplay"
)

// Recorder captures draw calls as commands. It implements
// segdisplay.Painter: AllocateRect stacks widgets vertically, left
// aligned, separated by the padding. Use FinishRecording to obtain an
// immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	padding    float64
	background segdisplay.RGBA
	cursor     float64 // y of the next allocation
	maxWidth   float64
	commands   []Command
}

var _ segdisplay.Painter = (*Recorder)(nil)

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithPadding sets the gap around and between allocated rectangles.
func WithPadding(p float64) RecorderOption {
	return func(r *Recorder) {
		r.padding = p
	}
}

// WithBackground sets the canvas color backends clear to before playback.
func WithBackground(c segdisplay.RGBA) RecorderOption {
	return func(r *Recorder) {
		r.background = c
	}
}

// NewRecorder creates an empty Recorder with a transparent background and
// no padding.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		background: segdisplay.Transparent,
		commands:   make([]Command, 0, 256),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.cursor = r.padding
	return r
}

// AllocateRect implements segdisplay.Painter.
func (r *Recorder) AllocateRect(desired segdisplay.Size) segdisplay.Rect {
	rect := segdisplay.RectFromSize(segdisplay.Pt(r.padding, r.cursor), desired)
	r.cursor += desired.H + r.padding
	r.maxWidth = max(r.maxWidth, desired.W)
	r.commands = append(r.commands, AllocateCommand{Desired: desired, Rect: rect})

	segdisplay.Logger().Debug("recording: allocate",
		slog.Float64("w", desired.W), slog.Float64("h", desired.H),
		slog.Float64("y", rect.Min.Y))
	return rect
}

// DrawPolygon implements segdisplay.Painter. The points are copied.
func (r *Recorder) DrawPolygon(points []segdisplay.Point, fill segdisplay.RGBA, stroke segdisplay.Stroke) {
	r.commands = append(r.commands, PolygonCommand{
		Points: slices.Clone(points),
		Fill:   fill,
		Stroke: stroke,
	})
}

// DrawCircle implements segdisplay.Painter.
func (r *Recorder) DrawCircle(center segdisplay.Point, radius float64, fill segdisplay.RGBA, stroke segdisplay.Stroke) {
	r.commands = append(r.commands, CircleCommand{
		Center: center,
		Radius: radius,
		Fill:   fill,
		Stroke: stroke,
	})
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// FinishRecording returns an immutable Recording containing all commands.
// The canvas is sized to fit every allocation plus padding, rounded up to
// whole pixels. After calling FinishRecording the Recorder should not be
// used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:      int(math.Ceil(r.maxWidth + 2*r.padding)),
		height:     int(math.Ceil(r.cursor)),
		background: r.background,
		commands:   r.commands,
	}
}

// Recording is an immutable container for recorded commands.
type Recording struct {
	width, height int
	background    segdisplay.RGBA
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Background returns the canvas clear color.
func (r *Recording) Background() segdisplay.RGBA {
	return r.background
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Allocations returns the rectangles handed out during recording, in order.
func (r *Recording) Allocations() []segdisplay.Rect {
	var rects []segdisplay.Rect
	for _, c := range r.commands {
		if a, ok := c.(AllocateCommand); ok {
			rects = append(rects, a.Rect)
		}
	}
	return rects
}

// Count returns the number of commands of the given type.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height, r.background); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case PolygonCommand:
			backend.FillPolygon(c.Points, c.Fill, c.Stroke)
		case CircleCommand:
			backend.FillCircle(c.Center, c.Radius, c.Fill, c.Stroke)
		case AllocateCommand:
			// Layout only; nothing to draw.
		}
	}

	return backend.End()
}

// Replay forwards the drawing commands to another painter. Allocations are
// not repeated, so the painter receives the original coordinates.
func (r *Recording) Replay(p segdisplay.Painter) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case PolygonCommand:
			p.DrawPolygon(c.Points, c.Fill, c.Stroke)
		case CircleCommand:
			p.DrawCircle(c.Center, c.Radius, c.Fill, c.Stroke)
		}
	}
}
