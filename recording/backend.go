package recording

import (
	"image"
	"io"

	"github.com/xTibor/segdisplay"
)

// Backend is the interface that all playback backends implement.
// Backends receive the recorded primitives in painting order and translate
// them to their output format.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Clear the canvas to the background color in Begin
//  3. Ignore zero-width or transparent strokes
type Backend interface {
	// Begin initializes the backend for a canvas of the given size.
	Begin(width, height int, background segdisplay.RGBA) error

	// End finalizes the output. After End, output methods may be used.
	End() error

	// FillPolygon fills a closed polygon and strokes its outline.
	FillPolygon(points []segdisplay.Point, fill segdisplay.RGBA, stroke segdisplay.Stroke)

	// FillCircle fills a circle and strokes its outline.
	FillCircle(center segdisplay.Point, radius float64, fill segdisplay.RGBA, stroke segdisplay.Stroke)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content. Only valid after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content. Only valid after End.
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rasterized image.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before Begin.
	Image() *image.RGBA
}
