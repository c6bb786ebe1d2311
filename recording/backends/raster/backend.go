// Package raster provides a raster backend for the recording system.
// It renders recordings to an *image.RGBA with golang.org/x/image/vector.
//
// Polygons are filled with the coverage accumulation of the vector
// rasterizer, which clamps overlapping same-winding subpaths to full
// coverage. Circles are built from four cubic Bézier arcs.
// Strokes are drawn centred on the outline: polygon edges as quads with
// round joins, circle outlines as rings.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/xTibor/segdisplay/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("output.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"

	"golang.org/x/image/vector"

	"github.com/xTibor/segdisplay"
	"github.com/xTibor/segdisplay/recording"
)

// ErrInvalidSize is returned by Begin for empty or negative canvases.
var ErrInvalidSize = errors.New("raster: invalid canvas size")

// ErrNotStarted is returned by output methods called before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to a pixel image.
type Backend struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin allocates the canvas and clears it to background.
func (b *Backend) Begin(width, height int, background segdisplay.RGBA) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.z = vector.NewRasterizer(width, height)
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	if b.img == nil {
		return ErrNotStarted
	}
	return nil
}

// FillPolygon fills points and strokes the closed outline.
func (b *Backend) FillPolygon(points []segdisplay.Point, fill segdisplay.RGBA, stroke segdisplay.Stroke) {
	if b.img == nil || len(points) < 3 {
		return
	}
	if !fill.IsTransparent() {
		b.begin()
		b.z.MoveTo(f32(points[0]))
		for _, p := range points[1:] {
			b.z.LineTo(f32(p))
		}
		b.z.ClosePath()
		b.paint(fill)
	}
	if stroke.IsVisible() {
		b.strokePolygon(points, stroke)
	}
}

// FillCircle fills a circle and strokes its outline.
func (b *Backend) FillCircle(center segdisplay.Point, radius float64, fill segdisplay.RGBA, stroke segdisplay.Stroke) {
	if b.img == nil || radius <= 0 {
		return
	}
	if !fill.IsTransparent() {
		b.begin()
		b.circle(center, radius, false)
		b.paint(fill)
	}
	if stroke.IsVisible() {
		half := stroke.Width / 2
		b.begin()
		b.circle(center, radius+half, false)
		if inner := radius - half; inner > 0 {
			b.circle(center, inner, true)
		}
		b.paint(stroke.Color)
	}
}

// strokePolygon draws each edge as a quad plus a round join per vertex.
// Quads and joins share one path wound the same way, so overlapping pieces
// clamp to full coverage and every pixel is painted once.
func (b *Backend) strokePolygon(points []segdisplay.Point, stroke segdisplay.Stroke) {
	half := stroke.Width / 2
	b.begin()
	for i, a := range points {
		b.circle(a, half, false)

		c := points[(i+1)%len(points)]
		length := a.Distance(c)
		if length == 0 {
			continue
		}
		n := segdisplay.Pt(-(c.Y-a.Y)/length*half, (c.X-a.X)/length*half)
		b.z.MoveTo(f32(a.Add(n)))
		b.z.LineTo(f32(a.Sub(n)))
		b.z.LineTo(f32(c.Sub(n)))
		b.z.LineTo(f32(c.Add(n)))
		b.z.ClosePath()
	}
	b.paint(stroke.Color)
}

// circle appends a closed circle to the current path. reverse flips the
// winding so the circle cuts a hole into an enclosing one.
func (b *Backend) circle(c segdisplay.Point, r float64, reverse bool) {
	k := r * kappa
	dir := 1.0
	if reverse {
		dir = -1
	}
	x, y := float32(c.X), float32(c.Y)
	rx, ry := float32(r), float32(r*dir)
	kx, ky := float32(k), float32(k*dir)

	b.z.MoveTo(x+rx, y)
	b.z.CubeTo(x+rx, y+ky, x+kx, y+ry, x, y+ry)
	b.z.CubeTo(x-kx, y+ry, x-rx, y+ky, x-rx, y)
	b.z.CubeTo(x-rx, y-ky, x-kx, y-ry, x, y-ry)
	b.z.CubeTo(x+kx, y-ry, x+rx, y-ky, x+rx, y)
	b.z.ClosePath()
}

func (b *Backend) begin() {
	bounds := b.img.Bounds()
	b.z.Reset(bounds.Dx(), bounds.Dy())
	b.z.DrawOp = draw.Over
}

func (b *Backend) paint(c segdisplay.RGBA) {
	b.z.Draw(b.img, b.img.Bounds(), image.NewUniform(c), image.Point{})
}

func f32(p segdisplay.Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}

// WriteTo writes the rendered content as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SaveToFile saves the rendered content as PNG to a file.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	n, err := b.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("raster: write %s: %w", path, err)
	}
	segdisplay.Logger().Info("raster: wrote image",
		slog.String("path", path), slog.Int64("bytes", n))
	return nil
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// Width returns the canvas width.
func (b *Backend) Width() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dx()
}

// Height returns the canvas height.
func (b *Backend) Height() int {
	if b.img == nil {
		return 0
	}
	return b.img.Bounds().Dy()
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
