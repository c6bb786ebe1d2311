// Package svg provides an SVG backend for the recording system.
//
// Every polygon becomes a <polygon> element and every circle a <circle>
// element, in playback order. Colors are written as #rrggbb with a
// separate opacity attribute when not fully opaque.
//
//	import _ "github.com/xTibor/segdisplay/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("output.svg")
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/xTibor/segdisplay"
	"github.com/xTibor/segdisplay/recording"
)

// ErrNotFinished is returned by output methods called before End.
var ErrNotFinished = errors.New("svg: document not finished")

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Backend writes recordings as SVG documents.
type Backend struct {
	buf      bytes.Buffer
	width    int
	height   int
	finished bool
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a document of the given size with a background rectangle.
func (b *Backend) Begin(width, height int, background segdisplay.RGBA) error {
	b.buf.Reset()
	b.width, b.height = width, height
	b.finished = false

	fmt.Fprintf(&b.buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	if !background.IsTransparent() {
		fmt.Fprintf(&b.buf, `<rect width="%d" height="%d"%s/>`+"\n", width, height, paintAttrs("fill", background))
	}
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	b.buf.WriteString("</svg>\n")
	b.finished = true
	return nil
}

// FillPolygon writes a <polygon> element.
func (b *Backend) FillPolygon(points []segdisplay.Point, fill segdisplay.RGBA, stroke segdisplay.Stroke) {
	if len(points) < 3 {
		return
	}
	b.buf.WriteString(`<polygon points="`)
	for i, p := range points {
		if i > 0 {
			b.buf.WriteByte(' ')
		}
		b.buf.WriteString(num(p.X))
		b.buf.WriteByte(',')
		b.buf.WriteString(num(p.Y))
	}
	b.buf.WriteByte('"')
	b.buf.WriteString(fillAttrs(fill))
	b.buf.WriteString(strokeAttrs(stroke))
	b.buf.WriteString("/>\n")
}

// FillCircle writes a <circle> element.
func (b *Backend) FillCircle(center segdisplay.Point, radius float64, fill segdisplay.RGBA, stroke segdisplay.Stroke) {
	if radius <= 0 {
		return
	}
	fmt.Fprintf(&b.buf, `<circle cx="%s" cy="%s" r="%s"%s%s/>`+"\n",
		num(center.X), num(center.Y), num(radius), fillAttrs(fill), strokeAttrs(stroke))
}

// WriteTo writes the finished document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.finished {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	if !b.finished {
		return ErrNotFinished
	}
	if err := os.WriteFile(path, b.buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("svg: write %s: %w", path, err)
	}
	segdisplay.Logger().Info("svg: wrote document",
		slog.String("path", path), slog.Int("bytes", b.buf.Len()))
	return nil
}

// String returns the document text so far.
func (b *Backend) String() string {
	return b.buf.String()
}

func fillAttrs(c segdisplay.RGBA) string {
	if c.IsTransparent() {
		return ` fill="none"`
	}
	return paintAttrs("fill", c)
}

func strokeAttrs(s segdisplay.Stroke) string {
	if !s.IsVisible() {
		return ""
	}
	return paintAttrs("stroke", s.Color) + ` stroke-width="` + num(s.Width) + `" stroke-linejoin="round"`
}

// paintAttrs renders a color as an SVG paint attribute plus opacity.
func paintAttrs(attr string, c segdisplay.RGBA) string {
	n := c.NRGBA()
	s := fmt.Sprintf(` %s="#%02x%02x%02x"`, attr, n.R, n.G, n.B)
	if n.A != 0xff {
		s += fmt.Sprintf(` %s-opacity="%s"`, attr, num(float64(n.A)/255))
	}
	return s
}

// num formats a coordinate with at most three decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}
