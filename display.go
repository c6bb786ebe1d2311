package segdisplay

import (
	"log/slog"
	"slices"
)

// Display is a row of segmented digits together with its configuration.
//
// Configuration is fixed by New; digits are appended with the Push methods
// and discarded with Reset. A Display is not safe for concurrent
// modification, but Layout and Paint do not modify it.
//
// Example:
//
//	d := segdisplay.New(segdisplay.SevenSegment).PushString("12:34")
//	d.Paint(painter)
type Display struct {
	kind   Kind
	opts   displayOptions
	digits []Digit
}

// New creates an empty display of the given kind.
func New(kind Kind, opts ...Option) *Display {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Display{kind: kind, opts: o}
}

// PushString decomposes s with the display's font table and decorations
// and appends the resulting digits.
func (d *Display) PushString(s string) *Display {
	if d.opts.foldWidth {
		s = FoldWidth(s)
	}
	d.digits = append(d.digits, Decompose(s, d.kind.fontTable(), d.opts.decorations)...)
	return d
}

// PushDigit appends one digit, bypassing text decomposition.
func (d *Display) PushDigit(digit Digit) *Display {
	d.digits = append(d.digits, digit)
	return d
}

// PushDigits appends digits in order.
func (d *Display) PushDigits(digits ...Digit) *Display {
	d.digits = append(d.digits, digits...)
	return d
}

// PushGlyph appends a bare glyph without decorations.
func (d *Display) PushGlyph(g Glyph) *Display {
	return d.PushDigit(Digit{Glyph: g})
}

// Reset discards all digits.
func (d *Display) Reset() *Display {
	d.digits = d.digits[:0]
	return d
}

// Digits returns a copy of the current digits.
func (d *Display) Digits() []Digit {
	return slices.Clone(d.digits)
}

// Len returns the number of digits.
func (d *Display) Len() int {
	return len(d.digits)
}

// Kind returns the display kind.
func (d *Display) Kind() Kind { return d.kind }

// Metrics returns the display metrics.
func (d *Display) Metrics() Metrics { return d.opts.metrics }

// Style returns the display colors.
func (d *Display) Style() Style { return d.opts.style }

// DigitHeight returns the absolute digit height.
func (d *Display) DigitHeight() float64 { return d.opts.digitHeight }

// Decorations returns the decoration toggles.
func (d *Display) Decorations() Decorations { return d.opts.decorations }

// Resolved returns the metrics resolved against the digit height.
func (d *Display) Resolved() ResolvedMetrics {
	return d.opts.metrics.Resolve(d.opts.digitHeight)
}

// DesiredSize returns the size the display asks of its host.
func (d *Display) DesiredSize() Size {
	return DesiredSize(len(d.digits), d.Resolved())
}

// Layout composes the row with its left edge midpoint at leftCenter.
func (d *Display) Layout(leftCenter Point) Frame {
	return compose(d.digits, d.kind, d.Resolved(), d.opts.style, d.opts.decorations, leftCenter, d.opts.geometry)
}

// Paint allocates space from p, composes the row at the left centre of the
// allocated rectangle and emits it. The allocated rectangle is returned.
func (d *Display) Paint(p Painter) Rect {
	rect := p.AllocateRect(d.DesiredSize())
	frame := d.Layout(rect.LeftCenter())

	Logger().Debug("segdisplay: paint",
		slog.String("kind", d.kind.String()),
		slog.Int("digits", len(d.digits)),
		slog.Int("calls", len(frame.Calls)))

	frame.Emit(p)
	return rect
}
