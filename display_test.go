package segdisplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	d := New(SevenSegment)

	assert.Equal(t, SevenSegment, d.Kind())
	assert.Equal(t, DefaultMetrics(), d.Metrics())
	assert.Equal(t, DefaultStyle(), d.Style())
	assert.Equal(t, DefaultDigitHeight, d.DigitHeight())
	assert.Equal(t, AllDecorations, d.Decorations())
	assert.Zero(t, d.Len())
}

func TestDisplayOptions(t *testing.T) {
	d := New(SixteenSegment,
		WithMetricsPreset(MetricsKnightRider),
		WithStylePreset(StyleKnightRider),
		WithDigitHeight(64),
		WithDecorations(Decorations{}),
		WithColons(true),
	)

	assert.Equal(t, MetricsKnightRider.Metrics(), d.Metrics())
	assert.Equal(t, StyleKnightRider.Style(), d.Style())
	assert.Equal(t, 64.0, d.DigitHeight())
	assert.Equal(t, Decorations{Colons: true}, d.Decorations())
	assert.InDelta(t, 64*MetricsKnightRider.Metrics().DigitRatio, d.Resolved().DigitWidth, 1e-9)

	custom := Metrics{SegmentThickness: 0.05, DigitRatio: 1}
	assert.Equal(t, custom, New(NineSegment, WithMetrics(custom)).Metrics())

	style := Style{SegmentOnColor: White}
	assert.Equal(t, style, New(NineSegment, WithStyle(style)).Style())

	nd := New(SevenSegment, WithDots(false), WithApostrophes(false))
	assert.Equal(t, Decorations{Colons: true}, nd.Decorations())
}

func TestDisplayBuilder(t *testing.T) {
	d := New(SevenSegment).
		PushString("12:3").
		PushDigit(Digit{Glyph: sevenG, Dot: true}).
		PushGlyph(sevenA).
		PushDigits(Digit{}, Digit{Colon: true})

	require.Equal(t, 7, d.Len())
	digits := d.Digits()
	assert.True(t, digits[2].Colon)
	assert.True(t, digits[3].Dot)
	assert.Equal(t, Digit{Glyph: sevenA}, digits[4])

	// Digits returns a copy.
	digits[0].Dot = true
	assert.False(t, d.Digits()[0].Dot)

	d.Reset()
	assert.Zero(t, d.Len())
	assert.InDelta(t, DesiredSize(0, d.Resolved()).W, d.DesiredSize().W, 1e-9)
}

func TestDisplayWidthFolding(t *testing.T) {
	plain := New(SevenSegment).PushString("１２：３４")
	assert.Zero(t, plain.Len(), "full-width characters have no glyph")

	folded := New(SevenSegment, WithWidthFolding()).PushString("１２：３４")
	require.Equal(t, 4, folded.Len())
	assert.True(t, folded.Digits()[2].Colon)
}

func TestDisplayPaint(t *testing.T) {
	d := New(SevenSegment, WithDigitHeight(40)).PushString("8.8")
	p := &fakePainter{origin: Pt(10, 20)}

	rect := d.Paint(p)

	require.Len(t, p.desired, 1)
	assert.Equal(t, d.DesiredSize(), p.desired[0])
	assert.Equal(t, Pt(10, 20), rect.Min)

	// background + 2 * (7 segments + apostrophe); 2 * (dot + 2 colon dots)
	assert.Len(t, p.polygons, 1+2*8)
	assert.Len(t, p.circles, 2*3)
	assert.Equal(t, rect.Corners()[0], p.polygons[0][0])
}

func TestDisplayLayoutWithoutCache(t *testing.T) {
	digits := "1234"
	cached := New(NineSegment).PushString(digits).Layout(Pt(0, 30))
	uncached := New(NineSegment, WithGeometryCache(nil)).PushString(digits).Layout(Pt(0, 30))
	assert.Equal(t, cached, uncached)
}

func BenchmarkDisplayPaint(b *testing.B) {
	d := New(SixteenSegment).PushString("HELLO:WORLD.")
	p := &fakePainter{}
	for i := 0; i < b.N; i++ {
		p.polygons, p.circles, p.fills, p.desired = p.polygons[:0], p.circles[:0], p.fills[:0], p.desired[:0]
		d.Paint(p)
	}
}
