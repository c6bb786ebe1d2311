package segdisplay

// Option configures a Display during creation.
//
// Example:
//
//	d := segdisplay.New(segdisplay.SixteenSegment,
//	    segdisplay.WithStylePreset(segdisplay.StyleAmber),
//	    segdisplay.WithDigitHeight(64),
//	)
type Option func(*displayOptions)

// DefaultDigitHeight is the digit height used when none is configured.
const DefaultDigitHeight = 48.0

type displayOptions struct {
	metrics     Metrics
	style       Style
	digitHeight float64
	decorations Decorations
	foldWidth   bool
	geometry    *GeometryCache
}

func defaultOptions() displayOptions {
	return displayOptions{
		metrics:     DefaultMetrics(),
		style:       DefaultStyle(),
		digitHeight: DefaultDigitHeight,
		decorations: AllDecorations,
		geometry:    sharedGeometry,
	}
}

// WithMetrics sets explicit metrics.
func WithMetrics(m Metrics) Option {
	return func(o *displayOptions) {
		o.metrics = m
	}
}

// WithMetricsPreset copies the metrics of a named preset.
func WithMetricsPreset(p MetricsPreset) Option {
	return func(o *displayOptions) {
		o.metrics = p.Metrics()
	}
}

// WithStyle sets explicit colors.
func WithStyle(s Style) Option {
	return func(o *displayOptions) {
		o.style = s
	}
}

// WithStylePreset copies the colors of a named preset.
func WithStylePreset(p StylePreset) Option {
	return func(o *displayOptions) {
		o.style = p.Style()
	}
}

// WithDigitHeight sets the absolute digit height that all metrics ratios
// resolve against.
func WithDigitHeight(h float64) Option {
	return func(o *displayOptions) {
		o.digitHeight = h
	}
}

// WithDecorations sets all decoration toggles at once.
func WithDecorations(d Decorations) Option {
	return func(o *displayOptions) {
		o.decorations = d
	}
}

// WithDots toggles the trailing decimal dot.
func WithDots(show bool) Option {
	return func(o *displayOptions) {
		o.decorations.Dots = show
	}
}

// WithColons toggles the leading colon.
func WithColons(show bool) Option {
	return func(o *displayOptions) {
		o.decorations.Colons = show
	}
}

// WithApostrophes toggles the leading apostrophe.
func WithApostrophes(show bool) Option {
	return func(o *displayOptions) {
		o.decorations.Apostrophes = show
	}
}

// WithWidthFolding makes PushString fold full-width characters to their
// narrow forms before decomposition.
func WithWidthFolding() Option {
	return func(o *displayOptions) {
		o.foldWidth = true
	}
}

// WithGeometryCache sets the geometry cache. Pass nil to recompute geometry
// on every layout.
func WithGeometryCache(c *GeometryCache) Option {
	return func(o *displayOptions) {
		o.geometry = c
	}
}
