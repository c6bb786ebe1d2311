package segdisplay

import (
	"errors"
	"fmt"
	"strings"
)

// Metrics holds the size-relative proportions of a display.
//
// Vertical ratios are relative to the digit height, horizontal ratios to
// the digit width. DigitMedian and ColonSeparation are relative to half the
// digit height. Values are not validated: negative thickness or a zero
// DigitRatio give undefined geometry.
type Metrics struct {
	// SegmentThickness is the bar thickness relative to digit height.
	SegmentThickness float64
	// SegmentSpacing is the gap between neighbouring segments relative to
	// digit height.
	SegmentSpacing float64
	// DigitRatio is the digit width divided by its height.
	DigitRatio float64
	// DigitShearing is the italic slant relative to digit width.
	DigitShearing float64
	// DigitSpacing is the gap between digits relative to digit width.
	DigitSpacing float64
	// DigitMedian moves the midline relative to half the digit height.
	// Negative values move it up.
	DigitMedian float64
	// MarginHorizontal is the left and right padding relative to digit width.
	MarginHorizontal float64
	// MarginVertical is the top and bottom padding relative to digit height.
	MarginVertical float64
	// ColonSeparation is the distance of each colon dot from the midline
	// relative to half the digit height.
	ColonSeparation float64
}

// ResolvedMetrics holds absolute dimensions for one digit height.
type ResolvedMetrics struct {
	DigitHeight      float64
	DigitWidth       float64
	SegmentThickness float64
	SegmentSpacing   float64
	DigitShearing    float64
	DigitSpacing     float64
	DigitMedian      float64
	MarginHorizontal float64
	MarginVertical   float64
	ColonSeparation  float64
}

// Resolve converts the ratios to absolute units for the given digit height.
func (m Metrics) Resolve(digitHeight float64) ResolvedMetrics {
	digitWidth := digitHeight * m.DigitRatio
	return ResolvedMetrics{
		DigitHeight:      digitHeight,
		DigitWidth:       digitWidth,
		SegmentThickness: m.SegmentThickness * digitHeight,
		SegmentSpacing:   m.SegmentSpacing * digitHeight,
		DigitShearing:    m.DigitShearing * digitWidth,
		DigitSpacing:     m.DigitSpacing * digitWidth,
		DigitMedian:      m.DigitMedian * (digitHeight / 2),
		MarginHorizontal: m.MarginHorizontal * digitWidth,
		MarginVertical:   m.MarginVertical * digitHeight,
		ColonSeparation:  m.ColonSeparation * (digitHeight / 2),
	}
}

// MetricsPreset names a built-in Metrics value.
type MetricsPreset uint8

const (
	MetricsDefault MetricsPreset = iota
	MetricsKnightRider
	MetricsWide
	MetricsCalculator
)

// ErrUnknownPreset is returned when a metrics or style preset name is not
// recognised.
var ErrUnknownPreset = errors.New("segdisplay: unknown preset")

var metricsPresetNames = [...]string{
	MetricsDefault:     "default",
	MetricsKnightRider: "knight-rider",
	MetricsWide:        "wide",
	MetricsCalculator:  "calculator",
}

// String returns the preset name as accepted by ParseMetricsPreset.
func (p MetricsPreset) String() string {
	if int(p) < len(metricsPresetNames) {
		return metricsPresetNames[p]
	}
	return fmt.Sprintf("MetricsPreset(%d)", uint8(p))
}

// MetricsPresets returns all metrics presets in declaration order.
func MetricsPresets() []MetricsPreset {
	return []MetricsPreset{MetricsDefault, MetricsKnightRider, MetricsWide, MetricsCalculator}
}

// ParseMetricsPreset returns the preset with the given name.
func ParseMetricsPreset(name string) (MetricsPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range metricsPresetNames {
		if n == name {
			return MetricsPreset(i), nil
		}
	}
	return 0, fmt.Errorf("%w: metrics %q", ErrUnknownPreset, name)
}

// Metrics returns a copy of the preset values. Unknown presets yield the
// default metrics.
func (p MetricsPreset) Metrics() Metrics {
	switch p {
	case MetricsKnightRider:
		return Metrics{
			SegmentThickness: 0.2,
			SegmentSpacing:   0.01,
			DigitRatio:       0.6,
			DigitShearing:    0.0,
			DigitSpacing:     0.4,
			DigitMedian:      0.0,
			MarginHorizontal: 0.4,
			MarginVertical:   0.2,
			ColonSeparation:  0.3,
		}
	case MetricsWide:
		return Metrics{
			SegmentThickness: 0.12,
			SegmentSpacing:   0.015,
			DigitRatio:       1.0,
			DigitShearing:    0.05,
			DigitSpacing:     0.25,
			DigitMedian:      0.0,
			MarginHorizontal: 0.2,
			MarginVertical:   0.1,
			ColonSeparation:  0.25,
		}
	case MetricsCalculator:
		return Metrics{
			SegmentThickness: 0.08,
			SegmentSpacing:   0.015,
			DigitRatio:       0.55,
			DigitShearing:    0.08,
			DigitSpacing:     0.3,
			DigitMedian:      -0.04,
			MarginHorizontal: 0.25,
			MarginVertical:   0.15,
			ColonSeparation:  0.3,
		}
	}
	return Metrics{
		SegmentThickness: 0.1,
		SegmentSpacing:   0.02,
		DigitRatio:       0.6,
		DigitShearing:    0.1,
		DigitSpacing:     0.35,
		DigitMedian:      -0.05,
		MarginHorizontal: 0.3,
		MarginVertical:   0.1,
		ColonSeparation:  0.25,
	}
}

// DefaultMetrics returns the default metrics preset.
func DefaultMetrics() Metrics {
	return MetricsDefault.Metrics()
}
