package segdisplay

import (
	"fmt"
	"strings"
)

// Style holds the colors of a display. A Style is a plain value shared by
// all digits of a row.
type Style struct {
	BackgroundColor  RGBA
	SegmentOnColor   RGBA
	SegmentOffColor  RGBA
	SegmentOnStroke  Stroke
	SegmentOffStroke Stroke
}

// SegmentColor returns the fill color for a lit or unlit segment.
func (s Style) SegmentColor(active bool) RGBA {
	if active {
		return s.SegmentOnColor
	}
	return s.SegmentOffColor
}

// SegmentStroke returns the outline for a lit or unlit segment.
func (s Style) SegmentStroke(active bool) Stroke {
	if active {
		return s.SegmentOnStroke
	}
	return s.SegmentOffStroke
}

// StylePreset names a built-in Style value.
type StylePreset uint8

const (
	StyleDefault StylePreset = iota
	StyleCalculator
	StyleNintendoGameBoy
	StyleKnightRider
	StyleBlueNegative
	StyleAmber
	StyleLightBlue
	StyleDeLoreanRed
	StyleDeLoreanGreen
	StyleDeLoreanAmber
	StyleYellow
)

var stylePresetNames = [...]string{
	StyleDefault:         "default",
	StyleCalculator:      "calculator",
	StyleNintendoGameBoy: "nintendo-game-boy",
	StyleKnightRider:     "knight-rider",
	StyleBlueNegative:    "blue-negative",
	StyleAmber:           "amber",
	StyleLightBlue:       "light-blue",
	StyleDeLoreanRed:     "delorean-red",
	StyleDeLoreanGreen:   "delorean-green",
	StyleDeLoreanAmber:   "delorean-amber",
	StyleYellow:          "yellow",
}

// String returns the preset name as accepted by ParseStylePreset.
func (p StylePreset) String() string {
	if int(p) < len(stylePresetNames) {
		return stylePresetNames[p]
	}
	return fmt.Sprintf("StylePreset(%d)", uint8(p))
}

// StylePresets returns all style presets in declaration order.
func StylePresets() []StylePreset {
	presets := make([]StylePreset, len(stylePresetNames))
	for i := range presets {
		presets[i] = StylePreset(i)
	}
	return presets
}

// ParseStylePreset returns the preset with the given name.
func ParseStylePreset(name string) (StylePreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range stylePresetNames {
		if n == name {
			return StylePreset(i), nil
		}
	}
	return 0, fmt.Errorf("%w: style %q", ErrUnknownPreset, name)
}

// flatStyle builds a style without segment outlines.
func flatStyle(background, on, off string) Style {
	return Style{
		BackgroundColor: Hex(background),
		SegmentOnColor:  Hex(on),
		SegmentOffColor: Hex(off),
	}
}

// Style returns a copy of the preset values. Unknown presets yield the
// default style.
func (p StylePreset) Style() Style {
	switch p {
	case StyleCalculator:
		return flatStyle("#c5cbb6", "#000000", "#b9bea9")
	case StyleNintendoGameBoy:
		return flatStyle("#9bbc0f", "#0f380f", "#8bac0f")
	case StyleKnightRider:
		return flatStyle("#100000", "#c80000", "#200000")
	case StyleBlueNegative:
		return flatStyle("#0000ff", "#e0ffff", "#2828ff")
	case StyleAmber:
		return flatStyle("#1f0c00", "#ff9a00", "#300f00")
	case StyleLightBlue:
		return flatStyle("#0f1e30", "#7ecbff", "#17263a")
	case StyleDeLoreanRed:
		return Style{
			BackgroundColor:  Hex("#000000"),
			SegmentOnColor:   Hex("#ff5a47"),
			SegmentOffColor:  Hex("#210404"),
			SegmentOnStroke:  Stroke{Width: 1, Color: Hex("#ff9a8f")},
			SegmentOffStroke: Stroke{Width: 1, Color: Hex("#2b0606")},
		}
	case StyleDeLoreanGreen:
		return Style{
			BackgroundColor:  Hex("#000000"),
			SegmentOnColor:   Hex("#4bff69"),
			SegmentOffColor:  Hex("#0d2112"),
			SegmentOnStroke:  Stroke{Width: 1, Color: Hex("#a3ffb2")},
			SegmentOffStroke: Stroke{Width: 1, Color: Hex("#112b17")},
		}
	case StyleDeLoreanAmber:
		return Style{
			BackgroundColor:  Hex("#000000"),
			SegmentOnColor:   Hex("#ffcb3b"),
			SegmentOffColor:  Hex("#22190a"),
			SegmentOnStroke:  Stroke{Width: 1, Color: Hex("#ffe49b")},
			SegmentOffStroke: Stroke{Width: 1, Color: Hex("#2c210d")},
		}
	case StyleYellow:
		return flatStyle("#383000", "#ffff00", "#4b4100")
	}
	return flatStyle("#001800", "#00ff00", "#002600")
}

// DefaultStyle returns the default style preset.
func DefaultStyle() Style {
	return StyleDefault.Style()
}
