package segdisplay

import (
	"log/slog"

	"golang.org/x/text/width"
)

// Digit is one rendered unit: a glyph plus its attached decorations.
type Digit struct {
	Glyph      Glyph
	Dot        bool
	Colon      bool
	Apostrophe bool
}

// Decorations toggles the dot, colon and apostrophe marks of a row.
type Decorations struct {
	Dots        bool
	Colons      bool
	Apostrophes bool
}

// AllDecorations enables every decoration.
var AllDecorations = Decorations{Dots: true, Colons: true, Apostrophes: true}

// Decompose splits text into digits using the given font table.
//
// With the matching flag enabled, '.', ':' and '\'' never produce a digit of
// their own. A period lights the dot of the digit before it; a colon or
// apostrophe lights the mark of the digit after it. Characters without a
// glyph are dropped.
func Decompose(text string, table FontTable, flags Decorations) []Digit {
	runes := []rune(text)
	digits := make([]Digit, 0, len(runes))
	log := Logger()

	for i, curr := range runes {
		if isModifier(curr, flags) {
			continue
		}

		glyph, ok := table.Lookup(curr)
		if !ok {
			log.Debug("segdisplay: dropped character without glyph",
				slog.String("char", string(curr)), slog.Int("index", i))
			continue
		}

		var prev, next rune
		if i > 0 {
			prev = runes[i-1]
		}
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		digits = append(digits, Digit{
			Glyph:      glyph,
			Dot:        flags.Dots && next == '.',
			Colon:      flags.Colons && prev == ':',
			Apostrophe: flags.Apostrophes && prev == '\'',
		})
	}
	return digits
}

func isModifier(c rune, flags Decorations) bool {
	switch c {
	case '.':
		return flags.Dots
	case ':':
		return flags.Colons
	case '\'':
		return flags.Apostrophes
	}
	return false
}

// FoldWidth maps full-width and half-width compatibility forms to their
// canonical forms, so "１２：３４" becomes "12:34".
func FoldWidth(text string) string {
	return width.Fold.String(text)
}
