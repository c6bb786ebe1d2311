package segdisplay

import (
	"fmt"
	"math/bits"
	"slices"
)

// Glyph is a segment activation bitmask. Bit i set means segment i is lit.
// The meaning of each bit is fixed by the Kind the glyph belongs to.
type Glyph uint16

// Has reports whether segment i is lit.
func (g Glyph) Has(segment int) bool {
	return segment >= 0 && segment < 16 && g&(1<<segment) != 0
}

// Count returns the number of lit segments.
func (g Glyph) Count() int {
	return bits.OnesCount16(uint16(g))
}

// GlyphEntry maps one character to its glyph.
type GlyphEntry struct {
	Char  rune
	Glyph Glyph
}

// FontTable is a character to glyph mapping sorted strictly ascending by
// character. Kind.FontTable hands out copies of the built-in tables.
type FontTable []GlyphEntry

// Lookup returns the glyph for c using binary search.
func (t FontTable) Lookup(c rune) (Glyph, bool) {
	i, found := slices.BinarySearchFunc(t, c, func(e GlyphEntry, c rune) int {
		return int(e.Char) - int(c)
	})
	if !found {
		return 0, false
	}
	return t[i].Glyph, true
}

// Sorted reports whether the table keys are strictly increasing.
func (t FontTable) Sorted() bool {
	for i := 1; i < len(t); i++ {
		if t[i-1].Char >= t[i].Char {
			return false
		}
	}
	return true
}

// Chars returns the characters the table defines, in table order.
func (t FontTable) Chars() []rune {
	chars := make([]rune, len(t))
	for i, e := range t {
		chars[i] = e.Char
	}
	return chars
}

// mustBeSorted panics when a compiled-in table violates the sort order or
// lights segments the kind does not have.
func mustBeSorted(name string, t FontTable, segments int) {
	for i := 1; i < len(t); i++ {
		if t[i-1].Char >= t[i].Char {
			panic(fmt.Sprintf("segdisplay: %s font table not sorted at %q >= %q",
				name, t[i-1].Char, t[i].Char))
		}
	}
	limit := Glyph(1<<segments - 1)
	for _, e := range t {
		if e.Glyph&^limit != 0 {
			panic(fmt.Sprintf("segdisplay: %s glyph for %q uses segments beyond %d",
				name, e.Char, segments))
		}
	}
}
