package segdisplay

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind selects the segment layout of a display.
// The set of kinds is closed; every switch over Kind is exhaustive.
type Kind uint8

const (
	// SevenSegment is the classic calculator digit.
	SevenSegment Kind = iota
	// NineSegment adds two centre diagonals to the seven segment layout.
	NineSegment
	// SixteenSegment is the alphanumeric "starburst" layout.
	SixteenSegment
)

// ErrUnknownKind is returned by ParseKind for unrecognised names.
var ErrUnknownKind = errors.New("segdisplay: unknown display kind")

var kindNames = [...]string{
	SevenSegment:   "seven-segment",
	NineSegment:    "nine-segment",
	SixteenSegment: "sixteen-segment",
}

func init() {
	mustBeSorted("seven segment", sevenSegmentFont, SevenSegment.SegmentCount())
	mustBeSorted("nine segment", nineSegmentFont, NineSegment.SegmentCount())
	mustBeSorted("sixteen segment", sixteenSegmentFont, SixteenSegment.SegmentCount())
}

// Kinds returns all display kinds in declaration order.
func Kinds() []Kind {
	return []Kind{SevenSegment, NineSegment, SixteenSegment}
}

// String returns the kind name as accepted by ParseKind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the kind with the given name. Both the String form and
// the bare number ("7", "9", "16") are accepted, case-insensitively.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "seven-segment", "seven", "7":
		return SevenSegment, nil
	case "nine-segment", "nine", "9":
		return NineSegment, nil
	case "sixteen-segment", "sixteen", "16":
		return SixteenSegment, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// SegmentCount returns the number of segments per digit.
func (k Kind) SegmentCount() int {
	switch k {
	case SevenSegment:
		return 7
	case NineSegment:
		return 9
	case SixteenSegment:
		return 16
	}
	panic(fmt.Sprintf("segdisplay: invalid kind %d", uint8(k)))
}

// FontTable returns a copy of the kind's font table. Modifying the copy
// does not affect lookups.
func (k Kind) FontTable() FontTable {
	return slices.Clone(k.fontTable())
}

// fontTable returns the shared static table. It must not be modified.
func (k Kind) fontTable() FontTable {
	switch k {
	case SevenSegment:
		return sevenSegmentFont
	case NineSegment:
		return nineSegmentFont
	case SixteenSegment:
		return sixteenSegmentFont
	}
	panic(fmt.Sprintf("segdisplay: invalid kind %d", uint8(k)))
}

// Glyph looks up the glyph for c in the kind's font table.
func (k Kind) Glyph(c rune) (Glyph, bool) {
	return k.fontTable().Lookup(c)
}

// Geometry returns one polygon per segment, index-aligned with the glyph
// bit layout. Points are digit-local: the digit centre is the origin and
// y grows downwards. digitMedian is the absolute y offset of the midline.
//
// Neighbouring segments never overlap. Bars too short for their thickness
// shrink to rhombi and diagonals narrow to fit their hollow box, down to a
// zero-area line when the box has no room. The outer bars only stay apart
// from the centre verticals of a sixteen segment digit while digitWidth is
// at least three thicknesses. Thickness and spacing are expected in
// [0, digitHeight/2); other inputs produce undefined (but finite) shapes.
func (k Kind) Geometry(digitWidth, digitHeight, segmentThickness, segmentSpacing, digitMedian float64) [][]Point {
	b := barBox{
		w: digitWidth / 2,
		h: digitHeight / 2,
		t: segmentThickness,
		s: segmentSpacing,
		m: digitMedian,
	}

	var polys [][]Point
	switch k {
	case SevenSegment:
		polys = b.sevenSegment()
	case NineSegment:
		polys = b.nineSegment()
	case SixteenSegment:
		polys = b.sixteenSegment()
	default:
		panic(fmt.Sprintf("segdisplay: invalid kind %d", uint8(k)))
	}

	if len(polys) != k.SegmentCount() {
		panic(fmt.Sprintf("segdisplay: %v geometry has %d segments, want %d",
			k, len(polys), k.SegmentCount()))
	}
	return polys
}
