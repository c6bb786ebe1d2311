// Package segdisplay renders seven, nine and sixteen segment displays.
//
// # Overview
//
// The package turns text into a row of segmented digits and emits the
// polygons and circles that draw them. It does not rasterize anything
// itself: drawing goes through the small [Painter] interface so any canvas
// can host a display. The recording sub-package captures draw calls and
// replays them to raster (PNG) and SVG backends.
//
// # Quick Start
//
//	d := segdisplay.New(segdisplay.SevenSegment,
//	    segdisplay.WithStylePreset(segdisplay.StyleKnightRider),
//	    segdisplay.WithDigitHeight(64),
//	).PushString("12:34.5")
//
//	rec := recording.NewRecorder()
//	d.Paint(rec)
//	r := rec.FinishRecording()
//
// # Pipeline
//
//   - Font tables: sorted rune to [Glyph] bitmask tables, one per [Kind]
//   - [Decompose]: text to [Digit] values; '.' attaches to the digit before
//     it, ':' and '\'' to the digit after it
//   - [Kind.Geometry]: one polygon per segment for absolute dimensions
//   - [Compose]: layout, shear and on/off styling into a [Frame]
//
// Every segment is drawn, lit segments in the "on" style and unlit ones in
// the "off" style, so a display shows the faint ghost of unpowered segments.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left of the painter
//   - X increases right, Y increases down
//   - Segment geometry is digit-local with the digit centre at (0,0)
package segdisplay
