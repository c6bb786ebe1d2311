package segdisplay

import "math"

// Frame is the output of one layout pass: the desired widget size and the
// draw calls in painting order. Background is painted before Calls.
type Frame struct {
	Rect       Rect
	Background PolygonCall
	Calls      []DrawCall
}

// Size returns the desired size of the row.
func (f Frame) Size() Size {
	return f.Rect.Size()
}

// Emit replays the frame onto p.
func (f Frame) Emit(p Painter) {
	f.Background.Emit(p)
	for _, c := range f.Calls {
		c.Emit(p)
	}
}

// DesiredSize returns the size needed for n digits. The horizontal
// allowance of twice the shear keeps slanted edge digits unclipped.
func DesiredSize(n int, r ResolvedMetrics) Size {
	shear := math.Abs(r.DigitShearing)
	gaps := max(n-1, 0)
	return Size{
		W: r.DigitWidth*float64(n) + r.DigitSpacing*float64(gaps) + 2*r.MarginHorizontal + 2*shear,
		H: r.DigitHeight + 2*r.MarginVertical,
	}
}

// ShearPoint slants a digit-local point. Points further from the
// horizontal centre line move further sideways; with shear 0 it is the
// identity.
func ShearPoint(p Point, shear, digitHeight float64) Point {
	if shear == 0 {
		return p
	}
	return Point{X: p.X - shear*(p.Y/(digitHeight/2)), Y: p.Y}
}

// DigitCenter returns the centre of digit i for a row whose left edge
// midpoint is leftCenter.
func DigitCenter(i int, r ResolvedMetrics, leftCenter Point) Point {
	x := r.MarginHorizontal + math.Abs(r.DigitShearing) +
		float64(i)*(r.DigitWidth+r.DigitSpacing) + r.DigitWidth/2
	return leftCenter.Add(Point{X: x})
}

// DotCenter returns the digit-local centre of the trailing dot.
func DotCenter(r ResolvedMetrics) Point {
	return Point{
		X: r.DigitWidth/2 + r.DigitSpacing/2,
		Y: r.DigitHeight/2 - r.SegmentThickness/2,
	}
}

// ColonCenters returns the digit-local centres of the leading colon dots,
// upper first.
func ColonCenters(r ResolvedMetrics) (upper, lower Point) {
	x := -r.DigitWidth/2 - r.DigitSpacing/2
	return Point{X: x, Y: r.DigitMedian - r.ColonSeparation},
		Point{X: x, Y: r.DigitMedian + r.ColonSeparation}
}

// ApostropheTriangle returns the digit-local outline of the leading
// apostrophe mark.
func ApostropheTriangle(r ResolvedMetrics) []Point {
	x := -r.DigitWidth/2 - r.DigitSpacing/2
	top := -r.DigitHeight / 2
	t := r.SegmentThickness
	return []Point{
		{X: x - t/2, Y: top},
		{X: x + t/2, Y: top},
		{X: x - t/4, Y: top + 2*t},
	}
}

// Compose lays out digits and returns the draw calls for the row. The row
// is placed so that the left edge midpoint of its rectangle is leftCenter.
// Compose is pure and never fails; geometry is not cached.
func Compose(digits []Digit, kind Kind, metrics Metrics, style Style, digitHeight float64, flags Decorations, leftCenter Point) Frame {
	return compose(digits, kind, metrics.Resolve(digitHeight), style, flags, leftCenter, nil)
}

func compose(digits []Digit, kind Kind, r ResolvedMetrics, style Style, flags Decorations, leftCenter Point, gc *GeometryCache) Frame {
	size := DesiredSize(len(digits), r)
	rect := RectFromSize(Point{X: leftCenter.X, Y: leftCenter.Y - size.H/2}, size)

	frame := Frame{
		Rect: rect,
		Background: PolygonCall{
			Part:   Part{Element: ElementBackground, Digit: -1, Segment: -1},
			Points: rect.Corners(),
			Fill:   style.BackgroundColor,
		},
	}

	perDigit := kind.SegmentCount()
	if flags.Dots {
		perDigit++
	}
	if flags.Colons {
		perDigit += 2
	}
	if flags.Apostrophes {
		perDigit++
	}
	frame.Calls = make([]DrawCall, 0, perDigit*len(digits))

	geometry := gc.geometryFor(kind, r)
	shear := r.DigitShearing
	height := r.DigitHeight
	radius := r.SegmentThickness / 2

	place := func(center, p Point) Point {
		return center.Add(ShearPoint(p, shear, height))
	}

	for i, digit := range digits {
		center := DigitCenter(i, r, leftCenter)

		for seg, poly := range geometry {
			active := digit.Glyph.Has(seg)
			points := make([]Point, len(poly))
			for j, p := range poly {
				points[j] = place(center, p)
			}
			frame.Calls = append(frame.Calls, PolygonCall{
				Part:   Part{Element: ElementSegment, Digit: i, Segment: seg, Active: active},
				Points: points,
				Fill:   style.SegmentColor(active),
				Stroke: style.SegmentStroke(active),
			})
		}

		if flags.Dots {
			frame.Calls = append(frame.Calls, CircleCall{
				Part:   Part{Element: ElementDot, Digit: i, Segment: -1, Active: digit.Dot},
				Center: place(center, DotCenter(r)),
				Radius: radius,
				Fill:   style.SegmentColor(digit.Dot),
				Stroke: style.SegmentStroke(digit.Dot),
			})
		}

		if flags.Colons {
			upper, lower := ColonCenters(r)
			for _, c := range [2]Point{upper, lower} {
				frame.Calls = append(frame.Calls, CircleCall{
					Part:   Part{Element: ElementColon, Digit: i, Segment: -1, Active: digit.Colon},
					Center: place(center, c),
					Radius: radius,
					Fill:   style.SegmentColor(digit.Colon),
					Stroke: style.SegmentStroke(digit.Colon),
				})
			}
		}

		if flags.Apostrophes {
			tri := ApostropheTriangle(r)
			for j, p := range tri {
				tri[j] = place(center, p)
			}
			frame.Calls = append(frame.Calls, PolygonCall{
				Part:   Part{Element: ElementApostrophe, Digit: i, Segment: -1, Active: digit.Apostrophe},
				Points: tri,
				Fill:   style.SegmentColor(digit.Apostrophe),
				Stroke: style.SegmentStroke(digit.Apostrophe),
			})
		}
	}

	return frame
}
