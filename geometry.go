package segdisplay

// barBox holds half extents and absolute segment proportions for one digit.
// w and h are half the digit width and height, t is the segment thickness,
// s the spacing between neighbouring segments and m the midline y.
type barBox struct {
	w, h, t, s, m float64
}

// hbar is a horizontal bar with pointed ends at x0 and x1, centred on y.
func (b barBox) hbar(x0, x1, y float64) []Point {
	x0, x1, e := b.bevel(x0, x1)
	return []Point{
		{X: x0, Y: y},
		{X: x0 + e, Y: y - e},
		{X: x1 - e, Y: y - e},
		{X: x1, Y: y},
		{X: x1 - e, Y: y + e},
		{X: x0 + e, Y: y + e},
	}
}

// vbar is a vertical bar with pointed ends at y0 and y1, centred on x.
func (b barBox) vbar(x, y0, y1 float64) []Point {
	y0, y1, e := b.bevel(y0, y1)
	return []Point{
		{X: x, Y: y0},
		{X: x + e, Y: y0 + e},
		{X: x + e, Y: y1 - e},
		{X: x, Y: y1},
		{X: x - e, Y: y1 - e},
		{X: x - e, Y: y0 + e},
	}
}

// bevel returns the tip inset of a bar running from lo to hi. A bar shorter
// than its thickness keeps its 45 degree tips and becomes a rhombus; an
// inverted span collapses to its midpoint.
func (b barBox) bevel(lo, hi float64) (float64, float64, float64) {
	if hi < lo {
		mid := (lo + hi) / 2
		return mid, mid, 0
	}
	return lo, hi, min(b.t/2, (hi-lo)/2)
}

// slash is a diagonal quadrilateral inside the hollow box [x0, x1] x
// [y0, y1] with horizontal ends. A falling slash runs from the top left of
// the box to the bottom right, a rising one from the top right to the
// bottom left. Ends are half a thickness wide, narrowed in tight boxes so
// the slash never leaves its box; a box without room collapses it to a
// line.
func (b barBox) slash(x0, x1, y0, y1 float64, falling bool) []Point {
	if x1 < x0 {
		x0 = (x0 + x1) / 2
		x1 = x0
	}
	if y1 < y0 {
		y0 = (y0 + y1) / 2
		y1 = y0
	}
	q := min(b.t/4, (x1-x0)/4)
	top, bottom := x1-q, x0+q
	if falling {
		top, bottom = bottom, top
	}
	return []Point{
		{X: top - q, Y: y0},
		{X: top + q, Y: y0},
		{X: bottom + q, Y: y1},
		{X: bottom - q, Y: y1},
	}
}

// Tip positions shared by all layouts.
func (b barBox) leftTip() float64   { return -b.w + b.t/2 + b.s }
func (b barBox) rightTip() float64  { return b.w - b.t/2 - b.s }
func (b barBox) topTip() float64    { return -b.h + b.t/2 + b.s }
func (b barBox) bottomTip() float64 { return b.h - b.t/2 - b.s }

// Inner hollow bounds, one spacing away from the surrounding bars.
func (b barBox) innerLeft() float64   { return -b.w + b.t + b.s }
func (b barBox) innerRight() float64  { return b.w - b.t - b.s }
func (b barBox) innerTop() float64    { return -b.h + b.t + b.s }
func (b barBox) innerBottom() float64 { return b.h - b.t - b.s }
func (b barBox) upperFloor() float64  { return b.m - b.t/2 - b.s }
func (b barBox) lowerCeil() float64   { return b.m + b.t/2 + b.s }

func (b barBox) sevenSegment() [][]Point {
	ht := b.t / 2
	return [][]Point{
		b.hbar(b.leftTip(), b.rightTip(), -b.h+ht), // A
		b.vbar(b.w-ht, b.topTip(), b.m-b.s),        // B
		b.vbar(b.w-ht, b.m+b.s, b.bottomTip()),     // C
		b.hbar(b.leftTip(), b.rightTip(), b.h-ht),  // D
		b.vbar(-b.w+ht, b.m+b.s, b.bottomTip()),    // E
		b.vbar(-b.w+ht, b.topTip(), b.m-b.s),       // F
		b.hbar(b.leftTip(), b.rightTip(), b.m),     // G
	}
}

func (b barBox) nineSegment() [][]Point {
	qt := b.t / 4
	polys := b.sevenSegment()
	// The boxes reach a quarter thickness past the axis so both diagonals
	// end centred on x = 0.
	return append(polys,
		b.slash(-qt, b.innerRight(), b.innerTop(), b.upperFloor(), false), // H
		b.slash(b.innerLeft(), qt, b.lowerCeil(), b.innerBottom(), false), // I
	)
}

func (b barBox) sixteenSegment() [][]Point {
	ht := b.t / 2
	hs := b.s / 2

	// Inner edges of the hollow boxes beside the centre verticals.
	centerLeft := -ht - b.s
	centerRight := ht + b.s

	return [][]Point{
		b.hbar(b.leftTip(), -hs, -b.h+ht),                                          // A1
		b.hbar(hs, b.rightTip(), -b.h+ht),                                          // A2
		b.vbar(b.w-ht, b.topTip(), b.m-b.s),                                        // B
		b.vbar(b.w-ht, b.m+b.s, b.bottomTip()),                                     // C
		b.hbar(hs, b.rightTip(), b.h-ht),                                           // D2
		b.hbar(b.leftTip(), -hs, b.h-ht),                                           // D1
		b.vbar(-b.w+ht, b.m+b.s, b.bottomTip()),                                    // E
		b.vbar(-b.w+ht, b.topTip(), b.m-b.s),                                       // F
		b.hbar(b.leftTip(), -hs, b.m),                                              // G1
		b.hbar(hs, b.rightTip(), b.m),                                              // G2
		b.slash(b.innerLeft(), centerLeft, b.innerTop(), b.upperFloor(), true),     // H
		b.vbar(0, b.topTip(), b.m-b.s),                                             // I
		b.slash(centerRight, b.innerRight(), b.innerTop(), b.upperFloor(), false),  // J
		b.slash(centerRight, b.innerRight(), b.lowerCeil(), b.innerBottom(), true), // K
		b.vbar(0, b.m+b.s, b.bottomTip()),                                          // L
		b.slash(b.innerLeft(), centerLeft, b.lowerCeil(), b.innerBottom(), false),  // M
	}
}
