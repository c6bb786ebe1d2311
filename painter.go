package segdisplay

// Painter is the minimal host canvas a display draws to.
//
// AllocateRect reserves space for a widget of the desired size and returns
// the rectangle the widget should occupy; hosts may hand out a larger or
// shifted rectangle. Drawing methods use the same coordinate space.
type Painter interface {
	DrawPolygon(points []Point, fill RGBA, stroke Stroke)
	DrawCircle(center Point, radius float64, fill RGBA, stroke Stroke)
	AllocateRect(desired Size) Rect
}

// Element identifies which part of a display a draw call belongs to.
type Element uint8

const (
	ElementBackground Element = iota
	ElementSegment
	ElementDot
	ElementColon
	ElementApostrophe
)

var elementNames = [...]string{
	ElementBackground: "background",
	ElementSegment:    "segment",
	ElementDot:        "dot",
	ElementColon:      "colon",
	ElementApostrophe: "apostrophe",
}

func (e Element) String() string {
	if int(e) < len(elementNames) {
		return elementNames[e]
	}
	return "unknown"
}

// DrawCall is one primitive emitted by the compositor. The set of
// implementations is closed: PolygonCall and CircleCall.
type DrawCall interface {
	// Emit forwards the call to p.
	Emit(p Painter)
	drawCall()
}

// Part locates a draw call within the row. Digit and Segment are -1 where
// they do not apply.
type Part struct {
	Element Element
	Digit   int
	Segment int
	Active  bool
}

// PolygonCall fills and strokes a closed polygon.
type PolygonCall struct {
	Part
	Points []Point
	Fill   RGBA
	Stroke Stroke
}

// Emit implements DrawCall.
func (c PolygonCall) Emit(p Painter) { p.DrawPolygon(c.Points, c.Fill, c.Stroke) }

func (PolygonCall) drawCall() {}

// CircleCall fills and strokes a circle.
type CircleCall struct {
	Part
	Center Point
	Radius float64
	Fill   RGBA
	Stroke Stroke
}

// Emit implements DrawCall.
func (c CircleCall) Emit(p Painter) { p.DrawCircle(c.Center, c.Radius, c.Fill, c.Stroke) }

func (CircleCall) drawCall() {}
