package recording

import "github.com/xTibor/segdisplay"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdAllocate CommandType = iota // Reserve a widget rectangle
	CmdPolygon                     // Fill and stroke a polygon
	CmdCircle                      // Fill and stroke a circle
)

var commandTypeNames = [...]string{
	CmdAllocate: "Allocate",
	CmdPolygon:  "Polygon",
	CmdCircle:   "Circle",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// AllocateCommand records a rectangle handed out by AllocateRect.
// Backends do not draw it.
type AllocateCommand struct {
	Desired segdisplay.Size
	Rect    segdisplay.Rect
}

// Type implements Command.
func (AllocateCommand) Type() CommandType { return CmdAllocate }

// PolygonCommand fills a closed polygon and strokes its outline.
type PolygonCommand struct {
	Points []segdisplay.Point
	Fill   segdisplay.RGBA
	Stroke segdisplay.Stroke
}

// Type implements Command.
func (PolygonCommand) Type() CommandType { return CmdPolygon }

// Bounds returns the bounding rectangle of the polygon points.
func (c PolygonCommand) Bounds() segdisplay.Rect {
	if len(c.Points) == 0 {
		return segdisplay.Rect{}
	}
	r := segdisplay.Rect{Min: c.Points[0], Max: c.Points[0]}
	for _, p := range c.Points[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// CircleCommand fills a circle and strokes its outline.
type CircleCommand struct {
	Center segdisplay.Point
	Radius float64
	Fill   segdisplay.RGBA
	Stroke segdisplay.Stroke
}

// Type implements Command.
func (CircleCommand) Type() CommandType { return CmdCircle }
