package types

import "strings"

// Window is an X11 window identifier
type Window uint32

// Color is a resolved colormap pixel value
type Color uint32

// EventMask is a set of X11 event selection bits.
// Values match the X11 core protocol encoding.
type EventMask uint32

const (
	MaskEnterWindow        EventMask = 1 << 4
	MaskStructureNotify    EventMask = 1 << 17
	MaskSubstructureNotify EventMask = 1 << 19
	MaskFocusChange        EventMask = 1 << 21
)

// LeafEventMask is selected on every managed window
const LeafEventMask = MaskFocusChange | MaskEnterWindow

// RootEventMask is selected on the root window. StructureNotify reports
// the root itself being resized.
const RootEventMask = MaskStructureNotify | MaskSubstructureNotify

// Orientation is the axis along which a branch lays out its children
type Orientation int

const (
	Horizontal Orientation = iota // Children side by side, split along X
	Vertical                      // Children stacked, split along Y
)

// Orthogonal returns the other orientation
func (o Orientation) Orthogonal() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns the string representation of an Orientation
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// OrientationFor picks the root orientation for a display: Horizontal
// when the display is at least as wide as it is tall.
func OrientationFor(width, height int) Orientation {
	if width >= height {
		return Horizontal
	}
	return Vertical
}

// Order selects which side of a reference node an operation places a node on
type Order int

const (
	Forward  Order = iota // After the reference
	Backward              // Before the reference
)

// String returns the string representation of an Order
func (o Order) String() string {
	switch o {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Rect represents pixel bounds on screen
type Rect struct {
	X      int // Left edge
	Y      int // Top edge
	Width  int
	Height int
}

// Point represents a 2D coordinate
type Point struct {
	X int
	Y int
}

// Inset shrinks the rect by n on every side. Extents never go negative.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X:      r.X + n,
		Y:      r.Y + n,
		Width:  max(r.Width-2*n, 0),
		Height: max(r.Height-2*n, 0),
	}
}

// Outset grows the rect by n on every side
func (r Rect) Outset(n int) Rect {
	return r.Inset(-n)
}

// Extent returns the size of the rect along an orientation's split axis
func (r Rect) Extent(o Orientation) int {
	if o == Horizontal {
		return r.Width
	}
	return r.Height
}

// Direction represents navigation direction
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Axis returns the orientation a branch must have for d to move within it.
// Left/right travel between the children of horizontal branches.
func (d Direction) Axis() Orientation {
	if d == DirLeft || d == DirRight {
		return Horizontal
	}
	return Vertical
}

// Order returns Backward for left/up and Forward for right/down
func (d Direction) Order() Order {
	if d == DirLeft || d == DirUp {
		return Backward
	}
	return Forward
}

// ParseDirection converts a string to Direction
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	default:
		return 0, false
	}
}

// Command names an action a key binding can trigger
type Command string

const (
	CmdExit       Command = "exit"
	CmdRefresh    Command = "refresh"
	CmdClose      Command = "close"
	CmdFocusLeft  Command = "focus-left"
	CmdFocusRight Command = "focus-right"
	CmdFocusUp    Command = "focus-up"
	CmdFocusDown  Command = "focus-down"
	CmdMoveLeft   Command = "move-left"
	CmdMoveRight  Command = "move-right"
	CmdMoveUp     Command = "move-up"
	CmdMoveDown   Command = "move-down"
)

// Commands lists every command in display order
var Commands = []Command{
	CmdExit, CmdRefresh, CmdClose,
	CmdFocusLeft, CmdFocusRight, CmdFocusUp, CmdFocusDown,
	CmdMoveLeft, CmdMoveRight, CmdMoveUp, CmdMoveDown,
}

// Valid reports whether c is a known command
func (c Command) Valid() bool {
	for _, k := range Commands {
		if c == k {
			return true
		}
	}
	return false
}

// Direction returns the direction a focus or move command acts in
func (c Command) Direction() (Direction, bool) {
	for _, prefix := range []string{"focus-", "move-"} {
		if rest, ok := strings.CutPrefix(string(c), prefix); ok {
			return ParseDirection(rest)
		}
	}
	return 0, false
}
