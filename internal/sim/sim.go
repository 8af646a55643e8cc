// Package sim provides an in-memory display connection. It records every
// request so tests can assert on them, and lets the preview command run the
// window manager without an X server.
package sim

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/types"
)

// ErrBadWindow is returned for requests on windows marked gone
var ErrBadWindow = errors.New("bad window")

// Call is one recorded request
type Call struct {
	Op     string
	Window types.Window
	Rect   types.Rect
	Color  types.Color
	Value  uint32
}

func (c Call) String() string {
	switch c.Op {
	case "move-resize":
		return fmt.Sprintf("%s %d %+v", c.Op, c.Window, c.Rect)
	case "set-border-color":
		return fmt.Sprintf("%s %d %#06x", c.Op, c.Window, c.Color)
	case "set-border-width", "select-input":
		return fmt.Sprintf("%s %d %d", c.Op, c.Window, c.Value)
	default:
		return fmt.Sprintf("%s %d", c.Op, c.Window)
	}
}

// Conn is a recording display connection
type Conn struct {
	Width, Height int
	Pointer       types.Point

	// Named colors the fake server knows; hex colors always resolve
	Named map[string]types.Color

	Calls []Call

	Borders      map[types.Window]types.Color
	BorderWidths map[types.Window]int
	Masks        map[types.Window]types.EventMask
	Placed       map[types.Window]types.Rect
	Focus        types.Window
	Closed       []types.Window

	// Windows whose requests fail as if already destroyed
	Gone map[types.Window]bool

	PointerQueries int
}

// New creates a connection to a display of the given size
func New(width, height int) *Conn {
	return &Conn{
		Width:  width,
		Height: height,
		Named: map[string]types.Color{
			"black":  0x000000,
			"white":  0xffffff,
			"red":    0xff0000,
			"gray30": 0x4d4d4d,
			"orange": 0xffa500,
		},
		Borders:      make(map[types.Window]types.Color),
		BorderWidths: make(map[types.Window]int),
		Masks:        make(map[types.Window]types.EventMask),
		Placed:       make(map[types.Window]types.Rect),
		Gone:         make(map[types.Window]bool),
	}
}

func (c *Conn) record(call Call) error {
	c.Calls = append(c.Calls, call)
	if c.Gone[call.Window] {
		return fmt.Errorf("%s %d: %w", call.Op, call.Window, ErrBadWindow)
	}
	return nil
}

// Reset forgets recorded calls but keeps window state
func (c *Conn) Reset() {
	c.Calls = nil
	c.PointerQueries = 0
}

// Ops returns the recorded calls of one kind
func (c *Conn) Ops(op string) []Call {
	var out []Call
	for _, call := range c.Calls {
		if call.Op == op {
			out = append(out, call)
		}
	}
	return out
}

func (c *Conn) SetBorderWidth(w types.Window, width int) error {
	if err := c.record(Call{Op: "set-border-width", Window: w, Value: uint32(width)}); err != nil {
		return err
	}
	c.BorderWidths[w] = width
	return nil
}

func (c *Conn) SelectInput(w types.Window, mask types.EventMask) error {
	if err := c.record(Call{Op: "select-input", Window: w, Value: uint32(mask)}); err != nil {
		return err
	}
	c.Masks[w] = mask
	return nil
}

func (c *Conn) MoveResize(w types.Window, r types.Rect) error {
	if err := c.record(Call{Op: "move-resize", Window: w, Rect: r}); err != nil {
		return err
	}
	c.Placed[w] = r
	return nil
}

func (c *Conn) SetBorderColor(w types.Window, col types.Color) error {
	if err := c.record(Call{Op: "set-border-color", Window: w, Color: col}); err != nil {
		return err
	}
	c.Borders[w] = col
	return nil
}

func (c *Conn) SetInputFocus(w types.Window) error {
	if err := c.record(Call{Op: "set-input-focus", Window: w}); err != nil {
		return err
	}
	c.Focus = w
	return nil
}

func (c *Conn) CloseWindow(w types.Window) error {
	if err := c.record(Call{Op: "close", Window: w}); err != nil {
		return err
	}
	c.Closed = append(c.Closed, w)
	return nil
}

func (c *Conn) QueryPointer() (types.Point, error) {
	c.PointerQueries++
	return c.Pointer, nil
}

func (c *Conn) DisplaySize() (int, int, error) {
	return c.Width, c.Height, nil
}

// ResolveColor accepts hex colors and the names in Named
func (c *Conn) ResolveColor(name string) (types.Color, error) {
	spec, err := config.ParseColor(name)
	if err != nil {
		return 0, err
	}
	if spec.Hex {
		return spec.Pixel(), nil
	}
	if col, ok := c.Named[strings.ToLower(spec.Name)]; ok {
		return col, nil
	}
	return 0, fmt.Errorf("unknown color %q", name)
}
