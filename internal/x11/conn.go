// Package x11 implements the window manager's display connection on top of
// the X protocol.
package x11

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/types"
)

// Conn is a connection to an X server
type Conn struct {
	xu   *xgbutil.XUtil
	c    *xgb.Conn
	root xproto.Window
	cmap xproto.Colormap

	atomProtocols xproto.Atom
	atomDelete    xproto.Atom

	mu   sync.RWMutex
	keys map[chord]types.Command
}

// Dial connects to display (or $DISPLAY when empty), interns the atoms the
// window manager needs and selects substructure notifications on the root.
func Dial(display string) (*Conn, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	screen := xu.Screen()
	conn := &Conn{
		xu:   xu,
		c:    xu.Conn(),
		root: xu.RootWin(),
		cmap: screen.DefaultColormap,
		keys: make(map[chord]types.Command),
	}

	if conn.atomProtocols, err = conn.intern("WM_PROTOCOLS"); err != nil {
		xu.Conn().Close()
		return nil, err
	}
	if conn.atomDelete, err = conn.intern("WM_DELETE_WINDOW"); err != nil {
		xu.Conn().Close()
		return nil, err
	}

	if err := conn.SelectInput(types.Window(conn.root), types.RootEventMask); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("select root events: %w", err)
	}

	keybind.Initialize(xu)

	logging.Info().
		Int("width", int(screen.WidthInPixels)).
		Int("height", int(screen.HeightInPixels)).
		Uint32("root", uint32(conn.root)).
		Msg("connected to X server")
	return conn, nil
}

func (c *Conn) intern(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(c.c, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern %s: %w", name, err)
	}
	if reply == nil || reply.Atom == xproto.AtomNone {
		return 0, fmt.Errorf("intern %s: no atom returned", name)
	}
	return reply.Atom, nil
}

// Close closes the connection. Pending Events readers stop.
func (c *Conn) Close() {
	c.c.Close()
}

// Root returns the root window
func (c *Conn) Root() types.Window {
	return types.Window(c.root)
}

func (c *Conn) SetBorderWidth(w types.Window, width int) error {
	return xproto.ConfigureWindowChecked(c.c, xproto.Window(w),
		xproto.ConfigWindowBorderWidth, []uint32{uint32(width)}).Check()
}

func (c *Conn) SelectInput(w types.Window, mask types.EventMask) error {
	return xproto.ChangeWindowAttributesChecked(c.c, xproto.Window(w),
		xproto.CwEventMask, []uint32{uint32(mask)}).Check()
}

func (c *Conn) MoveResize(w types.Window, r types.Rect) error {
	return xproto.ConfigureWindowChecked(c.c, xproto.Window(w),
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{coord(r.X), coord(r.Y), uint32(r.Width), uint32(r.Height)}).Check()
}

// coord encodes a signed position the way the protocol expects it in a
// value list: as the two's complement bit pattern of an INT16/INT32
func coord(v int) uint32 {
	return uint32(int32(v))
}

func (c *Conn) SetBorderColor(w types.Window, col types.Color) error {
	return xproto.ChangeWindowAttributesChecked(c.c, xproto.Window(w),
		xproto.CwBorderPixel, []uint32{uint32(col)}).Check()
}

func (c *Conn) SetInputFocus(w types.Window) error {
	return xproto.SetInputFocusChecked(c.c, xproto.InputFocusPointerRoot,
		xproto.Window(w), xproto.TimeCurrentTime).Check()
}

func (c *Conn) QueryPointer() (types.Point, error) {
	reply, err := xproto.QueryPointer(c.c, c.root).Reply()
	if err != nil {
		return types.Point{}, err
	}
	return types.Point{X: int(reply.RootX), Y: int(reply.RootY)}, nil
}

// DisplaySize returns the current size of the root window
func (c *Conn) DisplaySize() (int, int, error) {
	g, err := xproto.GetGeometry(c.c, xproto.Drawable(c.root)).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(g.Width), int(g.Height), nil
}

// ResolveColor allocates a border pixel. Hex colors are allocated by value;
// names are looked up in the server's color database.
func (c *Conn) ResolveColor(name string) (types.Color, error) {
	spec, err := config.ParseColor(name)
	if err != nil {
		return 0, err
	}

	if spec.Hex {
		reply, err := xproto.AllocColor(c.c, c.cmap,
			scale(spec.R), scale(spec.G), scale(spec.B)).Reply()
		if err != nil {
			return 0, fmt.Errorf("alloc color %s: %w", name, err)
		}
		return types.Color(reply.Pixel), nil
	}

	reply, err := xproto.AllocNamedColor(c.c, c.cmap, uint16(len(spec.Name)), spec.Name).Reply()
	if err != nil {
		return 0, fmt.Errorf("alloc named color %s: %w", name, err)
	}
	return types.Color(reply.Pixel), nil
}

// scale widens an 8-bit channel to the protocol's 16 bits
func scale(v uint8) uint16 {
	return uint16(v)<<8 | uint16(v)
}

// CloseWindow asks w to close with WM_DELETE_WINDOW when it supports the
// protocol and kills its client otherwise
func (c *Conn) CloseWindow(w types.Window) error {
	win := xproto.Window(w)

	prop, err := xproto.GetProperty(c.c, false, win, c.atomProtocols,
		xproto.GetPropertyTypeAny, 0, 64).Reply()
	if err != nil {
		return err
	}

	if prop != nil && hasAtom(prop.Value, c.atomDelete) {
		ev := xproto.ClientMessageEvent{
			Format: 32,
			Window: win,
			Type:   c.atomProtocols,
			Data: xproto.ClientMessageDataUnionData32New([]uint32{
				uint32(c.atomDelete),
				uint32(xproto.TimeCurrentTime),
				0,
				0,
				0,
			}),
		}
		return xproto.SendEventChecked(c.c, false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
	}

	logging.Debug().Uint32("window", uint32(w)).Msg("no WM_DELETE_WINDOW, killing client")
	return xproto.KillClientChecked(c.c, uint32(win)).Check()
}

// hasAtom reports whether a 32-bit ATOM list property contains a
func hasAtom(value []byte, a xproto.Atom) bool {
	for v := value; len(v) >= 4; v = v[4:] {
		if xproto.Atom(xgb.Get32(v)) == a {
			return true
		}
	}
	return false
}
