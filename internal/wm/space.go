package wm

import (
	"fmt"

	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/focus"
	"github.com/yourusername/matrix/internal/layout"
	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/mouse"
	"github.com/yourusername/matrix/internal/tree"
	"github.com/yourusername/matrix/internal/types"
)

// Conn is the set of display requests the window manager issues
type Conn interface {
	tree.Surface
	focus.Borders
	mouse.Pointer

	SetBorderWidth(w types.Window, width int) error
	SelectInput(w types.Window, mask types.EventMask) error
	ResolveColor(name string) (types.Color, error)
	DisplaySize() (width, height int, err error)
	CloseWindow(w types.Window) error
}

// Binder is implemented by connections that can grab key bindings
type Binder interface {
	Bind(bindings []config.Binding) error
}

// Space owns the layout tree of one screen and everything attached to it:
// the window registry, the focus chain and the pointer gate.
// It is not safe for concurrent use; Run serializes access.
type Space struct {
	conn     Conn
	tree     tree.Tree
	view     tree.Node
	leaves   map[types.Window]*tree.Leaf
	chain    *focus.Chain
	gate     *mouse.Gate
	settings config.Settings
}

// New creates an empty Space. Failing to resolve either border color is an
// error the caller should treat as fatal.
func New(conn Conn, settings config.Settings) (*Space, error) {
	normal, focused, err := resolveColors(conn, settings)
	if err != nil {
		return nil, err
	}

	return &Space{
		conn:     conn,
		leaves:   make(map[types.Window]*tree.Leaf),
		chain:    focus.New(conn, normal, focused),
		gate:     mouse.NewGate(conn),
		settings: settings,
	}, nil
}

func resolveColors(conn Conn, s config.Settings) (normal, focused types.Color, err error) {
	normal, err = conn.ResolveColor(s.NormalColor)
	if err != nil {
		return 0, 0, fmt.Errorf("normal color %q: %w", s.NormalColor, err)
	}
	focused, err = conn.ResolveColor(s.FocusedColor)
	if err != nil {
		return 0, 0, fmt.Errorf("focused color %q: %w", s.FocusedColor, err)
	}
	return normal, focused, nil
}

// Settings returns the settings in effect
func (s *Space) Settings() config.Settings {
	return s.settings
}

// Root returns the root of the layout tree
func (s *Space) Root() tree.Node {
	return s.tree.Root()
}

// View returns the subtree currently laid out on screen
func (s *Space) View() tree.Node {
	return s.view
}

// Focused returns the focused leaf, or nil
func (s *Space) Focused() *tree.Leaf {
	return s.chain.Focused()
}

// Leaf returns the leaf holding w
func (s *Space) Leaf(w types.Window) (*tree.Leaf, bool) {
	l, ok := s.leaves[w]
	return l, ok
}

// Managed returns the windows the Space manages, in tree order
func (s *Space) Managed() []types.Window {
	leaves := tree.Leaves(s.tree.Root())
	out := make([]types.Window, len(leaves))
	for i, l := range leaves {
		out[i] = l.Window()
	}
	return out
}

func (s *Space) border() int {
	return s.settings.BorderWidth
}

// Refresh lays the view out over the whole display and pushes every
// window's geometry to the connection
func (s *Space) Refresh() error {
	if s.view == nil {
		return nil
	}
	w, h, err := s.conn.DisplaySize()
	if err != nil {
		return fmt.Errorf("display size: %w", err)
	}

	tree.Configure(s.view, types.OrientationFor(w, h), layout.DisplayBounds(w, h, s.border()), s.border())
	s.push(s.view)
	return nil
}

// relayout recomputes and pushes the subtree under n using its stored placement
func (s *Space) relayout(n tree.Node) {
	tree.Reconfigure(n, s.border())
	s.push(n)
}

func (s *Space) push(n tree.Node) {
	if err := tree.Refresh(n, s.conn, s.border()); err != nil {
		logging.Warn().Err(err).Msg("refresh failed")
	}
	s.record()
}

// record remembers where the pointer is after a change the program made,
// so the enter events that change causes are not mistaken for user input
func (s *Space) record() {
	if err := s.gate.Record(); err != nil {
		logging.Warn().Err(err).Msg("query pointer failed")
	}
}

// setFocus runs the focus chain and logs connection failures
func (s *Space) setFocus(n tree.Node, grab bool) {
	if _, err := s.chain.Set(n, s.view, grab); err != nil {
		logging.Warn().Err(err).Msg("focus update failed")
	}
}

// destroyLeaf unregisters l. The leaf must already be detached from the tree.
func (s *Space) destroyLeaf(l *tree.Leaf) error {
	if s.tree.Attached(l) {
		return fmt.Errorf("destroy window %d: %w", l.Window(), tree.ErrParented)
	}
	s.chain.Forget(l)
	delete(s.leaves, l.Window())
	return nil
}
