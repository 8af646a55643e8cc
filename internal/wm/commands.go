package wm

import (
	"fmt"
	"strings"

	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/tree"
	"github.com/yourusername/matrix/internal/types"
)

// commands maps the commands that take no direction to their handlers
var commands = map[types.Command]func(*Space) error{
	types.CmdExit:    func(*Space) error { return ErrExit },
	types.CmdRefresh: (*Space).Refresh,
	types.CmdClose:   (*Space).Close,
}

// Exec runs a named command
func (s *Space) Exec(c types.Command) error {
	logging.Debug().Str("command", string(c)).Msg("exec")
	if fn, ok := commands[c]; ok {
		return fn(s)
	}

	d, ok := c.Direction()
	if !ok {
		return fmt.Errorf("unknown command: %s", c)
	}
	if strings.HasPrefix(string(c), "move-") {
		return s.MoveFocused(d)
	}
	return s.FocusSibling(d)
}

// FocusSibling moves focus to the neighbor of the focused leaf in the
// nearest ancestor laid out along d's axis, wrapping at the ends. Focusing
// a branch lands on the leaf it last had focused.
func (s *Space) FocusSibling(d types.Direction) error {
	cur := s.chain.Focused()
	if cur == nil {
		return nil
	}
	next := tree.Neighbor(cur, d.Axis(), d.Order())
	if next == nil {
		return nil
	}
	s.setFocus(next, true)
	s.record()
	return nil
}

// MoveFocused swaps the focused node (or the ancestor containing it) with
// its neighbor in the nearest ancestor laid out along d's axis. Nothing
// happens at the edge.
func (s *Space) MoveFocused(d types.Direction) error {
	cur := s.chain.Focused()
	if cur == nil {
		return nil
	}
	child, sibling := tree.Adjacent(cur, d.Axis(), d.Order())
	if sibling == nil {
		return nil
	}
	if !s.tree.Move(child, sibling, d.Order()) {
		return nil
	}
	s.relayout(child.Parent())
	return nil
}

// Close asks the focused window to close
func (s *Space) Close() error {
	cur := s.chain.Focused()
	if cur == nil {
		return nil
	}
	if err := s.conn.CloseWindow(cur.Window()); err != nil {
		logging.Warn().Err(err).Uint32("window", uint32(cur.Window())).Msg("close failed")
	}
	return nil
}
