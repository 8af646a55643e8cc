package focus

import (
	"errors"
	"fmt"

	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/tree"
	"github.com/yourusername/matrix/internal/types"
)

// Borders is the part of the display connection focus changes touch
type Borders interface {
	SetBorderColor(w types.Window, c types.Color) error
	SetInputFocus(w types.Window) error
}

// Chain tracks the focused leaf and keeps border colors in step with it.
// The focused leaf is always the one reached by following active children
// down from the view.
type Chain struct {
	conn    Borders
	normal  types.Color
	focused types.Color
	leaf    *tree.Leaf
}

// New creates a Chain with nothing focused
func New(conn Borders, normal, focused types.Color) *Chain {
	return &Chain{conn: conn, normal: normal, focused: focused}
}

// Focused returns the focused leaf, or nil
func (c *Chain) Focused() *tree.Leaf {
	return c.leaf
}

// SetColors changes the border colors and repaints the focused leaf
func (c *Chain) SetColors(normal, focused types.Color) error {
	c.normal, c.focused = normal, focused
	if c.leaf == nil {
		return nil
	}
	return c.conn.SetBorderColor(c.leaf.Window(), c.focused)
}

// Color returns the border color a leaf should currently have
func (c *Chain) Color(l *tree.Leaf) types.Color {
	if l != nil && l == c.leaf {
		return c.focused
	}
	return c.normal
}

// Forget drops l if it is the focused leaf, without touching its window.
// Used when the window is already gone.
func (c *Chain) Forget(l *tree.Leaf) {
	if c.leaf == l {
		c.leaf = nil
	}
}

// Set makes n the active path from the root, then focuses the leaf reached by
// following active children down from view. When that leaf differs from the
// current one, the old border is painted normal, the new one focused, and
// with grab the window also receives input focus. Set returns the focused
// leaf; connection failures are collected but do not stop the update.
func (c *Chain) Set(n, view tree.Node, grab bool) (*tree.Leaf, error) {
	if n != nil {
		tree.Activate(n)
	}

	next := tree.ActiveLeaf(view)
	if next == c.leaf {
		return c.leaf, nil
	}

	var errs []error
	if c.leaf != nil {
		if err := c.conn.SetBorderColor(c.leaf.Window(), c.normal); err != nil {
			errs = append(errs, fmt.Errorf("unfocus window %d: %w", c.leaf.Window(), err))
		}
	}

	prev := c.leaf
	c.leaf = next
	if next == nil {
		return nil, errors.Join(errs...)
	}

	if err := c.conn.SetBorderColor(next.Window(), c.focused); err != nil {
		errs = append(errs, fmt.Errorf("highlight window %d: %w", next.Window(), err))
	}
	if grab {
		if err := c.conn.SetInputFocus(next.Window()); err != nil {
			errs = append(errs, fmt.Errorf("focus window %d: %w", next.Window(), err))
		}
	}

	ev := logging.Debug().Uint32("window", uint32(next.Window())).Bool("grab", grab)
	if prev != nil {
		ev = ev.Uint32("previous", uint32(prev.Window()))
	}
	ev.Msg("focus changed")

	return next, errors.Join(errs...)
}
