package tree

import (
	"errors"
	"fmt"

	"github.com/yourusername/matrix/internal/layout"
	"github.com/yourusername/matrix/internal/types"
)

// Surface receives the window placements computed by Refresh
type Surface interface {
	MoveResize(w types.Window, r types.Rect) error
}

// Configure stores a placement on n and, for a branch, distributes its
// interior (r shrunk by border on every side) evenly among the children
// along o's axis. Children are configured with the orthogonal orientation.
//
// Configure only updates memory; Refresh pushes the result to a Surface.
func Configure(n Node, o types.Orientation, r types.Rect, border int) {
	n.base().geom = Geometry{Orientation: o, Rect: r}

	switch n := n.(type) {
	case *Leaf:
	case *Branch:
		rects := layout.Partition(r.Inset(border), o, len(n.children))
		for i, c := range n.children {
			Configure(c, o.Orthogonal(), rects[i], border)
		}
	}
}

// Reconfigure reapplies the placement already stored on n to its subtree
func Reconfigure(n Node, border int) {
	g := n.Geometry()
	Configure(n, g.Orientation, g.Rect, border)
}

// Refresh moves and resizes every window under n to its stored placement.
// A failing window does not stop the others; all failures are returned.
func Refresh(n Node, s Surface, border int) error {
	switch n := n.(type) {
	case *Leaf:
		w, h := layout.WindowSize(n.geom.Rect, border)
		r := types.Rect{X: n.geom.X, Y: n.geom.Y, Width: w, Height: h}
		if err := s.MoveResize(n.window, r); err != nil {
			return fmt.Errorf("move window %d: %w", n.window, err)
		}
		return nil
	case *Branch:
		var errs []error
		for _, c := range n.children {
			if err := Refresh(c, s, border); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
	return nil
}
