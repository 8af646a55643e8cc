package wm

import (
	"strconv"
	"strings"

	"github.com/yourusername/matrix/internal/layout"
	"github.com/yourusername/matrix/internal/tree"
	"github.com/yourusername/matrix/internal/types"
)

// Pane describes one managed window as it is currently laid out
type Pane struct {
	Window      types.Window      `json:"window"`
	Depth       int               `json:"depth"`
	Orientation types.Orientation `json:"orientation"`
	Cell        types.Rect        `json:"cell"`  // space assigned by the layout
	Frame       types.Rect        `json:"frame"` // window size sent to the display
	Focused     bool              `json:"focused"`
}

// Snapshot is a read-only view of the Space at a point in time
type Snapshot struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Border int    `json:"border"`
	Panes  []Pane `json:"panes"`
	Shape  string `json:"shape"`
}

// Snapshot captures the layout of every managed window
func (s *Space) Snapshot() Snapshot {
	snap := Snapshot{Border: s.border(), Shape: Shape(s.tree.Root())}
	if w, h, err := s.conn.DisplaySize(); err == nil {
		snap.Width, snap.Height = w, h
	}

	focused := s.chain.Focused()
	for _, l := range tree.Leaves(s.tree.Root()) {
		g := l.Geometry()
		w, h := layout.WindowSize(g.Rect, s.border())
		snap.Panes = append(snap.Panes, Pane{
			Window:      l.Window(),
			Depth:       tree.Depth(l),
			Orientation: g.Orientation,
			Cell:        g.Rect,
			Frame:       types.Rect{X: g.X, Y: g.Y, Width: w, Height: h},
			Focused:     l == focused,
		})
	}
	return snap
}

// Shape renders the tree under n as nested parentheses of window ids,
// with horizontal branches in () and vertical ones in []
func Shape(n tree.Node) string {
	switch n := n.(type) {
	case nil:
		return "-"
	case *tree.Leaf:
		return strconv.FormatUint(uint64(n.Window()), 10)
	case *tree.Branch:
		lb, rb := "(", ")"
		if n.Geometry().Orientation == types.Vertical {
			lb, rb = "[", "]"
		}
		parts := make([]string, 0, n.Len())
		for _, c := range n.Children() {
			parts = append(parts, Shape(c))
		}
		return lb + strings.Join(parts, " ") + rb
	}
	return "?"
}
