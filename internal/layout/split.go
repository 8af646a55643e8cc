package layout

import (
	"github.com/yourusername/matrix/internal/types"
)

// Split divides extent into n integer spans.
// The first n-1 spans get extent/n (floored); the last span takes the
// remainder, so the spans always sum to exactly extent.
//
// Returns nil for n <= 0. Negative extents are treated as 0.
func Split(extent, n int) []int {
	if n <= 0 {
		return nil
	}
	if extent < 0 {
		extent = 0
	}

	share := extent / n
	spans := make([]int, n)
	for i := 0; i < n-1; i++ {
		spans[i] = share
	}
	spans[n-1] = extent - share*(n-1)

	return spans
}

// Partition lays out n rects side by side inside bounds.
//
// A Horizontal orientation splits bounds along X (children side by side);
// Vertical splits along Y (children stacked). The cross-axis extent of
// every rect equals that of bounds.
func Partition(bounds types.Rect, o types.Orientation, n int) []types.Rect {
	spans := Split(bounds.Extent(o), n)
	if spans == nil {
		return nil
	}

	rects := make([]types.Rect, n)
	switch o {
	case types.Horizontal:
		x := bounds.X
		for i, w := range spans {
			rects[i] = types.Rect{X: x, Y: bounds.Y, Width: w, Height: bounds.Height}
			x += w
		}
	default:
		y := bounds.Y
		for i, h := range spans {
			rects[i] = types.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: h}
			y += h
		}
	}

	return rects
}

// DisplayBounds returns the rect the outermost node is configured with:
// the display grown by the border width on every side, so the borders of
// windows touching a screen edge land off-screen.
func DisplayBounds(width, height, border int) types.Rect {
	return types.Rect{Width: width, Height: height}.Outset(border)
}

// WindowSize returns the inner size of a window whose outer rect is r.
// X11 draws the border outside the window, so both borders come off each extent.
func WindowSize(r types.Rect, border int) (width, height int) {
	return max(r.Width-2*border, 1), max(r.Height-2*border, 1)
}
