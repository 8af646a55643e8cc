package output

import "github.com/yourusername/matrix/internal/types"

// AspectRatio is the height to width ratio of a terminal character cell
const AspectRatio = 2.0

// Scaler maps display pixels onto canvas cells. Neighboring rectangles map
// to boxes that share their border cells.
type Scaler struct {
	PixelWidth  int
	PixelHeight int
	Cols        int
	Rows        int
}

// NewScaler creates a scaler for a display drawn onto a cols x rows canvas
func NewScaler(pixelWidth, pixelHeight, cols, rows int) *Scaler {
	return &Scaler{
		PixelWidth:  max(pixelWidth, 1),
		PixelHeight: max(pixelHeight, 1),
		Cols:        max(cols, 2),
		Rows:        max(rows, 2),
	}
}

// FitSize returns the largest canvas no bigger than maxCols x maxRows that
// keeps the display's proportions on screen
func FitSize(pixelWidth, pixelHeight, maxCols, maxRows int) (cols, rows int) {
	if pixelWidth <= 0 || pixelHeight <= 0 {
		return max(maxCols, 2), max(maxRows, 2)
	}
	cols = max(maxCols, 2)
	rows = int(float64(cols) * float64(pixelHeight) / float64(pixelWidth) / AspectRatio)
	if rows > maxRows {
		rows = max(maxRows, 2)
		cols = int(float64(rows) * AspectRatio * float64(pixelWidth) / float64(pixelHeight))
	}
	return max(cols, 2), max(rows, 2)
}

func (s *Scaler) col(px int) int {
	px = min(max(px, 0), s.PixelWidth)
	return px * (s.Cols - 1) / s.PixelWidth
}

func (s *Scaler) row(px int) int {
	px = min(max(px, 0), s.PixelHeight)
	return px * (s.Rows - 1) / s.PixelHeight
}

// Box returns the canvas box for a pixel rectangle, clipped to the display
func (s *Scaler) Box(r types.Rect) (x, y, width, height int) {
	x0, x1 := s.col(r.X), s.col(r.X+r.Width)
	y0, y1 := s.row(r.Y), s.row(r.Y+r.Height)
	return x0, y0, x1 - x0 + 1, y1 - y0 + 1
}
