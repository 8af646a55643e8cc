package output

import (
	"strings"

	"github.com/fatih/color"
)

// BoxStyle defines the character set for drawing boxes
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
	Junction    rune
}

var (
	// ASCIIStyle uses simple ASCII characters for box drawing
	ASCIIStyle = BoxStyle{
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  '-',
		Vertical:    '|',
		Junction:    '+',
	}

	// UnicodeStyle uses Unicode box drawing characters
	UnicodeStyle = BoxStyle{
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Horizontal:  '─',
		Vertical:    '│',
		Junction:    '┼',
	}
)

// Canvas is a 2D character buffer. Cells can be marked so they render
// highlighted.
type Canvas struct {
	Width  int
	Height int
	buffer [][]rune
	marks  [][]bool
	style  BoxStyle
}

// NewCanvas creates a blank canvas
func NewCanvas(width, height int, useUnicode bool) *Canvas {
	width, height = max(width, 0), max(height, 0)
	buffer := make([][]rune, height)
	marks := make([][]bool, height)
	for i := range buffer {
		buffer[i] = []rune(strings.Repeat(" ", width))
		marks[i] = make([]bool, width)
	}

	style := ASCIIStyle
	if useUnicode {
		style = UnicodeStyle
	}
	return &Canvas{Width: width, Height: height, buffer: buffer, marks: marks, style: style}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// SetCell sets a character; positions off the canvas are ignored
func (c *Canvas) SetCell(x, y int, r rune) {
	if c.inside(x, y) {
		c.buffer[y][x] = r
	}
}

// GetCell returns the character at a position, or a space off the canvas
func (c *Canvas) GetCell(x, y int) rune {
	if c.inside(x, y) {
		return c.buffer[y][x]
	}
	return ' '
}

// edge draws a border character. Where two boxes meet on a corner or cross
// an existing line the cell becomes a junction.
func (c *Canvas) edge(x, y int, r rune) {
	switch cur := c.GetCell(x, y); {
	case cur == ' ' || cur == r:
		c.SetCell(x, y, r)
	default:
		c.SetCell(x, y, c.style.Junction)
	}
}

// DrawBox draws a box outline. Boxes narrower or shorter than two cells
// are skipped.
func (c *Canvas) DrawBox(x, y, width, height int) {
	if width < 2 || height < 2 {
		return
	}
	right, bottom := x+width-1, y+height-1

	for i := x + 1; i < right; i++ {
		c.edge(i, y, c.style.Horizontal)
		c.edge(i, bottom, c.style.Horizontal)
	}
	for j := y + 1; j < bottom; j++ {
		c.edge(x, j, c.style.Vertical)
		c.edge(right, j, c.style.Vertical)
	}

	c.edge(x, y, c.style.TopLeft)
	c.edge(right, y, c.style.TopRight)
	c.edge(x, bottom, c.style.BottomLeft)
	c.edge(right, bottom, c.style.BottomRight)
}

// DrawText writes text starting at a position, clipped to maxLen runes
func (c *Canvas) DrawText(x, y, maxLen int, text string) {
	i := 0
	for _, r := range text {
		if i >= maxLen {
			return
		}
		c.SetCell(x+i, y, r)
		i++
	}
}

// Mark flags a rectangle of cells for highlighting
func (c *Canvas) Mark(x, y, width, height int) {
	for j := y; j < y+height; j++ {
		for i := x; i < x+width; i++ {
			if c.inside(i, j) {
				c.marks[j][i] = true
			}
		}
	}
}

// String renders the canvas without highlighting
func (c *Canvas) String() string {
	return c.Render(nil)
}

// Render renders the canvas, painting marked runs with hl when it is
// non-nil
func (c *Canvas) Render(hl *color.Color) string {
	var sb strings.Builder
	for j, row := range c.buffer {
		if j > 0 {
			sb.WriteByte('\n')
		}
		start := 0
		for start < len(row) {
			end := start
			for end < len(row) && c.marks[j][end] == c.marks[j][start] {
				end++
			}
			run := string(row[start:end])
			if hl != nil && c.marks[j][start] {
				run = hl.Sprint(run)
			}
			sb.WriteString(run)
			start = end
		}
	}
	return sb.String()
}
