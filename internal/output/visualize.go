// Package output renders window manager layouts for the terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/yourusername/matrix/internal/wm"
)

// VisualizationOptions controls the appearance of the visualization
type VisualizationOptions struct {
	UseUnicode bool
	MaxWidth   int
	MaxHeight  int
}

// DefaultVisualizationOptions sizes the drawing to the terminal, leaving
// room for the header and footer lines
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := TerminalSize()
	return VisualizationOptions{
		UseUnicode: supportsUnicode(),
		MaxWidth:   width,
		MaxHeight:  height - 4,
	}
}

// Visualize draws every pane of the snapshot as a box labelled with its
// window id. The focused pane is marked with '*' and flagged for
// highlighting on the returned canvas.
func Visualize(snap wm.Snapshot, opts VisualizationOptions) *Canvas {
	cols, rows := FitSize(snap.Width, snap.Height, opts.MaxWidth, opts.MaxHeight)
	canvas := NewCanvas(cols, rows, opts.UseUnicode)
	sc := NewScaler(snap.Width, snap.Height, cols, rows)

	for _, p := range snap.Panes {
		x, y, w, h := sc.Box(p.Cell)
		canvas.DrawBox(x, y, w, h)
		if p.Focused {
			canvas.Mark(x, y, w, h)
		}
		if w < 3 || h < 3 {
			continue
		}
		canvas.DrawText(x+1, y+1, w-2, paneLabel(p))
		if h >= 4 {
			canvas.DrawText(x+1, y+2, w-2, fmt.Sprintf("%dx%d", p.Frame.Width, p.Frame.Height))
		}
	}
	return canvas
}

func paneLabel(p wm.Pane) string {
	label := strconv.FormatUint(uint64(p.Window), 10)
	if p.Focused {
		label += "*"
	}
	return label
}

// PrintVisualization writes the drawing with a header naming the display
// and tree shape. The focused pane is highlighted unless color is off.
func PrintVisualization(out io.Writer, snap wm.Snapshot, opts VisualizationOptions) error {
	header := fmt.Sprintf("Display %dx%d, border %d: %s\n", snap.Width, snap.Height, snap.Border, snap.Shape)
	if _, err := io.WriteString(out, header); err != nil {
		return err
	}
	if len(snap.Panes) == 0 {
		_, err := io.WriteString(out, "(no windows)\n")
		return err
	}

	var hl *color.Color
	if !color.NoColor {
		hl = color.New(color.FgYellow, color.Bold)
	}
	body := Visualize(snap, opts).Render(hl)
	footer := fmt.Sprintf("\nTotal: %d windows\n", len(snap.Panes))
	_, err := io.WriteString(out, body+footer)
	return err
}

// TerminalSize returns the terminal dimensions, or 80x24 when stdout is
// not a terminal
func TerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

func supportsUnicode() bool {
	for _, v := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if s := strings.ToUpper(os.Getenv(v)); s != "" {
			return strings.Contains(s, "UTF-8") || strings.Contains(s, "UTF8")
		}
	}
	return false
}
