package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/types"
	"github.com/yourusername/matrix/internal/wm"
)

// PrintPanesTable prints the snapshot's panes in a table format
func PrintPanesTable(out io.Writer, snap wm.Snapshot) {
	table := tablewriter.NewWriter(out)
	table.Header("Window", "Depth", "Split", "Cell", "Frame", "Focused")

	for _, p := range snap.Panes {
		focused := ""
		if p.Focused {
			focused = "yes"
		}
		table.Append(
			fmt.Sprintf("%d", p.Window),
			fmt.Sprintf("%d", p.Depth),
			p.Orientation.String(),
			formatRect(p.Cell),
			formatRect(p.Frame),
			focused,
		)
	}

	table.Render()
}

// PrintCommandsTable prints every command with the keys bound to it
func PrintCommandsTable(out io.Writer, bindings []config.Binding) {
	keys := make(map[types.Command][]string)
	for _, b := range bindings {
		keys[b.Command] = append(keys[b.Command], b.Key)
	}

	table := tablewriter.NewWriter(out)
	table.Header("Command", "Keys")
	for _, c := range types.Commands {
		bound := keys[c]
		sort.Strings(bound)
		table.Append(string(c), joinOrDash(bound))
	}
	table.Render()
}

func formatRect(r types.Rect) string {
	return fmt.Sprintf("%dx%d%+d%+d", r.Width, r.Height, r.X, r.Y)
}

func joinOrDash(s []string) string {
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, ", ")
}
