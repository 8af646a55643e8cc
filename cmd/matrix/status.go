package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/matrix/internal/output"
	"github.com/yourusername/matrix/internal/state"
)

// statusCmd shows the layout of the running window manager
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running window manager's layout",
	Long: `Reads the status file the running window manager keeps up to date and
prints its panes as a table and a drawing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := state.Load(state.GetStatePath())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(st)
		}

		keyColor.Print("Session: ")
		fmt.Printf("%s (pid %d)\n", st.Session, st.PID)
		keyColor.Print("Updated: ")
		fmt.Println(st.LastUpdated.Format(time.RFC3339))
		fmt.Println()

		output.PrintPanesTable(os.Stdout, st.Layout)
		fmt.Println()
		return output.PrintVisualization(os.Stdout, st.Layout, output.DefaultVisualizationOptions())
	},
}
