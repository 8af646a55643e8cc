package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/output"
	"github.com/yourusername/matrix/internal/sim"
	"github.com/yourusername/matrix/internal/types"
	"github.com/yourusername/matrix/internal/wm"
)

const placeholderColor types.Color = 0x808080

// Preview flags
var (
	previewWindows int
	previewWidth   int
	previewHeight  int
	previewBorder  int
	previewExec    []string
	previewASCII   bool
)

// previewCmd lays out simulated windows without an X server
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the layout a number of windows would get",
	Long: `Maps simulated windows 1..N on an in-memory display, runs any commands
or keys given with --exec and prints the resulting geometry as a table and a drawing.`,
	Example: `  matrix preview --windows 4
  matrix preview --windows 3 --exec focus-left,move-right --border 4
  matrix preview --windows 3 --exec Mod4-h,Mod4-Shift-l`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("border") {
			cfg.Settings.BorderWidth = previewBorder
		}

		snap, err := simulate(cfg, previewWidth, previewHeight, previewWindows, previewExec)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(snap)
		}

		output.PrintPanesTable(os.Stdout, snap)
		fmt.Println()

		opts := output.DefaultVisualizationOptions()
		if previewASCII {
			opts.UseUnicode = false
		}
		return output.PrintVisualization(os.Stdout, snap, opts)
	},
}

// simulate maps windows 1..n on an in-memory display of the given size and
// runs commands against the result. A command may also be given as a key
// bound to one in cfg.
func simulate(cfg *config.Config, width, height, n int, commands []string) (wm.Snapshot, error) {
	settings := cfg.Settings
	if width <= 0 || height <= 0 {
		return wm.Snapshot{}, fmt.Errorf("invalid display size %dx%d", width, height)
	}
	if n < 0 {
		return wm.Snapshot{}, fmt.Errorf("invalid window count %d", n)
	}

	conn := sim.New(width, height)
	// Names outside the simulated color table still preview
	for _, name := range []string{settings.NormalColor, settings.FocusedColor} {
		if _, err := conn.ResolveColor(name); err != nil {
			conn.Named[strings.ToLower(name)] = placeholderColor
		}
	}
	space, err := wm.New(conn, settings)
	if err != nil {
		return wm.Snapshot{}, err
	}

	for i := 1; i <= n; i++ {
		if err := space.Map(types.Window(i), false); err != nil {
			return wm.Snapshot{}, fmt.Errorf("map window %d: %w", i, err)
		}
	}

	for _, name := range commands {
		c := types.Command(name)
		if !c.Valid() {
			bound, ok := cfg.Command(name)
			if !ok {
				return wm.Snapshot{}, fmt.Errorf("unknown command or key %q", name)
			}
			c = bound
		}
		if err := space.Exec(c); errors.Is(err, wm.ErrExit) {
			break
		} else if err != nil {
			return wm.Snapshot{}, fmt.Errorf("%s: %w", name, err)
		}
	}

	return space.Snapshot(), nil
}
