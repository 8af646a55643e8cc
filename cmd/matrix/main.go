package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/output"
)

var (
	configPath  string
	displayName string
	jsonOutput  bool
	noColor     bool
	debugMode   bool

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	keyColor     = color.New(color.FgYellow)
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Matrix - a tiling window manager for X11",
	Long: `Matrix is a binary space partitioning window manager for X11.

Every new window splits the focused one. Splits alternate between side by
side and stacked as the tree gets deeper.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// commandsCmd lists bindable commands
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List commands that can be bound to keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if jsonOutput {
			return printJSON(cfg.Bindings)
		}
		output.PrintCommandsTable(os.Stdout, cfg.Bindings)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/matrix/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&displayName, "display", "", "X display to manage (default $DISPLAY)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")

	previewCmd.Flags().IntVar(&previewWindows, "windows", 3, "Number of windows to map")
	previewCmd.Flags().IntVar(&previewWidth, "width", 1920, "Display width in pixels")
	previewCmd.Flags().IntVar(&previewHeight, "height", 1080, "Display height in pixels")
	previewCmd.Flags().IntVar(&previewBorder, "border", 0, "Border width (default from config)")
	previewCmd.Flags().StringSliceVar(&previewExec, "exec", nil, "Commands to run after mapping, e.g. focus-left,move-right")
	previewCmd.Flags().BoolVar(&previewASCII, "ascii", false, "Force ASCII mode (no Unicode)")

	// Disable color if requested, enable debug logging if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
		if debugMode {
			logging.SetDebug(true)
		}
	})
}

func main() {
	// Initialize logging
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		logging.Close()
		os.Exit(1)
	}
}

// Helper functions

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
