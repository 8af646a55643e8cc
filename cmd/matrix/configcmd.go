package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yourusername/matrix/internal/config"
)

var initForce bool

// configCmd is the parent command for config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for showing, validating and creating the matrix configuration.`,
}

// configShowCmd shows the effective config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if jsonOutput {
			return printJSON(cfg)
		}
		data, err := config.Marshal(cfg, "yaml")
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

// configValidateCmd validates a config file
var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) > 0 {
			path = args[0]
		}

		// LoadConfig validates
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		successColor.Println("✓ Configuration is valid")
		keyColor.Print("  Border width: ")
		fmt.Println(cfg.Settings.BorderWidth)
		keyColor.Print("  Colors: ")
		fmt.Printf("%s / %s (focused)\n", cfg.Settings.NormalColor, cfg.Settings.FocusedColor)
		keyColor.Print("  Focus follows mouse: ")
		fmt.Println(cfg.Settings.FocusFollowsMouse)
		keyColor.Print("  Bindings: ")
		fmt.Println(len(cfg.Bindings))
		return nil
	},
}

// configInitCmd writes the default config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.GetConfigPath()
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("config file already exists at %s", path)
		}

		format := "yaml"
		if filepath.Ext(path) == ".json" {
			format = "json"
		}
		data, err := config.Marshal(config.Default(), format)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		successColor.Printf("✓ Created default config at: %s\n", path)
		return nil
	},
}
