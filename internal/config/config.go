package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/matrix/internal/types"
)

const (
	DefaultConfigDir  = ".config/matrix"
	DefaultConfigFile = "config.yaml"

	MaxBorderWidth = 64
)

// ErrNotFound is returned when no config file exists at the default location
var ErrNotFound = errors.New("no config file found")

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Settings: Settings{
			BorderWidth:       2,
			NormalColor:       "gray30",
			FocusedColor:      "#d79921",
			FocusFollowsMouse: true,
		},
		Bindings: []Binding{
			{Key: "Mod4-Shift-q", Command: types.CmdExit},
			{Key: "Mod4-r", Command: types.CmdRefresh},
			{Key: "Mod4-Shift-c", Command: types.CmdClose},
			{Key: "Mod4-h", Command: types.CmdFocusLeft},
			{Key: "Mod4-l", Command: types.CmdFocusRight},
			{Key: "Mod4-k", Command: types.CmdFocusUp},
			{Key: "Mod4-j", Command: types.CmdFocusDown},
			{Key: "Mod4-Shift-h", Command: types.CmdMoveLeft},
			{Key: "Mod4-Shift-l", Command: types.CmdMoveRight},
			{Key: "Mod4-Shift-k", Command: types.CmdMoveUp},
			{Key: "Mod4-Shift-j", Command: types.CmdMoveDown},
		},
	}
}

// LoadConfig loads configuration from the specified path or default location.
// If path is empty, uses ~/.config/matrix/config.yaml, then config.json,
// and falls back to Default when neither exists.
// Supports both .yaml and .json extensions
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		found, err := findDefault()
		if errors.Is(err, ErrNotFound) {
			return Default(), nil
		}
		if err != nil {
			return nil, err
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return LoadConfigFromBytes(data, ext)
}

// LoadConfigFromBytes loads configuration from raw bytes.
// format should be "yaml" or "json". Fields absent from data keep their
// default values.
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	cfg := Default()
	defaults := cfg.Bindings
	cfg.Bindings = nil

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if cfg.Bindings == nil {
		cfg.Bindings = defaults
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Marshal renders cfg in the given format
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(cfg)
	case "json":
		return json.MarshalIndent(cfg, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// ResolvePath returns path, or the default config file that exists
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return findDefault()
}

func findDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	// Try YAML first, then JSON
	yamlPath := filepath.Join(home, DefaultConfigDir, "config.yaml")
	jsonPath := filepath.Join(home, DefaultConfigDir, "config.json")

	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	return "", fmt.Errorf("%w at %s or %s", ErrNotFound, yamlPath, jsonPath)
}

// Command returns the command bound to key
func (c *Config) Command(key string) (types.Command, bool) {
	for _, b := range c.Bindings {
		if b.Key == key {
			return b.Command, true
		}
	}
	return "", false
}
