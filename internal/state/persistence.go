package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yourusername/matrix/internal/logging"
)

// DefaultStateFile is the status file name inside the log directory
const DefaultStateFile = "status.json"

// ErrNotRunning is returned by Load when no status file exists
var ErrNotRunning = errors.New("window manager is not running")

// GetStatePath returns the full path to the status file
func GetStatePath() string {
	return filepath.Join(logging.Dir(), DefaultStateFile)
}

// Load reads the status file at path
func Load(path string) (*Status, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w (no %s)", ErrNotRunning, path)
		}
		return nil, fmt.Errorf("failed to read status file: %w", err)
	}

	var st Status
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to parse status file: %w", err)
	}
	if st.Version > StateVersion {
		return nil, fmt.Errorf("status file version %d is newer than %d", st.Version, StateVersion)
	}
	return &st, nil
}

// SaveTo writes the status to path
func (st *Status) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	// Marshal with indentation for readability
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}

	// Write atomically using temp file + rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write status file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up temp file on failure
		return fmt.Errorf("failed to rename status file: %w", err)
	}

	return nil
}
