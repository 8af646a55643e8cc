// Package state publishes the running window manager's layout to a status
// file so other processes can inspect it.
package state

import (
	"os"
	"slices"
	"time"

	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/wm"
)

const (
	// StateVersion is the current status file format version
	StateVersion = 1
)

// Status is the root structure written to the status file
type Status struct {
	Version     int         `json:"version"`
	Session     string      `json:"session"`
	PID         int         `json:"pid"`
	Layout      wm.Snapshot `json:"layout"`
	LastUpdated time.Time   `json:"lastUpdated"`
}

// NewStatus creates a status for the current process
func NewStatus(snap wm.Snapshot) *Status {
	return &Status{
		Version:     StateVersion,
		Session:     logging.Session(),
		PID:         os.Getpid(),
		Layout:      snap,
		LastUpdated: time.Now(),
	}
}

// Recorder rewrites the status file whenever the layout changes
type Recorder struct {
	path string
	last *wm.Snapshot
}

// NewRecorder creates a recorder writing to path
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Record saves the space's layout if it differs from the last one saved.
// Write failures are logged; the window manager keeps running.
func (r *Recorder) Record(s *wm.Space) {
	snap := s.Snapshot()
	if r.last != nil && sameLayout(*r.last, snap) {
		return
	}
	if err := NewStatus(snap).SaveTo(r.path); err != nil {
		logging.Warn().Err(err).Str("path", r.path).Msg("failed to write status")
		return
	}
	r.last = &snap
}

// Clear removes the status file
func (r *Recorder) Clear() {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		logging.Warn().Err(err).Str("path", r.path).Msg("failed to remove status")
	}
}

func sameLayout(a, b wm.Snapshot) bool {
	return a.Width == b.Width && a.Height == b.Height && a.Border == b.Border &&
		a.Shape == b.Shape && slices.Equal(a.Panes, b.Panes)
}
