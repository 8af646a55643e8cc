package event

import (
	"encoding/json"
	"time"

	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/types"
)

// Kind identifies what happened
type Kind string

const (
	Mapped         Kind = "mapped"
	Unmapped       Kind = "unmapped"
	FocusChanged   Kind = "focus-changed"
	PointerEntered Kind = "pointer-entered"
	Command        Kind = "command"
	Reload         Kind = "reload"
)

// Event is the single message type the window manager loop consumes.
// Display events, key bindings and config reloads are all turned into
// Events by their producers and handled one at a time.
type Event struct {
	Kind             Kind           `json:"kind"`
	Window           types.Window   `json:"window,omitempty"`
	OverrideRedirect bool           `json:"overrideRedirect,omitempty"`
	Command          types.Command  `json:"command,omitempty"`
	Config           *config.Config `json:"-"`
	Timestamp        time.Time      `json:"timestamp"`
}

// NewMapped creates a window-mapped event
func NewMapped(w types.Window, overrideRedirect bool) Event {
	return Event{Kind: Mapped, Window: w, OverrideRedirect: overrideRedirect, Timestamp: time.Now()}
}

// NewUnmapped creates a window-unmapped event
func NewUnmapped(w types.Window) Event {
	return Event{Kind: Unmapped, Window: w, Timestamp: time.Now()}
}

// NewFocusChanged creates a focus-changed event
func NewFocusChanged(w types.Window) Event {
	return Event{Kind: FocusChanged, Window: w, Timestamp: time.Now()}
}

// NewPointerEntered creates a pointer-entered event
func NewPointerEntered(w types.Window) Event {
	return Event{Kind: PointerEntered, Window: w, Timestamp: time.Now()}
}

// NewCommand creates an event that runs a bound command
func NewCommand(c types.Command) Event {
	return Event{Kind: Command, Command: c, Timestamp: time.Now()}
}

// NewReload creates an event carrying a freshly loaded config
func NewReload(cfg *config.Config) Event {
	return Event{Kind: Reload, Config: cfg, Timestamp: time.Now()}
}

// String renders the event as JSON for debug logs
func (e Event) String() string {
	b, err := json.Marshal(e)
	if err != nil {
		return string(e.Kind)
	}
	return string(b)
}
