package reconcile

import (
	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/types"
)

// WindowInfo describes a top-level window as the display server reports it
type WindowInfo struct {
	Window           types.Window
	OverrideRedirect bool
	Viewable         bool
}

// IsTileable returns true if the window should be included in tiling
func (w WindowInfo) IsTileable() bool {
	return w.Viewable && !w.OverrideRedirect
}

// Space is the part of the window manager Sync drives
type Space interface {
	Managed() []types.Window
	Map(w types.Window, overrideRedirect bool) error
	Unmap(w types.Window) error
}

// Result counts what Sync changed
type Result struct {
	Adopted []types.Window
	Dropped []types.Window
}

// Sync updates the Space to match server reality: tileable windows that
// are not managed yet are mapped in server stacking order, and managed
// windows the server no longer reports are unmapped.
func Sync(windows []WindowInfo, s Space) (Result, error) {
	var res Result

	live := make(map[types.Window]bool, len(windows))
	for _, w := range windows {
		if w.IsTileable() {
			live[w.Window] = true
		}
	}

	for _, w := range s.Managed() {
		if live[w] {
			delete(live, w)
			continue
		}
		if err := s.Unmap(w); err != nil {
			return res, err
		}
		res.Dropped = append(res.Dropped, w)
	}

	for _, w := range windows {
		if !live[w.Window] {
			continue
		}
		if err := s.Map(w.Window, false); err != nil {
			return res, err
		}
		res.Adopted = append(res.Adopted, w.Window)
	}

	if len(res.Adopted) > 0 || len(res.Dropped) > 0 {
		logging.Info().Int("adopted", len(res.Adopted)).Int("dropped", len(res.Dropped)).Msg("reconciled windows")
	}
	return res, nil
}
