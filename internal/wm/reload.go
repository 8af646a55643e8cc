package wm

import (
	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/tree"
)

// Apply switches the Space to a new configuration. Colors are resolved
// first; if either fails the old settings stay in effect and the error is
// returned. Otherwise every managed window gets the new border width and
// color, the view is laid out again, and connections that implement Binder
// are handed the new key bindings.
func (s *Space) Apply(cfg *config.Config) error {
	normal, focused, err := resolveColors(s.conn, cfg.Settings)
	if err != nil {
		return err
	}

	old := s.settings
	s.settings = cfg.Settings

	if old.BorderWidth != s.settings.BorderWidth {
		for _, l := range tree.Leaves(s.tree.Root()) {
			if err := s.conn.SetBorderWidth(l.Window(), s.border()); err != nil {
				logging.Warn().Err(err).Uint32("window", uint32(l.Window())).Msg("set border width failed")
			}
		}
	}

	if err := s.chain.SetColors(normal, focused); err != nil {
		logging.Warn().Err(err).Msg("repaint focused border failed")
	}
	for _, l := range tree.Leaves(s.tree.Root()) {
		if err := s.conn.SetBorderColor(l.Window(), s.chain.Color(l)); err != nil {
			logging.Warn().Err(err).Uint32("window", uint32(l.Window())).Msg("set border color failed")
		}
	}

	if err := s.Refresh(); err != nil {
		logging.Warn().Err(err).Msg("refresh failed")
	}

	if b, ok := s.conn.(Binder); ok {
		if err := b.Bind(cfg.Bindings); err != nil {
			logging.Warn().Err(err).Msg("rebinding keys failed")
		}
	}

	logging.Info().
		Int("border_width", s.settings.BorderWidth).
		Str("normal_color", s.settings.NormalColor).
		Str("focused_color", s.settings.FocusedColor).
		Bool("focus_follows_mouse", s.settings.FocusFollowsMouse).
		Msg("settings applied")
	return nil
}
