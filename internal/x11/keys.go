package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/types"
)

// chord is a modifier mask and keycode with lock modifiers removed
type chord struct {
	mods uint16
	code xproto.Keycode
}

// Bind replaces the grabbed key bindings on the root window. Bindings whose
// key string does not parse or cannot be grabbed are skipped; the failures
// are returned together.
func (c *Conn) Bind(bindings []config.Binding) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k := range c.keys {
		keybind.Ungrab(c.xu, c.root, k.mods, k.code)
	}
	c.keys = make(map[chord]types.Command)

	var errs []error
	for _, b := range bindings {
		mods, codes, err := keybind.ParseString(c.xu, b.Key)
		if err != nil {
			errs = append(errs, fmt.Errorf("key %q: %w", b.Key, err))
			continue
		}
		for _, code := range codes {
			if err := keybind.GrabChecked(c.xu, c.root, mods, code); err != nil {
				errs = append(errs, fmt.Errorf("grab %q: %w", b.Key, err))
				continue
			}
			c.keys[chord{mods: cleanMods(mods), code: code}] = b.Command
		}
	}

	logging.Info().Int("keys", len(c.keys)).Msg("key bindings grabbed")
	return errors.Join(errs...)
}

func (c *Conn) lookup(state uint16, code xproto.Keycode) (types.Command, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cmd, ok := c.keys[chord{mods: cleanMods(state), code: code}]
	return cmd, ok
}

// cleanMods drops the lock modifiers keybind grabs around, so a binding
// fires whether or not caps or num lock is on
func cleanMods(state uint16) uint16 {
	for _, m := range xevent.IgnoreMods {
		state &^= m
	}
	return state
}
