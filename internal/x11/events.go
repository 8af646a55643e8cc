package x11

import (
	"context"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/yourusername/matrix/internal/event"
	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/types"
)

// Events starts a goroutine that reads X events and posts the ones the
// window manager handles onto out. The goroutine exits when the connection
// closes; ctx only stops it from blocking on a full channel.
func (c *Conn) Events(ctx context.Context, out chan<- event.Event) {
	go func() {
		for {
			xev, xerr := c.c.WaitForEvent()
			if xev == nil && xerr == nil {
				logging.Info().Msg("X connection closed")
				return
			}
			if xerr != nil {
				// Requests on windows that vanished race with their unmap
				logging.Debug().Str("error", xerr.Error()).Msg("X error")
				continue
			}

			ev, ok := c.translate(xev)
			if !ok {
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
}

// translate maps an X event to a window manager event
func (c *Conn) translate(xev xgb.Event) (event.Event, bool) {
	switch e := xev.(type) {
	case xproto.MapNotifyEvent:
		if e.Event != c.root {
			return event.Event{}, false
		}
		return event.NewMapped(types.Window(e.Window), e.OverrideRedirect), true

	case xproto.UnmapNotifyEvent:
		if e.Event != c.root {
			return event.Event{}, false
		}
		return event.NewUnmapped(types.Window(e.Window)), true

	case xproto.ConfigureNotifyEvent:
		// Only the root's own geometry matters; clients resizing are
		// reported here too through SubstructureNotify
		if e.Window != c.root {
			return event.Event{}, false
		}
		logging.Info().Uint16("width", e.Width).Uint16("height", e.Height).Msg("display resized")
		return event.NewCommand(types.CmdRefresh), true

	case xproto.FocusInEvent:
		// Focus moving between the root and the pointer window is not
		// a client taking focus
		if e.Detail == xproto.NotifyDetailPointer || e.Detail == xproto.NotifyDetailPointerRoot {
			return event.Event{}, false
		}
		return event.NewFocusChanged(types.Window(e.Event)), true

	case xproto.EnterNotifyEvent:
		if e.Mode != xproto.NotifyModeNormal {
			return event.Event{}, false
		}
		return event.NewPointerEntered(types.Window(e.Event)), true

	case xproto.KeyPressEvent:
		cmd, ok := c.lookup(e.State, e.Detail)
		if !ok {
			return event.Event{}, false
		}
		return event.NewCommand(cmd), true

	case xproto.MappingNotifyEvent:
		logging.Debug().Msg("keyboard mapping changed")
	}
	return event.Event{}, false
}
