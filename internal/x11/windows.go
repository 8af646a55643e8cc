package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/reconcile"
	"github.com/yourusername/matrix/internal/types"
)

// Windows lists the children of the root window in stacking order, bottom
// first. Windows that vanish while being queried are skipped.
func (c *Conn) Windows() ([]reconcile.WindowInfo, error) {
	tree, err := xproto.QueryTree(c.c, c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("query tree: %w", err)
	}

	cookies := make([]xproto.GetWindowAttributesCookie, len(tree.Children))
	for i, w := range tree.Children {
		cookies[i] = xproto.GetWindowAttributes(c.c, w)
	}

	out := make([]reconcile.WindowInfo, 0, len(tree.Children))
	for i, cookie := range cookies {
		attrs, err := cookie.Reply()
		if err != nil {
			logging.Debug().Err(err).Uint32("window", uint32(tree.Children[i])).Msg("window attributes unavailable")
			continue
		}
		out = append(out, reconcile.WindowInfo{
			Window:           types.Window(tree.Children[i]),
			OverrideRedirect: attrs.OverrideRedirect,
			Viewable:         attrs.MapState == xproto.MapStateViewable,
		})
	}
	return out, nil
}
