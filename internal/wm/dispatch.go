package wm

import (
	"errors"
	"fmt"

	"github.com/yourusername/matrix/internal/event"
	"github.com/yourusername/matrix/internal/logging"
	"github.com/yourusername/matrix/internal/tree"
	"github.com/yourusername/matrix/internal/types"
)

// ErrExit is returned by Handle when the exit command runs
var ErrExit = errors.New("wm: exit requested")

// Handle dispatches one event. Only ErrExit and errors that leave the Space
// unusable are returned; failed display requests are logged and skipped.
func (s *Space) Handle(ev event.Event) error {
	logging.Debug().Str("event", string(ev.Kind)).Uint32("window", uint32(ev.Window)).Msg("dispatch")

	switch ev.Kind {
	case event.Mapped:
		return s.Map(ev.Window, ev.OverrideRedirect)
	case event.Unmapped:
		return s.Unmap(ev.Window)
	case event.FocusChanged:
		s.FocusChanged(ev.Window)
	case event.PointerEntered:
		s.PointerEntered(ev.Window)
	case event.Command:
		return s.Exec(ev.Command)
	case event.Reload:
		if ev.Config == nil {
			return nil
		}
		if err := s.Apply(ev.Config); err != nil {
			logging.Warn().Err(err).Msg("config reload rejected")
		}
	default:
		logging.Debug().Str("event", string(ev.Kind)).Msg("unknown event kind")
	}
	return nil
}

// Map starts managing w. Override-redirect windows and windows already
// managed are ignored. The new leaf is placed right after the focused leaf
// and receives focus.
func (s *Space) Map(w types.Window, overrideRedirect bool) error {
	if overrideRedirect {
		logging.Debug().Uint32("window", uint32(w)).Msg("ignoring override-redirect window")
		return nil
	}
	if _, ok := s.leaves[w]; ok {
		logging.Debug().Uint32("window", uint32(w)).Msg("window already managed")
		return nil
	}

	if err := s.conn.SetBorderWidth(w, s.border()); err != nil {
		logging.Warn().Err(err).Uint32("window", uint32(w)).Msg("set border width failed")
	}
	if err := s.conn.SelectInput(w, types.LeafEventMask); err != nil {
		logging.Warn().Err(err).Uint32("window", uint32(w)).Msg("select input failed")
	}

	leaf := tree.NewLeaf(w)
	s.leaves[w] = leaf

	if s.tree.Empty() {
		if err := s.tree.Plant(leaf); err != nil {
			delete(s.leaves, w)
			return fmt.Errorf("plant window %d: %w", w, err)
		}
		s.view = leaf
		if err := s.Refresh(); err != nil {
			logging.Warn().Err(err).Msg("refresh failed")
		}
	} else {
		target := s.chain.Focused()
		if target == nil {
			target = tree.ActiveLeaf(s.view)
		}
		joined, err := s.place(leaf, target)
		if err != nil {
			delete(s.leaves, w)
			return fmt.Errorf("join window %d: %w", w, err)
		}
		s.relayout(joined)
	}

	logging.Info().Uint32("window", uint32(w)).Int("managed", len(s.leaves)).Msg("window mapped")
	s.setFocus(leaf, true)
	s.record()
	return nil
}

// place inserts leaf directly after target and returns the node to lay out
// again. Only a lone root leaf is split into a new branch; anywhere else
// leaf becomes target's next sibling.
func (s *Space) place(leaf, target *tree.Leaf) (tree.Node, error) {
	p := target.Parent()
	if p == nil {
		b, err := s.tree.Join(leaf, target, types.Forward)
		if err != nil {
			return nil, err
		}
		if s.view == tree.Node(target) {
			s.view = b
		}
		return b, nil
	}

	if _, err := s.tree.Join(leaf, p, types.Forward); err != nil {
		return nil, err
	}
	s.tree.Move(leaf, target, types.Forward)
	return p, nil
}

// Unmap stops managing w. The tree is collapsed around the removed leaf and
// the affected subtree is laid out again. If w had focus, focus moves to the
// leaf the view's active path now leads to.
func (s *Space) Unmap(w types.Window) error {
	leaf, ok := s.leaves[w]
	if !ok {
		logging.Debug().Uint32("window", uint32(w)).Msg("unmap of unmanaged window")
		return nil
	}
	wasFocused := s.chain.Focused() == leaf
	wasView := s.view == tree.Node(leaf)

	affected, err := s.tree.Quit(leaf)
	if err != nil {
		return fmt.Errorf("quit window %d: %w", w, err)
	}
	if err := s.destroyLeaf(leaf); err != nil {
		return err
	}

	if wasView || !s.tree.Attached(s.view) {
		s.view = s.tree.Root()
	}
	if affected != nil {
		s.relayout(affected)
	}

	logging.Info().Uint32("window", uint32(w)).Int("managed", len(s.leaves)).Msg("window unmapped")
	if wasFocused {
		s.setFocus(nil, true)
		s.record()
	}
	if s.tree.Root() == nil {
		// nothing is left on screen to cause enter events
		s.gate.Reset()
	}
	return nil
}

// FocusChanged handles a focus-in notification for w
func (s *Space) FocusChanged(w types.Window) {
	s.follow(w, "focus-changed")
}

// PointerEntered handles the pointer crossing into w. It is ignored when
// focus does not follow the mouse.
func (s *Space) PointerEntered(w types.Window) {
	if !s.settings.FocusFollowsMouse {
		return
	}
	s.follow(w, "pointer-entered")
}

// follow moves the highlight to w unless the event was caused by the
// program's own last change
func (s *Space) follow(w types.Window, kind string) {
	leaf, ok := s.leaves[w]
	if !ok {
		logging.Debug().Str("event", kind).Uint32("window", uint32(w)).Msg("event for unmanaged window")
		return
	}
	if s.gate.Check() {
		logging.Debug().Str("event", kind).Uint32("window", uint32(w)).Msg("pointer unchanged, ignoring")
		return
	}
	s.setFocus(leaf, false)
}
