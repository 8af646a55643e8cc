package wm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/sim"
	"github.com/yourusername/matrix/internal/tree"
	"github.com/yourusername/matrix/internal/types"
)

const (
	normalPixel  types.Color = 0x4d4d4d
	focusedPixel types.Color = 0xd79921
)

func testSettings() config.Settings {
	return config.Settings{
		BorderWidth:       2,
		NormalColor:       "gray30",
		FocusedColor:      "#d79921",
		FocusFollowsMouse: true,
	}
}

func newSpace(t *testing.T, windows ...types.Window) (*Space, *sim.Conn) {
	t.Helper()
	conn := sim.New(800, 600)
	s, err := New(conn, testSettings())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	for _, w := range windows {
		if err := s.Map(w, false); err != nil {
			t.Fatalf("Map(%d) error: %v", w, err)
		}
	}
	return s, conn
}

// nest moves window w out of its place and into a new branch with window
// onto, then focuses w. Mapping alone only nests the first split.
func nest(t *testing.T, s *Space, w, onto types.Window) {
	t.Helper()
	leaf, ok := s.Leaf(w)
	target, ok2 := s.Leaf(onto)
	if !ok || !ok2 {
		t.Fatalf("nest(%d, %d): window not managed", w, onto)
	}
	if _, err := s.tree.Quit(leaf); err != nil {
		t.Fatalf("Quit(%d) error: %v", w, err)
	}
	if _, err := s.tree.Join(leaf, target, types.Forward); err != nil {
		t.Fatalf("Join(%d, %d) error: %v", w, onto, err)
	}
	s.view = s.tree.Root()
	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh() error: %v", err)
	}
	s.setFocus(leaf, true)
	s.record()
}

func checkInvariants(t *testing.T, s *Space) {
	t.Helper()
	if err := invariants(s); err != nil {
		t.Fatal(err)
	}
}

// invariants checks the tree structure, the registry and the focus path
func invariants(s *Space) error {
	if err := tree.Verify(&s.tree, true); err != nil {
		return fmt.Errorf("tree invariant: %w", err)
	}
	leaves := tree.Leaves(s.tree.Root())
	if len(leaves) != len(s.leaves) {
		return fmt.Errorf("registry has %d windows, tree has %d leaves", len(s.leaves), len(leaves))
	}
	for _, l := range leaves {
		if s.leaves[l.Window()] != l {
			return fmt.Errorf("registry entry for window %d is not its leaf", l.Window())
		}
	}
	if s.view != s.tree.Root() {
		return fmt.Errorf("view is not the root")
	}
	if want := tree.ActiveLeaf(s.view); s.Focused() != want {
		return fmt.Errorf("focused leaf is not the end of the active path")
	}
	return nil
}

func TestNewFailsOnUnknownColor(t *testing.T) {
	settings := testSettings()
	settings.NormalColor = "no such color"
	if _, err := New(sim.New(800, 600), settings); err == nil {
		t.Errorf("New() error = nil, want color failure")
	}
}

func TestFirstWindow(t *testing.T) {
	s, conn := newSpace(t, 1)
	checkInvariants(t, s)

	leaf, ok := s.Leaf(1)
	if !ok {
		t.Fatal("window 1 is not managed")
	}
	if s.Root() != tree.Node(leaf) || s.View() != tree.Node(leaf) || s.Focused() != leaf {
		t.Errorf("leaf 1 should be root, view and focused")
	}

	if conn.BorderWidths[1] != 2 {
		t.Errorf("border width = %d, want 2", conn.BorderWidths[1])
	}
	if conn.Masks[1] != types.LeafEventMask {
		t.Errorf("event mask = %#x, want %#x", conn.Masks[1], types.LeafEventMask)
	}
	// The border of a lone window sits just off screen
	if got, want := conn.Placed[1], (types.Rect{X: -2, Y: -2, Width: 800, Height: 600}); got != want {
		t.Errorf("placement = %+v, want %+v", got, want)
	}
	if conn.Borders[1] != focusedPixel || conn.Focus != 1 {
		t.Errorf("window 1 border %#x focus %d, want focused", conn.Borders[1], conn.Focus)
	}
}

func TestSecondWindow(t *testing.T) {
	s, conn := newSpace(t, 1, 2)
	checkInvariants(t, s)

	root, ok := s.Root().(*tree.Branch)
	if !ok {
		t.Fatalf("root = %T, want branch", s.Root())
	}
	if got := Shape(root); got != "(1 2)" {
		t.Errorf("shape = %s, want (1 2)", got)
	}
	if s.Focused().Window() != 2 {
		t.Errorf("focused = %d, want 2", s.Focused().Window())
	}
	if conn.Borders[1] != normalPixel || conn.Borders[2] != focusedPixel {
		t.Errorf("borders = (%#x, %#x), want (normal, focused)", conn.Borders[1], conn.Borders[2])
	}
	if conn.Focus != 2 {
		t.Errorf("input focus = %d, want 2", conn.Focus)
	}

	want := map[types.Window]types.Rect{
		1: {X: 0, Y: 0, Width: 396, Height: 596},
		2: {X: 400, Y: 0, Width: 396, Height: 596},
	}
	for w, r := range want {
		if conn.Placed[w] != r {
			t.Errorf("window %d placed at %+v, want %+v", w, conn.Placed[w], r)
		}
	}
}

func TestMapPlacesAfterFocused(t *testing.T) {
	s, conn := newSpace(t, 1, 2, 3)
	checkInvariants(t, s)
	if got := Shape(s.Root()); got != "(1 2 3)" {
		t.Fatalf("shape = %s, want (1 2 3)", got)
	}

	// Interior 800 split three ways, last child takes the remainder
	want := map[types.Window]types.Rect{
		1: {X: 0, Y: 0, Width: 262, Height: 596},
		2: {X: 266, Y: 0, Width: 262, Height: 596},
		3: {X: 532, Y: 0, Width: 264, Height: 596},
	}
	for w, r := range want {
		if got := conn.Placed[w]; got != r {
			t.Errorf("window %d placed at %+v, want %+v", w, got, r)
		}
	}

	s.Exec(types.CmdFocusLeft)
	s.Exec(types.CmdFocusLeft)
	if err := s.Map(4, false); err != nil {
		t.Fatalf("Map(4) error: %v", err)
	}
	checkInvariants(t, s)
	if got := Shape(s.Root()); got != "(1 4 2 3)" {
		t.Errorf("shape = %s, want (1 4 2 3)", got)
	}
	if s.Focused().Window() != 4 {
		t.Errorf("focus = %d, want the new window 4", s.Focused().Window())
	}
}

func TestMapInsideColumn(t *testing.T) {
	s, _ := newSpace(t, 1, 2, 3)
	nest(t, s, 3, 2)
	s.Exec(types.CmdFocusUp)

	if err := s.Map(4, false); err != nil {
		t.Fatalf("Map(4) error: %v", err)
	}
	checkInvariants(t, s)
	if got := Shape(s.Root()); got != "(1 [2 4 3])" {
		t.Errorf("shape = %s, want (1 [2 4 3])", got)
	}
}

func TestMapIgnores(t *testing.T) {
	s, conn := newSpace(t, 1)
	conn.Reset()

	s.Map(5, true)
	s.Map(1, false)
	if len(conn.Calls) != 0 {
		t.Errorf("ignored maps issued %v", conn.Calls)
	}
	if _, ok := s.Leaf(5); ok {
		t.Errorf("override-redirect window was managed")
	}
}

func TestRemovalCollapses(t *testing.T) {
	s, conn := newSpace(t, 1, 2, 3)
	if got := Shape(s.Root()); got != "(1 2 3)" {
		t.Fatalf("shape = %s, want (1 2 3)", got)
	}

	if err := s.Unmap(2); err != nil {
		t.Fatalf("Unmap(2) error: %v", err)
	}
	checkInvariants(t, s)
	if got := Shape(s.Root()); got != "(1 3)" {
		t.Errorf("shape = %s, want (1 3)", got)
	}
	if _, ok := s.Leaf(2); ok {
		t.Errorf("window 2 still registered")
	}
	if s.Focused().Window() != 3 {
		t.Errorf("focus moved to %d, want 3 kept", s.Focused().Window())
	}
	// Leaf 3 took over the right half
	if got := conn.Placed[3]; got.Height != 596 || got.X != 400 {
		t.Errorf("window 3 placed at %+v, want the full right half", got)
	}

	if err := s.Unmap(3); err != nil {
		t.Fatalf("Unmap(3) error: %v", err)
	}
	checkInvariants(t, s)
	leaf, _ := s.Leaf(1)
	if s.Root() != tree.Node(leaf) {
		t.Fatalf("root = %s, want leaf 1", Shape(s.Root()))
	}
	if s.Focused() != leaf || conn.Focus != 1 {
		t.Errorf("focus = %v/%d, want window 1 with input focus", s.Focused(), conn.Focus)
	}
	if got, want := conn.Placed[1], (types.Rect{X: -2, Y: -2, Width: 800, Height: 600}); got != want {
		t.Errorf("window 1 placed at %+v, want %+v", got, want)
	}

	if err := s.Unmap(1); err != nil {
		t.Fatalf("Unmap(1) error: %v", err)
	}
	if s.Root() != nil || s.View() != nil || s.Focused() != nil {
		t.Errorf("space not empty after removing every window")
	}
	if err := s.Refresh(); err != nil {
		t.Errorf("Refresh() on empty space error: %v", err)
	}
}

func TestUnmapFocusedMovesFocus(t *testing.T) {
	s, conn := newSpace(t, 1, 2, 3)
	// (1 2 3) focused 3; removing the last child hands focus to its
	// previous sibling
	s.Unmap(3)
	checkInvariants(t, s)
	if s.Focused().Window() != 2 || conn.Focus != 2 {
		t.Errorf("focus = %d (input %d), want 2", s.Focused().Window(), conn.Focus)
	}
	if conn.Borders[2] != focusedPixel {
		t.Errorf("window 2 border = %#x, want focused", conn.Borders[2])
	}
}

func TestUnmapLastWindowClearsGate(t *testing.T) {
	s, conn := newSpace(t, 1)
	if !s.gate.Check() {
		t.Fatalf("gate not armed after mapping")
	}

	s.Unmap(1)
	if s.gate.Check() {
		t.Errorf("gate still armed on an empty space")
	}

	// The next map records again
	s.Map(2, false)
	if !s.gate.Check() {
		t.Errorf("gate not armed after mapping into the empty space")
	}
	if conn.Focus != 2 {
		t.Errorf("input focus = %d, want 2", conn.Focus)
	}
}

func TestUnmapGoneWindow(t *testing.T) {
	s, conn := newSpace(t, 1, 2)
	conn.Gone[2] = true
	if err := s.Unmap(2); err != nil {
		t.Fatalf("Unmap() error: %v", err)
	}
	checkInvariants(t, s)
	if s.Focused().Window() != 1 {
		t.Errorf("focus = %d, want 1", s.Focused().Window())
	}
}

func TestUnknownWindowEventsIgnored(t *testing.T) {
	s, conn := newSpace(t, 1)
	conn.Reset()

	s.Unmap(99)
	s.FocusChanged(99)
	conn.Pointer = types.Point{X: 300, Y: 300}
	s.PointerEntered(99)
	if len(conn.Calls) != 0 {
		t.Errorf("events for an unknown window issued %v", conn.Calls)
	}
}

func TestPointerEnteredIsGated(t *testing.T) {
	s, conn := newSpace(t, 1, 2)

	// Mapping 2 moved window 1 under a still pointer
	s.PointerEntered(1)
	if s.Focused().Window() != 2 {
		t.Fatalf("enter caused by the layout change stole focus")
	}

	conn.Pointer = types.Point{X: 100, Y: 100}
	s.PointerEntered(1)
	if s.Focused().Window() != 1 {
		t.Fatalf("focus = %d after the user moved into 1", s.Focused().Window())
	}
	if conn.Focus != 2 {
		t.Errorf("pointer focus grabbed input focus; want input focus left on 2")
	}
	if conn.Borders[1] != focusedPixel || conn.Borders[2] != normalPixel {
		t.Errorf("borders not swapped after pointer focus")
	}

	// The snapshot was cleared by the failed check, so later events pass
	s.PointerEntered(2)
	if s.Focused().Window() != 2 {
		t.Errorf("second enter ignored; gate should stay open until the next record")
	}
}

func TestFocusChangedIsGated(t *testing.T) {
	s, conn := newSpace(t, 1, 2)

	// Focus-in for 1 raised by our own remap, pointer untouched
	s.FocusChanged(1)
	if s.Focused().Window() != 2 {
		t.Fatalf("focus-in caused by the layout change stole focus")
	}

	conn.Pointer = types.Point{X: 100, Y: 100}
	s.FocusChanged(1)
	if s.Focused().Window() != 1 {
		t.Fatalf("focus = %d after focus-in with a moved pointer", s.Focused().Window())
	}
	if conn.Focus != 2 {
		t.Errorf("focus-in grabbed input focus; want input focus left on 2")
	}
	if conn.Borders[1] != focusedPixel || conn.Borders[2] != normalPixel {
		t.Errorf("borders not swapped after focus-in")
	}
}

func TestFocusFollowsMouseOff(t *testing.T) {
	conn := sim.New(800, 600)
	settings := testSettings()
	settings.FocusFollowsMouse = false
	s, _ := New(conn, settings)
	s.Map(1, false)
	s.Map(2, false)

	conn.Pointer = types.Point{X: 10, Y: 10}
	s.PointerEntered(1)
	if s.Focused().Window() != 2 {
		t.Errorf("pointer enter changed focus with focus_follows_mouse off")
	}
	s.FocusChanged(1)
	if s.Focused().Window() != 1 {
		t.Errorf("focus-in ignored with focus_follows_mouse off")
	}
}

func TestDestroyLeafRefusesAttached(t *testing.T) {
	s, _ := newSpace(t, 1, 2)
	leaf, _ := s.Leaf(1)

	if err := s.destroyLeaf(leaf); !errors.Is(err, tree.ErrParented) {
		t.Fatalf("destroyLeaf(attached) error = %v, want ErrParented", err)
	}
	if _, ok := s.Leaf(1); !ok {
		t.Errorf("refused destroy still unregistered the window")
	}
	checkInvariants(t, s)
}

func TestSnapshot(t *testing.T) {
	s, _ := newSpace(t, 1, 2)
	snap := s.Snapshot()

	if snap.Width != 800 || snap.Height != 600 || snap.Border != 2 {
		t.Errorf("snapshot display = %dx%d border %d", snap.Width, snap.Height, snap.Border)
	}
	if len(snap.Panes) != 2 {
		t.Fatalf("len(Panes) = %d, want 2", len(snap.Panes))
	}
	p := snap.Panes[1]
	if p.Window != 2 || !p.Focused || p.Depth != 1 {
		t.Errorf("pane = %+v, want focused window 2 at depth 1", p)
	}
	if p.Cell.Width != 400 || p.Frame.Width != 396 {
		t.Errorf("pane widths = cell %d frame %d, want 400/396", p.Cell.Width, p.Frame.Width)
	}
	if snap.Shape != "(1 2)" {
		t.Errorf("Shape = %s", snap.Shape)
	}
}
