package reconcile

import (
	"testing"

	"github.com/yourusername/matrix/internal/config"
	"github.com/yourusername/matrix/internal/sim"
	"github.com/yourusername/matrix/internal/types"
	"github.com/yourusername/matrix/internal/wm"
)

func newSpace(t *testing.T) *wm.Space {
	t.Helper()
	s, err := wm.New(sim.New(1920, 1080), config.Default().Settings)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSyncAdoptsTileableWindows(t *testing.T) {
	s := newSpace(t)

	windows := []WindowInfo{
		{Window: 10, Viewable: true},
		{Window: 11, Viewable: true, OverrideRedirect: true},
		{Window: 12, Viewable: false},
		{Window: 13, Viewable: true},
	}

	res, err := Sync(windows, s)
	if err != nil {
		t.Fatalf("Sync() error: %v", err)
	}
	if len(res.Adopted) != 2 || res.Adopted[0] != 10 || res.Adopted[1] != 13 {
		t.Errorf("Adopted = %v, want [10 13]", res.Adopted)
	}
	if len(res.Dropped) != 0 {
		t.Errorf("Dropped = %v, want none", res.Dropped)
	}
	if got := wm.Shape(s.Root()); got != "(10 13)" {
		t.Errorf("shape = %s, want (10 13)", got)
	}
}

func TestSyncDropsVanishedWindows(t *testing.T) {
	s := newSpace(t)
	for _, w := range []types.Window{1, 2, 3} {
		s.Map(w, false)
	}

	res, err := Sync([]WindowInfo{{Window: 1, Viewable: true}, {Window: 3, Viewable: true}}, s)
	if err != nil {
		t.Fatalf("Sync() error: %v", err)
	}
	if len(res.Dropped) != 1 || res.Dropped[0] != 2 {
		t.Errorf("Dropped = %v, want [2]", res.Dropped)
	}
	if len(res.Adopted) != 0 {
		t.Errorf("Adopted = %v, want none", res.Adopted)
	}
	managed := s.Managed()
	if len(managed) != 2 || managed[0] != 1 || managed[1] != 3 {
		t.Errorf("managed = %v, want [1 3]", managed)
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	s := newSpace(t)
	windows := []WindowInfo{{Window: 1, Viewable: true}, {Window: 2, Viewable: true}}

	Sync(windows, s)
	res, _ := Sync(windows, s)
	if len(res.Adopted) != 0 || len(res.Dropped) != 0 {
		t.Errorf("second Sync changed %+v", res)
	}
}
