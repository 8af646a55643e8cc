package x11

import (
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/yourusername/matrix/internal/event"
	"github.com/yourusername/matrix/internal/types"
)

func TestCoord(t *testing.T) {
	tests := []struct {
		in   int
		want uint32
	}{
		{0, 0},
		{400, 400},
		{-2, 0xfffffffe},
	}
	for _, tt := range tests {
		if got := coord(tt.in); got != tt.want {
			t.Errorf("coord(%d) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestScale(t *testing.T) {
	if got := scale(0xff); got != 0xffff {
		t.Errorf("scale(0xff) = %#x", got)
	}
	if got := scale(0xd7); got != 0xd7d7 {
		t.Errorf("scale(0xd7) = %#x", got)
	}
}

func TestHasAtom(t *testing.T) {
	// WM_TAKE_FOCUS=0x10c, WM_DELETE_WINDOW=0x10b, little endian
	value := []byte{0x0c, 0x01, 0, 0, 0x0b, 0x01, 0, 0}
	if !hasAtom(value, 0x10b) {
		t.Errorf("hasAtom did not find 0x10b")
	}
	if hasAtom(value, 0x10d) {
		t.Errorf("hasAtom found an absent atom")
	}
	if hasAtom(value[:3], 0x10c) {
		t.Errorf("hasAtom read a truncated entry")
	}
}

func TestCleanMods(t *testing.T) {
	super := uint16(xproto.ModMask4)
	tests := []struct {
		state uint16
		want  uint16
	}{
		{super, super},
		{super | xproto.ModMaskLock, super},
		{super | xproto.ModMask2, super},
		{super | xproto.ModMaskShift | xproto.ModMaskLock | xproto.ModMask2, super | xproto.ModMaskShift},
	}
	for _, tt := range tests {
		if got := cleanMods(tt.state); got != tt.want {
			t.Errorf("cleanMods(%#x) = %#x, want %#x", tt.state, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	const root xproto.Window = 0x100
	c := &Conn{
		root: root,
		keys: map[chord]types.Command{
			{mods: xproto.ModMask4, code: 43}: types.CmdFocusLeft,
		},
	}

	tests := []struct {
		name string
		in   xgb.Event
		want event.Event
		ok   bool
	}{
		{"map on root", xproto.MapNotifyEvent{Event: root, Window: 7}, event.Event{Kind: event.Mapped, Window: 7}, true},
		{"override map", xproto.MapNotifyEvent{Event: root, Window: 8, OverrideRedirect: true},
			event.Event{Kind: event.Mapped, Window: 8, OverrideRedirect: true}, true},
		{"map elsewhere", xproto.MapNotifyEvent{Event: 9, Window: 9}, event.Event{}, false},
		{"unmap", xproto.UnmapNotifyEvent{Event: root, Window: 7}, event.Event{Kind: event.Unmapped, Window: 7}, true},
		{"root resized", xproto.ConfigureNotifyEvent{Event: root, Window: root, Width: 1024, Height: 768},
			event.Event{Kind: event.Command, Command: types.CmdRefresh}, true},
		{"client configured", xproto.ConfigureNotifyEvent{Event: root, Window: 7, Width: 300, Height: 200}, event.Event{}, false},
		{"focus in", xproto.FocusInEvent{Event: 7, Detail: xproto.NotifyDetailNonlinear},
			event.Event{Kind: event.FocusChanged, Window: 7}, true},
		{"focus in pointer", xproto.FocusInEvent{Event: 7, Detail: xproto.NotifyDetailPointer}, event.Event{}, false},
		{"enter", xproto.EnterNotifyEvent{Event: 7, Mode: xproto.NotifyModeNormal},
			event.Event{Kind: event.PointerEntered, Window: 7}, true},
		{"enter from grab", xproto.EnterNotifyEvent{Event: 7, Mode: xproto.NotifyModeUngrab}, event.Event{}, false},
		{"bound key with num lock", xproto.KeyPressEvent{Detail: 43, State: xproto.ModMask4 | xproto.ModMask2},
			event.Event{Kind: event.Command, Command: types.CmdFocusLeft}, true},
		{"unbound key", xproto.KeyPressEvent{Detail: 44, State: xproto.ModMask4}, event.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.translate(tt.in)
			if ok != tt.ok {
				t.Fatalf("translate() ok = %v, want %v", ok, tt.ok)
			}
			got.Timestamp = tt.want.Timestamp
			if got != tt.want {
				t.Errorf("translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
