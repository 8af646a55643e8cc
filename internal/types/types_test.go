package types

import "testing"

func TestRectInset(t *testing.T) {
	tests := []struct {
		name  string
		rect  Rect
		inset int
		want  Rect
	}{
		{"plain", Rect{X: 0, Y: 0, Width: 104, Height: 54}, 2, Rect{X: 2, Y: 2, Width: 100, Height: 50}},
		{"zero inset", Rect{X: 5, Y: 5, Width: 10, Height: 10}, 0, Rect{X: 5, Y: 5, Width: 10, Height: 10}},
		{"clamps to zero", Rect{X: 0, Y: 0, Width: 3, Height: 1}, 2, Rect{X: 2, Y: 2, Width: 0, Height: 0}},
		{"outset", Rect{X: 0, Y: 0, Width: 1920, Height: 1080}, -2, Rect{X: -2, Y: -2, Width: 1924, Height: 1084}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.inset); got != tt.want {
				t.Errorf("Inset(%d) = %+v, want %+v", tt.inset, got, tt.want)
			}
		})
	}
}

func TestOrientation(t *testing.T) {
	if Horizontal.Orthogonal() != Vertical {
		t.Errorf("Horizontal.Orthogonal() = %v, want vertical", Horizontal.Orthogonal())
	}
	if Vertical.Orthogonal() != Horizontal {
		t.Errorf("Vertical.Orthogonal() = %v, want horizontal", Vertical.Orthogonal())
	}

	tests := []struct {
		width, height int
		want          Orientation
	}{
		{1920, 1080, Horizontal},
		{1080, 1920, Vertical},
		{1000, 1000, Horizontal},
	}
	for _, tt := range tests {
		if got := OrientationFor(tt.width, tt.height); got != tt.want {
			t.Errorf("OrientationFor(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirLeft, "left"},
		{DirRight, "right"},
		{DirUp, "up"},
		{DirDown, "down"},
		{Direction(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.dir.String(); got != tt.want {
				t.Errorf("Direction.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionAxisAndOrder(t *testing.T) {
	tests := []struct {
		dir   Direction
		axis  Orientation
		order Order
	}{
		{DirLeft, Horizontal, Backward},
		{DirRight, Horizontal, Forward},
		{DirUp, Vertical, Backward},
		{DirDown, Vertical, Forward},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Axis(); got != tt.axis {
				t.Errorf("Axis() = %v, want %v", got, tt.axis)
			}
			if got := tt.dir.Order(); got != tt.order {
				t.Errorf("Order() = %v, want %v", got, tt.order)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		wantDir Direction
		wantOK  bool
	}{
		{"left", DirLeft, true},
		{"right", DirRight, true},
		{"up", DirUp, true},
		{"down", DirDown, true},
		{"invalid", 0, false},
		{"LEFT", 0, false}, // case sensitive
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			gotDir, gotOK := ParseDirection(tt.input)
			if gotDir != tt.wantDir || gotOK != tt.wantOK {
				t.Errorf("ParseDirection(%q) = (%v, %v), want (%v, %v)",
					tt.input, gotDir, gotOK, tt.wantDir, tt.wantOK)
			}
		})
	}
}

func TestMaskValues(t *testing.T) {
	// Must match the X11 core protocol bit positions
	if MaskEnterWindow != 0x10 {
		t.Errorf("MaskEnterWindow = %#x, want 0x10", MaskEnterWindow)
	}
	if MaskStructureNotify != 0x20000 {
		t.Errorf("MaskStructureNotify = %#x, want 0x20000", MaskStructureNotify)
	}
	if RootEventMask != 0xa0000 {
		t.Errorf("RootEventMask = %#x, want 0xa0000", RootEventMask)
	}
	if MaskSubstructureNotify != 0x80000 {
		t.Errorf("MaskSubstructureNotify = %#x, want 0x80000", MaskSubstructureNotify)
	}
	if MaskFocusChange != 0x200000 {
		t.Errorf("MaskFocusChange = %#x, want 0x200000", MaskFocusChange)
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		cmd    Command
		valid  bool
		dir    Direction
		hasDir bool
	}{
		{CmdExit, true, 0, false},
		{CmdFocusLeft, true, DirLeft, true},
		{CmdFocusDown, true, DirDown, true},
		{CmdMoveUp, true, DirUp, true},
		{CmdMoveRight, true, DirRight, true},
		{"focus-", false, 0, false},
		{"focus-sideways", false, 0, false},
		{"launch", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.cmd), func(t *testing.T) {
			if got := tt.cmd.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
			dir, ok := tt.cmd.Direction()
			if ok != tt.hasDir || dir != tt.dir {
				t.Errorf("Direction() = (%v, %v), want (%v, %v)", dir, ok, tt.dir, tt.hasDir)
			}
		})
	}
}
