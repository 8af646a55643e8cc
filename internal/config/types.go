package config

import "github.com/yourusername/matrix/internal/types"

// Config is the root configuration structure
type Config struct {
	Settings Settings  `yaml:"settings" json:"settings"`
	Bindings []Binding `yaml:"bindings" json:"bindings"`
}

// Settings contains the window manager appearance and focus behavior
type Settings struct {
	BorderWidth       int    `yaml:"border_width" json:"border_width"`
	NormalColor       string `yaml:"normal_color" json:"normal_color"`
	FocusedColor      string `yaml:"focused_color" json:"focused_color"`
	FocusFollowsMouse bool   `yaml:"focus_follows_mouse" json:"focus_follows_mouse"`
}

// Binding maps a key chord such as "Mod4-Shift-h" to a command
type Binding struct {
	Key     string        `yaml:"key" json:"key"`
	Command types.Command `yaml:"command" json:"command"`
}

// ColorSpec is a parsed color setting. Hex colors carry their RGB value;
// anything else is a name for the X server to look up.
type ColorSpec struct {
	Name string
	Hex  bool
	R    uint8
	G    uint8
	B    uint8
}

// Pixel packs a hex color as 0xRRGGBB
func (c ColorSpec) Pixel() types.Color {
	return types.Color(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}
