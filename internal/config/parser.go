package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	hexPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 ]*$`)
)

// ParseColor parses a color setting.
// Supported formats:
//   - "#rrggbb", "#rgb" - Hex RGB
//   - "gray30", "dark slate gray" - X color database names
func ParseColor(s string) (ColorSpec, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		if !hexPattern.MatchString(s) {
			return ColorSpec{}, fmt.Errorf("invalid hex color: %q", s)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return ColorSpec{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return ColorSpec{Name: s, Hex: true, R: r, G: g, B: b}, nil
	}

	if !namePattern.MatchString(s) {
		return ColorSpec{}, fmt.Errorf("invalid color name: %q", s)
	}
	return ColorSpec{Name: s}, nil
}
