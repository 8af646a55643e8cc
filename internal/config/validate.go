package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateSettings(&c.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	keys := make(map[string]bool)
	for i, b := range c.Bindings {
		if err := validateBinding(&b); err != nil {
			return fmt.Errorf("binding %d: %w", i, err)
		}
		if keys[b.Key] {
			return fmt.Errorf("duplicate binding for key: %s", b.Key)
		}
		keys[b.Key] = true
	}

	return nil
}

func validateSettings(s *Settings) error {
	if s.BorderWidth < 0 {
		return fmt.Errorf("border width cannot be negative")
	}
	if s.BorderWidth > MaxBorderWidth {
		return fmt.Errorf("border width %d exceeds %d", s.BorderWidth, MaxBorderWidth)
	}
	if s.NormalColor == "" {
		return fmt.Errorf("missing normal color")
	}
	if s.FocusedColor == "" {
		return fmt.Errorf("missing focused color")
	}
	if _, err := ParseColor(s.NormalColor); err != nil {
		return fmt.Errorf("normal color: %w", err)
	}
	if _, err := ParseColor(s.FocusedColor); err != nil {
		return fmt.Errorf("focused color: %w", err)
	}
	return nil
}

func validateBinding(b *Binding) error {
	if strings.TrimSpace(b.Key) == "" {
		return fmt.Errorf("missing key")
	}
	if !b.Command.Valid() {
		return fmt.Errorf("unknown command: %s", b.Command)
	}
	return nil
}
