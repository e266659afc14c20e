package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFormat(); err != nil {
		return err
	}
	if err := c.validateStudies(); err != nil {
		return err
	}
	if err := c.validateIntake(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateFormat() error {
	switch c.Format.ReadRevision {
	case "v4", "strict", "legacy":
		return nil
	default:
		return fmt.Errorf("format.read_revision: unsupported value %q (want v4, strict, or legacy)", c.Format.ReadRevision)
	}
}

func (c *Config) validateStudies() error {
	if len(c.Studies) == 0 {
		return errors.New("studies: at least one study must be configured")
	}
	seen := make(map[string]struct{}, len(c.Studies))
	for i, s := range c.Studies {
		if s.Kind == "" {
			return fmt.Errorf("studies[%d].kind must be set", i)
		}
		if _, dup := seen[s.Kind]; dup {
			return fmt.Errorf("studies: kind %q is listed more than once", s.Kind)
		}
		seen[s.Kind] = struct{}{}
		if len(s.Columns) == 0 {
			return fmt.Errorf("studies[%d] (%s): columns must list at least one column", i, s.Kind)
		}
	}
	return nil
}

// validateIntake rejects date layouts that would add fields to the PLAY_ID
// value or render no date at all.
func (c *Config) validateIntake() error {
	layout := c.Intake.DateLayout
	if strings.ContainsAny(layout, ",()") {
		return fmt.Errorf("intake.date_layout: %q must not contain commas or parentheses", layout)
	}
	sample := time.Date(2018, time.March, 10, 0, 0, 0, 0, time.UTC)
	if sample.Format(layout) == layout {
		return fmt.Errorf("intake.date_layout: %q has no date elements", layout)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
