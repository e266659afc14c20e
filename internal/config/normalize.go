package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.Format.ReadRevision = strings.ToLower(strings.TrimSpace(c.Format.ReadRevision))
	if c.Format.ReadRevision == "" {
		c.Format.ReadRevision = defaultReadRevision
	}
	c.Format.HeaderRule = strings.TrimSpace(c.Format.HeaderRule)
	if strings.TrimSpace(c.Intake.DateLayout) == "" {
		c.Intake.DateLayout = defaultDateLayout
	}
	c.normalizeStudies()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Journal.Path, err = expandPath(strings.TrimSpace(c.Journal.Path)); err != nil {
		return fmt.Errorf("journal.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeStudies() {
	for i := range c.Studies {
		s := &c.Studies[i]
		s.Kind = strings.ToUpper(strings.TrimSpace(s.Kind))
		s.Suffix = strings.TrimSpace(s.Suffix)
		if s.Suffix == "" {
			s.Suffix = strings.ToLower(s.Kind)
		}
		columns := s.Columns[:0]
		for _, col := range s.Columns {
			if col = strings.TrimSpace(col); col != "" {
				columns = append(columns, col)
			}
		}
		s.Columns = columns
	}
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("PLAYMATE_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
