package testsupport

import (
	"path/filepath"
	"testing"

	"playmate/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Journal.Path = filepath.Join(base, "state", "journal.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithReadRevision selects the db read revision.
func WithReadRevision(revision string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Format.ReadRevision = revision
	}
}

// WithHeaderRule sets an expr header rule.
func WithHeaderRule(rule string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Format.HeaderRule = rule
	}
}

// WithoutJournal disables run journaling.
func WithoutJournal() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Journal.Enabled = false
	}
}

// WithStudies replaces the configured studies.
func WithStudies(studies ...config.Study) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Studies = studies
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
