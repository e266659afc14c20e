package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"playmate/internal/config"
	"playmate/internal/fileutil"
	"playmate/internal/headerrule"
	"playmate/internal/journal"
	"playmate/internal/logging"
	"playmate/internal/merge"
	"playmate/internal/opf"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger writes to the log file, and to stderr as well with --verbose.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		if c.verboseFlag != nil && *c.verboseFlag {
			c.logger, c.loggerErr = logging.NewFromConfig(cfg)
			return
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:       cfg.Logging.Level,
			Format:      cfg.Logging.Format,
			OutputPaths: []string{filepath.Join(cfg.Paths.LogDir, logging.LogFileName)},
		})
	})
	return c.logger, c.loggerErr
}

// readFormat resolves the configured revision, swapping in the header rule
// when one is set.
func (c *commandContext) readFormat() (opf.Format, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return opf.Format{}, err
	}
	return formatFromConfig(cfg)
}

func formatFromConfig(cfg *config.Config) (opf.Format, error) {
	format, err := opf.LookupFormat(cfg.Format.ReadRevision)
	if err != nil {
		return opf.Format{}, fmt.Errorf("format.read_revision: %w", err)
	}
	if cfg.Format.HeaderRule == "" {
		return format, nil
	}
	rule, err := headerrule.Compile(cfg.Format.HeaderRule)
	if err != nil {
		return opf.Format{}, fmt.Errorf("format.header_rule: %w", err)
	}
	return rule.Format(format), nil
}

func (c *commandContext) registry() (*merge.Registry, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return merge.RegistryFromConfig(cfg)
}

// loadedDocument is a document read from disk with the lines the parser dropped.
type loadedDocument struct {
	path    string
	doc     *opf.Document
	dropped []opf.Diagnostic
}

func (c *commandContext) readDocument(path string) (*loadedDocument, error) {
	format, err := c.readFormat()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	loaded := &loadedDocument{path: expanded}
	doc, err := fileutil.ReadOPF(expanded,
		opf.WithFormat(format),
		opf.WithLogger(logger),
		opf.WithDiagnostics(func(d opf.Diagnostic) {
			loaded.dropped = append(loaded.dropped, d)
		}),
	)
	if err != nil {
		return nil, err
	}
	loaded.doc = doc
	return loaded, nil
}

// outputDir picks the --out flag, then paths.output_dir, then the directory
// of the input file.
func (c *commandContext) outputDir(flagValue, inputPath string) (string, error) {
	if dir := strings.TrimSpace(flagValue); dir != "" {
		return config.ExpandPath(dir)
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if cfg.Paths.OutputDir != "" {
		return cfg.Paths.OutputDir, nil
	}
	return filepath.Dir(inputPath), nil
}

// recordRun journals a run when the journal is enabled. Journal failures are
// logged and do not fail the command.
func (c *commandContext) recordRun(ctx context.Context, entry journal.Entry) {
	cfg, err := c.ensureConfig()
	if err != nil || !cfg.Journal.Enabled {
		return
	}
	logger, _ := c.ensureLogger()
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "journal"))

	store, err := journal.Open(cfg)
	if err != nil {
		logging.WarnWithContext(logger, "journal unavailable", "journal_open_failed",
			logging.Error(err),
			logging.Impact("run not recorded in history"))
		return
	}
	defer store.Close()
	if _, err := store.Record(ctx, entry); err != nil {
		logging.WarnWithContext(logger, "journal write failed", "journal_write_failed",
			logging.Error(err),
			logging.Impact("run not recorded in history"))
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
