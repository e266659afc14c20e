package merge

import (
	"context"
	"log/slog"

	"playmate/internal/logging"
	"playmate/internal/opf"
)

// Engine runs merges against a study registry and logs each run.
type Engine struct {
	registry *Registry
	logger   *slog.Logger
}

// NewEngine wires a registry and logger. A nil logger discards output.
func NewEngine(registry *Registry, logger *slog.Logger) *Engine {
	return &Engine{
		registry: registry,
		logger:   logging.NewComponentLogger(logger, "merge"),
	}
}

// Run merges source into template for the study named by kind.
func (e *Engine) Run(ctx context.Context, kind string, source, template *opf.Document) (*Result, error) {
	logger := logging.WithContext(ctx, e.logger)
	study, err := e.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}
	logger = logger.With(logging.String(logging.FieldStudy, string(study.Kind)))

	res, err := Apply(source, template, study)
	if err != nil {
		logging.ErrorWithContext(logger, "merge failed", "merge_failed",
			logging.Document(documentName(source)),
			logging.String("template", documentName(template)),
			logging.Error(err),
			logging.Hint(errorHint(err)))
		return nil, err
	}
	logger.Info("merged",
		logging.Document(res.Document.Name),
		logging.String("source", source.Name),
		logging.String("template", template.Name),
		logging.String("onset", res.Anchor.Onset),
		logging.String("offset", res.Anchor.Offset),
		logging.Int("placeholders", res.Placeholders),
		logging.Int("realigned", res.Realigned))
	return res, nil
}

func errorHint(err error) string {
	switch opf.Kind(err) {
	case opf.KindConfiguration:
		return "add the missing column to the study template"
	case opf.KindNotFound:
		return "check that the source is a completed intake file"
	default:
		return "check that the source PLAY_ID column has a cell"
	}
}

func documentName(d *opf.Document) string {
	if d == nil {
		return ""
	}
	return d.Name
}
