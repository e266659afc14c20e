package opf

import (
	"fmt"
	"log/slog"

	"playmate/internal/logging"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	format       Format
	logger       *slog.Logger
	onDiagnostic func(Diagnostic)
}

// WithFormat selects the read revision.
func WithFormat(f Format) Option {
	return func(o *loadOptions) {
		o.format = f
	}
}

// WithLogger logs dropped lines at WARN.
func WithLogger(logger *slog.Logger) Option {
	return func(o *loadOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDiagnostics receives every dropped line.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(o *loadOptions) {
		o.onDiagnostic = fn
	}
}

// Load decodes an OPF archive. name becomes the document name.
func Load(name string, data []byte, opts ...Option) (*Document, error) {
	o := loadOptions{format: FormatV4, logger: logging.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	logger := logging.NewComponentLogger(o.logger, "opf")

	container, err := OpenContainer(data)
	if err != nil {
		return nil, err
	}
	lines, err := container.ReadLines(EntryDB)
	if err != nil {
		return nil, err
	}
	project, err := container.ReadText(EntryProject)
	if err != nil {
		return nil, err
	}

	result, err := o.format.ParseLines(name, lines)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	for _, diag := range result.Diagnostics {
		logging.WarnWithContext(logger, "dropped db line", "opf_line_dropped",
			logging.Document(name),
			logging.Int("line", diag.Line),
			logging.String("content", diag.Content),
			logging.Error(diag.Err),
			logging.Hint("check the line in the db entry"),
			logging.Impact("line omitted from the document"))
		if o.onDiagnostic != nil {
			o.onDiagnostic(diag)
		}
	}

	doc := result.Document
	doc.Project = project
	logger.Debug("loaded document",
		logging.Document(name),
		logging.String("format", o.format.Name),
		logging.Int("columns", doc.Len()),
		logging.Int("dropped_lines", len(result.Diagnostics)))
	return doc, nil
}

// Save encodes d as an OPF archive.
func Save(d *Document) ([]byte, error) {
	data, err := WriteContainer(DBText(d), d.Project)
	if err != nil {
		return nil, fmt.Errorf("save %s: %w", d.Name, err)
	}
	return data, nil
}
