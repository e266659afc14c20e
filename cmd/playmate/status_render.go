package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"playmate/internal/opf"
)

type severity int

const (
	severityInfo severity = iota
	severityOK
	severityWarn
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

const statusLabelWidth = 14

var severityStyles = map[severity]struct{ tag, color string }{
	severityInfo: {"INFO", ansiCyan},
	severityOK:   {"OK", ansiGreen},
	severityWarn: {"WARN", ansiYellow},
}

// statusWriter prints aligned "label: [TAG] message" lines, colored when the
// destination is a terminal.
type statusWriter struct {
	out   io.Writer
	color bool
}

func newStatusWriter(out io.Writer) *statusWriter {
	return &statusWriter{out: out, color: shouldColorize(out)}
}

func (w *statusWriter) line(label string, sev severity, format string, args ...any) {
	fmt.Fprintln(w.out, formatStatus(label, sev, fmt.Sprintf(format, args...), w.color))
}

func (w *statusWriter) info(label, format string, args ...any) {
	w.line(label, severityInfo, format, args...)
}

func (w *statusWriter) ok(label, format string, args ...any) {
	w.line(label, severityOK, format, args...)
}

// dropped reports each db line the parser skipped.
func (w *statusWriter) dropped(diags []opf.Diagnostic) {
	for _, d := range diags {
		w.line(fmt.Sprintf("line %d", d.Line), severityWarn, "%v", d.Err)
	}
}

func formatStatus(label string, sev severity, message string, colorize bool) string {
	style := severityStyles[sev]
	line := fmt.Sprintf("  %-*s [%s]", statusLabelWidth, label+":", style.tag)
	if message != "" {
		line += " " + message
	}
	if colorize {
		return style.color + line + ansiReset
	}
	return line
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
