// Package logging assembles the structured slog loggers used by playmate.
//
// It owns the console and JSON handlers, level parsing, and output routing
// (stdout, stderr, and an optional playmate.log file under the configured log
// directory). Helpers tag records with a component name and the run ID carried
// in a context so one merge or intake run can be followed across packages.
// NewNop gives tests and library callers a logger that discards everything.
package logging
