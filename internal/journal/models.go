package journal

import "time"

// Operation names a journaled command.
type Operation string

const (
	OperationMerge     Operation = "merge"
	OperationIntake    Operation = "intake"
	OperationNormalize Operation = "normalize"
)

// Status is the outcome of a run.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Entry is one journaled run.
type Entry struct {
	ID           int64
	RunID        string
	Operation    Operation
	Status       Status
	Study        string
	SourcePath   string
	TemplatePath string
	OutputPath   string
	DroppedLines int
	ErrorMessage string
	CreatedAt    time.Time
}

// Failed reports whether the run ended in error.
func (e Entry) Failed() bool {
	return e.Status == StatusFailed
}
