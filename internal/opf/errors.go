package opf

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEntry     = errors.New("missing archive entry")
	ErrMalformedLine    = errors.New("malformed line")
	ErrDuplicateColumn  = errors.New("duplicate column")
	ErrMissingColumn    = errors.New("missing column")
	ErrInvalidCellShape = errors.New("invalid cell shape")
)

// Error kinds reported through ErrorKind. Callers map these to exit codes or
// review states without string matching.
const (
	KindNotFound      = "not_found"
	KindValidation    = "validation"
	KindConfiguration = "configuration"
)

// ErrorClassifier is implemented by every typed error in this package.
type ErrorClassifier interface {
	ErrorKind() string
}

// Kind returns the classification of err, or "" when err carries none.
func Kind(err error) string {
	var classifier ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	return ""
}

// MissingEntryError reports an archive that is unreadable or lacks a required entry.
type MissingEntryError struct {
	Name string
	Err  error
}

func (e *MissingEntryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", ErrMissingEntry, e.Name, e.Err)
	}
	return fmt.Sprintf("%s %q", ErrMissingEntry, e.Name)
}

func (e *MissingEntryError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMissingEntry}
	}
	return []error{ErrMissingEntry, e.Err}
}

func (e *MissingEntryError) ErrorKind() string { return KindNotFound }

// MalformedLineError describes a db line that matched no grammar rule.
type MalformedLineError struct {
	Line    int
	Content string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s %d: %q", ErrMalformedLine, e.Line, e.Content)
}

func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedLine }

func (e *MalformedLineError) ErrorKind() string { return KindValidation }

// InvalidCellShapeError describes a line inside a column with too few
// comma-separated fields to form a cell.
type InvalidCellShapeError struct {
	Line    int
	Content string
}

func (e *InvalidCellShapeError) Error() string {
	return fmt.Sprintf("%s on line %d: %q needs at least %d comma-separated fields", ErrInvalidCellShape, e.Line, e.Content, minCellFields)
}

func (e *InvalidCellShapeError) Is(target error) bool { return target == ErrInvalidCellShape }

func (e *InvalidCellShapeError) ErrorKind() string { return KindValidation }

// DuplicateColumnError reports a second column whose name folds to an existing one.
type DuplicateColumnError struct {
	Name     string
	Document string
}

func (e *DuplicateColumnError) Error() string {
	if e.Document == "" {
		return fmt.Sprintf("%s %q", ErrDuplicateColumn, e.Name)
	}
	return fmt.Sprintf("%s %q in %s", ErrDuplicateColumn, e.Name, e.Document)
}

func (e *DuplicateColumnError) Is(target error) bool { return target == ErrDuplicateColumn }

func (e *DuplicateColumnError) ErrorKind() string { return KindValidation }

// Origin says which side of an operation a missing column was expected on.
type Origin string

const (
	OriginDocument Origin = ""
	OriginSource   Origin = "source"
	OriginTemplate Origin = "template"
)

// MissingColumnError reports a lookup of a column that does not exist. A
// template origin marks a template-definition problem rather than bad data.
type MissingColumnError struct {
	Name     string
	Document string
	Origin   Origin
}

func (e *MissingColumnError) Error() string {
	where := e.Document
	if where == "" {
		where = "document"
	}
	switch e.Origin {
	case OriginSource:
		return fmt.Sprintf("%s %q: source document %s does not carry it", ErrMissingColumn, e.Name, where)
	case OriginTemplate:
		return fmt.Sprintf("%s %q: template %s does not declare it (fix the study template)", ErrMissingColumn, e.Name, where)
	default:
		return fmt.Sprintf("%s %q in %s", ErrMissingColumn, e.Name, where)
	}
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingColumn }

func (e *MissingColumnError) ErrorKind() string {
	if e.Origin == OriginTemplate {
		return KindConfiguration
	}
	return KindNotFound
}
