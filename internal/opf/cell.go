package opf

import "strings"

const (
	DefaultOnset  = "00:00:00:000"
	DefaultOffset = "00:00:00:000"
	// DefaultValue is the model form of an empty cell; it renders as "()".
	DefaultValue = ""
)

// Cell is one time-coded observation. Value holds the comma-joined fields
// without the enclosing parentheses.
type Cell struct {
	Onset  string
	Offset string
	Value  string
}

// NewCell builds a cell, substituting the package defaults for empty parts.
func NewCell(onset, offset, value string) Cell {
	if onset == "" {
		onset = DefaultOnset
	}
	if offset == "" {
		offset = DefaultOffset
	}
	if value == "" {
		value = DefaultValue
	}
	return Cell{Onset: onset, Offset: offset, Value: value}
}

// PlaceholderCell returns a cell with width empty fields, e.g. "(,,)" for 3.
func PlaceholderCell(width int, onset, offset string) Cell {
	if width < 1 {
		width = 1
	}
	return NewCell(onset, offset, strings.Repeat(",", width-1))
}

// Fields splits the value on commas.
func (c Cell) Fields() []string {
	return strings.Split(c.Value, ",")
}

// String renders the cell in db line form.
func (c Cell) String() string {
	var b strings.Builder
	b.Grow(len(c.Onset) + len(c.Offset) + len(c.Value) + 4)
	b.WriteString(c.Onset)
	b.WriteByte(',')
	b.WriteString(c.Offset)
	b.WriteString(",(")
	b.WriteString(c.Value)
	b.WriteByte(')')
	return b.String()
}

// stripParens removes one pair of enclosing parentheses when both are present.
func stripParens(value string) string {
	if len(value) >= 2 && value[0] == '(' && value[len(value)-1] == ')' {
		return value[1 : len(value)-1]
	}
	return value
}
