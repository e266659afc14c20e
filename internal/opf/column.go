package opf

import (
	"fmt"
	"slices"
	"strings"
)

// Column is a named track of cells. Codes describe the shape of each cell's
// value and are only used to size placeholders.
type Column struct {
	Name  string
	Type  string
	Codes []string
	Cells []Cell
}

// NewColumn creates an empty column.
func NewColumn(name, columnType string, codes []string) *Column {
	return &Column{
		Name:  name,
		Type:  columnType,
		Codes: slices.Clone(codes),
	}
}

// ParseColumnHeader splits a header line into a column. The name ends at the
// first space; the code spec splits on its first '-' into type and codes.
func ParseColumnHeader(line string) (*Column, error) {
	name, spec, ok := strings.Cut(line, " ")
	if !ok || name == "" {
		return nil, fmt.Errorf("column header %q: missing name or code spec", line)
	}
	columnType, codes, ok := strings.Cut(spec, "-")
	if !ok {
		return nil, fmt.Errorf("column header %q: code spec lacks '-' separator", line)
	}
	return NewColumn(name, columnType, strings.Split(codes, ",")), nil
}

// Key returns the case-folded identity of the column.
func (c *Column) Key() string {
	return columnKey(c.Name)
}

// Header renders the column header line.
func (c *Column) Header() string {
	return c.Name + " " + c.Type + "-" + strings.Join(c.Codes, ",")
}

// Width is the number of fields a cell of this column is expected to carry.
func (c *Column) Width() int {
	return len(c.Codes)
}

// Len returns the number of cells.
func (c *Column) Len() int {
	return len(c.Cells)
}

// Cell returns the cell at index i.
func (c *Column) Cell(i int) (Cell, bool) {
	if i < 0 || i >= len(c.Cells) {
		return Cell{}, false
	}
	return c.Cells[i], true
}

// AddCell appends cells in order.
func (c *Column) AddCell(cells ...Cell) {
	c.Cells = append(c.Cells, cells...)
}

// SetCells replaces the cell list with a copy of cells.
func (c *Column) SetCells(cells []Cell) {
	c.Cells = slices.Clone(cells)
}

// Clear drops every cell.
func (c *Column) Clear() {
	c.Cells = nil
}

// Clone returns a deep copy.
func (c *Column) Clone() *Column {
	return &Column{
		Name:  c.Name,
		Type:  c.Type,
		Codes: slices.Clone(c.Codes),
		Cells: slices.Clone(c.Cells),
	}
}

// Equal reports whether two columns hold the same header and cells.
func (c *Column) Equal(other *Column) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Name == other.Name &&
		c.Type == other.Type &&
		slices.Equal(c.Codes, other.Codes) &&
		slices.Equal(c.Cells, other.Cells)
}

func (c *Column) lines() []string {
	out := make([]string, 0, len(c.Cells)+1)
	out = append(out, c.Header())
	for _, cell := range c.Cells {
		out = append(out, cell.String())
	}
	return out
}
