package opf

import (
	"slices"

	"golang.org/x/text/cases"
)

// Document is the in-memory form of an OPF file.
type Document struct {
	Name    string
	Project string

	order   []string
	columns map[string]*Column
}

// NewDocument returns an empty document.
func NewDocument(name, project string) *Document {
	return &Document{
		Name:    name,
		Project: project,
		columns: make(map[string]*Column),
	}
}

func columnKey(name string) string {
	return cases.Fold().String(name)
}

// Len returns the number of columns.
func (d *Document) Len() int {
	return len(d.order)
}

// Columns returns the columns in first-seen order.
func (d *Document) Columns() []*Column {
	out := make([]*Column, 0, len(d.order))
	for _, key := range d.order {
		out = append(out, d.columns[key])
	}
	return out
}

// Column looks up a column by case-insensitive name.
func (d *Document) Column(name string) (*Column, error) {
	col, ok := d.columns[columnKey(name)]
	if !ok {
		return nil, &MissingColumnError{Name: name, Document: d.Name}
	}
	return col, nil
}

// AddColumn appends col, rejecting names that fold to an existing column.
func (d *Document) AddColumn(col *Column) error {
	if d.columns == nil {
		d.columns = make(map[string]*Column)
	}
	key := col.Key()
	if _, exists := d.columns[key]; exists {
		return &DuplicateColumnError{Name: col.Name, Document: d.Name}
	}
	d.columns[key] = col
	d.order = append(d.order, key)
	return nil
}

// ClearColumn drops every cell of the named column and returns it.
func (d *Document) ClearColumn(name string) (*Column, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	col.Clear()
	return col, nil
}

// RemoveColumn deletes the named column and returns it.
func (d *Document) RemoveColumn(name string) (*Column, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	key := col.Key()
	delete(d.columns, key)
	d.order = slices.DeleteFunc(d.order, func(k string) bool { return k == key })
	return col, nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := NewDocument(d.Name, d.Project)
	for _, col := range d.Columns() {
		_ = out.AddColumn(col.Clone())
	}
	return out
}

// Equal reports structural equality: same columns in the same order with the
// same cells. Name and Project are not compared.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	if !slices.Equal(d.order, other.order) {
		return false
	}
	for _, key := range d.order {
		if !d.columns[key].Equal(other.columns[key]) {
			return false
		}
	}
	return true
}
