package merge

import (
	"errors"
	"fmt"

	"playmate/internal/opf"
)

// Identity columns copied from the source document.
const (
	ColumnPlayID       = "PLAY_ID"
	ColumnMissingChild = "missing_child"
)

// ErrEmptyAnchor is returned when the source PLAY_ID column has no cells to
// take timestamps from.
var ErrEmptyAnchor = errors.New("PLAY_ID column has no cells")

// Result is a merged document plus what the merge did to it.
type Result struct {
	Document *opf.Document
	Study    Study
	// Anchor is the source PLAY_ID cell whose timestamps every study column shares.
	Anchor       opf.Cell
	Placeholders int
	Realigned    int
}

// Merge returns a copy of template with the identity columns of source
// transplanted and the study columns aligned to the source anchor. Neither
// input is modified.
func Merge(source, template *opf.Document, study Study) (*opf.Document, error) {
	res, err := Apply(source, template, study)
	if err != nil {
		return nil, err
	}
	return res.Document, nil
}

// Apply is Merge with counters for reporting.
func Apply(source, template *opf.Document, study Study) (*Result, error) {
	if source == nil || template == nil {
		return nil, errors.New("merge requires a source and a template document")
	}
	anchorCol, err := sourceColumn(source, ColumnPlayID)
	if err != nil {
		return nil, err
	}
	anchor, ok := anchorCol.Cell(0)
	if !ok {
		return nil, fmt.Errorf("%w in %s", ErrEmptyAnchor, source.Name)
	}
	identity := []*opf.Column{anchorCol}
	missing, err := sourceColumn(source, ColumnMissingChild)
	if err != nil {
		return nil, err
	}
	identity = append(identity, missing)

	out := template.Clone()
	out.Name = OutputName(source.Name, study)

	extras := make([]*opf.Column, 0, len(study.Columns))
	for _, name := range study.Columns {
		col, err := out.Column(name)
		if err != nil {
			return nil, &opf.MissingColumnError{Name: name, Document: template.Name, Origin: opf.OriginTemplate}
		}
		extras = append(extras, col)
	}

	for _, src := range identity {
		if existing, err := out.Column(src.Name); err == nil {
			existing.SetCells(src.Cells)
			continue
		}
		if err := out.AddColumn(src.Clone()); err != nil {
			return nil, err
		}
	}

	res := &Result{Document: out, Study: study, Anchor: anchor}
	for _, col := range extras {
		if col.Len() == 0 {
			col.AddCell(opf.PlaceholderCell(col.Width(), anchor.Onset, anchor.Offset))
			res.Placeholders++
			continue
		}
		for i := range col.Cells {
			col.Cells[i].Onset = anchor.Onset
			col.Cells[i].Offset = anchor.Offset
		}
		res.Realigned++
	}
	return res, nil
}

func sourceColumn(source *opf.Document, name string) (*opf.Column, error) {
	col, err := source.Column(name)
	if err != nil {
		return nil, &opf.MissingColumnError{Name: name, Document: source.Name, Origin: opf.OriginSource}
	}
	return col, nil
}

// OutputName names a merged document after its source and study suffix.
func OutputName(sourceName string, study Study) string {
	if study.Suffix == "" {
		return sourceName
	}
	if sourceName == "" {
		return study.Suffix
	}
	return sourceName + "-" + study.Suffix
}
