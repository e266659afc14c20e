package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"playmate/internal/opf"
)

type cellView struct {
	Onset  string   `json:"onset"`
	Offset string   `json:"offset"`
	Value  string   `json:"value"`
	Fields []string `json:"fields"`
}

type columnView struct {
	Name  string     `json:"name"`
	Type  string     `json:"type"`
	Codes []string   `json:"codes"`
	Cells []cellView `json:"cells"`
}

type droppedView struct {
	Line    int    `json:"line"`
	Content string `json:"content"`
	Error   string `json:"error"`
}

type documentView struct {
	Name         string        `json:"name"`
	Path         string        `json:"path"`
	ProjectBytes int           `json:"project_bytes"`
	Columns      []columnView  `json:"columns"`
	Dropped      []droppedView `json:"dropped_lines"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var columnName string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the columns and cells of an OPF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := ctx.readDocument(args[0])
			if err != nil {
				return err
			}
			doc := loaded.doc
			if asJSON {
				return writeJSON(cmd, buildDocumentView(loaded, columnName))
			}

			out := cmd.OutOrStdout()
			if columnName != "" {
				col, err := doc.Column(columnName)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", doc.Name, col.Header())
				fmt.Fprintln(out, renderTable(
					[]tableColumn{rightCol("#"), leftCol("Onset"), leftCol("Offset"), rightCol("Duration"), wrapCol("Value")},
					cellRows(col),
				))
			} else {
				fmt.Fprintf(out, "%s (%d columns)\n", doc.Name, doc.Len())
				fmt.Fprintln(out, renderTable(
					[]tableColumn{leftCol("Column"), leftCol("Type"), wrapCol("Codes"), rightCol("Cells"), leftCol("Span")},
					columnRows(doc),
				))
			}
			newStatusWriter(out).dropped(loaded.dropped)
			return nil
		},
	}

	cmd.Flags().StringVar(&columnName, "column", "", "List the cells of one column")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func buildDocumentView(loaded *loadedDocument, columnName string) documentView {
	view := documentView{
		Name:         loaded.doc.Name,
		Path:         loaded.path,
		ProjectBytes: len(loaded.doc.Project),
		Columns:      []columnView{},
		Dropped:      []droppedView{},
	}
	for _, col := range loaded.doc.Columns() {
		if columnName != "" && !strings.EqualFold(col.Name, columnName) {
			continue
		}
		cv := columnView{Name: col.Name, Type: col.Type, Codes: col.Codes, Cells: []cellView{}}
		for _, cell := range col.Cells {
			cv.Cells = append(cv.Cells, cellView{
				Onset:  cell.Onset,
				Offset: cell.Offset,
				Value:  cell.Value,
				Fields: cell.Fields(),
			})
		}
		view.Columns = append(view.Columns, cv)
	}
	for _, d := range loaded.dropped {
		view.Dropped = append(view.Dropped, droppedView{Line: d.Line, Content: d.Content, Error: d.Err.Error()})
	}
	return view
}

func columnRows(doc *opf.Document) [][]string {
	rows := make([][]string, 0, doc.Len())
	for _, col := range doc.Columns() {
		rows = append(rows, []string{
			col.Name,
			col.Type,
			strings.Join(col.Codes, ","),
			strconv.Itoa(col.Len()),
			columnSpan(col),
		})
	}
	return rows
}

func cellRows(col *opf.Column) [][]string {
	rows := make([][]string, 0, col.Len())
	for i, cell := range col.Cells {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			cell.Onset,
			cell.Offset,
			cellDuration(cell),
			"(" + cell.Value + ")",
		})
	}
	return rows
}

// columnSpan is the earliest onset to the latest offset, or "-" when the
// column is empty or carries an unreadable timestamp.
func columnSpan(col *opf.Column) string {
	if col.Len() == 0 {
		return "-"
	}
	var first, last time.Duration
	for i, cell := range col.Cells {
		onset, err := opf.ParseTimestamp(cell.Onset)
		if err != nil {
			return "-"
		}
		offset, err := opf.ParseTimestamp(cell.Offset)
		if err != nil {
			return "-"
		}
		if i == 0 || onset < first {
			first = onset
		}
		if i == 0 || offset > last {
			last = offset
		}
	}
	return opf.FormatTimestamp(first) + " - " + opf.FormatTimestamp(last)
}

func cellDuration(cell opf.Cell) string {
	onset, err := opf.ParseTimestamp(cell.Onset)
	if err != nil {
		return "-"
	}
	offset, err := opf.ParseTimestamp(cell.Offset)
	if err != nil {
		return "-"
	}
	return (offset - onset).String()
}
