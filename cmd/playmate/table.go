package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// valueWidth caps free-text columns (cell values, error messages) so long
// transcripts wrap instead of stretching the table.
const valueWidth = 60

type tableColumn struct {
	title   string
	numeric bool
	wrap    bool
}

func leftCol(title string) tableColumn  { return tableColumn{title: title} }
func rightCol(title string) tableColumn { return tableColumn{title: title, numeric: true} }
func wrapCol(title string) tableColumn  { return tableColumn{title: title, wrap: true} }

func renderTable(columns []tableColumn, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, c := range columns {
		header[i] = c.title
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
		if c.numeric {
			configs[i].Align = text.AlignRight
		}
		if c.wrap {
			configs[i].WidthMax = valueWidth
			configs[i].WidthMaxEnforcer = text.WrapSoft
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i := range r {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}
