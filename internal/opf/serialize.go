package opf

import "strings"

const lineBreak = "\r\n"

// Serialize renders the columns of d as db text without the version marker.
func Serialize(d *Document) string {
	var lines []string
	for _, col := range d.Columns() {
		lines = append(lines, col.lines()...)
	}
	return strings.Join(lines, lineBreak)
}

// DBText renders the full db entry: the version marker followed by the columns.
func DBText(d *Document) string {
	return VersionMarker + lineBreak + Serialize(d)
}
