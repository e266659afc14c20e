package opf

import "strings"

// LineKind is the grammar rule a db line matched.
type LineKind int

const (
	LineMalformed LineKind = iota
	LineVersion
	LineHeader
	LineCell
	// LineShortCell has a comma but fewer fields than a cell needs.
	LineShortCell
)

func (k LineKind) String() string {
	switch k {
	case LineVersion:
		return "version"
	case LineHeader:
		return "header"
	case LineCell:
		return "cell"
	case LineShortCell:
		return "short_cell"
	default:
		return "malformed"
	}
}

// minCellFields is onset, offset and the value remainder.
const minCellFields = 3

// Classify assigns a line to a grammar rule using the format's header predicate.
func (f Format) Classify(line string) LineKind {
	if strings.HasPrefix(line, "#") {
		return LineVersion
	}
	isHeader := f.IsHeader
	if isHeader == nil {
		isHeader = LooseHeader
	}
	if isHeader(line) {
		return LineHeader
	}
	switch n := strings.Count(line, ",") + 1; {
	case n >= minCellFields:
		return LineCell
	case n > 1:
		return LineShortCell
	default:
		return LineMalformed
	}
}

// ParseCellLine splits "<onset>,<offset>,<rest>" into a cell. The remainder
// keeps its inner commas and loses one pair of enclosing parentheses.
func ParseCellLine(line string) (Cell, bool) {
	parts := strings.SplitN(line, ",", minCellFields)
	if len(parts) < minCellFields {
		return Cell{}, false
	}
	return NewCell(parts[0], parts[1], stripParens(parts[2])), true
}
