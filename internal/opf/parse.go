package opf

import (
	"strings"
)

// Diagnostic is a dropped db line. Err is a *MalformedLineError or an
// *InvalidCellShapeError.
type Diagnostic struct {
	Line    int
	Content string
	Err     error
}

func (d Diagnostic) String() string {
	return d.Err.Error()
}

// parseState is the fold accumulator: the column being filled and the
// columns already closed.
type parseState struct {
	open      *Column
	completed *Document
	dropped   []Diagnostic
}

// flush moves the open column into the completed set.
func (s *parseState) flush() error {
	if s.open == nil {
		return nil
	}
	col := s.open
	s.open = nil
	return s.completed.AddColumn(col)
}

func (s *parseState) drop(lineNo int, line string, err error) {
	s.dropped = append(s.dropped, Diagnostic{Line: lineNo, Content: line, Err: err})
}

func (s *parseState) step(f Format, lineNo int, line string) error {
	switch f.Classify(line) {
	case LineVersion:
		return nil
	case LineHeader:
		col, err := ParseColumnHeader(line)
		if err != nil {
			s.drop(lineNo, line, &MalformedLineError{Line: lineNo, Content: line})
			return nil
		}
		if err := s.flush(); err != nil {
			return err
		}
		s.open = col
		return nil
	case LineCell:
		if s.open == nil {
			break
		}
		cell, _ := ParseCellLine(line)
		s.open.AddCell(cell)
		return nil
	case LineShortCell:
		if s.open != nil {
			s.drop(lineNo, line, &InvalidCellShapeError{Line: lineNo, Content: line})
			return nil
		}
	}
	s.drop(lineNo, line, &MalformedLineError{Line: lineNo, Content: line})
	return nil
}

// ParseResult is the outcome of parsing db text.
type ParseResult struct {
	Document    *Document
	Diagnostics []Diagnostic
}

// ParseLines folds db lines into a document. Line numbers in diagnostics
// are 1-based. Only a duplicate column aborts the parse.
func (f Format) ParseLines(name string, lines []string) (ParseResult, error) {
	state := parseState{completed: NewDocument(name, "")}
	for i, line := range lines {
		if err := state.step(f, i+1, line); err != nil {
			return ParseResult{}, err
		}
	}
	if err := state.flush(); err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Document: state.completed, Diagnostics: state.dropped}, nil
}

// Parse splits text on "\r\n" or "\n" and parses it. A single trailing line
// terminator does not produce an empty line.
func (f Format) Parse(name, text string) (ParseResult, error) {
	return f.ParseLines(name, SplitLines(text))
}

// SplitLines splits text on "\r\n" or "\n".
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
