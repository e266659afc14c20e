// Package intake writes participant identity into the PLAY_ID column of an
// intake template.
package intake

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	textlang "golang.org/x/text/language"

	"playmate/internal/language"
	"playmate/internal/opf"
)

// DefaultDateLayout renders dates as M/D/YYYY.
const DefaultDateLayout = "1/2/2006"

const (
	idPrefix    = "PLAY_"
	placeholder = "."
)

// isoLayout is accepted on input alongside the configured layout.
const isoLayout = "2006-01-02"

// ErrInvalidParticipant wraps every participant validation failure.
var ErrInvalidParticipant = errors.New("invalid participant")

// Participant is the identity stamped into the PLAY_ID cell.
type Participant struct {
	ID        string
	Birthdate time.Time
	TestDate  time.Time
	Language  string
}

// ParseParticipant builds a participant from text inputs. Dates are read with
// layout, falling back to YYYY-MM-DD.
func ParseParticipant(id, birthdate, testDate, lang, layout string) (Participant, error) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	birth, err := parseDate(birthdate, layout)
	if err != nil {
		return Participant{}, fmt.Errorf("%w: birthdate: %v", ErrInvalidParticipant, err)
	}
	test, err := parseDate(testDate, layout)
	if err != nil {
		return Participant{}, fmt.Errorf("%w: test date: %v", ErrInvalidParticipant, err)
	}
	p := Participant{ID: strings.TrimSpace(id), Birthdate: birth, TestDate: test, Language: strings.TrimSpace(lang)}
	return p, p.Validate()
}

func parseDate(value, layout string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("date is required")
	}
	if t, err := time.Parse(layout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(isoLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q does not match %s or %s", value, layout, isoLayout)
	}
	return t, nil
}

// Validate reports missing fields and a test date before the birthdate.
func (p Participant) Validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("%w: id is required", ErrInvalidParticipant)
	case strings.ContainsAny(p.ID, ",()"):
		return fmt.Errorf("%w: id %q must not contain commas or parentheses", ErrInvalidParticipant, p.ID)
	case p.Birthdate.IsZero() || p.TestDate.IsZero():
		return fmt.Errorf("%w: birthdate and test date are required", ErrInvalidParticipant)
	case p.TestDate.Before(p.Birthdate):
		return fmt.Errorf("%w: test date %s precedes birthdate %s", ErrInvalidParticipant,
			p.TestDate.Format(isoLayout), p.Birthdate.Format(isoLayout))
	case strings.TrimSpace(p.Language) == "":
		return fmt.Errorf("%w: language is required", ErrInvalidParticipant)
	}
	return nil
}

// PlayID returns the participant ID with the PLAY_ prefix applied once.
func (p Participant) PlayID() string {
	id := strings.TrimSpace(p.ID)
	if len(id) >= len(idPrefix) && strings.EqualFold(id[:len(idPrefix)], idPrefix) {
		return idPrefix + id[len(idPrefix):]
	}
	return idPrefix + id
}

// LanguageCode is the lower-cased first letter of the language name. ISO
// codes resolve to their English name first, so "es" yields "s".
func (p Participant) LanguageCode() string {
	lang := language.DisplayName(p.Language)
	r, size := utf8.DecodeRuneInString(lang)
	if r == utf8.RuneError && size <= 1 {
		return ""
	}
	return cases.Lower(textlang.Und).String(lang[:size])
}

// Codes returns the PLAY_ID cell fields: id, birthdate, test date, language
// initial and the trailing placeholder.
func (p Participant) Codes(layout string) []string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return []string{
		p.PlayID(),
		p.Birthdate.Format(layout),
		p.TestDate.Format(layout),
		p.LanguageCode(),
		placeholder,
	}
}

// Cell builds the PLAY_ID cell at the default timestamps.
func (p Participant) Cell(layout string) opf.Cell {
	return opf.NewCell(opf.DefaultOnset, opf.DefaultOffset, strings.Join(p.Codes(layout), ","))
}

// Stamp writes the participant cell into doc's PLAY_ID column, replacing the
// first cell or appending one when the column is empty.
func Stamp(doc *opf.Document, p Participant, layout string) (opf.Cell, error) {
	if err := p.Validate(); err != nil {
		return opf.Cell{}, err
	}
	col, err := doc.Column("PLAY_ID")
	if err != nil {
		return opf.Cell{}, &opf.MissingColumnError{Name: "PLAY_ID", Document: doc.Name, Origin: opf.OriginTemplate}
	}
	cell := p.Cell(layout)
	if col.Len() == 0 {
		col.AddCell(cell)
	} else {
		col.Cells[0] = cell
	}
	return cell, nil
}

// DocumentName is the conventional file name stem for a stamped intake file.
func DocumentName(p Participant) string {
	return p.PlayID()
}
