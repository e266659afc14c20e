package intake

import (
	"errors"
	"slices"
	"testing"
	"time"

	"playmate/internal/opf"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleParticipant() Participant {
	return Participant{
		ID:        "899_43530",
		Birthdate: date(2018, time.March, 10),
		TestDate:  date(2020, time.March, 6),
		Language:  "English",
	}
}

func TestCodes(t *testing.T) {
	got := sampleParticipant().Codes("")
	want := []string{"PLAY_899_43530", "3/10/2018", "3/6/2020", "e", "."}
	if !slices.Equal(got, want) {
		t.Fatalf("Codes() = %v, want %v", got, want)
	}
	padded := sampleParticipant().Codes("01/02/2006")
	if padded[1] != "03/10/2018" {
		t.Fatalf("expected padded layout, got %q", padded[1])
	}
}

func TestPlayIDPrefixAppliedOnce(t *testing.T) {
	for _, id := range []string{"42", "PLAY_42", "play_42", " PLAY_42 "} {
		p := Participant{ID: id}
		if got := p.PlayID(); got != "PLAY_42" {
			t.Errorf("PlayID(%q) = %q", id, got)
		}
	}
}

func TestLanguageCode(t *testing.T) {
	tests := map[string]string{
		"English": "e",
		"spanish": "s",
		" Ñandú":  "ñ",
		"es":      "s",
		"deu":     "g",
		"":        "",
	}
	for lang, want := range tests {
		if got := (Participant{Language: lang}).LanguageCode(); got != want {
			t.Errorf("LanguageCode(%q) = %q, want %q", lang, got, want)
		}
	}
}

func TestParseParticipant(t *testing.T) {
	p, err := ParseParticipant("7", "3/10/2018", "2020-03-06", "Spanish", "")
	if err != nil {
		t.Fatalf("ParseParticipant: %v", err)
	}
	if !p.Birthdate.Equal(date(2018, time.March, 10)) || !p.TestDate.Equal(date(2020, time.March, 6)) {
		t.Fatalf("unexpected dates %v %v", p.Birthdate, p.TestDate)
	}

	tests := []struct {
		name                  string
		id, birth, test, lang string
	}{
		{"missing id", "", "3/10/2018", "3/6/2020", "en"},
		{"bad birthdate", "7", "yesterday", "3/6/2020", "en"},
		{"missing test date", "7", "3/10/2018", "", "en"},
		{"test before birth", "7", "3/10/2020", "3/6/2018", "en"},
		{"missing language", "7", "3/10/2018", "3/6/2020", " "},
		{"comma in id", "7,8", "3/10/2018", "3/6/2020", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseParticipant(tt.id, tt.birth, tt.test, tt.lang, "")
			if !errors.Is(err, ErrInvalidParticipant) {
				t.Fatalf("expected ErrInvalidParticipant, got %v", err)
			}
		})
	}
}

func TestStampAppendsIntoEmptyColumn(t *testing.T) {
	res, err := opf.FormatV4.Parse("qa", "#4\nPLAY_ID text-child_id,birthdate,test_date,lang1,lang2\nmissing_child text-reason\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	doc := res.Document
	cell, err := Stamp(doc, sampleParticipant(), DefaultDateLayout)
	if err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	if got := cell.String(); got != "00:00:00:000,00:00:00:000,(PLAY_899_43530,3/10/2018,3/6/2020,e,.)" {
		t.Fatalf("unexpected cell %q", got)
	}
	col, _ := doc.Column("play_id")
	if col.Len() != 1 || col.Cells[0] != cell {
		t.Fatalf("expected stamped cell in column, got %+v", col.Cells)
	}
}

func TestStampReplacesFirstCell(t *testing.T) {
	res, err := opf.FormatV4.Parse("qa", "#4\nPLAY_ID text-a\n00:00:01:000,00:00:02:000,(old)\n00:00:03:000,00:00:04:000,(second)\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	doc := res.Document
	if _, err := Stamp(doc, sampleParticipant(), ""); err != nil {
		t.Fatalf("Stamp: %v", err)
	}
	col, _ := doc.Column("PLAY_ID")
	if col.Len() != 2 {
		t.Fatalf("expected 2 cells, got %d", col.Len())
	}
	if col.Cells[0].Value != "PLAY_899_43530,3/10/2018,3/6/2020,e,." || col.Cells[0].Onset != opf.DefaultOnset {
		t.Fatalf("first cell not replaced: %+v", col.Cells[0])
	}
	if col.Cells[1].Value != "second" {
		t.Fatalf("second cell should be kept, got %+v", col.Cells[1])
	}
}

func TestStampRequiresPlayIDColumn(t *testing.T) {
	doc := opf.NewDocument("qa", "")
	_, err := Stamp(doc, sampleParticipant(), "")
	var missing *opf.MissingColumnError
	if !errors.As(err, &missing) || missing.Origin != opf.OriginTemplate {
		t.Fatalf("expected template-origin missing column, got %v", err)
	}

	if _, err := Stamp(doc, Participant{}, ""); !errors.Is(err, ErrInvalidParticipant) {
		t.Fatalf("expected participant validation first, got %v", err)
	}
}
