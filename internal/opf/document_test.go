package opf

import (
	"errors"
	"strings"
	"testing"
)

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	doc := NewDocument("sample", "project-body")
	play := NewColumn("PLAY_ID", "text", []string{"id", "birthdate", "testdate", "lang", "sep"})
	play.AddCell(NewCell("00:00:00:000", "00:00:00:000", "PLAY_1,1/2/2020,3/4/2022,e,."))
	child := NewColumn("missing_child", "text", []string{"note"})
	child.AddCell(
		NewCell("00:00:01:000", "00:00:05:000", "away"),
		NewCell("00:00:07:000", "00:00:08:000", ""),
	)
	for _, col := range []*Column{play, child} {
		if err := doc.AddColumn(col); err != nil {
			t.Fatalf("AddColumn(%s): %v", col.Name, err)
		}
	}
	return doc
}

func TestSerializeParseRoundTrip(t *testing.T) {
	doc := sampleDocument(t)
	text := DBText(doc)
	if !strings.HasPrefix(text, "#4\r\nPLAY_ID text-id,birthdate,testdate,lang,sep\r\n") {
		t.Fatalf("unexpected db text prefix: %q", text)
	}
	if strings.Contains(strings.ReplaceAll(text, "\r\n", ""), "\n") {
		t.Fatalf("expected CRLF line breaks only: %q", text)
	}
	res, err := FormatV4.Parse(doc.Name, text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Diagnostics)
	}
	if !res.Document.Equal(doc) {
		t.Fatalf("round trip mismatch:\nwant %q\ngot  %q", Serialize(doc), Serialize(res.Document))
	}
	if again := DBText(res.Document); again != text {
		t.Fatalf("serialization not stable:\nwant %q\ngot  %q", text, again)
	}
}

func TestEmptyDocumentSerializesToMarker(t *testing.T) {
	doc := NewDocument("empty", "")
	if got := DBText(doc); got != "#4\r\n" {
		t.Fatalf("unexpected empty db text %q", got)
	}
	res, err := FormatV4.Parse("empty", DBText(doc))
	if err != nil || res.Document.Len() != 0 {
		t.Fatalf("expected empty parse, got %v %v", res.Document, err)
	}
}

func TestColumnLookupIsCaseInsensitive(t *testing.T) {
	doc := sampleDocument(t)
	for _, name := range []string{"PLAY_ID", "play_id", "Play_Id"} {
		col, err := doc.Column(name)
		if err != nil {
			t.Fatalf("Column(%q): %v", name, err)
		}
		if col.Name != "PLAY_ID" {
			t.Fatalf("Column(%q) returned %q", name, col.Name)
		}
	}
}

func TestColumnLookupMissing(t *testing.T) {
	doc := sampleDocument(t)
	_, err := doc.Column("transc_id")
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected missing column, got %v", err)
	}
	if Kind(err) != KindNotFound {
		t.Fatalf("expected not found kind, got %q", Kind(err))
	}
	if !strings.Contains(err.Error(), "transc_id") {
		t.Fatalf("expected column name in error: %v", err)
	}
}

func TestAddColumnRejectsFoldedDuplicate(t *testing.T) {
	doc := sampleDocument(t)
	err := doc.AddColumn(NewColumn("Missing_Child", "text", []string{"x"}))
	if !errors.Is(err, ErrDuplicateColumn) {
		t.Fatalf("expected duplicate column, got %v", err)
	}
	if doc.Len() != 2 {
		t.Fatalf("expected document unchanged, got %d columns", doc.Len())
	}
}

func TestClearAndRemoveColumn(t *testing.T) {
	doc := sampleDocument(t)
	col, err := doc.ClearColumn("MISSING_CHILD")
	if err != nil {
		t.Fatalf("ClearColumn: %v", err)
	}
	if _, err := doc.Column("missing_child"); col.Len() != 0 || err != nil {
		t.Fatalf("expected emptied column to remain: %v", err)
	}
	if _, err := doc.RemoveColumn("play_id"); err != nil {
		t.Fatalf("RemoveColumn: %v", err)
	}
	if _, err := doc.Column("PLAY_ID"); err == nil || doc.Len() != 1 {
		t.Fatalf("expected PLAY_ID removed, have %d columns", doc.Len())
	}
	if err := doc.AddColumn(NewColumn("play_id", "text", []string{"id"})); err != nil {
		t.Fatalf("re-adding removed column: %v", err)
	}
	if got := doc.Columns()[1].Name; got != "play_id" {
		t.Fatalf("expected re-added column last, got %q", got)
	}
	if _, err := doc.RemoveColumn("nope"); !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("expected missing column, got %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	doc := sampleDocument(t)
	clone := doc.Clone()
	if !clone.Equal(doc) || clone.Project != doc.Project {
		t.Fatal("expected clone to equal original")
	}
	col, _ := clone.Column("missing_child")
	col.Cells[0].Value = "changed"
	col.Codes[0] = "changed"
	orig, _ := doc.Column("missing_child")
	if orig.Cells[0].Value != "away" || orig.Codes[0] != "note" {
		t.Fatal("mutating clone leaked into original")
	}
	if clone.Equal(doc) {
		t.Fatal("expected documents to differ after mutation")
	}
}

func TestCellRendering(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{NewCell("", "", ""), "00:00:00:000,00:00:00:000,()"},
		{NewCell("00:00:00:111", "00:00:00:222", "a,b"), "00:00:00:111,00:00:00:222,(a,b)"},
		{PlaceholderCell(1, "00:00:00:111", "00:00:00:222"), "00:00:00:111,00:00:00:222,()"},
		{PlaceholderCell(2, "", ""), "00:00:00:000,00:00:00:000,(,)"},
		{PlaceholderCell(0, "", ""), "00:00:00:000,00:00:00:000,()"},
	}
	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseCellLineStripsOnePairOfParens(t *testing.T) {
	cell, ok := ParseCellLine("00:00:00:000,00:00:00:001,((nested))")
	if !ok {
		t.Fatal("expected cell")
	}
	if cell.Value != "(nested)" {
		t.Fatalf("unexpected value %q", cell.Value)
	}
	cell, _ = ParseCellLine("00:00:00:000,00:00:00:001,bare")
	if cell.Value != "bare" {
		t.Fatalf("expected bare value kept, got %q", cell.Value)
	}
	if _, ok := ParseCellLine("00:00:00:000"); ok {
		t.Fatal("expected short line rejected")
	}
}

func TestLookupFormat(t *testing.T) {
	for _, name := range []string{"", "v4", " STRICT ", "legacy"} {
		if _, err := LookupFormat(name); err != nil {
			t.Errorf("LookupFormat(%q): %v", name, err)
		}
	}
	if _, err := LookupFormat("v9"); err == nil || !strings.Contains(err.Error(), "legacy, strict, v4") {
		t.Fatalf("expected listing of revisions, got %v", err)
	}
	custom := FormatV4.WithPredicate("rule", func(string) bool { return false })
	if custom.Name != "rule" || custom.Classify("PLAY_ID text-a") == LineHeader {
		t.Fatalf("expected predicate override, got %+v", custom)
	}
}
