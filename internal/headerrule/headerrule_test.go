package headerrule

import (
	"errors"
	"strings"
	"testing"

	"playmate/internal/opf"
)

func TestCompileRejectsEmpty(t *testing.T) {
	if _, err := Compile("   "); !errors.Is(err, ErrEmptyRule) {
		t.Fatalf("expected ErrEmptyRule, got %v", err)
	}
}

func TestCompileRejectsNonBoolean(t *testing.T) {
	_, err := Compile(`len(fields)`)
	if err == nil {
		t.Fatal("expected type error for non-boolean rule")
	}
	if !strings.Contains(err.Error(), "len(fields)") {
		t.Fatalf("expected expression in error, got %v", err)
	}
}

func TestCompileRejectsUnknownVariable(t *testing.T) {
	if _, err := Compile(`columns > 1`); err == nil {
		t.Fatal("expected unknown variable to fail")
	}
}

func TestRuleEval(t *testing.T) {
	rule, err := Compile(`len(fields) > 1 && spec contains "-" && spec contains "|"`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	tests := map[string]bool{
		"PLAY_ID (MATRIX,true,)-id|NOMINAL": true,
		"PLAY_ID text-a,b":                  false,
		"garbage":                           false,
	}
	for line, want := range tests {
		got, err := rule.Eval(line)
		if err != nil {
			t.Fatalf("Eval(%q): %v", line, err)
		}
		if got != want {
			t.Errorf("Eval(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestRuleUsesName(t *testing.T) {
	rule, err := Compile(`name startsWith "PLAY" || name endsWith "_id"`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	pred := rule.Predicate()
	if !pred("PLAY_ID text-a") || !pred("transc_id text-a") || pred("other text-a") {
		t.Fatal("unexpected predicate results")
	}
}

func TestRuleDrivesParsing(t *testing.T) {
	rule, err := Compile(`name == upper(name) && spec contains "-"`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	format := rule.Format(opf.FormatV4)
	if format.Name != "v4+rule" {
		t.Fatalf("unexpected format name %q", format.Name)
	}
	res, err := format.Parse("doc", "PLAY_ID text-a\n00:00:00:000,00:00:00:000,(x)\nlower text-b\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := res.Document.Column("PLAY_ID"); res.Document.Len() != 1 || err != nil {
		t.Fatalf("expected only PLAY_ID as a column, got %d", res.Document.Len())
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Content != "lower text-b" {
		t.Fatalf("expected lowercase header dropped, got %v", res.Diagnostics)
	}
}

func TestPredicateTreatsRuntimeErrorAsNoMatch(t *testing.T) {
	rule, err := Compile(`fields[1] == "text-a"`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := rule.Eval("single"); err == nil {
		t.Fatal("expected index out of range error")
	}
	if rule.Predicate()("single") {
		t.Fatal("expected runtime error to mean no match")
	}
	if !rule.Predicate()("col text-a") {
		t.Fatal("expected match")
	}
}
