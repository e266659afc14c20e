package opf

import (
	"fmt"
	"sort"
	"strings"
)

// VersionMarker is written as the first db line of every saved file.
const VersionMarker = "#4"

// HeaderPredicate decides whether a db line opens a new column.
type HeaderPredicate func(line string) bool

// Format is a db format revision: its name and how it recognizes headers
// when reading. Writes always use VersionMarker and the canonical layout.
type Format struct {
	Name     string
	IsHeader HeaderPredicate
}

// Revision names accepted by LookupFormat.
const (
	RevisionV4     = "v4"
	RevisionStrict = "strict"
	RevisionLegacy = "legacy"
)

var (
	// FormatV4 is the default read revision.
	FormatV4 = Format{Name: RevisionV4, IsHeader: LooseHeader}
	// FormatStrict only accepts headers whose code spec carries '|' type tags.
	FormatStrict = Format{Name: RevisionStrict, IsHeader: StrictHeader}
	// FormatLegacy treats any line containing a space as a header.
	FormatLegacy = Format{Name: RevisionLegacy, IsHeader: LegacyHeader}
)

var formats = map[string]Format{
	RevisionV4:     FormatV4,
	RevisionStrict: FormatStrict,
	RevisionLegacy: FormatLegacy,
}

// LookupFormat resolves a revision name; "" selects FormatV4.
func LookupFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatV4, nil
	}
	f, ok := formats[name]
	if !ok {
		return Format{}, fmt.Errorf("unknown format revision %q (want one of %s)", name, strings.Join(Revisions(), ", "))
	}
	return f, nil
}

// Revisions lists the known revision names.
func Revisions() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithPredicate returns a copy of f that recognizes headers with pred.
func (f Format) WithPredicate(name string, pred HeaderPredicate) Format {
	f.Name = name
	f.IsHeader = pred
	return f
}

// LooseHeader accepts "<name> <spec>" where spec contains '-' and the name
// has no comma. The comma guard keeps cell lines whose value contains a space
// and a dash from opening a column.
func LooseHeader(line string) bool {
	name, spec, ok := strings.Cut(line, " ")
	if !ok || name == "" {
		return false
	}
	return !strings.Contains(name, ",") && strings.Contains(spec, "-")
}

// StrictHeader matches the loose rule and also requires a '|' in the line.
func StrictHeader(line string) bool {
	return LooseHeader(line) && strings.Contains(line, "|")
}

// LegacyHeader matches any line with more than one space-separated token.
func LegacyHeader(line string) bool {
	return len(strings.Fields(line)) > 1
}
