package merge

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"playmate/internal/config"
)

// StudyKind tags a family of study templates, e.g. "TRA".
type StudyKind string

// Study describes one template family: the columns that identify a
// participant in that study and the suffix its merged files carry.
type Study struct {
	Kind    StudyKind
	Suffix  string
	Columns []string
}

// ErrUnknownStudy is returned when a registry lookup misses.
var ErrUnknownStudy = errors.New("unknown study kind")

// DefaultStudies returns the built-in study variants.
func DefaultStudies() []Study {
	return studiesFromConfig(config.Default().Studies)
}

func studiesFromConfig(in []config.Study) []Study {
	out := make([]Study, 0, len(in))
	for _, s := range in {
		out = append(out, Study{
			Kind:    StudyKind(s.Kind),
			Suffix:  s.Suffix,
			Columns: slices.Clone(s.Columns),
		})
	}
	return out
}

// Registry holds the configured studies keyed by kind.
type Registry struct {
	order   []StudyKind
	studies map[StudyKind]Study
}

// NewRegistry indexes studies. Kinds are upper-cased; duplicates are rejected.
func NewRegistry(studies ...Study) (*Registry, error) {
	r := &Registry{studies: make(map[StudyKind]Study, len(studies))}
	for _, s := range studies {
		s.Kind = normalizeKind(string(s.Kind))
		if s.Kind == "" {
			return nil, errors.New("study kind must be set")
		}
		if _, dup := r.studies[s.Kind]; dup {
			return nil, fmt.Errorf("study %s registered twice", s.Kind)
		}
		if s.Suffix == "" {
			s.Suffix = strings.ToLower(string(s.Kind))
		}
		s.Columns = slices.Clone(s.Columns)
		r.studies[s.Kind] = s
		r.order = append(r.order, s.Kind)
	}
	return r, nil
}

// RegistryFromConfig builds a registry from the [[studies]] section.
func RegistryFromConfig(cfg *config.Config) (*Registry, error) {
	if cfg == nil {
		return NewRegistry(DefaultStudies()...)
	}
	return NewRegistry(studiesFromConfig(cfg.Studies)...)
}

// Lookup resolves kind case-insensitively.
func (r *Registry) Lookup(kind string) (Study, error) {
	s, ok := r.studies[normalizeKind(kind)]
	if !ok {
		return Study{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownStudy, kind, strings.Join(r.kinds(), ", "))
	}
	s.Columns = slices.Clone(s.Columns)
	return s, nil
}

// Studies returns the registered studies in configuration order.
func (r *Registry) Studies() []Study {
	out := make([]Study, 0, len(r.order))
	for _, kind := range r.order {
		s := r.studies[kind]
		s.Columns = slices.Clone(s.Columns)
		out = append(out, s)
	}
	return out
}

func (r *Registry) kinds() []string {
	out := make([]string, 0, len(r.order))
	for _, kind := range r.order {
		out = append(out, string(kind))
	}
	return out
}

func normalizeKind(kind string) StudyKind {
	return StudyKind(strings.ToUpper(strings.TrimSpace(kind)))
}
