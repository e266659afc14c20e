// Package headerrule compiles user-supplied header detection rules written in
// the expr language into opf header predicates.
//
// A rule sees one db line through four variables:
//
//	line    the raw line
//	name    text before the first space
//	spec    text after the first space
//	fields  the line split on whitespace
//
// and must evaluate to a boolean, for example
//
//	len(fields) > 1 && spec contains "-" && spec contains "|"
package headerrule

import (
	"errors"
	"fmt"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"playmate/internal/opf"
)

// ErrEmptyRule is returned when Compile receives a blank expression.
var ErrEmptyRule = errors.New("header rule must not be empty")

type lineEnv struct {
	Line   string   `expr:"line"`
	Name   string   `expr:"name"`
	Spec   string   `expr:"spec"`
	Fields []string `expr:"fields"`
}

func newLineEnv(line string) lineEnv {
	name, spec, _ := strings.Cut(line, " ")
	return lineEnv{Line: line, Name: name, Spec: spec, Fields: strings.Fields(line)}
}

// Rule is a compiled header rule.
type Rule struct {
	expression string
	program    *exprvm.Program
}

// Compile type-checks expression against the line environment.
func Compile(expression string) (*Rule, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, ErrEmptyRule
	}
	program, err := exprlang.Compile(expression, exprlang.Env(lineEnv{}), exprlang.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile header rule %q: %w", expression, err)
	}
	return &Rule{expression: expression, program: program}, nil
}

// String returns the source expression.
func (r *Rule) String() string {
	return r.expression
}

// Eval runs the rule against line.
func (r *Rule) Eval(line string) (bool, error) {
	out, err := exprlang.Run(r.program, newLineEnv(line))
	if err != nil {
		return false, fmt.Errorf("evaluate header rule %q: %w", r.expression, err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("evaluate header rule %q: result %T is not a bool", r.expression, out)
	}
	return matched, nil
}

// Predicate adapts the rule to opf. Lines that fail to evaluate are not headers.
func (r *Rule) Predicate() opf.HeaderPredicate {
	return func(line string) bool {
		matched, err := r.Eval(line)
		return err == nil && matched
	}
}

// Format returns base with its header check replaced by the rule.
func (r *Rule) Format(base opf.Format) opf.Format {
	return base.WithPredicate(base.Name+"+rule", r.Predicate())
}
