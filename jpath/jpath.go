// Package jpath implements JSONPath expressions over document trees.
//
// The grammar follows the original JSONPath proposal:
//
//	  expr = root steps
//	  root = "$"
//	 steps = step [steps]
//	  step = "." name
//	  step = ".." name
//	  step = "[" value "]"
//	  step = "[" slice "]"
//	  name = WORD
//	  name = "'" QTEXT "'"
//	  name = "*"
//	 value = name
//	 value = INDEX ["," INDEX ...]
//	 value = script
//	 value = filter
//	 slice = [INDEX] ":" [INDEX]
//	script = "(" TEXT ")"
//	filter = "?(" TEXT ")"
//
//	  WORD = RE `\w+`
//	 QTEXT = RE `[^']*`
//	 INDEX = RE `-?\d+`
//	  TEXT = { all text with nested parentheses }
//
// See https://www.ietf.org/archive/id/draft-goessner-dispatch-jsonpath-00.html.
package jpath

import (
	"fmt"
	"regexp"
	"strings"
)

// An Expr is a parsed JSONPath expression.
type Expr []Step

// Parse parses s as a JSONPath expression. Errors have type *ParseError.
func Parse(s string) (Expr, error) {
	p := &parser{input: s}
	t, ok := strings.CutPrefix(s, "$")
	if !ok {
		return nil, p.fail(s, "missing root marker")
	}
	steps, err := p.parseSteps(t)
	if err != nil {
		return nil, err
	}
	return steps, nil
}

// MustParse is as Parse, but panics if s is not a valid expression.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Expr) String() string {
	var buf strings.Builder
	buf.WriteString("$")
	for _, s := range e {
		buf.WriteString(s.String())
	}
	return buf.String()
}

// ParseError is the concrete type of errors reported by Parse.
type ParseError struct {
	Input   string // the complete expression
	Offset  int    // byte offset of the error in Input
	Message string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("jpath %q at offset %d: %s", p.Input, p.Offset, p.Message)
}

type parser struct{ input string }

// fail reports an error at the start of rest, which is a suffix of the input.
func (p *parser) fail(rest, msg string, args ...any) error {
	return &ParseError{
		Input:   p.input,
		Offset:  len(p.input) - len(rest),
		Message: fmt.Sprintf(msg, args...),
	}
}

func (p *parser) parseSteps(s string) (steps []Step, _ error) {
	for s != "" {
		step, rest, err := p.parseStep(s)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
		s = rest
	}
	return steps, nil
}

func (p *parser) parseStep(s string) (_ Step, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, ".."); ok {
		kind, name, u, ok := parseName(t)
		if !ok {
			return Step{}, s, p.fail(t, "invalid ..name")
		}
		return Step{Op: Recur, Arg1: name, Arg2: kind.String()}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "."); ok {
		kind, name, u, ok := parseName(t)
		if !ok {
			return Step{}, s, p.fail(t, "invalid .name")
		}
		return Step{Op: Member, Arg1: name, Arg2: kind.String()}, u, nil
	}
	if t, ok := strings.CutPrefix(s, "["); ok {
		kind, val, u, err := p.parseValue(t)
		if err != nil {
			return Step{}, t, err
		}
		out := Step{Op: kind, Arg1: val}
		if out.Op == Slice {
			if arg2, rest, ok := parseIndex(u); ok {
				out.Arg2 = arg2
				u = rest
			} else if out.Arg1 == "" {
				return Step{}, u, p.fail(u, "invalid slice")
			}
		}
		v, ok := strings.CutPrefix(u, "]")
		if !ok {
			return Step{}, u, p.fail(u, "missing close bracket")
		}
		return out, v, nil
	}
	return Step{}, s, p.fail(s, "invalid path step")
}

func parseName(s string) (kind Op, name, rest string, ok bool) {
	if t, ok := strings.CutPrefix(s, "*"); ok {
		return Wildcard, "*", t, true
	}
	if m := wordRE.FindStringSubmatch(s); m != nil {
		return Name, m[1], s[len(m[0]):], true
	}
	if m := quoteRE.FindStringSubmatch(s); m != nil {
		return QName, m[1], s[len(m[0]):], true
	}
	return Invalid, "", s, false
}

func parseIndex(s string) (text, rest string, ok bool) {
	if m := indexRE.FindStringSubmatch(s); m != nil {
		return m[1], s[len(m[0]):], true
	}
	return "", s, false
}

func (p *parser) parseValue(s string) (kind Op, value, rest string, _ error) {
	if t, ok := strings.CutPrefix(s, "?("); ok {
		text, rest, err := p.parseScript(t)
		return Filter, text, rest, err
	}
	if t, ok := strings.CutPrefix(s, "("); ok {
		text, rest, err := p.parseScript(t)
		return Script, text, rest, err
	}
	if text, rest, ok := parseIndex(s); ok {
		if u, ok := strings.CutPrefix(rest, ":"); ok {
			if strings.Contains(text, ",") {
				return Invalid, "", s, p.fail(s, "invalid slice start %q", text)
			}
			return Slice, text, u, nil
		}
		return Index, text, rest, nil
	}
	if u, ok := strings.CutPrefix(s, ":"); ok {
		return Slice, "", u, nil
	}
	if kind, text, rest, ok := parseName(s); ok {
		return kind, text, rest, nil
	}
	return Invalid, "", s, p.fail(s, "invalid value")
}

func (p *parser) parseScript(s string) (text, rest string, _ error) {
	i, np := 0, 1
	for i < len(s) {
		if s[i] == ')' {
			np--
			if np == 0 {
				break
			}
		} else if s[i] == '(' {
			np++
		}
		i++
	}
	if np > 0 {
		return "", s, p.fail(s, "unbalanced parentheses")
	}
	return s[:i], s[i+1:], nil
}

var (
	wordRE  = regexp.MustCompile(`^(\w+)`)
	indexRE = regexp.MustCompile(`^(-?\d+(?:,-?\d+)*)`)
	quoteRE = regexp.MustCompile(`^'([^\']*)'`)
)

// An Op is a path operator.
type Op byte

const (
	Invalid  Op = iota // invalid operator
	Member             // member lookup (.)
	Index              // array index lookup
	Slice              // array slice
	Wildcard           // wildcard expansion (*)
	Name               // unquoted name expansion
	QName              // quoted name expansion
	Recur              // recur operator
	Filter             // filter operator
	Script             // script operator
)

var opText = [...]string{
	Invalid:  "invalid",
	Member:   ".",
	Index:    "index",
	Slice:    "slice",
	Wildcard: "*",
	Name:     "name",
	QName:    "qname",
	Recur:    "..",
	Filter:   "?(...)",
	Script:   "(...)",
}

func (o Op) String() string {
	if int(o) < len(opText) {
		return opText[o]
	}
	return opText[Invalid]
}

// A Step is a single step of a JSONPath expression.
//
// For Member and Recur steps, Arg1 is the name and Arg2 records how it was
// written ("name", "qname", or "*"). For Slice steps, Arg1 and Arg2 are the
// bounds, either of which may be empty. Otherwise only Arg1 is used.
type Step struct {
	Op   Op
	Arg1 string
	Arg2 string
}

// String renders s in the syntax accepted by Parse.
func (s Step) String() string {
	switch s.Op {
	case Member, Recur:
		if s.Arg2 == QName.String() {
			return fmt.Sprintf("%s'%s'", s.Op, s.Arg1)
		}
		return s.Op.String() + s.Arg1
	case Slice:
		return fmt.Sprintf("[%s:%s]", s.Arg1, s.Arg2)
	case Script:
		return fmt.Sprintf("[(%s)]", s.Arg1)
	case Filter:
		return fmt.Sprintf("[?(%s)]", s.Arg1)
	case QName:
		return fmt.Sprintf("['%s']", s.Arg1)
	}
	return fmt.Sprintf("[%s]", s.Arg1)
}
