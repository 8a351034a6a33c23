package jpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/tjson/tree"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Select parses path as a JSONPath expression and evaluates it against root.
func Select(root tree.Node, path string) ([]tree.Node, error) {
	e, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return e.Eval(root)
}

// Eval evaluates e against root and returns the nodes it selects, in the
// order they were reached. A step that matches nothing yields an empty
// result, not an error.
//
// Member steps select every member of an object with the given name.
// Wildcard steps select all the children of an array or object. Index and
// slice steps apply to arrays; negative offsets count from the end.
// A recursive step (..) applies its selection to a node and to each of its
// descendants in pre-order.
//
// Scripts and filters are evaluated with github.com/expr-lang/expr. In the
// text of an expression "@.x" refers to the member x of the current node,
// and "@" alone to the current node, which is bound to the variable "this".
// The variable "length" is bound to the length of the current array or
// object. A script must produce an integer offset or a member name. A filter
// selects each child of the current node for which its expression is true or
// produces a value other than nil or false.
func (e Expr) Eval(root tree.Node) ([]tree.Node, error) {
	if root == nil {
		return nil, fmt.Errorf("eval: %w: nil root", tree.ErrInvalidInput)
	}
	cur := []tree.Node{root}
	for _, s := range e {
		var next []tree.Node
		var err error
		switch s.Op {
		case Member:
			for _, n := range cur {
				next = appendNamed(next, n, s.Arg1, s.Arg2 == "*")
			}
		case Recur:
			for _, n := range cur {
				tree.Walk(n, func(d tree.Node) bool {
					next = appendNamed(next, d, s.Arg1, s.Arg2 == "*")
					return true
				})
			}
		case Name, QName, Wildcard:
			for _, n := range cur {
				next = appendNamed(next, n, s.Arg1, s.Op == Wildcard)
			}
		case Index:
			next, err = evalIndex(cur, s.Arg1)
		case Slice:
			next, err = evalSlice(cur, s.Arg1, s.Arg2)
		case Script:
			next, err = evalScript(cur, s.Arg1)
		case Filter:
			next, err = evalFilter(cur, s.Arg1)
		default:
			err = fmt.Errorf("unknown operator %v", s.Op)
		}
		if err != nil {
			return nil, fmt.Errorf("eval %v: %w", s.Op, err)
		}
		cur = next
	}
	return cur, nil
}

// appendNamed appends to out the children of n whose name is name, or all
// the children of n if all is true.
func appendNamed(out []tree.Node, n tree.Node, name string, all bool) []tree.Node {
	switch t := n.(type) {
	case *tree.Object:
		for _, m := range t.All() {
			if got, _ := m.Name(); all || got == name {
				out = append(out, m)
			}
		}
	case *tree.Array:
		if all {
			for _, elt := range t.All() {
				out = append(out, elt)
			}
		}
	}
	return out
}

func evalIndex(cur []tree.Node, arg string) ([]tree.Node, error) {
	var idx []int
	for _, s := range strings.Split(arg, ",") {
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", s, tree.ErrInvalidInput)
		}
		idx = append(idx, i)
	}
	var out []tree.Node
	for _, n := range cur {
		a, ok := n.(*tree.Array)
		if !ok {
			continue
		}
		for _, i := range idx {
			if i < 0 {
				i += a.Len()
			}
			if i >= 0 && i < a.Len() {
				out = append(out, a.At(i))
			}
		}
	}
	return out, nil
}

func evalSlice(cur []tree.Node, lo, hi string) ([]tree.Node, error) {
	parse := func(s string, def int) (int, error) {
		if s == "" {
			return def, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid slice bound %q: %w", s, tree.ErrInvalidInput)
		}
		return v, nil
	}
	var out []tree.Node
	for _, n := range cur {
		a, ok := n.(*tree.Array)
		if !ok {
			continue
		}
		start, err := parse(lo, 0)
		if err != nil {
			return nil, err
		}
		end, err := parse(hi, a.Len())
		if err != nil {
			return nil, err
		}
		start, end = clampBound(start, a.Len()), clampBound(end, a.Len())
		for i := start; i < end; i++ {
			out = append(out, a.At(i))
		}
	}
	return out, nil
}

func clampBound(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

func evalScript(cur []tree.Node, src string) ([]tree.Node, error) {
	prog, err := compile(src)
	if err != nil {
		return nil, err
	}
	var out []tree.Node
	for _, n := range cur {
		res, err := vm.Run(prog, newEnv(n))
		if err != nil {
			return nil, fmt.Errorf("script %q: %w", src, err)
		}
		switch t := res.(type) {
		case string:
			out = appendNamed(out, n, t, false)
		default:
			i, ok := toIndex(res)
			if !ok {
				return nil, fmt.Errorf("script %q: result %v (%T) is not an index", src, res, res)
			}
			sel, _ := evalIndex([]tree.Node{n}, strconv.Itoa(i))
			out = append(out, sel...)
		}
	}
	return out, nil
}

func evalFilter(cur []tree.Node, src string) ([]tree.Node, error) {
	prog, err := compile(src)
	if err != nil {
		return nil, err
	}
	var out []tree.Node
	for _, n := range cur {
		for _, c := range appendNamed(nil, n, "", true) {
			res, err := vm.Run(prog, newEnv(c))
			if err != nil {
				continue // e.g., comparing a missing member; not a match
			}
			if res != nil && res != false {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

// compile compiles the text of a script or filter expression.
func compile(src string) (*vm.Program, error) {
	text := strings.TrimSpace(rewriteAt(src))
	if text == "" {
		return nil, errors.New("empty expression")
	}
	prog, err := expr.Compile(text, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return prog, nil
}

// rewriteAt rewrites references to the current node in src: "@.x" becomes
// "x" and a bare "@" becomes "this". Text inside string literals quoted with
// ", ' or ` is copied unchanged.
func rewriteAt(src string) string {
	var sb strings.Builder
	var quote byte // the open quotation mark, or 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case quote != 0:
			sb.WriteByte(c)
			if c == '\\' && quote != '`' && i+1 < len(src) {
				i++
				sb.WriteByte(src[i])
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'' || c == '`':
			quote = c
			sb.WriteByte(c)
		case c == '@':
			if strings.HasPrefix(src[i+1:], ".") {
				i++
			} else {
				sb.WriteString("this")
			}
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// newEnv constructs the evaluation environment for n. The members of an
// object are bound by name, and where a name occurs more than once the
// first member wins. The names "this" and "length" take precedence over
// members of the same name.
func newEnv(n tree.Node) map[string]any {
	env := make(map[string]any)
	v := tree.Interface(n)
	if m, ok := v.(map[string]any); ok {
		for k, x := range m {
			env[k] = x
		}
	}
	env["this"] = v
	switch t := n.(type) {
	case *tree.Array:
		env["length"] = t.Len()
	case *tree.Object:
		env["length"] = t.Len()
	}
	return env
}

func toIndex(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case uint64:
		if t <= math.MaxInt64 {
			return int(t), true
		}
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < math.MaxInt32 {
			return int(t), true
		}
	}
	return 0, false
}
