package when

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ErrEmpty is returned by Parse for blank input.
var ErrEmpty = errors.New("empty when clause")

// Context maps context keys to values. Keys may be dotted
// ("config.git.enabled"); values are bools, strings, numbers or nested maps.
type Context map[string]any

// Expr is a parsed visibility predicate.
type Expr interface {
	// Eval reports whether the predicate holds in ctx. Evaluation failures
	// report false.
	Eval(ctx Context) bool
	// String returns the source the predicate was parsed from.
	String() string
}

// True is the predicate that always holds.
var True Expr = constant(true)

type constant bool

func (c constant) Eval(Context) bool { return bool(c) }

func (c constant) String() string {
	if c {
		return "true"
	}
	return "false"
}

type expr struct {
	src string
	ast hclsyntax.Expression
}

// Parse parses a when clause.
func Parse(src string) (Expr, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmpty
	}

	ast, diags := hclsyntax.ParseExpression([]byte(normalizeQuotes(src)), "when", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing when clause %q: %s", src, diags.Error())
	}

	diags = hclsyntax.VisitAll(ast, func(n hclsyntax.Node) hcl.Diagnostics {
		if call, ok := n.(*hclsyntax.FunctionCallExpr); ok {
			return hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("function %q is not allowed in when clauses", call.Name),
			}}
		}
		return nil
	})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing when clause %q: %s", src, diags.Error())
	}

	return &expr{src: src, ast: ast}, nil
}

// ParseOrTrue parses src and falls back to True when src is blank or does
// not parse.
func ParseOrTrue(src string) Expr {
	e, err := Parse(src)
	if err != nil {
		return True
	}
	return e
}

func (e *expr) String() string { return e.src }

func (e *expr) Eval(ctx Context) bool {
	// tree only holds copies, so inserts never reach the caller's maps.
	tree := make(map[string]any, len(ctx))
	for k, v := range ctx {
		insert(tree, strings.Split(k, "."), cloneValue(v), true)
	}
	// Keys the expression references but the context lacks read as false.
	for _, t := range e.ast.Variables() {
		insert(tree, traversalPath(t), false, false)
	}

	vars := make(map[string]cty.Value, len(tree))
	for k, v := range tree {
		vars[k] = toCty(v)
	}

	v, diags := e.ast.Value(&hcl.EvalContext{Variables: vars})
	if diags.HasErrors() {
		return false
	}
	return truthy(v)
}

// normalizeQuotes rewrites 'x' literals as "x". Double-quoted literals are
// copied unchanged; inside a single-quoted literal \' becomes ' and a bare "
// is escaped.
func normalizeQuotes(src string) string {
	var b strings.Builder
	b.Grow(len(src))

	var quote rune
	escaped := false
	for _, r := range src {
		switch {
		case quote == 0:
			switch r {
			case '\'':
				quote = r
				b.WriteRune('"')
			case '"':
				quote = r
				b.WriteRune(r)
			default:
				b.WriteRune(r)
			}

		case escaped:
			escaped = false
			if quote == '\'' && r == '\'' {
				b.WriteRune(r)
			} else {
				b.WriteRune('\\')
				b.WriteRune(r)
			}

		case r == '\\':
			escaped = true

		case r == quote:
			quote = 0
			b.WriteRune('"')

		case quote == '\'' && r == '"':
			b.WriteString(`\"`)

		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		b.WriteRune('\\')
	}
	return b.String()
}

func traversalPath(t hcl.Traversal) []string {
	path := []string{t.RootName()}
	for _, step := range t[1:] {
		switch s := step.(type) {
		case hcl.TraverseAttr:
			path = append(path, s.Name)
		case hcl.TraverseIndex:
			if s.Key.Type() != cty.String || !s.Key.IsKnown() || s.Key.IsNull() {
				return path
			}
			path = append(path, s.Key.AsString())
		default:
			return path
		}
	}
	return path
}

// insert places v at path inside tree. When overwrite is false an existing
// value at path is kept.
func insert(tree map[string]any, path []string, v any, overwrite bool) {
	node := tree
	for _, key := range path[:len(path)-1] {
		next, ok := node[key].(map[string]any)
		if !ok {
			if _, exists := node[key]; exists && !overwrite {
				return
			}
			next = make(map[string]any)
			node[key] = next
		}
		node = next
	}

	leaf := path[len(path)-1]
	if _, exists := node[leaf]; exists && !overwrite {
		return
	}
	node[leaf] = v
}

// cloneValue deep-copies nested maps so the evaluation tree shares none
// of them with the caller.
func cloneValue(v any) any {
	var m map[string]any
	switch v := v.(type) {
	case map[string]any:
		m = v
	case Context:
		m = v
	default:
		return v
	}
	out := make(map[string]any, len(m))
	for k, e := range m {
		out[k] = cloneValue(e)
	}
	return out
}

func toCty(v any) cty.Value {
	switch v := v.(type) {
	case nil:
		return cty.False
	case cty.Value:
		return v
	case bool:
		return cty.BoolVal(v)
	case string:
		return cty.StringVal(v)
	case int:
		return cty.NumberIntVal(int64(v))
	case int64:
		return cty.NumberIntVal(v)
	case float64:
		return cty.NumberFloatVal(v)
	case map[string]any:
		if len(v) == 0 {
			return cty.EmptyObjectVal
		}
		attrs := make(map[string]cty.Value, len(v))
		for k, e := range v {
			attrs[k] = toCty(e)
		}
		return cty.ObjectVal(attrs)
	case Context:
		return toCty(map[string]any(v))
	}

	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.StringVal(fmt.Sprint(v))
	}
	val, err := gocty.ToCtyValue(v, ty)
	if err != nil {
		return cty.StringVal(fmt.Sprint(v))
	}
	return val
}

func truthy(v cty.Value) bool {
	if v.IsNull() || !v.IsKnown() {
		return false
	}
	switch v.Type() {
	case cty.Bool:
		return v.True()
	case cty.String:
		s := v.AsString()
		return s != "" && s != "false"
	case cty.Number:
		return !v.Equals(cty.Zero).True()
	default:
		return false
	}
}
