// Package formatter prints a parens AST back to canonical source text.
package formatter

import (
	"strconv"
	"strings"

	"github.com/parenlang/parens/pkg/ast"
)

// Format renders a single expression as canonical source. Reparsing the
// output yields a structurally equal expression; string literals come back
// with single spaces between their fragments, which is the accepted lossy
// round-trip.
func Format(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Variable:
		return n.Name

	case *ast.IntLiteral:
		return strconv.FormatInt(n.Value, 10)

	case *ast.BoolLiteral:
		if n.Value {
			return "true"
		}
		return "false"

	case *ast.StringLiteral:
		return `"` + n.Value + `"`

	case *ast.Empty:
		return "()"

	case *ast.ListLiteral:
		return form("list", n.Elements)

	case *ast.Car:
		return form("car", []ast.Expr{n.Target})

	case *ast.Cdr:
		return form("cdr", []ast.Expr{n.Target})

	case *ast.Equal:
		return form("=", n.Operands)

	case *ast.Add:
		return form("+", n.Operands)

	case *ast.Multiply:
		return form("*", n.Operands)

	case *ast.Subtract:
		return form("-", n.Operands)

	case *ast.Divide:
		return form("/", n.Operands)

	case *ast.If:
		return form("if", []ast.Expr{n.Cond, n.Then, n.Else})

	case *ast.Let:
		parts := make([]string, len(n.Bindings))
		for i, b := range n.Bindings {
			parts[i] = "(" + b.Name + " " + Format(b.Value) + ")"
		}
		out := "(let (" + strings.Join(parts, " ") + ")"
		for _, b := range n.Body {
			out += " " + Format(b)
		}
		return out + ")"

	case *ast.Call:
		return form(n.Name, n.Arguments)

	case *ast.FunctionDef:
		out := "(defun " + n.Name + " (" + strings.Join(n.Params, " ") + ")"
		for _, b := range n.Body {
			out += " " + Format(b)
		}
		return out + ")"
	}

	return ""
}

// FormatSequence renders a top-level expression sequence, one per line.
func FormatSequence(exprs []ast.Expr) string {
	if len(exprs) == 0 {
		return ""
	}
	lines := make([]string, len(exprs))
	for i, e := range exprs {
		lines[i] = Format(e)
	}
	return strings.Join(lines, "\n") + "\n"
}

func form(head string, operands []ast.Expr) string {
	parts := make([]string, 0, len(operands)+1)
	parts = append(parts, head)
	for _, op := range operands {
		parts = append(parts, Format(op))
	}
	return "(" + strings.Join(parts, " ") + ")"
}
