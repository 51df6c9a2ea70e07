package ast

import (
	"fmt"
	"strings"
)

const indent = "  "

// Render returns the depth-indented tree rendering of an expression: one
// line per node labeled with its variant and key fields, children indented
// one level deeper. The rendering is stable for a given tree.
func Render(e Expr) string {
	var b strings.Builder
	render(&b, e, 0)
	return b.String()
}

// RenderAll renders a sequence of expressions in order.
func RenderAll(exprs []Expr) string {
	var b strings.Builder
	for _, e := range exprs {
		render(&b, e, 0)
	}
	return b.String()
}

func render(b *strings.Builder, e Expr, depth int) {
	pad := strings.Repeat(indent, depth)

	switch n := e.(type) {
	case *Variable:
		fmt.Fprintf(b, "%sVariable(%s)\n", pad, n.Name)

	case *IntLiteral:
		fmt.Fprintf(b, "%sIntLiteral(%d)\n", pad, n.Value)

	case *BoolLiteral:
		fmt.Fprintf(b, "%sBoolLiteral(%t)\n", pad, n.Value)

	case *StringLiteral:
		fmt.Fprintf(b, "%sStringLiteral(%q)\n", pad, n.Value)

	case *Empty:
		fmt.Fprintf(b, "%sEmpty\n", pad)

	case *ListLiteral:
		fmt.Fprintf(b, "%sListLiteral\n", pad)
		renderChildren(b, n.Elements, depth+1)

	case *Car:
		fmt.Fprintf(b, "%sCar\n", pad)
		render(b, n.Target, depth+1)

	case *Cdr:
		fmt.Fprintf(b, "%sCdr\n", pad)
		render(b, n.Target, depth+1)

	case *Equal:
		fmt.Fprintf(b, "%sEqual\n", pad)
		renderChildren(b, n.Operands, depth+1)

	case *Add:
		fmt.Fprintf(b, "%sAdd\n", pad)
		renderChildren(b, n.Operands, depth+1)

	case *Multiply:
		fmt.Fprintf(b, "%sMultiply\n", pad)
		renderChildren(b, n.Operands, depth+1)

	case *Subtract:
		fmt.Fprintf(b, "%sSubtract\n", pad)
		renderChildren(b, n.Operands, depth+1)

	case *Divide:
		fmt.Fprintf(b, "%sDivide\n", pad)
		renderChildren(b, n.Operands, depth+1)

	case *If:
		fmt.Fprintf(b, "%sIf\n", pad)
		render(b, n.Cond, depth+1)
		render(b, n.Then, depth+1)
		render(b, n.Else, depth+1)

	case *Let:
		fmt.Fprintf(b, "%sLet\n", pad)
		for _, bind := range n.Bindings {
			fmt.Fprintf(b, "%s%sBinding(%s)\n", pad, indent, bind.Name)
			render(b, bind.Value, depth+2)
		}
		fmt.Fprintf(b, "%s%sBody\n", pad, indent)
		renderChildren(b, n.Body, depth+2)

	case *Call:
		fmt.Fprintf(b, "%sCall(%s)\n", pad, n.Name)
		renderChildren(b, n.Arguments, depth+1)

	case *FunctionDef:
		fmt.Fprintf(b, "%sFunctionDef(%s %s)\n", pad, n.Name, strings.Join(n.Params, " "))
		renderChildren(b, n.Body, depth+1)

	default:
		fmt.Fprintf(b, "%s<unknown>\n", pad)
	}
}

func renderChildren(b *strings.Builder, exprs []Expr, depth int) {
	for _, e := range exprs {
		render(b, e, depth)
	}
}
