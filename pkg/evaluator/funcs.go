package evaluator

import "github.com/parenlang/parens/pkg/ast"

// FuncTable maps a declared function name to its definition. It is built
// once from all top-level definitions before evaluation begins, read-only
// thereafter, and threaded as a parameter through all evaluation calls.
type FuncTable map[string]*ast.FunctionDef

// Partition splits a top-level expression sequence into the function table
// and the remaining evaluatable expressions, preserving file order. A name
// defined twice keeps the later definition.
func Partition(exprs []ast.Expr) (FuncTable, []ast.Expr) {
	fns := make(FuncTable)
	var remaining []ast.Expr
	for _, e := range exprs {
		if def, ok := e.(*ast.FunctionDef); ok {
			fns[def.Name] = def
			continue
		}
		remaining = append(remaining, e)
	}
	return fns, remaining
}
