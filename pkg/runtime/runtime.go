// Package runtime provides the top-level parens pipeline orchestrator.
package runtime

import (
	"github.com/parenlang/parens/pkg/ast"
	"github.com/parenlang/parens/pkg/evaluator"
	"github.com/parenlang/parens/pkg/lexer"
	"github.com/parenlang/parens/pkg/parser"
)

// Program holds the intermediate products of one parsed source file.
type Program struct {
	Tokens []lexer.Token
	Exprs  []ast.Expr
}

// Runtime wires together tokenizer, prescan, parser, and evaluator for one
// synchronous batch computation over one input.
type Runtime struct {
	builtins []*ast.FunctionDef
}

// Option is a functional option for configuring the Runtime.
type Option func(*Runtime)

// WithFunctions preloads definitions into the function table before the
// program's own definitions are added. A program definition with the same
// name wins.
func WithFunctions(defs ...*ast.FunctionDef) Option {
	return func(rt *Runtime) {
		rt.builtins = append(rt.builtins, defs...)
	}
}

// New creates a new Runtime with the given options.
func New(opts ...Option) *Runtime {
	rt := &Runtime{}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Parse tokenizes source, runs the defun prescan, and parses the token
// sequence into top-level expressions.
func (rt *Runtime) Parse(source string) (*Program, error) {
	tokens := lexer.Tokenize(source)
	exprs, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return &Program{Tokens: tokens, Exprs: exprs}, nil
}

// Eval partitions the program's definitions into the function table and
// evaluates the remaining top-level expressions in file order against an
// empty initial environment. The function table is read-only once built.
func (rt *Runtime) Eval(p *Program) ([]ast.Expr, error) {
	fns, remaining := evaluator.Partition(p.Exprs)
	for _, def := range rt.builtins {
		if _, ok := fns[def.Name]; !ok {
			fns[def.Name] = def
		}
	}

	env := evaluator.NewEnv()
	values := make([]ast.Expr, 0, len(remaining))
	for _, e := range remaining {
		v, err := evaluator.Evaluate(e, env, fns)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Run parses and evaluates a source file in one call.
func (rt *Runtime) Run(source string) (*Program, []ast.Expr, error) {
	p, err := rt.Parse(source)
	if err != nil {
		return nil, nil, err
	}
	values, err := rt.Eval(p)
	if err != nil {
		return p, nil, err
	}
	return p, values, nil
}

// Check parses a source file without evaluating it.
func (rt *Runtime) Check(source string) error {
	_, err := rt.Parse(source)
	return err
}
