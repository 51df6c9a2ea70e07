package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parenlang/parens/pkg/ast"
	"github.com/parenlang/parens/pkg/evaluator"
	"github.com/parenlang/parens/pkg/parser"
)

func TestRunEndToEnd(t *testing.T) {
	rt := New()
	program, values, err := rt.Run("(defun square (n) (* n n)) (square 4)")
	require.NoError(t, err)

	assert.Len(t, program.Exprs, 2)
	require.Len(t, values, 1)
	assert.True(t, evaluator.Equivalent(values[0], &ast.IntLiteral{Value: 16}))
}

func TestRunKeepsProgramOnEvalError(t *testing.T) {
	rt := New()
	program, values, err := rt.Run("(/ 1 0)")

	require.Error(t, err)
	assert.IsType(t, &evaluator.EvalError{}, err)
	assert.Nil(t, values)
	// The parse products survive the failed evaluation; the CLI prints them
	// before the error surfaces.
	require.NotNil(t, program)
	assert.NotEmpty(t, program.Tokens)
}

func TestParseError(t *testing.T) {
	_, _, err := New().Run("(+ 1 2")
	require.Error(t, err)
	assert.IsType(t, &parser.ParseError{}, err)
}

func TestCheck(t *testing.T) {
	rt := New()
	assert.NoError(t, rt.Check("(+ 1 2)"))
	assert.Error(t, rt.Check(`(" unterminated`))
}

func TestWithFunctions(t *testing.T) {
	double := &ast.FunctionDef{
		Name:   "double",
		Params: []string{"n"},
		Body:   []ast.Expr{&ast.Add{Operands: []ast.Expr{&ast.Variable{Name: "n"}, &ast.Variable{Name: "n"}}}},
	}

	// Preloaded definitions are callable without a source-level defun. The
	// prescan does not know the name, so the call needs a declaration too;
	// the program's own definition wins over the preload.
	rt := New(WithFunctions(double))
	_, values, err := rt.Run("(defun double (n) (* n 10)) (double 3)")
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.True(t, evaluator.Equivalent(values[0], &ast.IntLiteral{Value: 30}))

	// Without a competing top-level definition the preload is called.
	call := &ast.Call{Name: "double", Arguments: []ast.Expr{&ast.IntLiteral{Value: 3}}}
	values, err = rt.Eval(&Program{Exprs: []ast.Expr{call}})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.True(t, evaluator.Equivalent(values[0], &ast.IntLiteral{Value: 6}))
}
