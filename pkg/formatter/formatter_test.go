package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parenlang/parens/pkg/ast"
	"github.com/parenlang/parens/pkg/lexer"
	"github.com/parenlang/parens/pkg/parser"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"true", "true"},
		{"foo", "foo"},
		{"()", "()"},
		{`(" a b ")`, `"a b"`},
		{"(+ 1 2 3)", "(+ 1 2 3)"},
		{"(car (list 1 2))", "(car (list 1 2))"},
		{"(if (= 1 1) 10 20)", "(if (= 1 1) 10 20)"},
		{"(let ((x 5) (y 3)) (+ x y))", "(let ((x 5) (y 3)) (+ x y))"},
		{"(defun square (n) (* n n))", "(defun square (n) (* n n))"},
		{"( + 1   2 )", "(+ 1 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			exprs, err := parser.Parse(lexer.Tokenize(tt.source))
			require.NoError(t, err)
			require.Len(t, exprs, 1)
			assert.Equal(t, tt.want, Format(exprs[0]))
		})
	}
}

func TestFormatReparse(t *testing.T) {
	source := `(defun avg (a b) (/ (+ a b) 2)) (avg 4 6) (let ((xs (list 1 2))) (car xs))`
	exprs, err := parser.Parse(lexer.Tokenize(source))
	require.NoError(t, err)

	printed := FormatSequence(exprs)
	again, err := parser.Parse(lexer.Tokenize(printed))
	require.NoError(t, err, "printed source must reparse: %q", printed)
	assert.Equal(t, exprs, again)
}

func TestFormatSequence(t *testing.T) {
	assert.Equal(t, "", FormatSequence(nil))

	out := FormatSequence([]ast.Expr{
		&ast.IntLiteral{Value: 1},
		&ast.BoolLiteral{Value: false},
	})
	assert.Equal(t, "1\nfalse\n", out)
}
