package parser

import (
	"reflect"
	"testing"

	"github.com/parenlang/parens/pkg/formatter"
	"github.com/parenlang/parens/pkg/lexer"
)

// FuzzParse checks that the parser never panics and that parsing, printing
// as canonical source, and re-parsing yields a structurally equal tree.
func FuzzParse(f *testing.F) {
	seeds := []string{
		``,
		`()`,
		`42 -7 true false foo`,
		`(+ 1 2 3)`,
		`(= (list 1 2) (list 1 2))`,
		`(car (list 1 2 3))`,
		`(" hello world ")`,
		`("")`,
		`(if (= 1 1) 10 20)`,
		`(let ((x 5) (y 3)) (+ x y))`,
		`(defun square (n) (* n n)) (square 4)`,
		`(+ 1 2`,
		`(" unterminated`,
		`(let (x) 1)`,
		`@`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		exprs, err := Parse(lexer.Tokenize(input))
		if err != nil {
			return
		}

		printed := formatter.FormatSequence(exprs)
		again, err := Parse(lexer.Tokenize(printed))
		if err != nil {
			t.Fatalf("re-parse of printed source failed: %v\n  input:   %q\n  printed: %q", err, input, printed)
		}
		if !reflect.DeepEqual(exprs, again) {
			t.Fatalf("re-parse mismatch:\n  input:   %q\n  printed: %q\n  first:   %#v\n  second:  %#v", input, printed, exprs, again)
		}
	})
}
