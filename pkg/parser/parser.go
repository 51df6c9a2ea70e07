// Package parser implements the parens recursive-descent parser.
package parser

import (
	"strconv"
	"strings"

	"github.com/parenlang/parens/pkg/ast"
	"github.com/parenlang/parens/pkg/diagnostics"
	"github.com/parenlang/parens/pkg/lexer"
)

// ParseError wraps a diagnostic for parse errors. The first parse error
// aborts the run; nothing is recovered.
type ParseError struct {
	Diag diagnostics.Diagnostic
}

func (e *ParseError) Error() string {
	return e.Diag.Message
}

func parseError(msg, token string) error {
	return &ParseError{Diag: diagnostics.MakeDiag(diagnostics.EParse, msg, token, "")}
}

// FuncSet is the prescan-derived set of declared function names. It is an
// immutable input to the parser, never global state.
type FuncSet map[string]struct{}

// Contains reports whether name was declared via defun.
func (fs FuncSet) Contains(name string) bool {
	_, ok := fs[name]
	return ok
}

func isNameChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '-'
}

// isName reports whether a token matches the variable/identifier grammar:
// letters, underscore, hyphen.
func isName(tok lexer.Token) bool {
	if len(tok) == 0 {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if !isNameChar(tok[i]) {
			return false
		}
	}
	return true
}

// isInteger reports whether a token is an integer literal: optional leading
// '-', then digits.
func isInteger(tok lexer.Token) bool {
	if len(tok) == 0 {
		return false
	}
	i := 0
	if tok[0] == '-' {
		if len(tok) == 1 {
			return false
		}
		i = 1
	}
	for ; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}

func isBool(tok lexer.Token) bool {
	return tok == "true" || tok == "false"
}

// ScanFunctionNames makes a single linear pass over the full token sequence
// and collects every name declared via defun. The whole stream is scanned
// before parsing begins, so a name is recognized even when it is declared
// after its first call site.
func ScanFunctionNames(tokens []lexer.Token) FuncSet {
	fns := make(FuncSet)
	for i := 0; i < len(tokens); {
		if tokens[i] == "defun" && i+1 < len(tokens) && isName(tokens[i+1]) {
			fns[tokens[i+1]] = struct{}{}
			i += 2
			continue
		}
		i++
	}
	return fns
}

// MatchParen splits tokens positioned just after an opening '(' into the
// enclosed group and the remainder after the matching ')'. Reinserting the
// enclosing parentheses around the group reconstructs the original sequence.
func MatchParen(tokens []lexer.Token) (group, rest []lexer.Token, err error) {
	depth := 1
	for i, tok := range tokens {
		switch tok {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return tokens[:i], tokens[i+1:], nil
			}
		}
	}
	return nil, nil, parseError("parenthesis mismatch", "(")
}

// Parse runs the function-name prescan and parses the full token sequence
// into a sequence of top-level expressions.
func Parse(tokens []lexer.Token) ([]ast.Expr, error) {
	fns := ScanFunctionNames(tokens)
	return ParseSequence(tokens, fns)
}

// ParseSequence parses one expression at a time until tokens are exhausted.
// It is used for operand lists, bodies, and the top level.
func ParseSequence(tokens []lexer.Token, fns FuncSet) ([]ast.Expr, error) {
	var exprs []ast.Expr
	for len(tokens) > 0 {
		expr, rest, err := ParseExpression(tokens, fns)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		tokens = rest
	}
	return exprs, nil
}

// ParseExpression parses a single expression from the front of tokens and
// returns it with the remaining tokens. Zero remaining tokens parse to Empty.
func ParseExpression(tokens []lexer.Token, fns FuncSet) (ast.Expr, []lexer.Token, error) {
	if len(tokens) == 0 {
		return &ast.Empty{}, nil, nil
	}

	tok := tokens[0]
	rest := tokens[1:]

	switch tok {
	case "(":
		group, remainder, err := MatchParen(rest)
		if err != nil {
			return nil, nil, err
		}
		expr, err := parseGroup(group, fns)
		if err != nil {
			return nil, nil, err
		}
		return expr, remainder, nil

	case `"`:
		return parseString(rest)

	case "=":
		ops, err := ParseSequence(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		return &ast.Equal{Operands: ops}, nil, nil

	case "+":
		ops, err := ParseSequence(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		return &ast.Add{Operands: ops}, nil, nil

	case "*":
		ops, err := ParseSequence(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		return &ast.Multiply{Operands: ops}, nil, nil

	case "-":
		ops, err := ParseSequence(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		return &ast.Subtract{Operands: ops}, nil, nil

	case "/":
		ops, err := ParseSequence(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		return &ast.Divide{Operands: ops}, nil, nil

	case "list":
		elems, err := ParseSequence(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		return &ast.ListLiteral{Elements: elems}, nil, nil

	case "car":
		target, remainder, err := ParseExpression(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		return &ast.Car{Target: target}, remainder, nil

	case "cdr":
		target, remainder, err := ParseExpression(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		return &ast.Cdr{Target: target}, remainder, nil

	case "let":
		expr, err := parseLet(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		return expr, nil, nil

	case "if":
		branches, err := ParseSequence(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		if len(branches) != 3 {
			return nil, nil, parseError("invalid if", tok)
		}
		return &ast.If{Cond: branches[0], Then: branches[1], Else: branches[2]}, nil, nil

	case "defun":
		expr, err := parseDefun(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		return expr, nil, nil
	}

	switch {
	case isBool(tok):
		return &ast.BoolLiteral{Value: tok == "true"}, rest, nil

	// Declared function names must be checked before the integer/variable
	// fallback so they never parse as bare variables.
	case fns.Contains(tok):
		args, err := ParseSequence(rest, fns)
		if err != nil {
			return nil, nil, err
		}
		return &ast.Call{Name: tok, Arguments: args}, nil, nil

	case isInteger(tok):
		value, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, nil, parseError("invalid integer literal", tok)
		}
		return &ast.IntLiteral{Value: value}, rest, nil

	case isName(tok):
		return &ast.Variable{Name: tok}, rest, nil
	}

	return nil, nil, parseError("unrecognized input", tok)
}

// parseGroup parses the contents of one balanced-paren group as exactly one
// expression; unconsumed trailing tokens are a parse error.
func parseGroup(group []lexer.Token, fns FuncSet) (ast.Expr, error) {
	expr, remainder, err := ParseExpression(group, fns)
	if err != nil {
		return nil, err
	}
	if len(remainder) > 0 {
		return nil, parseError("disjointed expression", remainder[0])
	}
	return expr, nil
}

// parseString collects tokens up to the next closing quote, joined by single
// spaces. Original spacing is reconstructed only as single spaces between
// sub-tokens; that lossy round-trip is accepted behavior.
func parseString(tokens []lexer.Token) (ast.Expr, []lexer.Token, error) {
	for i, tok := range tokens {
		if tok == `"` {
			return &ast.StringLiteral{Value: strings.Join(tokens[:i], " ")}, tokens[i+1:], nil
		}
	}
	return nil, nil, parseError("quote mismatch", `"`)
}

func parseLet(tokens []lexer.Token, fns FuncSet) (ast.Expr, error) {
	if len(tokens) == 0 || tokens[0] != "(" {
		return nil, parseError("invalid let binding list", first(tokens))
	}

	bindGroup, bodyTokens, err := MatchParen(tokens[1:])
	if err != nil {
		return nil, err
	}

	var bindings []ast.Binding
	for len(bindGroup) > 0 {
		if bindGroup[0] != "(" {
			return nil, parseError("invalid binding", bindGroup[0])
		}
		bindTokens, remainder, err := MatchParen(bindGroup[1:])
		if err != nil {
			return nil, err
		}
		if len(bindTokens) == 0 {
			return nil, parseError("incomplete binding", "(")
		}
		name := bindTokens[0]
		if !isName(name) {
			return nil, parseError("invalid variable name", name)
		}
		if len(bindTokens) == 1 {
			return nil, parseError("incomplete binding", name)
		}
		value, err := parseGroup(bindTokens[1:], fns)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.Binding{Name: name, Value: value})
		bindGroup = remainder
	}

	body, err := ParseSequence(bodyTokens, fns)
	if err != nil {
		return nil, err
	}

	return &ast.Let{Bindings: bindings, Body: body}, nil
}

func parseDefun(tokens []lexer.Token, fns FuncSet) (ast.Expr, error) {
	if len(tokens) == 0 || !isName(tokens[0]) {
		return nil, parseError("invalid function name", first(tokens))
	}
	name := tokens[0]

	tokens = tokens[1:]
	if len(tokens) == 0 || tokens[0] != "(" {
		return nil, parseError("invalid parameter list", first(tokens))
	}

	paramTokens, bodyTokens, err := MatchParen(tokens[1:])
	if err != nil {
		return nil, err
	}

	params := make([]string, 0, len(paramTokens))
	for _, p := range paramTokens {
		if !isName(p) {
			return nil, parseError("invalid parameter name", p)
		}
		params = append(params, p)
	}

	if len(bodyTokens) == 0 {
		return nil, parseError("empty function", name)
	}

	body, err := ParseSequence(bodyTokens, fns)
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDef{Name: name, Params: params, Body: body}, nil
}

func first(tokens []lexer.Token) string {
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}
