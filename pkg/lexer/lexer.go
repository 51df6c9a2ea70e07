// Package lexer implements the parens tokenizer.
package lexer

import "strings"

// Token is an opaque string value: "(", ")", "\"", a literal, or an
// identifier/operator symbol. Produced once, immutable, consumed in order.
type Token = string

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDelimiter(ch byte) bool {
	return ch == '(' || ch == ')' || ch == '"'
}

// Tokenize breaks source text into an ordered token sequence. Runs of
// whitespace separate tokens and are discarded; '(', ')' and '"' are
// single-character tokens even when not surrounded by whitespace; every
// other fragment is kept verbatim. Any text produces some token sequence,
// so there are no error conditions at this stage.
func Tokenize(source string) []Token {
	var tokens []Token
	start := -1 // start of the fragment being collected, -1 when none

	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, source[start:end])
			start = -1
		}
	}

	for i := 0; i < len(source); i++ {
		ch := source[i]
		switch {
		case isWhitespace(ch):
			flush(i)
		case isDelimiter(ch):
			flush(i)
			tokens = append(tokens, string(ch))
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(source))

	return tokens
}

// Join renders a token sequence as a flat space-joined diagnostic line.
func Join(tokens []Token) string {
	return strings.Join(tokens, " ")
}
