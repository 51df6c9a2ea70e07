// Package diagnostics defines parens diagnostic types for parse and
// evaluation errors.
package diagnostics

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Diagnostic code constants.
const (
	EParse = "E_PARSE"
	EEval  = "E_EVAL"
	EIO    = "E_IO"
)

// Diagnostic represents a parse or evaluation diagnostic. Tokens carry no
// source positions, so the offending token text stands in for a location.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// MakeDiag creates a new Diagnostic.
func MakeDiag(code, message, token, hint string) Diagnostic {
	return Diagnostic{
		Code:    code,
		Message: message,
		Token:   token,
		Hint:    hint,
	}
}

// FormatDiagnostic formats a single diagnostic for display.
func FormatDiagnostic(d Diagnostic, pretty bool) string {
	if !pretty {
		b, _ := json.Marshal(d)
		return string(b)
	}
	out := fmt.Sprintf("error[%s]: %s", d.Code, d.Message)
	if d.Token != "" {
		out += fmt.Sprintf("\n  --> at token '%s'", d.Token)
	}
	if d.Hint != "" {
		out += fmt.Sprintf("\n  hint: %s", d.Hint)
	}
	return out
}

// FormatDiagnostics formats a slice of diagnostics for display.
func FormatDiagnostics(diags []Diagnostic, pretty bool) string {
	if !pretty {
		b, _ := json.Marshal(diags)
		return string(b)
	}
	parts := make([]string, len(diags))
	for i, d := range diags {
		parts[i] = FormatDiagnostic(d, true)
	}
	return strings.Join(parts, "\n\n")
}
