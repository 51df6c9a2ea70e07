package diagnostics

import (
	"encoding/json"
	"testing"
)

func TestFormatDiagnosticJSON(t *testing.T) {
	d := MakeDiag(EParse, "quote mismatch", `"`, "")
	out := FormatDiagnostic(d, false)

	var back Diagnostic
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if back != d {
		t.Fatalf("round trip mismatch: got %+v, want %+v", back, d)
	}
}

func TestFormatDiagnosticPretty(t *testing.T) {
	d := MakeDiag(EEval, "unknown reference", "q", "bind the name in an enclosing let")
	want := "error[E_EVAL]: unknown reference\n" +
		"  --> at token 'q'\n" +
		"  hint: bind the name in an enclosing let"
	if got := FormatDiagnostic(d, true); got != want {
		t.Fatalf("pretty output:\n%s\nwant:\n%s", got, want)
	}

	// Token and hint lines are omitted when empty.
	bare := FormatDiagnostic(MakeDiag(EEval, "division by zero", "", ""), true)
	if bare != "error[E_EVAL]: division by zero" {
		t.Fatalf("bare output: %q", bare)
	}
}

func TestFormatDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		MakeDiag(EParse, "parenthesis mismatch", "(", ""),
		MakeDiag(EIO, "cannot read file: missing.lsp", "", ""),
	}

	var back []Diagnostic
	if err := json.Unmarshal([]byte(FormatDiagnostics(diags, false)), &back); err != nil {
		t.Fatalf("output is not a valid JSON array: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(back))
	}
}
