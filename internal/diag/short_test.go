package diag

import (
	"testing"

	"pasc/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")
	file := fs.Add("/workspace/samples/prog.pas", []byte("program p;\nconst x = not 1;\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SemaDuplicateSymbol,
			Message:  "constant `x` redeclared",
			Primary:  source.Span{File: file, Start: 17, End: 18},
		},
		NewError(SemaTypeError, source.Span{File: file, Start: 21, End: 26}, "Expected Boolean,\ngot Integer").
			WithNote(source.Span{File: file, Start: 0, End: 7}, "in program p"),
	}

	want := "note SEM3001 samples/prog.pas:1:1 in program p\n" +
		"warning SEM3005 samples/prog.pas:2:7 constant `x` redeclared\n" +
		"error SEM3001 samples/prog.pas:2:11 Expected Boolean, got Integer"
	if got := FormatShortDiagnostics(diags, fs, true); got != want {
		t.Fatalf("unexpected output:\nwant:\n%s\n\ngot:\n%s", want, got)
	}

	if got := FormatShortDiagnostics(nil, fs, true); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestCodeStrings(t *testing.T) {
	tests := []struct {
		code  Code
		id    string
		title string
	}{
		{LexBadNumber, "LEX1004", "Bad Number"},
		{SynUnexpectedEOF, "SYN2003", "Unexpected EOF"},
		{SemaTypeError, "SEM3001", "Type Error"},
		{SemaInvalidLimit, "SEM3002", "Invalid Limit"},
		{IOLoadFileError, "IO4001", "Error"},
		{Code(9999), "E0000", "Unknown error"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("ID() = %q, want %q", got, tt.id)
		}
		if got := tt.code.Title(); got != tt.title {
			t.Errorf("Title() = %q, want %q", got, tt.title)
		}
	}
	if got := SemaTypeError.String(); got != "[SEM3001]: Type Error" {
		t.Errorf("String() = %q", got)
	}
}
