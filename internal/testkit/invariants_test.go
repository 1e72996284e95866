package testkit

import (
	"testing"

	"pasc/internal/ast"
	"pasc/internal/diag"
	"pasc/internal/lexer"
	"pasc/internal/parser"
	"pasc/internal/source"
)

func parse(t *testing.T, input string) (*ast.Builder, ast.FileID, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("inv.pas", []byte(input)))
	bag := diag.NewBag(0)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	builder := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(lx, builder, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics in %q", input)
	}
	return builder, res.File, file
}

func TestCheckSpanInvariants(t *testing.T) {
	inputs := []string{
		"program p;",
		"program p;\nconst n = 1; m = n + 2;\n",
		"program p;\ntype r = record a, b: integer; c: set of char end;\n",
		"program p;\ntype c = (red, green);\nvar x: array [c, 1..3] of real;\n",
	}
	for _, input := range inputs {
		b, fileID, file := parse(t, input)
		if err := CheckSpanInvariants(b, fileID, file); err != nil {
			t.Errorf("%q: %v", input, err)
		}
	}
}

func TestCheckSpanInvariantsDetectsBrokenItem(t *testing.T) {
	b, fileID, file := parse(t, "program p;\nconst n = 1;\n")
	f := b.Files.Get(fileID)
	item := b.Items.Get(f.Items[0])
	item.Span.End = f.Span.End + 10
	if err := CheckSpanInvariants(b, fileID, file); err == nil {
		t.Fatal("expected an error for an item outside the file")
	}
}

func TestCheckSpanInvariantsNil(t *testing.T) {
	if err := CheckSpanInvariants(nil, ast.NoFileID, nil); err == nil {
		t.Fatal("expected error for nil input")
	}
}
