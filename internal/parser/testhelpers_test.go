package parser

import (
	"fmt"
	"strings"
	"testing"

	"pasc/internal/ast"
	"pasc/internal/diag"
	"pasc/internal/expr"
	"pasc/internal/lexer"
	"pasc/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (*ast.Builder, Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.pas", []byte(input)))
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	res := ParseFile(lx, builder, Options{Reporter: reporter})
	return builder, res, bag
}

func parseExprSource(t *testing.T, input string) (expr.Node, []*Error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("expr.pas", []byte(input)))
	lx := lexer.New(file, lexer.Options{})
	return ParseExpr(lx, Options{})
}

func mustParseExpr(t *testing.T, input string) expr.Node {
	t.Helper()
	n, errs := parseExprSource(t, input)
	if len(errs) != 0 || n == nil {
		t.Fatalf("parse %q: %v", input, errs)
	}
	return n
}
