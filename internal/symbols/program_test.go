package symbols

import (
	"testing"

	"pasc/internal/expr"
	"pasc/internal/source"
	"pasc/internal/types"
)

func TestProgramBuiltinTypes(t *testing.T) {
	p := NewProgram("demo")
	for name, want := range map[string]types.Type{
		"integer": types.Integer,
		"char":    types.Char,
		"real":    types.Real,
		"boolean": types.Boolean,
	} {
		got, ok := p.LookupType(name)
		if !ok || !types.Equal(got, want) {
			t.Errorf("%s: got %v %v", name, got, ok)
		}
	}
	if p.Types.Len() != 0 {
		t.Fatal("builtins must not be copied into the program")
	}
}

func TestProgramsDoNotShareDeclarations(t *testing.T) {
	a := NewProgram("a")
	b := NewProgram("b")
	a.Types.Set("digits", types.NewRange(0, 9))
	if _, ok := b.LookupType("digits"); ok {
		t.Fatal("type leaked between programs")
	}
	a.Types.Set("integer", types.Real)
	if got, _ := b.LookupType("integer"); !types.Equal(got, types.Integer) {
		t.Fatalf("builtin overwritten: %v", got)
	}
}

func TestProgramDeclare(t *testing.T) {
	p := NewProgram("demo")
	first := Symbol{Name: "x", Kind: SymbolConst, Span: source.Span{Start: 4, End: 5}}
	if _, ok := p.Declare(first); !ok {
		t.Fatal("first declaration rejected")
	}
	prev, ok := p.Declare(Symbol{Name: "x", Kind: SymbolVar, Span: source.Span{Start: 20, End: 21}})
	if ok || prev != first {
		t.Fatalf("duplicate: got %+v %v", prev, ok)
	}
	prev, ok = p.Declare(Symbol{Name: "integer", Kind: SymbolType})
	if ok || !prev.IsBuiltin() {
		t.Fatalf("builtin redeclaration: got %+v %v", prev, ok)
	}
}

func TestProgramSymbolsInSourceOrder(t *testing.T) {
	p := NewProgram("demo")
	p.Declare(Symbol{Name: "b", Kind: SymbolVar, Span: source.Span{Start: 30}})
	p.Declare(Symbol{Name: "a", Kind: SymbolConst, Span: source.Span{Start: 10}})
	syms := p.Symbols()
	if len(syms) != 2 || syms[0].Name != "a" || syms[1].Name != "b" {
		t.Fatalf("symbols: %+v", syms)
	}
}

func TestProgramAsExpressionContext(t *testing.T) {
	p := NewProgram("demo")
	p.Constants.Set("n", expr.IntLit(10))
	p.Globals.Set("v", types.Real)

	if got := expr.TypeOf(p, expr.Ident("v")); !types.Equal(got, types.Real) {
		t.Fatalf("global type: %v", got)
	}
	n, err := expr.AsNumber(p, &expr.Sum{Left: expr.Ident("n"), Right: expr.IntLit(1), Op: expr.Add})
	if err != nil || n != 11 {
		t.Fatalf("fold through constant: %d %v", n, err)
	}
}
