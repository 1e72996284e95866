package symbols

import (
	"cmp"
	"slices"

	"pasc/internal/expr"
	"pasc/internal/types"
)

// builtinTypes is shared by every Program; identifiers are lowercase after lexing.
var builtinTypes = newBuiltinTypes()

func newBuiltinTypes() *Store[types.Type] {
	s := NewStore[types.Type](nil)
	s.Insert(map[string]types.Type{
		"integer": types.Integer,
		"char":    types.Char,
		"real":    types.Real,
		"boolean": types.Boolean,
	})
	return s.Freeze()
}

var builtinSymbols = func() *Store[Symbol] {
	s := NewStore[Symbol](nil)
	for _, name := range builtinTypes.Names() {
		s.Set(name, Symbol{Name: name, Kind: SymbolType, Flags: SymbolFlagBuiltin})
	}
	return s.Freeze()
}()

// Program is the compilation context of one source file: its name and the
// constants, variables and types declared so far. It implements expr.Context.
type Program struct {
	Name      string
	Constants *Store[expr.Node]
	Globals   *Store[types.Type]
	Types     *Store[types.Type]

	decls *Store[Symbol]
}

var _ expr.Context = (*Program)(nil)

// NewProgram creates an empty program whose type store falls back to the builtins.
func NewProgram(name string) *Program {
	return &Program{
		Name:      name,
		Constants: NewStore[expr.Node](nil),
		Globals:   NewStore[types.Type](nil),
		Types:     NewStore[types.Type](builtinTypes),
		decls:     NewStore[Symbol](builtinSymbols),
	}
}

// Declare registers a name. When the name is taken, by a builtin or an
// earlier declaration, the previous symbol is returned with ok=false.
func (p *Program) Declare(sym Symbol) (prev Symbol, ok bool) {
	if prev, found := p.decls.Get(sym.Name); found {
		return prev, false
	}
	p.decls.Set(sym.Name, sym)
	return Symbol{}, true
}

// Lookup returns the declaration of name including builtins.
func (p *Program) Lookup(name string) (Symbol, bool) {
	return p.decls.Get(name)
}

// Symbols lists user declarations in source order.
func (p *Program) Symbols() []Symbol {
	names := p.decls.Names()
	out := make([]Symbol, 0, len(names))
	for _, name := range names {
		if sym, ok := p.decls.Get(name); ok {
			out = append(out, sym)
		}
	}
	slices.SortFunc(out, func(a, b Symbol) int {
		return cmp.Compare(a.Span.Start, b.Span.Start)
	})
	return out
}

func (p *Program) LookupType(name string) (types.Type, bool) {
	return p.Types.Get(name)
}

func (p *Program) LookupConst(name string) (expr.Node, bool) {
	return p.Constants.Get(name)
}

func (p *Program) LookupGlobal(name string) (types.Type, bool) {
	return p.Globals.Get(name)
}
