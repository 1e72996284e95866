package symbols

import "pasc/internal/source"

// SymbolKind classifies a declared name.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolConst
	SymbolType
	SymbolVar
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolConst:
		return "constant"
	case SymbolType:
		return "type"
	case SymbolVar:
		return "variable"
	default:
		return "invalid"
	}
}

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint8

const (
	SymbolFlagBuiltin SymbolFlags = 1 << iota
)

// Symbol records where a name was declared. Names share one namespace.
type Symbol struct {
	Name  string
	Kind  SymbolKind
	Flags SymbolFlags
	Span  source.Span // zero for builtins
}

// IsBuiltin reports whether the symbol comes from the prelude.
func (s Symbol) IsBuiltin() bool { return s.Flags&SymbolFlagBuiltin != 0 }
