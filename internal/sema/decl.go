package sema

import (
	"pasc/internal/ast"
	"pasc/internal/expr"
	"pasc/internal/symbols"
	"pasc/internal/types"
)

// checkConst validates the value. Only valid constants enter the program, so
// later references to a broken one report it as unresolved.
func (c *checker) checkConst(decl *ast.ConstItem) {
	if prev, ok := c.prog.Declare(symbols.Symbol{Name: decl.Name.Name, Kind: symbols.SymbolConst, Span: decl.Name.Span}); !ok {
		c.reportDuplicate(decl.Name.Name, decl.Name.Span, prev)
		return
	}
	if errs := expr.Validate(c.prog, decl.Value); len(errs) > 0 {
		c.reportExprErrors(errs, decl.Span)
		return
	}
	c.prog.Constants.Set(decl.Name.Name, decl.Value)
	if v, err := expr.AsNumber(c.prog, decl.Value); err == nil {
		c.result.Values[decl.Name.Name] = v
	}
}

// checkTypeDecl resolves the type. A broken type is stored as Invalid so that
// its uses do not report it again.
func (c *checker) checkTypeDecl(decl *ast.TypeItem) {
	if prev, ok := c.prog.Declare(symbols.Symbol{Name: decl.Name.Name, Kind: symbols.SymbolType, Span: decl.Name.Span}); !ok {
		c.reportDuplicate(decl.Name.Name, decl.Name.Span, prev)
		return
	}
	t, ok := c.resolveType(decl.Type)
	if !ok {
		t = types.Invalid
	}
	c.prog.Types.Set(decl.Name.Name, t)
}

func (c *checker) checkVar(decl *ast.VarItem) {
	t, ok := c.resolveType(decl.Type)
	if !ok {
		t = types.Invalid
	}
	for _, name := range decl.Names {
		if prev, ok := c.prog.Declare(symbols.Symbol{Name: name.Name, Kind: symbols.SymbolVar, Span: name.Span}); !ok {
			c.reportDuplicate(name.Name, name.Span, prev)
			continue
		}
		c.prog.Globals.Set(name.Name, t)
	}
}
